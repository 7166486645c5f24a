package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medical-agent-webhook/internal/domain/entity"
	"medical-agent-webhook/internal/domain/repository"
	"medical-agent-webhook/internal/service"
	"medical-agent-webhook/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrMissingParameter    = errors.New("missing required parameter")
	ErrPastDate            = errors.New("requested date is in the past")
	ErrUnrecognizedRequest = errors.New("unrecognized request")
)

// User-facing replies, one per outcome
const (
	MessageMissingInformation = "I'm missing some information. Please provide your preferred specialty, location, and date."
	MessageMalformedDate      = "I couldn't understand the date provided. Please try again."
	MessagePastDate           = "I can only check for future appointments. Please provide a date that isn't in the past."
	MessageStoreUnavailable   = "I am having trouble looking for doctors right now. Please try again later."
	MessageGenericError       = "I'm sorry, an error occurred. Please try again."
)

type DoctorAvailabilityUsecase interface {
	SearchDoctors(ctx context.Context, req *entity.AppointmentRequest) string
}

type doctorAvailabilityUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	validator  *validator.CustomValidator
	now        func() time.Time
}

// NewDoctorAvailabilityUsecase wires the availability search. now supplies the
// evaluation time whose local calendar day counts as "today"; nil means time.Now.
func NewDoctorAvailabilityUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	validator *validator.CustomValidator,
	now func() time.Time,
) DoctorAvailabilityUsecase {
	if now == nil {
		now = time.Now
	}
	return &doctorAvailabilityUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		validator:  validator,
		now:        now,
	}
}

// SearchDoctors answers an availability question with a single sentence. It
// never fails: every error is mapped to its reply.
func (u *doctorAvailabilityUsecase) SearchDoctors(ctx context.Context, req *entity.AppointmentRequest) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			u.log.Errorf("Recovered from panic while looking up doctors: %v", r)
			reply = MessageStoreUnavailable
		}
	}()

	message, err := u.search(ctx, req)
	if err != nil {
		return u.messageFor(err)
	}
	return message
}

func (u *doctorAvailabilityUsecase) search(ctx context.Context, req *entity.AppointmentRequest) (string, error) {
	if req == nil {
		return "", ErrMissingParameter
	}
	if err := u.validator.Validate(req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingParameter, u.validator.FormatValidationErrors(err))
	}

	date, err := service.NormalizeDate(req.DateParam())
	if err != nil {
		return "", err
	}

	today := entity.CalendarDateOf(u.now())
	if date.Before(today) {
		return "", fmt.Errorf("%w: %s before %s", ErrPastDate, date, today)
	}

	query := entity.NewDirectoryQuery().
		Where(entity.DirectoryFieldSpecialty, req.Specialty).
		Where(entity.DirectoryFieldCity, req.City)

	doctors, err := u.doctorRepo.FindByQuery(ctx, query)
	if err != nil {
		return "", err
	}

	matches := service.MatchAvailability(doctors, date)
	u.log.WithFields(logrus.Fields{
		"specialty":  req.Specialty,
		"city":       req.City,
		"date":       date.String(),
		"candidates": len(doctors),
		"matches":    len(matches),
	}).Info("Doctor availability resolved")

	return service.ComposeAvailabilityMessage(matches, req.Specialty, req.City, date), nil
}

func (u *doctorAvailabilityUsecase) messageFor(err error) string {
	switch {
	case errors.Is(err, ErrMissingParameter):
		u.log.Debugf("Availability request incomplete: %v", err)
		return MessageMissingInformation
	case errors.Is(err, service.ErrMalformedDate):
		u.log.Debugf("Availability request has malformed date: %v", err)
		return MessageMalformedDate
	case errors.Is(err, ErrPastDate):
		u.log.Debugf("Availability request for past date: %v", err)
		return MessagePastDate
	default:
		u.log.Errorf("Failed to look up doctors: %+v", err)
		return MessageStoreUnavailable
	}
}
