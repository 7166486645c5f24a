package usecase

import (
	"context"

	"medical-agent-webhook/config"
	"medical-agent-webhook/internal/converter"

	"github.com/sirupsen/logrus"
)

type FulfillmentUsecase interface {
	Fulfill(ctx context.Context, tag string, params map[string]interface{}) string
}

type fulfillmentUsecase struct {
	log                 *logrus.Logger
	webhookCfg          config.WebhookConfig
	availabilityUsecase DoctorAvailabilityUsecase
}

func NewFulfillmentUsecase(
	log *logrus.Logger,
	webhookCfg config.WebhookConfig,
	availabilityUsecase DoctorAvailabilityUsecase,
) FulfillmentUsecase {
	return &fulfillmentUsecase{
		log:                 log,
		webhookCfg:          webhookCfg,
		availabilityUsecase: availabilityUsecase,
	}
}

// Fulfill routes a webhook call by its tag and returns the reply text
func (u *fulfillmentUsecase) Fulfill(ctx context.Context, tag string, params map[string]interface{}) string {
	switch tag {
	case u.webhookCfg.SearchTag:
		req := converter.ParamsToAppointmentRequest(params, u.webhookCfg)
		return u.availabilityUsecase.SearchDoctors(ctx, req)
	default:
		u.log.Warnf("Unrecognized webhook tag %q: %v", tag, ErrUnrecognizedRequest)
		return MessageGenericError
	}
}
