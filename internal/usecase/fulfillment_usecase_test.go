package usecase

import (
	"context"
	"testing"

	"medical-agent-webhook/config"
	"medical-agent-webhook/internal/domain/entity"
	"medical-agent-webhook/pkg/validator"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAvailabilityUsecase struct {
	reply   string
	calls   int
	lastReq *entity.AppointmentRequest
}

func (r *recordingAvailabilityUsecase) SearchDoctors(_ context.Context, req *entity.AppointmentRequest) string {
	r.calls++
	r.lastReq = req
	return r.reply
}

func testWebhookConfig() config.WebhookConfig {
	return config.WebhookConfig{
		SearchTag:      "search-doctors",
		SpecialtyParam: "specialty",
		LocationParam:  "location",
		CityKey:        "city",
		DateParam:      "date",
	}
}

func TestFulfill_RoutesSearchTag(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	search := &recordingAvailabilityUsecase{reply: "found them"}
	uc := NewFulfillmentUsecase(log, testWebhookConfig(), search)

	reply := uc.Fulfill(context.Background(), "search-doctors", map[string]interface{}{
		"specialty": "Cardiology",
		"location":  map[string]interface{}{"city": "Springfield"},
		"date":      "2099-01-10",
	})

	assert.Equal(t, "found them", reply)
	require.Equal(t, 1, search.calls)
	assert.Equal(t, &entity.AppointmentRequest{
		Specialty: "Cardiology",
		City:      "Springfield",
		Date:      "2099-01-10",
	}, search.lastReq)
}

func TestFulfill_UnknownTag(t *testing.T) {
	for _, tag := range []string{"", "book-appointment", "Search-Doctors"} {
		t.Run(tag, func(t *testing.T) {
			log, hook := logtest.NewNullLogger()
			search := &recordingAvailabilityUsecase{reply: "found them"}
			uc := NewFulfillmentUsecase(log, testWebhookConfig(), search)

			reply := uc.Fulfill(context.Background(), tag, map[string]interface{}{"specialty": "Cardiology"})

			assert.Equal(t, MessageGenericError, reply)
			assert.Zero(t, search.calls)
			require.NotNil(t, hook.LastEntry())
		})
	}
}

func TestFulfill_EndToEndWithoutParameters(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	repo := smithRepository()
	uc := NewFulfillmentUsecase(log, testWebhookConfig(), NewDoctorAvailabilityUsecase(log, repo, validator.NewValidator(), fixedClock))

	reply := uc.Fulfill(context.Background(), "search-doctors", nil)

	assert.Equal(t, MessageMissingInformation, reply)
	assert.Zero(t, repo.calls)
}
