package handler

import (
	"encoding/json"
	"net/http"

	"medical-agent-webhook/internal/delivery/dto"
	"medical-agent-webhook/internal/usecase"
	"medical-agent-webhook/pkg/response"

	"github.com/sirupsen/logrus"
)

type WebhookHandler struct {
	fulfillmentUsecase usecase.FulfillmentUsecase
	log                *logrus.Logger
}

func NewWebhookHandler(fulfillmentUsecase usecase.FulfillmentUsecase, log *logrus.Logger) *WebhookHandler {
	return &WebhookHandler{
		fulfillmentUsecase: fulfillmentUsecase,
		log:                log,
	}
}

// Fulfill answers a Dialogflow CX webhook call
func (h *WebhookHandler) Fulfill(w http.ResponseWriter, r *http.Request) {
	var req dto.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warnf("Failed to decode webhook request: %+v", err)
		response.Fulfillment(w, http.StatusBadRequest, usecase.MessageGenericError)
		return
	}

	h.log.WithFields(logrus.Fields{
		"tag":     req.FulfillmentInfo.Tag,
		"session": req.SessionInfo.Session,
	}).Debug("Webhook request received")

	message := h.fulfillmentUsecase.Fulfill(r.Context(), req.FulfillmentInfo.Tag, req.SessionInfo.Parameters)
	response.Fulfillment(w, http.StatusOK, message)
}
