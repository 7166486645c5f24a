package response

import (
	"encoding/json"
	"net/http"
)

// WebhookResponse is the Dialogflow CX fulfillment envelope
type WebhookResponse struct {
	FulfillmentResponse FulfillmentResponse `json:"fulfillmentResponse"`
}

type FulfillmentResponse struct {
	Messages []ResponseMessage `json:"messages"`
}

type ResponseMessage struct {
	Text ResponseText `json:"text"`
}

type ResponseText struct {
	Text []string `json:"text"`
}

// NewWebhookResponse wraps each text into its own agent message
func NewWebhookResponse(texts ...string) WebhookResponse {
	messages := make([]ResponseMessage, len(texts))
	for i, text := range texts {
		messages[i] = ResponseMessage{Text: ResponseText{Text: []string{text}}}
	}
	return WebhookResponse{FulfillmentResponse: FulfillmentResponse{Messages: messages}}
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Fulfillment writes texts back to the agent
func Fulfillment(w http.ResponseWriter, statusCode int, texts ...string) {
	JSON(w, statusCode, NewWebhookResponse(texts...))
}
