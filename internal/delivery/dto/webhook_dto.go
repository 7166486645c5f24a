package dto

// WebhookRequest is the part of a Dialogflow CX webhook call the service reads
type WebhookRequest struct {
	DetectIntentResponseID string          `json:"detectIntentResponseId,omitempty"`
	FulfillmentInfo        FulfillmentInfo `json:"fulfillmentInfo"`
	SessionInfo            SessionInfo     `json:"sessionInfo"`
	LanguageCode           string          `json:"languageCode,omitempty"`
}

type FulfillmentInfo struct {
	Tag string `json:"tag"`
}

type SessionInfo struct {
	Session    string                 `json:"session,omitempty"`
	Parameters map[string]interface{} `json:"parameters"`
}
