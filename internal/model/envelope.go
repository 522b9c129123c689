package model

import "encoding/json"

// Envelope is the body shape of every hotel service response.
type Envelope struct {
	StatusCode int             `json:"statusCode,omitempty"`
	Status     bool            `json:"status"`
	Message    string          `json:"message,omitempty"`
	Result     json.RawMessage `json:"result,omitempty"`
	Token      string          `json:"token,omitempty"`
}
