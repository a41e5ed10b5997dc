package entity

import "encoding/json"

// Envelope is the provider response wrapper. Successful responses carry the
// operation payload under data; error responses carry error and code.
type Envelope struct {
	Data         json.RawMessage `json:"data"`
	ResponseCode int             `json:"responseCode"`
	Error        string          `json:"error,omitempty"`
	Code         int             `json:"code,omitempty"`
}
