package service

import (
	"encoding/json"
)

// CompletionMessage is the payload produced after a package has been fully
// assembled on disk. The transport service downstream picks the zip up from
// Paths; the correlation id ties the message back to the inbound event.
type CompletionMessage struct {
	Source        string   `json:"source"`
	Host          string   `json:"host"`
	Paths         []string `json:"paths"`
	CPID          string   `json:"cp_id"`
	Type          string   `json:"type"`
	SIPProfile    string   `json:"sip_profile"`
	PID           string   `json:"pid"`
	Outcome       string   `json:"outcome"`
	Metadata      string   `json:"metadata"`
	Message       string   `json:"message"`
	CorrelationID string   `json:"correlation_id"`
}

func (m *CompletionMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func CompletionMessageFromJSON(jsonData []byte) (*CompletionMessage, error) {
	msg := &CompletionMessage{}
	err := json.Unmarshal(jsonData, msg)
	if err != nil {
		return nil, err
	}
	return msg, nil
}
