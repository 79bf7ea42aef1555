package service

import (
	"encoding/json"

	"github.com/hetarchief/aip-services/constants"
)

// Envelope is the cloud-event style wrapper around an inbound message.
// Subject carries the source bag path; Outcome tells whether the upstream
// step succeeded. Envelopes without a successful outcome are dropped
// without processing.
type Envelope struct {
	ID            string          `json:"id"`
	Source        string          `json:"source"`
	Type          string          `json:"type"`
	Subject       string          `json:"subject"`
	Time          string          `json:"time"`
	Outcome       string          `json:"outcome"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

func EnvelopeFromJSON(jsonData []byte) (*Envelope, error) {
	envelope := &Envelope{}
	err := json.Unmarshal(jsonData, envelope)
	if err != nil {
		return nil, err
	}
	return envelope, nil
}

func (e *Envelope) HasSuccessfulOutcome() bool {
	return e.Outcome == constants.OutcomeSuccess
}
