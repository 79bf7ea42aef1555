package sip

import (
	"encoding/json"
	"strings"
)

// SIP is the submission information package as delivered by the upstream
// transformation service: a profile URI, the described intellectual entity,
// and the preservation events recorded against it. The graph arrives
// pre-validated; decoding only enforces the closed variant sets.
type SIP struct {
	// Profile is a URI whose last two path segments encode version and
	// profile, e.g. https://data.hetarchief.be/id/sip/2.1/film
	Profile  string              `json:"profile"`
	METSType string              `json:"mets_type,omitempty"`
	Entity   *IntellectualEntity `json:"entity"`
	Events   []*Event            `json:"events"`
}

func FromJSON(jsonData []byte) (*SIP, error) {
	s := &SIP{}
	err := json.Unmarshal(jsonData, s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SIP) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// ProfileName returns the last path segment of the profile URI.
func (s *SIP) ProfileName() string {
	parts := strings.Split(s.Profile, "/")
	return parts[len(parts)-1]
}

// DigitalRepresentations returns the digital representations in source order.
func (s *SIP) DigitalRepresentations() []*DigitalRepresentation {
	reps := make([]*DigitalRepresentation, 0)
	for _, rep := range s.Entity.Representations {
		if rep.Digital != nil {
			reps = append(reps, rep.Digital)
		}
	}
	return reps
}

// CarrierRepresentations returns the carrier representations in source order.
func (s *SIP) CarrierRepresentations() []*CarrierRepresentation {
	reps := make([]*CarrierRepresentation, 0)
	for _, rep := range s.Entity.Representations {
		if rep.Carrier != nil {
			reps = append(reps, rep.Carrier)
		}
	}
	return reps
}
