package sip

// Agent is anything that implemented, executed, instrumented or was
// associated with an event. Type is a human-readable label (organization,
// person, software).
type Agent struct {
	Type       string       `json:"type"`
	Identifier string       `json:"identifier,omitempty"`
	Name       []LangString `json:"name"`
}

// Reference points at another object in the SIP graph by identifier.
type Reference struct {
	ID string `json:"id"`
}

// Event is a preservation event recorded against the entity or one of its
// representations. Type is an event-vocabulary URI; Outcome, when present,
// is one of the eventOutcome URIs.
type Event struct {
	ID             string      `json:"id"`
	Type           string      `json:"type"`
	StartedAt      string      `json:"started_at"`
	EndedAt        string      `json:"ended_at,omitempty"`
	Outcome        string      `json:"outcome,omitempty"`
	OutcomeNote    string      `json:"outcome_note,omitempty"`
	Note           string      `json:"note,omitempty"`
	ImplementedBy  *Agent      `json:"implemented_by"`
	ExecutedBy     *Agent      `json:"executed_by,omitempty"`
	Instruments    []*Agent    `json:"instrument,omitempty"`
	AssociatedWith []*Agent    `json:"was_associated_with,omitempty"`
	Source         []Reference `json:"source"`
	Result         []Reference `json:"result"`
}
