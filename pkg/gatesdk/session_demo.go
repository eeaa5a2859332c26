package gatesdk

import (
	"context"
	"net/http"
)

// ============================================================================
// Demo Content Types
// ============================================================================

// Contradiction is a statement/counter-statement finding from the demo case.
type Contradiction struct {
	Statement      string `json:"statement"`
	ContradictedBy string `json:"contradicted_by"`
	Source         string `json:"source"`
	Confidence     int    `json:"confidence"`
	Impact         string `json:"impact"`
	CitationLink   string `json:"citation_link"`
}

// Misconduct is a reciprocal-misconduct finding from the demo case.
type Misconduct struct {
	Accusation         string `json:"accusation"`
	ReciprocalEvidence string `json:"reciprocal_evidence"`
	Source             string `json:"source"`
	Impact             string `json:"impact"`
	MessageTrailLink   string `json:"message_trail_link"`
}

// AlienationPattern is a behavioral-pattern finding from the demo case.
type AlienationPattern struct {
	Pattern          string   `json:"pattern"`
	Occurrences      int      `json:"occurrences"`
	ExampleQuote     string   `json:"example_quote"`
	Cycle            []string `json:"cycle"`
	ViewTimelineLink string   `json:"view_timeline_link"`
}

// TimelineEvent is one entry in the demo case timeline.
type TimelineEvent struct {
	Date   string `json:"date"`
	Event  string `json:"event"`
	Type   string `json:"type"`
	Source string `json:"source"`
}

// Report wraps the pre-rendered demo case report.
type Report struct {
	HTML string `json:"html"`
}

// ============================================================================
// Demo Content Operations
// ============================================================================

// Contradictions fetches the contradiction findings.
func (s *Session) Contradictions(ctx context.Context) ([]Contradiction, error) {
	var out []Contradiction
	if err := s.getJSON(ctx, "/api/demo/contradictions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Misconduct fetches the reciprocal-misconduct findings.
func (s *Session) Misconduct(ctx context.Context) ([]Misconduct, error) {
	var out []Misconduct
	if err := s.getJSON(ctx, "/api/demo/misconduct", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Alienation fetches the behavioral-pattern findings.
func (s *Session) Alienation(ctx context.Context) ([]AlienationPattern, error) {
	var out []AlienationPattern
	if err := s.getJSON(ctx, "/api/demo/alienation", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Timeline fetches the case timeline.
func (s *Session) Timeline(ctx context.Context) ([]TimelineEvent, error) {
	var out []TimelineEvent
	if err := s.getJSON(ctx, "/api/demo/timeline", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Report fetches the pre-rendered case report.
func (s *Session) Report(ctx context.Context) (*Report, error) {
	var out Report
	if err := s.getJSON(ctx, "/api/demo/report", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) getJSON(ctx context.Context, path string, target any) error {
	resp, err := s.client.doTokenRequest(ctx, s.token, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}
