// Package event models the inbound issue event payload and the outcome
// record one pipeline run produces.
package event

import (
	"encoding/json"
	"fmt"
	"os"
)

// Payload is the issue event delivered by the ticketing system's automation.
// Only the fields the pipeline consumes are decoded.
type Payload struct {
	Action string `json:"action"`
	Issue  Issue  `json:"issue"`
}

// Issue carries the request: a label set for classification and a form body.
type Issue struct {
	Number int     `json:"number"`
	Title  string  `json:"title"`
	Body   string  `json:"body"`
	Labels []Label `json:"labels"`
}

// Label is one classification label on the issue.
type Label struct {
	Name string `json:"name"`
}

// LoadPayload reads and decodes an event payload file.
func LoadPayload(path string) (*Payload, error) {
	if path == "" {
		return nil, fmt.Errorf("no event payload file configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload: %w", err)
	}
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse event payload: %w", err)
	}
	return &p, nil
}

// LabelNames returns the label names in payload order.
func (p *Payload) LabelNames() []string {
	names := make([]string, 0, len(p.Issue.Labels))
	for _, l := range p.Issue.Labels {
		names = append(names, l.Name)
	}
	return names
}

// Outcome is the single externally visible result of one mutation run.
type Outcome struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Success builds a passing outcome.
func Success(format string, args ...any) Outcome {
	return Outcome{OK: true, Message: fmt.Sprintf(format, args...)}
}

// Failure builds a failing outcome.
func Failure(format string, args ...any) Outcome {
	return Outcome{OK: false, Message: fmt.Sprintf(format, args...)}
}

// WriteFile persists the outcome record for downstream reporting
// (comment text, labels, exit code).
func (o Outcome) WriteFile(path string) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode outcome: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write outcome file: %w", err)
	}
	return nil
}

// JSON renders the outcome as a single JSON line for stdout.
func (o Outcome) JSON() string {
	data, _ := json.Marshal(o)
	return string(data)
}
