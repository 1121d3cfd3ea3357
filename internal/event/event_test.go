package event

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	content := `{
		"action": "labeled",
		"issue": {
			"number": 42,
			"title": "[Add] Cafe",
			"body": "### Title\nCafe",
			"labels": [{"name": "marker-add"}, {"name": "triage"}]
		}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	p, err := LoadPayload(path)
	if err != nil {
		t.Fatalf("LoadPayload() error = %v", err)
	}
	if p.Issue.Number != 42 {
		t.Errorf("number = %d, want 42", p.Issue.Number)
	}
	if p.Issue.Body != "### Title\nCafe" {
		t.Errorf("body = %q, want form body", p.Issue.Body)
	}

	labels := p.LabelNames()
	if len(labels) != 2 || labels[0] != "marker-add" || labels[1] != "triage" {
		t.Errorf("LabelNames() = %v, want [marker-add triage]", labels)
	}
}

func TestLoadPayloadErrors(t *testing.T) {
	if _, err := LoadPayload(""); err == nil {
		t.Error("LoadPayload(\"\") error = nil, want error")
	}
	if _, err := LoadPayload(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadPayload(absent) error = nil, want error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := LoadPayload(path); err == nil {
		t.Error("LoadPayload(malformed) error = nil, want error")
	}
}

func TestOutcomeWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outcome.json")
	outcome := Success("added marker %q", "m-1")

	if err := outcome.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read outcome file: %v", err)
	}
	var got Outcome
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("outcome file is not valid JSON: %v", err)
	}
	if !got.OK || got.Message != `added marker "m-1"` {
		t.Errorf("outcome = %+v, want ok with message", got)
	}
}

func TestOutcomeJSON(t *testing.T) {
	got := Failure("no marker with id %q", "m-9").JSON()
	want := `{"ok":false,"message":"no marker with id \"m-9\""}`
	if got != want {
		t.Errorf("JSON() = %s, want %s", got, want)
	}
}
