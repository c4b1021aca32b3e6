package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestReportLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.jsonl")

	l, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.RunID() == "" {
		t.Fatal("empty run ID")
	}

	if err := l.Log(Event{Profile: "us-east.ovpn", InputLevel: "bits256", OutputLevel: "bits256"}); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if err := l.Log(Event{Profile: "broken.ovpn", Error: "inline block <ca> is never closed"}); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("invalid JSONL line %q: %v", scanner.Text(), err)
		}
		events = append(events, e)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].RunID != l.RunID() || events[1].RunID != l.RunID() {
		t.Error("events do not share the run ID")
	}
	if events[0].Timestamp == "" {
		t.Error("timestamp not stamped")
	}
	if events[1].Error == "" {
		t.Error("error not recorded")
	}
}

func TestReportLogger_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.jsonl")

	for i := 0; i < 2; i++ {
		l, err := New(path)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := l.Log(Event{Profile: "p.ovpn"}); err != nil {
			t.Fatalf("Log: %v", err)
		}
		l.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("got %d lines, want 2 (log must append across runs)", lines)
	}
}
