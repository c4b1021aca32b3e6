package logger

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one line in the hardening report log: the outcome of processing
// a single profile.
type Event struct {
	Timestamp   string `json:"timestamp"`
	RunID       string `json:"run_id"`
	Profile     string `json:"profile"`
	InputLevel  string `json:"input_level,omitempty"`
	OutputLevel string `json:"output_level,omitempty"`
	Provider    string `json:"provider,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ReportLogger appends JSONL events to the report log. Events from one
// invocation share a run ID so a batch can be correlated afterwards.
type ReportLogger struct {
	file  *os.File
	runID string
	mu    sync.Mutex
}

func New(path string) (*ReportLogger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	return &ReportLogger{file: file, runID: uuid.NewString()}, nil
}

func (l *ReportLogger) RunID() string { return l.runID }

func (l *ReportLogger) Log(event Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	event.RunID = l.runID
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

func (l *ReportLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
