package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// maxAnswers bounds the history file; older answers are dropped first.
const maxAnswers = 200

// Answer is one confirmed prompt result.
type Answer struct {
	Kind      string    `json:"kind"`   // select, checkbox or confirm
	Prompt    string    `json:"prompt"` // header or title the user saw
	Values    []string  `json:"values"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryStore keeps confirmed answers in a local JSON file.
type HistoryStore struct {
	mu   sync.Mutex
	path string
}

// NewHistoryStore creates a history store backed by the file at path.
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// Path returns the backing file.
func (s *HistoryStore) Path() string {
	return s.path
}

// Append records an answer.
func (s *HistoryStore) Append(a Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers, err := s.readUnsafe()
	if err != nil {
		answers = nil // Start fresh if file is corrupted
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	answers = append(answers, a)
	if len(answers) > maxAnswers {
		answers = answers[len(answers)-maxAnswers:]
	}

	return s.writeUnsafe(answers)
}

// List returns all answers, oldest first.
func (s *HistoryStore) List() ([]Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readUnsafe()
}

// Recent returns the last n answers. n <= 0 yields none.
func (s *HistoryStore) Recent(n int) ([]Answer, error) {
	if n <= 0 {
		return []Answer{}, nil
	}
	answers, err := s.List()
	if err != nil {
		return nil, err
	}

	if len(answers) <= n {
		return answers, nil
	}
	return answers[len(answers)-n:], nil
}

// Last returns the most recent answer for the given kind and prompt,
// or nil when there is none.
func (s *HistoryStore) Last(kind, prompt string) (*Answer, error) {
	answers, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := len(answers) - 1; i >= 0; i-- {
		if answers[i].Kind == kind && answers[i].Prompt == prompt {
			a := answers[i]
			return &a, nil
		}
	}
	return nil, nil
}

// Clear removes all answers.
func (s *HistoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeUnsafe(nil)
}

func (s *HistoryStore) readUnsafe() ([]Answer, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var answers []Answer
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	return answers, nil
}

func (s *HistoryStore) writeUnsafe(answers []Answer) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	return os.WriteFile(s.path, data, 0o644)
}

// IndexOf returns the position of value in options, or -1.
func IndexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return -1
}
