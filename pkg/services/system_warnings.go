package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Warning category constants for categorizing system warnings.
const (
	WarningCategoryLLM = "llm_adjustment" // LLM risk adjustment failing at runtime
)

// SystemWarning represents a non-fatal system issue.
type SystemWarning struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Source    string    `json:"source,omitempty"` // The failing component, e.g. a probe tag
	CreatedAt time.Time `json:"created_at"`
}

// SystemWarningsService manages in-memory system warnings surfaced on the
// health endpoint. Thread-safe. Not persisted; warnings are transient and
// reset on restart.
type SystemWarningsService struct {
	mu       sync.RWMutex
	warnings map[string]*SystemWarning // warningID → warning
}

// NewSystemWarningsService creates a new SystemWarningsService.
func NewSystemWarningsService() *SystemWarningsService {
	return &SystemWarningsService{
		warnings: make(map[string]*SystemWarning),
	}
}

// AddWarning adds a warning and returns its ID.
// If a warning with the same category+source already exists, it is replaced.
func (s *SystemWarningsService) AddWarning(category, message, details, source string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Replace existing warning with same category+source to avoid duplicates
	for id, w := range s.warnings {
		if w.Category == category && w.Source == source {
			delete(s.warnings, id)
			break
		}
	}

	id := uuid.New().String()
	s.warnings[id] = &SystemWarning{
		ID:        id,
		Category:  category,
		Message:   message,
		Details:   details,
		Source:    source,
		CreatedAt: time.Now(),
	}
	return id
}

// GetWarnings returns all active warnings as value copies.
// Callers may safely read or compare the returned structs without holding locks.
func (s *SystemWarningsService) GetWarnings() []*SystemWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*SystemWarning, 0, len(s.warnings))
	for _, w := range s.warnings {
		cp := *w
		result = append(result, &cp)
	}
	return result
}

// ClearBySource removes a warning matching category + source. Used to clear
// a warning when the component recovers. Returns true if a warning was
// removed.
func (s *SystemWarningsService) ClearBySource(category, source string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, w := range s.warnings {
		if w.Category == category && w.Source == source {
			delete(s.warnings, id)
			return true
		}
	}
	return false
}
