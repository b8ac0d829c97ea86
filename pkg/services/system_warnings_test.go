package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemWarningsService_AddAndGet(t *testing.T) {
	svc := NewSystemWarningsService()

	id := svc.AddWarning(WarningCategoryLLM, "LLM risk adjustment failed", "connection refused", "llm")
	assert.NotEmpty(t, id)

	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningCategoryLLM, warnings[0].Category)
	assert.Equal(t, "LLM risk adjustment failed", warnings[0].Message)
	assert.Equal(t, "connection refused", warnings[0].Details)
	assert.Equal(t, "llm", warnings[0].Source)
	assert.False(t, warnings[0].CreatedAt.IsZero())
}

func TestSystemWarningsService_ClearBySource(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryLLM, "Probe degraded", "", "whois")
	svc.AddWarning(WarningCategoryLLM, "Probe degraded", "", "dns")

	assert.Len(t, svc.GetWarnings(), 2)

	cleared := svc.ClearBySource(WarningCategoryLLM, "whois")
	assert.True(t, cleared)
	assert.Len(t, svc.GetWarnings(), 1)
	assert.Equal(t, "dns", svc.GetWarnings()[0].Source)

	// Clear non-existent
	cleared = svc.ClearBySource(WarningCategoryLLM, "nonexistent")
	assert.False(t, cleared)
}

func TestSystemWarningsService_ReplacesDuplicate(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryLLM, "First error", "err1", "llm")
	svc.AddWarning(WarningCategoryLLM, "Second error", "err2", "llm")

	// Should have replaced the first warning, not added a second
	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Second error", warnings[0].Message)
	assert.Equal(t, "err2", warnings[0].Details)
}

func TestSystemWarningsService_Empty(t *testing.T) {
	svc := NewSystemWarningsService()
	assert.Empty(t, svc.GetWarnings())
}

func TestSystemWarningsService_ThreadSafety(t *testing.T) {
	svc := NewSystemWarningsService()
	var wg sync.WaitGroup

	// Concurrent adds
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.AddWarning("test", "msg", "", "")
		}()
	}

	// Concurrent reads
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.GetWarnings()
		}()
	}

	wg.Wait()
	assert.NotNil(t, svc.GetWarnings())
}
