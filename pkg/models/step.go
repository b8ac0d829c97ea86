package models

import "fmt"

// Step identifies one pipeline stage. The set is closed and the values are
// part of the external job-message and analysis contracts.
type Step string

const (
	StepWhois         Step = "whois"
	StepDNS           Step = "dns"
	StepMXValidation  Step = "mx_validation"
	StepWebsiteScrape Step = "website_scrape"
	StepPhone         Step = "phone"
	StepLLMProcessing Step = "llm_processing"
)

// StepComplete is the current_step marker for a finished run. It is not a
// stage tag and never appears in failed_checks.
const StepComplete = "complete"

// probeOrder is the fixed execution order of the five probe stages.
var probeOrder = [...]Step{StepWhois, StepDNS, StepMXValidation, StepWebsiteScrape, StepPhone}

// ProbeSteps returns the probe stages in execution order.
func ProbeSteps() []Step {
	steps := make([]Step, len(probeOrder))
	copy(steps, probeOrder[:])
	return steps
}

// IsValid checks if the step is a known stage tag.
func (s Step) IsValid() bool {
	switch s {
	case StepWhois, StepDNS, StepMXValidation, StepWebsiteScrape, StepPhone, StepLLMProcessing:
		return true
	default:
		return false
	}
}

// Next returns the step the company row advances to once this probe stage
// finished. The last probe advances to llm_processing; the LLM stage itself
// has no successor (save marks the run complete).
func (s Step) Next() Step {
	switch s {
	case StepWhois:
		return StepDNS
	case StepDNS:
		return StepMXValidation
	case StepMXValidation:
		return StepWebsiteScrape
	case StepWebsiteScrape:
		return StepPhone
	default:
		return StepLLMProcessing
	}
}

// DataKey returns the discovered_data key this stage writes. The LLM stage
// writes no discovered entry.
func (s Step) DataKey() string {
	switch s {
	case StepWhois:
		return "whois"
	case StepDNS:
		return "dns"
	case StepMXValidation:
		return "mx"
	case StepWebsiteScrape:
		return "website"
	case StepPhone:
		return "phone"
	default:
		return ""
	}
}

// ParseStep validates a raw stage tag at a boundary.
func ParseStep(raw string) (Step, error) {
	s := Step(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown stage tag %q", raw)
	}
	return s, nil
}

// ParseSteps validates a list of raw stage tags, preserving order.
func ParseSteps(raw []string) ([]Step, error) {
	steps := make([]Step, 0, len(raw))
	for _, r := range raw {
		s, err := ParseStep(r)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// progressOrder is the step sequence used for progress derivation. Phone
// shares the website_scrape slot (see progressAliases), so the denominator
// is five.
var progressOrder = [...]string{
	string(StepWhois),
	string(StepDNS),
	string(StepMXValidation),
	string(StepWebsiteScrape),
	string(StepLLMProcessing),
}

var progressAliases = map[string]string{
	string(StepPhone): string(StepWebsiteScrape),
	StepComplete:      string(StepLLMProcessing),
}

// ProgressPercentage derives the observable run progress. The step index
// counts completed stages because the worker advances current_step after
// each stage finishes. Never reports 100 before the run is complete.
func ProgressPercentage(status AnalysisStatus, currentStep *string) int {
	if status == AnalysisStatusComplete {
		return 100
	}

	step := ""
	if currentStep != nil {
		step = *currentStep
	}
	if alias, ok := progressAliases[step]; ok {
		step = alias
	}

	index := -1
	for i, s := range progressOrder {
		if s == step {
			index = i
			break
		}
	}
	if index < 0 {
		return 0
	}

	progress := index * 100 / len(progressOrder)
	if progress > 99 {
		progress = 99
	}
	if progress < 0 {
		progress = 0
	}
	return progress
}
