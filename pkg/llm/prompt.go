package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trustlane/vetd/pkg/models"
)

// systemPrompt pins the model to its JSON-only contract.
const systemPrompt = "You are a risk assessment AI for enterprise verification. Always respond with valid JSON only."

// buildPrompt renders the user message: submitted data with N/A fallbacks,
// discovered data as indented JSON, one line per signal, the rule score,
// and the exact three-key output contract.
func buildPrompt(submitted models.SubmittedData, discovered models.DiscoveredData, signals []models.Signal, ruleScore int) string {
	signalLines := make([]string, 0, len(signals))
	for _, s := range signals {
		signalLines = append(signalLines, fmt.Sprintf(
			"- %s: %s (%s, weight: %d, severity: %s)",
			s.Field, s.Status, s.Value, s.Weight, s.Severity,
		))
	}

	discoveredJSON, err := json.MarshalIndent(discovered, "", "  ")
	if err != nil {
		discoveredJSON = []byte("{}")
	}

	var b strings.Builder
	b.WriteString("You are a risk assessment AI for enterprise verification.\n\n")
	b.WriteString("Company Submitted Data:\n")
	fmt.Fprintf(&b, "- Name: %s\n", orNA(submitted.Name))
	fmt.Fprintf(&b, "- Domain: %s\n", orNA(submitted.Domain))
	fmt.Fprintf(&b, "- Email: %s\n", orNAPtr(submitted.Email))
	fmt.Fprintf(&b, "- Phone: %s\n", orNAPtr(submitted.Phone))
	fmt.Fprintf(&b, "- Website URL: %s\n", orNAPtr(submitted.WebsiteURL))
	b.WriteString("\nDiscovered Data:\n")
	b.Write(discoveredJSON)
	b.WriteString("\n\nRule-Based Signals:\n")
	b.WriteString(strings.Join(signalLines, "\n"))
	fmt.Fprintf(&b, "\n\nCurrent Rule Score: %d/100\n\n", ruleScore)
	b.WriteString(`Task: Provide a risk assessment adjustment based on qualitative analysis of the company's verification data.

Consider:
- Overall consistency of submitted vs discovered data
- Patterns that might indicate fraud or legitimate business
- Contextual factors not captured by rules
- Professional judgment on risk level

Output your response as a JSON object with exactly these fields:
{
  "llm_summary": "2-3 sentence executive summary of the risk assessment",
  "llm_details": "Detailed paragraph explaining your reasoning, notable patterns, and any concerns or positive indicators",
  "llm_score_adjustment": <integer between -20 and +20>
}

The llm_score_adjustment should modify the rule_score based on qualitative factors:
- Negative values (-20 to -1) for lower risk indicators
- Positive values (+1 to +20) for higher risk indicators
- 0 if no adjustment needed

Respond with ONLY the JSON object, no additional text.`)

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orNAPtr(p *string) string {
	if p == nil || *p == "" {
		return "N/A"
	}
	return *p
}
