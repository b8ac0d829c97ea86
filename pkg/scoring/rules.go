package scoring

import "github.com/trustlane/vetd/pkg/models"

// RuleScore sums signal weights, clamped to 0..100.
func RuleScore(signals []models.Signal) int {
	total := 0
	for _, s := range signals {
		total += s.Weight
	}
	return clamp(total)
}

// HybridScore combines the rule score with the LLM adjustment,
// clamped to 0..100.
func HybridScore(ruleScore, adjustment int) int {
	return clamp(ruleScore + adjustment)
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
