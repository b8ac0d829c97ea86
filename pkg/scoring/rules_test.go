package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trustlane/vetd/pkg/models"
)

func TestRuleScoreClamps(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
		want    int
	}{
		{name: "empty", weights: nil, want: 0},
		{name: "simple sum", weights: []int{20, 10}, want: 30},
		{name: "clamped at 100", weights: []int{25, 25, 25, 25, 25}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := make([]models.Signal, len(tt.weights))
			for i, w := range tt.weights {
				signals[i] = models.Signal{Weight: w}
			}
			assert.Equal(t, tt.want, RuleScore(signals))
		})
	}
}

func TestHybridScore(t *testing.T) {
	tests := []struct {
		name       string
		rule       int
		adjustment int
		want       int
	}{
		{name: "no adjustment", rule: 30, adjustment: 0, want: 30},
		{name: "raise across threshold", rule: 65, adjustment: 10, want: 75},
		{name: "lowered", rule: 40, adjustment: -20, want: 20},
		{name: "clamped low", rule: 5, adjustment: -20, want: 0},
		{name: "clamped high", rule: 95, adjustment: 20, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HybridScore(tt.rule, tt.adjustment))
		})
	}
}
