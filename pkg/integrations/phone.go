package integrations

import (
	"context"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/trustlane/vetd/pkg/models"
)

// PhoneClient normalizes and validates submitted phone numbers.
// No network I/O is involved; the check is pure parsing.
type PhoneClient struct {
	defaultRegion string
}

// NewPhoneClient creates a phone client with the region hint used for
// numbers lacking a country prefix.
func NewPhoneClient(defaultRegion string) *PhoneClient {
	return &PhoneClient{defaultRegion: defaultRegion}
}

// Check parses the number. A parseable-but-invalid number is a successful
// check reporting valid=false; only unparseable input fails the probe.
func (c *PhoneClient) Check(_ context.Context, raw string) *models.PhoneResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return &models.PhoneResult{Status: models.CheckFailed, Error: "Empty phone number"}
	}

	num, err := phonenumbers.Parse(trimmed, c.defaultRegion)
	if err != nil {
		return &models.PhoneResult{Status: models.CheckFailed, Error: err.Error()}
	}

	result := &models.PhoneResult{Status: models.CheckSuccess}
	if region := phonenumbers.GetRegionCodeForNumber(num); region != "" {
		result.Region = &region
	}

	if phonenumbers.IsValidNumber(num) {
		result.Valid = true
		normalized := phonenumbers.Format(num, phonenumbers.E164)
		result.Normalized = &normalized
	}

	return result
}
