package config

import "fmt"

// SignalWeights holds the per-signal risk weights used by the rule engine.
// Each weight is the score contribution of the corresponding non-ok signal.
type SignalWeights struct {
	DomainAge          int `yaml:"domain_age"`
	WhoisPrivacy       int `yaml:"whois_privacy"`
	DNSResolution      int `yaml:"dns_resolution"`
	WebsiteUnreachable int `yaml:"website_unreachable"`
	EmailMismatch      int `yaml:"email_mismatch"`
	MXMissing          int `yaml:"mx_missing"`
	PhoneInvalid       int `yaml:"phone_invalid"`
	PhoneFailed        int `yaml:"phone_failed"`
}

// DefaultSignalWeights returns the built-in weight defaults.
func DefaultSignalWeights() *SignalWeights {
	return &SignalWeights{
		DomainAge:          20,
		WhoisPrivacy:       10,
		DNSResolution:      15,
		WebsiteUnreachable: 25,
		EmailMismatch:      10,
		MXMissing:          15,
		PhoneInvalid:       5,
		PhoneFailed:        10,
	}
}

// Validate checks that all weights are non-negative.
func (w *SignalWeights) Validate() error {
	for name, v := range map[string]int{
		"weights.domain_age":          w.DomainAge,
		"weights.whois_privacy":       w.WhoisPrivacy,
		"weights.dns_resolution":      w.DNSResolution,
		"weights.website_unreachable": w.WebsiteUnreachable,
		"weights.email_mismatch":      w.EmailMismatch,
		"weights.mx_missing":          w.MXMissing,
		"weights.phone_invalid":       w.PhoneInvalid,
		"weights.phone_failed":        w.PhoneFailed,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalidValue, name, v)
		}
	}
	return nil
}
