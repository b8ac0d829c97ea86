// Package scoring turns probe results into risk signals and scores.
package scoring

import (
	"fmt"
	"strings"

	"github.com/trustlane/vetd/pkg/config"
	"github.com/trustlane/vetd/pkg/models"
)

// domainAgeThresholdDays is the age below which a domain counts as young.
const domainAgeThresholdDays = 365

// Generator produces the ordered signal list for one verification run.
type Generator struct {
	weights *config.SignalWeights
}

// NewGenerator creates a signal generator with the configured weights.
func NewGenerator(weights *config.SignalWeights) *Generator {
	return &Generator{weights: weights}
}

// Generate compares submitted data against probe results. Signal order is
// fixed: domain_age, whois_privacy, dns_resolution, website_lookup, the
// email/MX branch, phone_validation. Healthy checks still emit ok signals
// so reviewers can see what passed.
func (g *Generator) Generate(
	submitted models.SubmittedData,
	whois *models.WhoisResult,
	dns *models.DNSResult,
	web *models.WebsiteResult,
	mx *models.MXResult,
	phone *models.PhoneResult,
) []models.Signal {
	signals := []models.Signal{}

	signals = append(signals, g.domainAgeSignal(whois))
	if whois.Succeeded() {
		signals = append(signals, g.whoisPrivacySignal(whois))
	}
	signals = append(signals, g.dnsSignal(dns))
	signals = append(signals, g.websiteSignal(web))
	signals = g.appendEmailSignals(signals, submitted, mx)
	signals = g.appendPhoneSignal(signals, submitted, phone)

	return signals
}

func (g *Generator) domainAgeSignal(whois *models.WhoisResult) models.Signal {
	if !whois.Succeeded() {
		return models.Signal{
			Field:    "domain_age",
			Status:   models.SignalSuspicious,
			Value:    "Check failed",
			Weight:   g.weights.DomainAge,
			Severity: models.SeverityHigh,
		}
	}
	if whois.DomainAgeDays == nil {
		return models.Signal{
			Field:    "domain_age",
			Status:   models.SignalSuspicious,
			Value:    "Unknown",
			Weight:   g.weights.DomainAge,
			Severity: models.SeverityHigh,
		}
	}
	age := *whois.DomainAgeDays
	if age < domainAgeThresholdDays {
		return models.Signal{
			Field:    "domain_age",
			Status:   models.SignalSuspicious,
			Value:    fmt.Sprintf("%d days", age),
			Weight:   g.weights.DomainAge,
			Severity: models.SeverityHigh,
		}
	}
	return models.Signal{
		Field:    "domain_age",
		Status:   models.SignalOK,
		Value:    fmt.Sprintf("%d days", age),
		Severity: models.SeverityLow,
	}
}

func (g *Generator) whoisPrivacySignal(whois *models.WhoisResult) models.Signal {
	if whois.PrivacyEnabled {
		return models.Signal{
			Field:    "whois_privacy",
			Status:   models.SignalSuspicious,
			Value:    "Privacy enabled",
			Weight:   g.weights.WhoisPrivacy,
			Severity: models.SeverityMedium,
		}
	}
	return models.Signal{
		Field:    "whois_privacy",
		Status:   models.SignalOK,
		Value:    "No privacy protection",
		Severity: models.SeverityLow,
	}
}

func (g *Generator) dnsSignal(dns *models.DNSResult) models.Signal {
	if !dns.Succeeded() {
		return models.Signal{
			Field:    "dns_resolution",
			Status:   models.SignalSuspicious,
			Value:    "Check failed",
			Weight:   g.weights.DNSResolution,
			Severity: models.SeverityHigh,
		}
	}
	if !dns.Resolves {
		return models.Signal{
			Field:    "dns_resolution",
			Status:   models.SignalSuspicious,
			Value:    "Domain does not resolve",
			Weight:   g.weights.DNSResolution,
			Severity: models.SeverityHigh,
		}
	}
	return models.Signal{
		Field:    "dns_resolution",
		Status:   models.SignalOK,
		Value:    fmt.Sprintf("Resolves to %d IP(s)", len(dns.ARecords)),
		Severity: models.SeverityLow,
	}
}

func (g *Generator) websiteSignal(web *models.WebsiteResult) models.Signal {
	if !web.Succeeded() {
		return models.Signal{
			Field:    "website_lookup",
			Status:   models.SignalSuspicious,
			Value:    "Check failed",
			Weight:   g.weights.WebsiteUnreachable,
			Severity: models.SeverityHigh,
		}
	}
	code := 0
	if web.StatusCode != nil {
		code = *web.StatusCode
	}
	if !web.Reachable {
		return models.Signal{
			Field:    "website_lookup",
			Status:   models.SignalSuspicious,
			Value:    fmt.Sprintf("Unreachable (HTTP %d)", code),
			Weight:   g.weights.WebsiteUnreachable,
			Severity: models.SeverityHigh,
		}
	}
	return models.Signal{
		Field:    "website_lookup",
		Status:   models.SignalOK,
		Value:    fmt.Sprintf("HTTP %d", code),
		Severity: models.SeverityLow,
	}
}

// appendEmailSignals emits email_match when an email was submitted, or
// mx_records when the domain itself lacks mail exchangers.
func (g *Generator) appendEmailSignals(signals []models.Signal, submitted models.SubmittedData, mx *models.MXResult) []models.Signal {
	email := ""
	if submitted.Email != nil {
		email = *submitted.Email
	}

	if email != "" && strings.Contains(email, "@") {
		parts := strings.Split(email, "@")
		emailDomain := parts[len(parts)-1]

		if !strings.EqualFold(emailDomain, submitted.Domain) {
			return append(signals, models.Signal{
				Field:    "email_match",
				Status:   models.SignalMismatch,
				Value:    fmt.Sprintf("Email domain (%s) != company domain (%s)", emailDomain, submitted.Domain),
				Weight:   g.weights.EmailMismatch,
				Severity: models.SeverityMedium,
			})
		}

		if mx.Succeeded() {
			if mx.HasMXRecords {
				return append(signals, models.Signal{
					Field:    "email_match",
					Status:   models.SignalOK,
					Value:    fmt.Sprintf("Domain matches, MX records configured (%d records)", len(mx.MXRecords)),
					Severity: models.SeverityLow,
				})
			}
			return append(signals, models.Signal{
				Field:    "email_match",
				Status:   models.SignalSuspicious,
				Value:    "Domain matches but no MX records",
				Weight:   g.weights.MXMissing,
				Severity: models.SeverityMedium,
			})
		}
		return append(signals, models.Signal{
			Field:    "email_match",
			Status:   models.SignalSuspicious,
			Value:    "Domain matches (MX check failed)",
			Weight:   g.weights.MXMissing,
			Severity: models.SeverityMedium,
		})
	}

	// No email submitted; flag only a confirmed absence of MX records.
	if mx.Succeeded() && !mx.HasMXRecords {
		return append(signals, models.Signal{
			Field:    "mx_records",
			Status:   models.SignalSuspicious,
			Value:    "No MX records for domain",
			Weight:   g.weights.MXMissing,
			Severity: models.SeverityMedium,
		})
	}
	return signals
}

func (g *Generator) appendPhoneSignal(signals []models.Signal, submitted models.SubmittedData, phone *models.PhoneResult) []models.Signal {
	if submitted.Phone == nil || *submitted.Phone == "" {
		return signals
	}

	if phone.Succeeded() {
		if phone.Valid {
			region := ""
			if phone.Region != nil {
				region = *phone.Region
			}
			return append(signals, models.Signal{
				Field:    "phone_validation",
				Status:   models.SignalOK,
				Value:    fmt.Sprintf("Valid (%s)", region),
				Severity: models.SeverityLow,
			})
		}
		return append(signals, models.Signal{
			Field:    "phone_validation",
			Status:   models.SignalSuspicious,
			Value:    "Invalid phone number format",
			Weight:   g.weights.PhoneInvalid,
			Severity: models.SeverityMedium,
		})
	}
	return append(signals, models.Signal{
		Field:    "phone_validation",
		Status:   models.SignalSuspicious,
		Value:    "Check failed",
		Weight:   g.weights.PhoneFailed,
		Severity: models.SeverityMedium,
	})
}
