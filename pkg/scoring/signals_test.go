package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustlane/vetd/pkg/config"
	"github.com/trustlane/vetd/pkg/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func healthyResults() (*models.WhoisResult, *models.DNSResult, *models.WebsiteResult, *models.MXResult, *models.PhoneResult) {
	whois := &models.WhoisResult{Status: models.CheckSuccess, DomainAgeDays: intPtr(800)}
	dns := &models.DNSResult{Status: models.CheckSuccess, Resolves: true, ARecords: []string{"93.184.216.34"}}
	web := &models.WebsiteResult{Status: models.CheckSuccess, Reachable: true, StatusCode: intPtr(200), Title: strPtr("NovaGeo")}
	mx := &models.MXResult{Status: models.CheckSuccess, HasMXRecords: true, MXRecords: []string{"10 mail.novageo.io"}, EmailConfigured: true}
	phone := &models.PhoneResult{Status: models.CheckSuccess, Valid: true, Normalized: strPtr("+15551234567"), Region: strPtr("US")}
	return whois, dns, web, mx, phone
}

func signalByField(t *testing.T, signals []models.Signal, field string) models.Signal {
	t.Helper()
	for _, s := range signals {
		if s.Field == field {
			return s
		}
	}
	t.Fatalf("signal %q not found", field)
	return models.Signal{}
}

func TestGenerateHappyPath(t *testing.T) {
	g := NewGenerator(config.DefaultSignalWeights())

	submitted := models.SubmittedData{
		Name:   "NovaGeo",
		Domain: "novageo.io",
		Email:  strPtr("info@novageo.io"),
		Phone:  strPtr("+15551234567"),
	}
	whois, dns, web, mx, phone := healthyResults()

	signals := g.Generate(submitted, whois, dns, web, mx, phone)

	require.Len(t, signals, 6)
	okCount := 0
	for _, s := range signals {
		if s.Status == models.SignalOK {
			okCount++
			assert.Zero(t, s.Weight, "ok signal %s carries no weight", s.Field)
		}
	}
	assert.Equal(t, 6, okCount)
	assert.Equal(t, 0, RuleScore(signals))

	assert.Equal(t, "800 days", signalByField(t, signals, "domain_age").Value)
	assert.Equal(t, "No privacy protection", signalByField(t, signals, "whois_privacy").Value)
	assert.Equal(t, "Resolves to 1 IP(s)", signalByField(t, signals, "dns_resolution").Value)
	assert.Equal(t, "HTTP 200", signalByField(t, signals, "website_lookup").Value)
	assert.Equal(t, "Domain matches, MX records configured (1 records)", signalByField(t, signals, "email_match").Value)
	assert.Equal(t, "Valid (US)", signalByField(t, signals, "phone_validation").Value)
}

func TestGenerateYoungPrivateDomain(t *testing.T) {
	g := NewGenerator(config.DefaultSignalWeights())

	submitted := models.SubmittedData{
		Name:   "NovaGeo",
		Domain: "novageo.io",
		Email:  strPtr("info@novageo.io"),
		Phone:  strPtr("+15551234567"),
	}
	whois, dns, web, mx, phone := healthyResults()
	whois.DomainAgeDays = intPtr(90)
	whois.PrivacyEnabled = true

	signals := g.Generate(submitted, whois, dns, web, mx, phone)

	age := signalByField(t, signals, "domain_age")
	assert.Equal(t, models.SignalSuspicious, age.Status)
	assert.Equal(t, "90 days", age.Value)
	assert.Equal(t, 20, age.Weight)
	assert.Equal(t, models.SeverityHigh, age.Severity)

	privacy := signalByField(t, signals, "whois_privacy")
	assert.Equal(t, models.SignalSuspicious, privacy.Status)
	assert.Equal(t, "Privacy enabled", privacy.Value)
	assert.Equal(t, 10, privacy.Weight)
	assert.Equal(t, models.SeverityMedium, privacy.Severity)

	assert.Equal(t, 30, RuleScore(signals))
}

func TestGenerateUnreachableSiteMismatchedEmail(t *testing.T) {
	g := NewGenerator(config.DefaultSignalWeights())

	submitted := models.SubmittedData{
		Name:   "NovaGeo",
		Domain: "novageo.io",
		Email:  strPtr("ceo@other.com"),
	}
	whois, dns, _, mx, _ := healthyResults()
	web := &models.WebsiteResult{Status: models.CheckFailed, Error: "context deadline exceeded"}
	mx.HasMXRecords = false
	mx.MXRecords = nil

	signals := g.Generate(submitted, whois, dns, web, mx, nil)

	site := signalByField(t, signals, "website_lookup")
	assert.Equal(t, models.SignalSuspicious, site.Status)
	assert.Equal(t, "Check failed", site.Value)
	assert.Equal(t, 25, site.Weight)

	email := signalByField(t, signals, "email_match")
	assert.Equal(t, models.SignalMismatch, email.Status)
	assert.Equal(t, "Email domain (other.com) != company domain (novageo.io)", email.Value)
	assert.Equal(t, 10, email.Weight)

	assert.Equal(t, models.SignalOK, signalByField(t, signals, "domain_age").Status)
	assert.Equal(t, 35, RuleScore(signals))
}

func TestGenerateAllProbesFailed(t *testing.T) {
	g := NewGenerator(config.DefaultSignalWeights())

	submitted := models.SubmittedData{Name: "NovaGeo", Domain: "novageo.io", Phone: strPtr("+15551234567")}
	failed := "context deadline exceeded"

	signals := g.Generate(submitted,
		&models.WhoisResult{Status: models.CheckFailed, Error: failed},
		&models.DNSResult{Status: models.CheckFailed, Error: failed},
		&models.WebsiteResult{Status: models.CheckFailed, Error: failed},
		&models.MXResult{Status: models.CheckFailed, Error: failed},
		&models.PhoneResult{Status: models.CheckFailed, Error: failed},
	)

	// No whois_privacy signal when whois failed; no mx_records signal when
	// the MX check itself failed and no email was submitted.
	fields := make([]string, 0, len(signals))
	for _, s := range signals {
		fields = append(fields, s.Field)
	}
	assert.Equal(t, []string{"domain_age", "dns_resolution", "website_lookup", "phone_validation"}, fields)

	assert.Equal(t, "Check failed", signalByField(t, signals, "domain_age").Value)
	assert.Equal(t, "Check failed", signalByField(t, signals, "dns_resolution").Value)
	assert.Equal(t, "Check failed", signalByField(t, signals, "website_lookup").Value)
	assert.Equal(t, "Check failed", signalByField(t, signals, "phone_validation").Value)

	// 20 + 15 + 25 + 10
	assert.Equal(t, 70, RuleScore(signals))
}

func TestGenerateEmailBranchVariants(t *testing.T) {
	g := NewGenerator(config.DefaultSignalWeights())
	whois, dns, web, _, _ := healthyResults()

	t.Run("matching email without MX records", func(t *testing.T) {
		submitted := models.SubmittedData{Domain: "novageo.io", Email: strPtr("info@novageo.io")}
		mx := &models.MXResult{Status: models.CheckSuccess}

		signals := g.Generate(submitted, whois, dns, web, mx, nil)
		email := signalByField(t, signals, "email_match")
		assert.Equal(t, "Domain matches but no MX records", email.Value)
		assert.Equal(t, 15, email.Weight)
	})

	t.Run("matching email with failed MX check", func(t *testing.T) {
		submitted := models.SubmittedData{Domain: "novageo.io", Email: strPtr("info@novageo.io")}
		mx := &models.MXResult{Status: models.CheckFailed, Error: "timeout"}

		signals := g.Generate(submitted, whois, dns, web, mx, nil)
		email := signalByField(t, signals, "email_match")
		assert.Equal(t, "Domain matches (MX check failed)", email.Value)
		assert.Equal(t, 15, email.Weight)
	})

	t.Run("email domain compared case-insensitively", func(t *testing.T) {
		submitted := models.SubmittedData{Domain: "novageo.io", Email: strPtr("info@NovaGeo.IO")}
		mx := &models.MXResult{Status: models.CheckSuccess, HasMXRecords: true, MXRecords: []string{"10 mx"}}

		signals := g.Generate(submitted, whois, dns, web, mx, nil)
		assert.Equal(t, models.SignalOK, signalByField(t, signals, "email_match").Status)
	})

	t.Run("no email and no MX records", func(t *testing.T) {
		submitted := models.SubmittedData{Domain: "novageo.io"}
		mx := &models.MXResult{Status: models.CheckSuccess}

		signals := g.Generate(submitted, whois, dns, web, mx, nil)
		mxSignal := signalByField(t, signals, "mx_records")
		assert.Equal(t, "No MX records for domain", mxSignal.Value)
		assert.Equal(t, 15, mxSignal.Weight)
	})
}

func TestGeneratePhoneVariants(t *testing.T) {
	g := NewGenerator(config.DefaultSignalWeights())
	whois, dns, web, mx, _ := healthyResults()
	submitted := models.SubmittedData{Domain: "novageo.io", Phone: strPtr("garbage")}

	t.Run("invalid format", func(t *testing.T) {
		phone := &models.PhoneResult{Status: models.CheckSuccess, Valid: false}
		signals := g.Generate(submitted, whois, dns, web, mx, phone)

		s := signalByField(t, signals, "phone_validation")
		assert.Equal(t, "Invalid phone number format", s.Value)
		assert.Equal(t, 5, s.Weight)
	})

	t.Run("check failed", func(t *testing.T) {
		phone := &models.PhoneResult{Status: models.CheckFailed, Error: "boom"}
		signals := g.Generate(submitted, whois, dns, web, mx, phone)

		s := signalByField(t, signals, "phone_validation")
		assert.Equal(t, "Check failed", s.Value)
		assert.Equal(t, 10, s.Weight)
	})

	t.Run("no phone submitted emits nothing", func(t *testing.T) {
		signals := g.Generate(models.SubmittedData{Domain: "novageo.io"}, whois, dns, web, mx, nil)
		for _, s := range signals {
			assert.NotEqual(t, "phone_validation", s.Field)
		}
	})
}

func TestGenerateUnknownDomainAge(t *testing.T) {
	g := NewGenerator(config.DefaultSignalWeights())
	whois, dns, web, mx, _ := healthyResults()
	whois.DomainAgeDays = nil

	signals := g.Generate(models.SubmittedData{Domain: "novageo.io"}, whois, dns, web, mx, nil)

	age := signalByField(t, signals, "domain_age")
	assert.Equal(t, models.SignalSuspicious, age.Status)
	assert.Equal(t, "Unknown", age.Value)
	assert.Equal(t, 20, age.Weight)
}
