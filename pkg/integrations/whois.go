// Package integrations contains the stateless probe clients used by the
// verification pipeline. Every client translates upstream failures into a
// tagged result instead of returning an error; probe outcomes are data.
package integrations

import (
	"context"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"

	"github.com/trustlane/vetd/pkg/models"
)

// privacyTokens mark a registrar or nameserver as a privacy service.
var privacyTokens = []string{"privacy", "whoisguard", "domainsbyproxy", "namecheap"}

// WhoisClient looks up domain registration data.
type WhoisClient struct {
	timeout time.Duration
}

// NewWhoisClient creates a WHOIS client with a per-lookup timeout.
func NewWhoisClient(timeout time.Duration) *WhoisClient {
	return &WhoisClient{timeout: timeout}
}

// Check performs the WHOIS lookup for a domain.
func (c *WhoisClient) Check(ctx context.Context, domain string) *models.WhoisResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	type lookup struct {
		raw string
		err error
	}
	ch := make(chan lookup, 1)

	go func() {
		client := whois.NewClient()
		client.SetTimeout(c.timeout)
		raw, err := client.Whois(domain)
		ch <- lookup{raw: raw, err: err}
	}()

	var raw string
	select {
	case <-ctx.Done():
		return &models.WhoisResult{Status: models.CheckFailed, Error: "WHOIS lookup timed out"}
	case res := <-ch:
		if res.err != nil {
			return &models.WhoisResult{Status: models.CheckFailed, Error: res.err.Error()}
		}
		raw = res.raw
	}

	info, err := whoisparser.Parse(raw)
	if err != nil {
		return &models.WhoisResult{Status: models.CheckFailed, Error: err.Error()}
	}

	result := &models.WhoisResult{Status: models.CheckSuccess}

	var registrar string
	if info.Registrar != nil && info.Registrar.Name != "" {
		registrar = info.Registrar.Name
		result.Registrar = &registrar
	}

	var nameservers []string
	if info.Domain != nil {
		nameservers = info.Domain.NameServers
	}
	result.PrivacyEnabled = detectPrivacy(nameservers, registrar)

	if created := earliestCreationDate(info); created != nil {
		result.CreationDate = created
		age := int(time.Now().UTC().Sub(created.UTC()).Hours() / 24)
		result.DomainAgeDays = &age
	}

	return result
}

// detectPrivacy reports whether any nameserver or the registrar name
// contains a known privacy-service token. Nameservers are checked first.
func detectPrivacy(nameservers []string, registrar string) bool {
	for _, ns := range nameservers {
		lower := strings.ToLower(ns)
		for _, token := range privacyTokens {
			if strings.Contains(lower, token) {
				return true
			}
		}
	}
	lower := strings.ToLower(registrar)
	for _, token := range privacyTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// creationDateLayouts cover the date formats registries commonly emit when
// the parser could not produce a typed timestamp itself.
var creationDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
}

// earliestCreationDate extracts the registration date. Registries sometimes
// report several creation events; the earliest one wins.
func earliestCreationDate(info whoisparser.WhoisInfo) *time.Time {
	if info.Domain == nil {
		return nil
	}

	var earliest *time.Time
	consider := func(t time.Time) {
		t = t.UTC()
		if earliest == nil || t.Before(*earliest) {
			earliest = &t
		}
	}

	if info.Domain.CreatedDateInTime != nil {
		consider(*info.Domain.CreatedDateInTime)
	}
	if raw := strings.TrimSpace(info.Domain.CreatedDate); raw != "" {
		for _, layout := range creationDateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				consider(t)
				break
			}
		}
	}

	return earliest
}
