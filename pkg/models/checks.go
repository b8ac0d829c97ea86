package models

import (
	"encoding/json"
	"time"
)

// CheckStatus tags an integration result as success or failed.
type CheckStatus string

const (
	CheckSuccess CheckStatus = "success"
	CheckFailed  CheckStatus = "failed"
)

// WhoisResult is the outcome of the WHOIS probe.
type WhoisResult struct {
	Status         CheckStatus
	Error          string
	DomainAgeDays  *int
	Registrar      *string
	PrivacyEnabled bool
	CreationDate   *time.Time
}

// Succeeded reports whether the probe produced usable data.
func (r *WhoisResult) Succeeded() bool { return r != nil && r.Status == CheckSuccess }

// Payload renders the discovered_data entry for a successful lookup.
func (r *WhoisResult) Payload() map[string]any {
	var created any
	if r.CreationDate != nil {
		created = r.CreationDate.UTC().Format(time.RFC3339)
	}
	return map[string]any{
		"domain_age_days": intPtrValue(r.DomainAgeDays),
		"registrar":       strPtrValue(r.Registrar),
		"privacy_enabled": r.PrivacyEnabled,
		"creation_date":   created,
	}
}

// DNSResult is the outcome of the DNS probe.
type DNSResult struct {
	Status      CheckStatus
	Error       string
	Resolves    bool
	Nameservers []string
	ARecords    []string
}

func (r *DNSResult) Succeeded() bool { return r != nil && r.Status == CheckSuccess }

// Payload renders the discovered_data entry for a successful resolution.
func (r *DNSResult) Payload() map[string]any {
	return map[string]any{
		"resolves":    r.Resolves,
		"nameservers": r.Nameservers,
		"a_records":   r.ARecords,
	}
}

// MXResult is the outcome of the MX probe.
type MXResult struct {
	Status          CheckStatus
	Error           string
	HasMXRecords    bool
	MXRecords       []string
	EmailConfigured bool
}

func (r *MXResult) Succeeded() bool { return r != nil && r.Status == CheckSuccess }

// Payload renders the discovered_data entry for a successful MX check.
func (r *MXResult) Payload() map[string]any {
	return map[string]any{
		"has_mx_records":   r.HasMXRecords,
		"mx_records":       r.MXRecords,
		"email_configured": r.EmailConfigured,
	}
}

// WebsiteResult is the outcome of the homepage probe.
type WebsiteResult struct {
	Status        CheckStatus
	Error         string
	Reachable     bool
	StatusCode    *int
	Title         *string
	Description   *string
	ContentLength int
}

func (r *WebsiteResult) Succeeded() bool { return r != nil && r.Status == CheckSuccess }

// Payload renders the discovered_data entry for a successful fetch.
func (r *WebsiteResult) Payload() map[string]any {
	return map[string]any{
		"reachable":      r.Reachable,
		"status_code":    intPtrValue(r.StatusCode),
		"title":          strPtrValue(r.Title),
		"description":    strPtrValue(r.Description),
		"content_length": r.ContentLength,
	}
}

// PhoneResult is the outcome of the phone-number probe.
type PhoneResult struct {
	Status     CheckStatus
	Error      string
	Normalized *string
	Valid      bool
	Region     *string
}

func (r *PhoneResult) Succeeded() bool { return r != nil && r.Status == CheckSuccess }

// Payload renders the discovered_data entry for a successful parse.
func (r *PhoneResult) Payload() map[string]any {
	return map[string]any{
		"normalized": strPtrValue(r.Normalized),
		"valid":      r.Valid,
		"region":     strPtrValue(r.Region),
	}
}

// DiscoveredData holds per-stage probe output keyed by the stage data key.
// A stage entry is either the success payload or {"error": message}.
type DiscoveredData map[string]map[string]any

// Stage returns the entry for the given data key, nil when absent.
func (d DiscoveredData) Stage(key string) map[string]any {
	if d == nil {
		return nil
	}
	return d[key]
}

// SetSuccess replaces the stage entry with a success payload.
func (d DiscoveredData) SetSuccess(key string, payload map[string]any) {
	d[key] = payload
}

// SetError replaces the stage entry with a failure marker.
func (d DiscoveredData) SetError(key, msg string) {
	d[key] = map[string]any{"error": msg}
}

// Clone deep-copies the discovered data via a JSON round trip, so a
// selective retry never mutates the previous analysis's record.
func (d DiscoveredData) Clone() DiscoveredData {
	if len(d) == 0 {
		return DiscoveredData{}
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return DiscoveredData{}
	}
	out := DiscoveredData{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return DiscoveredData{}
	}
	return out
}

// stageError extracts the error marker from a stage entry, if present.
func stageError(data map[string]any) (string, bool) {
	raw, ok := data["error"]
	if !ok {
		return "", false
	}
	msg, _ := raw.(string)
	return msg, true
}

// HydrateWhois rebuilds a typed result from seeded discovered data.
// Returns nil when the stage has no entry.
func HydrateWhois(d DiscoveredData) *WhoisResult {
	data := d.Stage(StepWhois.DataKey())
	if len(data) == 0 {
		return nil
	}
	if msg, ok := stageError(data); ok {
		return &WhoisResult{Status: CheckFailed, Error: msg}
	}
	return &WhoisResult{
		Status:         CheckSuccess,
		DomainAgeDays:  anyToIntPtr(data["domain_age_days"]),
		Registrar:      anyToStringPtr(data["registrar"]),
		PrivacyEnabled: anyToBool(data["privacy_enabled"]),
		CreationDate:   anyToTimePtr(data["creation_date"]),
	}
}

// HydrateDNS rebuilds a typed result from seeded discovered data.
func HydrateDNS(d DiscoveredData) *DNSResult {
	data := d.Stage(StepDNS.DataKey())
	if len(data) == 0 {
		return nil
	}
	if msg, ok := stageError(data); ok {
		return &DNSResult{Status: CheckFailed, Error: msg}
	}
	return &DNSResult{
		Status:      CheckSuccess,
		Resolves:    anyToBool(data["resolves"]),
		Nameservers: anyToStringSlice(data["nameservers"]),
		ARecords:    anyToStringSlice(data["a_records"]),
	}
}

// HydrateMX rebuilds a typed result from seeded discovered data.
func HydrateMX(d DiscoveredData) *MXResult {
	data := d.Stage(StepMXValidation.DataKey())
	if len(data) == 0 {
		return nil
	}
	if msg, ok := stageError(data); ok {
		return &MXResult{Status: CheckFailed, Error: msg}
	}
	return &MXResult{
		Status:          CheckSuccess,
		HasMXRecords:    anyToBool(data["has_mx_records"]),
		MXRecords:       anyToStringSlice(data["mx_records"]),
		EmailConfigured: anyToBool(data["email_configured"]),
	}
}

// HydrateWebsite rebuilds a typed result from seeded discovered data.
func HydrateWebsite(d DiscoveredData) *WebsiteResult {
	data := d.Stage(StepWebsiteScrape.DataKey())
	if len(data) == 0 {
		return nil
	}
	if msg, ok := stageError(data); ok {
		return &WebsiteResult{Status: CheckFailed, Error: msg}
	}
	return &WebsiteResult{
		Status:        CheckSuccess,
		Reachable:     anyToBool(data["reachable"]),
		StatusCode:    anyToIntPtr(data["status_code"]),
		Title:         anyToStringPtr(data["title"]),
		Description:   anyToStringPtr(data["description"]),
		ContentLength: anyToInt(data["content_length"]),
	}
}

// HydratePhone rebuilds a typed result from seeded discovered data.
func HydratePhone(d DiscoveredData) *PhoneResult {
	data := d.Stage(StepPhone.DataKey())
	if len(data) == 0 {
		return nil
	}
	if msg, ok := stageError(data); ok {
		return &PhoneResult{Status: CheckFailed, Error: msg}
	}
	return &PhoneResult{
		Status:     CheckSuccess,
		Normalized: anyToStringPtr(data["normalized"]),
		Valid:      anyToBool(data["valid"]),
		Region:     anyToStringPtr(data["region"]),
	}
}

// JSON decoding of seeded data yields float64 for numbers and nil for null;
// the converters below normalize both the freshly-built and round-tripped
// representations.

func intPtrValue(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func strPtrValue(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func anyToBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func anyToInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	}
	return 0
}

func anyToIntPtr(v any) *int {
	if v == nil {
		return nil
	}
	switch v.(type) {
	case int, int64, float64, json.Number:
		n := anyToInt(v)
		return &n
	}
	return nil
}

func anyToStringPtr(v any) *string {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func anyToStringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		out := make([]string, len(vals))
		copy(out, vals)
		return out
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func anyToTimePtr(v any) *time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
