package integrations

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/trustlane/vetd/pkg/models"
)

// MXClient checks mail-exchanger configuration for a domain.
type MXClient struct {
	timeout  time.Duration
	resolver string
}

// NewMXClient creates an MX client. An empty resolver means the system
// resolver from /etc/resolv.conf.
func NewMXClient(timeout time.Duration, resolver string) *MXClient {
	return &MXClient{timeout: timeout, resolver: resolver}
}

// TargetDomain picks the domain whose MX records to check: the email's
// domain when an email was submitted, otherwise the company domain.
func TargetDomain(domain, email string) string {
	if idx := strings.LastIndex(email, "@"); idx >= 0 && idx < len(email)-1 {
		return email[idx+1:]
	}
	return domain
}

// Check queries MX records for the target domain. An empty answer is a
// successful check with no records configured.
func (c *MXClient) Check(ctx context.Context, domain, email string) *models.MXResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := TargetDomain(domain, email)

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(target), dns.TypeMX)

	client := &dns.Client{Timeout: c.timeout}
	reply, _, err := client.ExchangeContext(ctx, msg, resolverAddr(c.resolver))
	if err != nil {
		return &models.MXResult{Status: models.CheckFailed, Error: err.Error()}
	}

	type mxRecord struct {
		pref uint16
		host string
	}
	records := []mxRecord{}
	for _, answer := range reply.Answer {
		if mx, ok := answer.(*dns.MX); ok {
			records = append(records, mxRecord{pref: mx.Preference, host: strings.TrimSuffix(mx.Mx, ".")})
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].pref != records[j].pref {
			return records[i].pref < records[j].pref
		}
		return records[i].host < records[j].host
	})

	rendered := []string{}
	for _, r := range records {
		rendered = append(rendered, fmt.Sprintf("%d %s", r.pref, r.host))
	}

	return &models.MXResult{
		Status:          models.CheckSuccess,
		HasMXRecords:    len(rendered) > 0,
		MXRecords:       rendered,
		EmailConfigured: len(rendered) > 0,
	}
}
