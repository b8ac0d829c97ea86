package integrations

import (
	"context"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/trustlane/vetd/pkg/models"
)

// DNSClient resolves A and NS records for a domain.
type DNSClient struct {
	timeout  time.Duration
	resolver string
}

// NewDNSClient creates a DNS client. An empty resolver means the system
// resolver from /etc/resolv.conf.
func NewDNSClient(timeout time.Duration, resolver string) *DNSClient {
	return &DNSClient{timeout: timeout, resolver: resolver}
}

// Check resolves the domain. NXDOMAIN and empty answers are successful
// lookups with empty record lists; only transport errors fail the probe.
func (c *DNSClient) Check(ctx context.Context, domain string) *models.DNSResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	addr := resolverAddr(c.resolver)
	client := &dns.Client{Timeout: c.timeout}

	aRecords, err := queryA(ctx, client, addr, domain)
	if err != nil {
		return &models.DNSResult{Status: models.CheckFailed, Error: err.Error()}
	}

	nameservers, err := queryNS(ctx, client, addr, domain)
	if err != nil {
		return &models.DNSResult{Status: models.CheckFailed, Error: err.Error()}
	}

	return &models.DNSResult{
		Status:      models.CheckSuccess,
		Resolves:    len(aRecords) > 0,
		Nameservers: nameservers,
		ARecords:    aRecords,
	}
}

func queryA(ctx context.Context, client *dns.Client, addr, domain string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeA)

	reply, _, err := client.ExchangeContext(ctx, msg, addr)
	if err != nil {
		return nil, err
	}

	records := []string{}
	for _, answer := range reply.Answer {
		if a, ok := answer.(*dns.A); ok {
			records = append(records, a.A.String())
		}
	}
	return records, nil
}

func queryNS(ctx context.Context, client *dns.Client, addr, domain string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeNS)

	reply, _, err := client.ExchangeContext(ctx, msg, addr)
	if err != nil {
		return nil, err
	}

	records := []string{}
	for _, answer := range reply.Answer {
		if ns, ok := answer.(*dns.NS); ok {
			records = append(records, strings.TrimSuffix(ns.Ns, "."))
		}
	}
	return records, nil
}

// resolverAddr returns the resolver address to query, falling back to the
// system resolver and then to a public one.
func resolverAddr(configured string) string {
	if configured != "" {
		return configured
	}
	if conf, err := dns.ClientConfigFromFile("/etc/resolv.conf"); err == nil && len(conf.Servers) > 0 {
		return conf.Servers[0] + ":" + conf.Port
	}
	return "8.8.8.8:53"
}
