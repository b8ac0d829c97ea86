package integrations

import (
	"testing"
	"time"

	whoisparser "github.com/likexian/whois-parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPrivacy(t *testing.T) {
	tests := []struct {
		name        string
		nameservers []string
		registrar   string
		want        bool
	}{
		{
			name:        "no privacy markers",
			nameservers: []string{"ns1.example.com", "ns2.example.com"},
			registrar:   "MarkMonitor Inc.",
			want:        false,
		},
		{
			name:        "whoisguard nameserver",
			nameservers: []string{"dns1.whoisguard.example"},
			registrar:   "MarkMonitor Inc.",
			want:        true,
		},
		{
			name:        "privacy token in registrar",
			nameservers: []string{"ns1.example.com"},
			registrar:   "Domain Privacy Service LLC",
			want:        true,
		},
		{
			name:      "case insensitive",
			registrar: "NAMECHEAP Inc",
			want:      true,
		},
		{
			name:      "domainsbyproxy registrar",
			registrar: "DomainsByProxy.com",
			want:      true,
		},
		{
			name: "empty inputs",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectPrivacy(tt.nameservers, tt.registrar))
		})
	}
}

func TestEarliestCreationDate(t *testing.T) {
	typed := time.Date(2010, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("typed date preferred", func(t *testing.T) {
		info := whoisparser.WhoisInfo{
			Domain: &whoisparser.Domain{CreatedDateInTime: &typed},
		}
		got := earliestCreationDate(info)
		require.NotNil(t, got)
		assert.Equal(t, typed, *got)
	})

	t.Run("string date parsed when earlier", func(t *testing.T) {
		info := whoisparser.WhoisInfo{
			Domain: &whoisparser.Domain{
				CreatedDateInTime: &typed,
				CreatedDate:       "1999-03-15",
			},
		}
		got := earliestCreationDate(info)
		require.NotNil(t, got)
		assert.Equal(t, 1999, got.Year())
	})

	t.Run("no domain section", func(t *testing.T) {
		assert.Nil(t, earliestCreationDate(whoisparser.WhoisInfo{}))
	})

	t.Run("unparseable string only", func(t *testing.T) {
		info := whoisparser.WhoisInfo{
			Domain: &whoisparser.Domain{CreatedDate: "sometime in the 90s"},
		}
		assert.Nil(t, earliestCreationDate(info))
	})
}
