package integrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		email  string
		want   string
	}{
		{
			name:   "email domain wins",
			domain: "acme.com",
			email:  "ceo@mail.acme.com",
			want:   "mail.acme.com",
		},
		{
			name:   "no email falls back to company domain",
			domain: "acme.com",
			want:   "acme.com",
		},
		{
			name:   "email without at sign falls back",
			domain: "acme.com",
			email:  "not-an-email",
			want:   "acme.com",
		},
		{
			name:   "trailing at sign falls back",
			domain: "acme.com",
			email:  "broken@",
			want:   "acme.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetDomain(tt.domain, tt.email))
		})
	}
}
