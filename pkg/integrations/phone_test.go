package integrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustlane/vetd/pkg/models"
)

func TestPhoneCheck(t *testing.T) {
	client := NewPhoneClient("US")
	ctx := context.Background()

	t.Run("valid US number", func(t *testing.T) {
		result := client.Check(ctx, "(415) 555-2671")

		require.True(t, result.Succeeded())
		assert.True(t, result.Valid)
		require.NotNil(t, result.Normalized)
		assert.Equal(t, "+14155552671", *result.Normalized)
		require.NotNil(t, result.Region)
		assert.Equal(t, "US", *result.Region)
	})

	t.Run("valid international number", func(t *testing.T) {
		result := client.Check(ctx, "+44 20 7946 0958")

		require.True(t, result.Succeeded())
		assert.True(t, result.Valid)
		require.NotNil(t, result.Normalized)
		assert.Equal(t, "+442079460958", *result.Normalized)
		require.NotNil(t, result.Region)
		assert.Equal(t, "GB", *result.Region)
	})

	t.Run("parseable but invalid", func(t *testing.T) {
		// Correct shape for a US number but an impossible exchange
		result := client.Check(ctx, "+1 555 019 9999")

		require.True(t, result.Succeeded())
		assert.False(t, result.Valid)
		assert.Nil(t, result.Normalized)
	})

	t.Run("empty input", func(t *testing.T) {
		result := client.Check(ctx, "   ")

		assert.Equal(t, models.CheckFailed, result.Status)
		assert.Equal(t, "Empty phone number", result.Error)
	})

	t.Run("unparseable input", func(t *testing.T) {
		result := client.Check(ctx, "not a phone")

		assert.Equal(t, models.CheckFailed, result.Status)
		assert.NotEmpty(t, result.Error)
	})
}
