package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTaxRegime(t *testing.T) {
	t.Run("same_state_is_intra", func(t *testing.T) {
		regime, err := ResolveTaxRegime("29", "29", false)
		require.NoError(t, err)
		assert.Equal(t, TaxRegimeIntraState, regime)
	})

	t.Run("different_state_is_inter", func(t *testing.T) {
		regime, err := ResolveTaxRegime("29", "27", false)
		require.NoError(t, err)
		assert.Equal(t, TaxRegimeInterState, regime)
	})

	t.Run("exempt_overrides_states", func(t *testing.T) {
		regime, err := ResolveTaxRegime("29", "29", true)
		require.NoError(t, err)
		assert.Equal(t, TaxRegimeExempt, regime)

		regime, err = ResolveTaxRegime("29", "27", true)
		require.NoError(t, err)
		assert.Equal(t, TaxRegimeExempt, regime)
	})

	t.Run("exempt_wins_even_without_codes", func(t *testing.T) {
		regime, err := ResolveTaxRegime("", "", true)
		require.NoError(t, err)
		assert.Equal(t, TaxRegimeExempt, regime)
	})

	t.Run("missing_code_is_indeterminate", func(t *testing.T) {
		_, err := ResolveTaxRegime("", "29", false)
		assert.ErrorIs(t, err, ErrIndeterminateRegime)

		_, err = ResolveTaxRegime("29", "", false)
		assert.ErrorIs(t, err, ErrIndeterminateRegime)
	})
}
