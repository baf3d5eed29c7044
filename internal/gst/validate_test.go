package gst

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGSTIN(t *testing.T) {
	t.Run("empty_is_valid", func(t *testing.T) {
		assert.True(t, ValidateGSTIN("").Valid)
	})

	t.Run("valid", func(t *testing.T) {
		res := ValidateGSTIN("27AAGCA4900Q1ZE")
		assert.True(t, res.Valid)
		assert.Empty(t, res.Message)
	})

	t.Run("wrong_length", func(t *testing.T) {
		for _, v := range []string{"27AAGCA4900Q1Z", "27AAGCA4900Q1ZEE", "2", strings.Repeat("A", 14)} {
			res := ValidateGSTIN(v)
			assert.False(t, res.Valid, v)
			assert.Equal(t, "GSTIN must be 15 characters", res.Message, v)
		}
	})

	t.Run("bad_format", func(t *testing.T) {
		cases := []string{
			"27aagca4900q1ze", // lowercase
			"AAAAGCA4900Q1ZE", // state code not digits
			"27AAGCA4900Q1XE", // 14th char must be Z
			"27AAGCA4900Q0ZE", // entity code 0 not allowed
		}
		for _, v := range cases {
			res := ValidateGSTIN(v)
			assert.False(t, res.Valid, v)
			assert.Equal(t, "Invalid GSTIN format", res.Message, v)
		}
	})
}

func TestValidatePAN(t *testing.T) {
	t.Run("empty_is_valid", func(t *testing.T) {
		assert.True(t, ValidatePAN("").Valid)
	})

	t.Run("valid", func(t *testing.T) {
		assert.True(t, ValidatePAN("ABCDE1234F").Valid)
	})

	t.Run("wrong_length", func(t *testing.T) {
		res := ValidatePAN("ABCDE1234")
		assert.False(t, res.Valid)
		assert.Equal(t, "PAN must be 10 characters", res.Message)
	})

	t.Run("lowercase_rejected", func(t *testing.T) {
		res := ValidatePAN("abcde1234f")
		assert.False(t, res.Valid)
		assert.Equal(t, "Invalid PAN format", res.Message)
	})
}

func TestStateCodeFromGSTIN(t *testing.T) {
	assert.Equal(t, "29", StateCodeFromGSTIN("29AAGCA4900Q1ZE"))
	assert.Equal(t, "07", StateCodeFromGSTIN("07"))
	assert.Equal(t, "", StateCodeFromGSTIN(""))
	assert.Equal(t, "", StateCodeFromGSTIN("2"))
}

func TestCheckGSTINState(t *testing.T) {
	t.Run("match_is_nil", func(t *testing.T) {
		assert.Nil(t, CheckGSTINState("29AAGCA4900Q1ZE", "29"))
	})

	t.Run("missing_inputs_are_nil", func(t *testing.T) {
		assert.Nil(t, CheckGSTINState("", "29"))
		assert.Nil(t, CheckGSTINState("29AAGCA4900Q1ZE", ""))
		assert.Nil(t, CheckGSTINState("2", "29"))
	})

	t.Run("mismatch_names_both_states", func(t *testing.T) {
		m := CheckGSTINState("29AAGCA4900Q1ZE", "27")
		require.NotNil(t, m)
		assert.Equal(t, "29", m.GSTINStateCode)
		assert.Equal(t, "Karnataka", m.GSTINState)
		assert.Equal(t, "27", m.SelectedStateCode)
		assert.Equal(t, "Maharashtra", m.SelectedState)
		assert.Contains(t, m.Warning(), "Karnataka")
		assert.Contains(t, m.Warning(), "Maharashtra")
	})
}

func TestStateName(t *testing.T) {
	name, ok := StateName("27")
	require.True(t, ok)
	assert.Equal(t, "Maharashtra", name)

	_, ok = StateName("00")
	assert.False(t, ok)
	assert.True(t, IsKnownStateCode("38"))
	assert.False(t, IsKnownStateCode("39"))

	// special codes beyond the state range
	for code, want := range map[string]string{
		"96": "Foreign Country",
		"97": "Other Territory",
		"99": "Centre Jurisdiction",
	} {
		name, ok := StateName(code)
		require.True(t, ok, "code %s", code)
		assert.Equal(t, want, name)
	}
}
