package cfapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wire string
	}{
		{"known value", `"active"`},
		{"unknown value", `"hyper_shield_mode"`},
		{"case variant", `"ACTIVE"`},
		{"empty string", `""`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var e Enum
			require.NoError(t, json.Unmarshal([]byte(tt.wire), &e))

			out, err := json.Marshal(e)
			require.NoError(t, err)

			// The literal is preserved byte for byte.
			assert.Equal(t, tt.wire, string(out))
		})
	}
}

func TestEnumNull(t *testing.T) {
	t.Parallel()

	e := EnumOf("something")
	require.NoError(t, json.Unmarshal([]byte(`null`), &e))
	assert.True(t, e.IsZero())
}

func TestEnumComparison(t *testing.T) {
	t.Parallel()

	received := EnumOf("ACTIVE")

	assert.True(t, received.Equal(ZoneStatusActive))
	assert.True(t, received.Is("active"))
	assert.False(t, received.Equal(ZoneStatusPending))

	// Comparison is case-insensitive, but the literal is untouched.
	assert.Equal(t, "ACTIVE", received.Value())
	assert.Equal(t, "active", received.Key())
}

func TestEnumZeroDistinguishable(t *testing.T) {
	t.Parallel()

	assert.True(t, Enum{}.IsZero())
	assert.False(t, ZoneStatusActive.IsZero())
	assert.False(t, Enum{}.Equal(ZoneStatusActive))
}

func TestEnumInStruct(t *testing.T) {
	t.Parallel()

	var zone Zone
	require.NoError(t, json.Unmarshal([]byte(`{"id":"z","name":"example.com","status":"brand_new_status"}`), &zone))

	assert.Equal(t, "brand_new_status", zone.Status.Value())
	assert.False(t, zone.Status.Equal(ZoneStatusActive))

	out, err := json.Marshal(zone)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"status":"brand_new_status"`)
}

func TestEnumRejectsNonString(t *testing.T) {
	t.Parallel()

	var e Enum
	err := json.Unmarshal([]byte(`42`), &e)
	require.Error(t, err)
}
