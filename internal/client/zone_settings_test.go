package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alos-no/cfapi/pkg/cfapi"
)

func TestZoneSettingsList(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zones/zone-1/settings", r.URL.Path)
		respondJSON(t, w, http.StatusOK,
			successEnvelope(`[{"id":"always_online","value":"on","editable":true},{"id":"ssl","value":"flexible","editable":true}]`))
	}))

	settings, err := client.ZoneSettings().List(context.Background(), "zone-1")
	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.True(t, settings[0].Value.Equal(cfapi.SettingValueOn))
}

func TestZoneSettingsUpdate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/zones/zone-1/settings/always_online", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "off", body["value"])

		respondJSON(t, w, http.StatusOK, successEnvelope(`{"id":"always_online","value":"off","editable":true}`))
	}))

	setting, err := client.ZoneSettings().Update(context.Background(), "zone-1", "always_online",
		&cfapi.ZoneSettingUpdateRequest{Value: cfapi.SettingValueOff})
	require.NoError(t, err)
	assert.True(t, setting.Value.Equal(cfapi.SettingValueOff))
}

func TestZoneSettingsUnknownValue(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, http.StatusOK,
			successEnvelope(`{"id":"min_tls_version","value":"1.3","editable":false}`))
	}))

	// Setting values the client has no constant for still decode and
	// round-trip verbatim.
	setting, err := client.ZoneSettings().Get(context.Background(), "zone-1", "min_tls_version")
	require.NoError(t, err)
	assert.Equal(t, "1.3", setting.Value.Value())
	assert.False(t, setting.Editable)
}
