package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alos-no/cfapi/pkg/cfapi"
)

func TestAuditLogsListV1(t *testing.T) {
	t.Parallel()

	since := time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600))

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acc-1/audit_logs", r.URL.Path)

		// v1 uses underscore names; timestamps are RFC 3339 UTC instants.
		query := r.URL.Query()
		assert.Equal(t, "admin@example.com", query.Get("actor_email"))
		assert.Equal(t, "2024-03-01T11:30:00Z", query.Get("since"))
		assert.Equal(t, "true", query.Get("hide_user_logs"))
		assert.Equal(t, "25", query.Get("per_page"))

		respondJSON(t, w, http.StatusOK,
			`{"success":true,"errors":[],"messages":[],"result":[{"id":"log-1","action":{"type":"rec_add","result":true},"actor":{"id":"actor-1","email":"admin@example.com","type":"user"},"resource":{"id":"rec-1","type":"dns_record"},"metadata":{"zone_name":"example.com"}}],"result_info":{"page":1,"per_page":25,"count":1,"total_count":1,"total_pages":1}}`)
	}))

	logs, info, err := client.AuditLogs().List(context.Background(), "acc-1", &cfapi.AuditLogFilter{
		ActorEmail:   cfapi.Ptr("admin@example.com"),
		Since:        &since,
		HideUserLogs: cfapi.Ptr(true),
	}, &cfapi.PageOptions{PerPage: 25})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "rec_add", logs[0].Action.Type)

	zoneName, ok := logs[0].Metadata.GetString("zone_name")
	require.True(t, ok)
	assert.Equal(t, "example.com", zoneName)
	require.NotNil(t, info)
	assert.Equal(t, 1, info.TotalPages)
}

func TestAuditLogsListV2DotNames(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acc-1/logs/audit", r.URL.Path)

		// v2 joins filter names with dots and repeats array keys in order.
		assert.Equal(t,
			"action.type=create&action.type=delete&actor.email=admin%40example.com&per_page=2",
			r.URL.RawQuery)

		respondJSON(t, w, http.StatusOK,
			`{"success":true,"errors":[],"messages":[],"result":[{"id":"log-1","action":{"type":"create","result":true},"actor":{"id":"a","type":"user"},"resource":{"id":"r","type":"zone"}}],"result_info":{"cursor":"","count":1,"per_page":2}}`)
	}))

	logs, info, err := client.AuditLogs().ListV2(context.Background(), "acc-1", &cfapi.AuditLogV2Filter{
		ActionTypes: []string{"create", "delete"},
		ActorEmail:  cfapi.Ptr("admin@example.com"),
		PerPage:     2,
	}, "")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.NotNil(t, info)

	// An empty cursor string terminates iteration just like a missing one.
	_, more := (&cfapi.ResultInfo{Cursor: info.Cursor}).NextCursor()
	assert.False(t, more)
}

func TestAuditLogsIterateV2CarriesFilter(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The domain filter must ride along on every page, not just the first.
		assert.Equal(t, "zone", r.URL.Query().Get("resource.type"))

		if r.URL.Query().Get("cursor") == "" {
			respondJSON(t, w, http.StatusOK,
				`{"success":true,"errors":[],"messages":[],"result":[{"id":"log-1","action":{"type":"create","result":true},"actor":{"id":"a","type":"user"},"resource":{"id":"r","type":"zone"}}],"result_info":{"cursor":"c-2","count":1}}`)

			return
		}

		respondJSON(t, w, http.StatusOK,
			`{"success":true,"errors":[],"messages":[],"result":[{"id":"log-2","action":{"type":"delete","result":true},"actor":{"id":"a","type":"user"},"resource":{"id":"r","type":"zone"}}],"result_info":{"count":1}}`)
	}))

	logs, err := client.AuditLogs().IterateV2(context.Background(), "acc-1",
		&cfapi.AuditLogV2Filter{ResourceType: cfapi.Ptr("zone")}).All()
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "log-2", logs[1].ID)
}

func TestAuditLogsDocumentValues(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, http.StatusOK,
			successEnvelope(`[{"id":"log-1","action":{"type":"setting_edit","result":true},"actor":{"id":"a","type":"user"},"resource":{"id":"z","type":"zone"},"old_value":{"value":"off"},"new_value":{"value":"on","ttl":300}}]`))
	}))

	logs, _, err := client.AuditLogs().List(context.Background(), "acc-1", nil, nil)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	// Old and new values are free-form payloads with no fixed schema.
	oldValue, ok := logs[0].OldValue.GetString("value")
	require.True(t, ok)
	assert.Equal(t, "off", oldValue)

	newTTL, ok := logs[0].NewValue.GetInt("ttl")
	require.True(t, ok)
	assert.Equal(t, int64(300), newTTL)
}
