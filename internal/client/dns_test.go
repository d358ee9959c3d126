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

func TestDNSList(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zones/zone-1/dns_records", r.URL.Path)
		assert.Equal(t, "type=A&proxied=true&tag=team%3Aedge&tag=env%3Aprod", r.URL.RawQuery)
		respondJSON(t, w, http.StatusOK,
			successEnvelope(`[{"id":"rec-1","name":"www.example.com","type":"A","content":"192.0.2.1","ttl":300}]`))
	}))

	records, _, err := client.DNS().List(context.Background(), "zone-1", &cfapi.DNSRecordListFilter{
		Type:    cfapi.DNSRecordTypeA,
		Proxied: cfapi.Ptr(true),
		Tags:    []string{"team:edge", "env:prod"},
	}, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "192.0.2.1", records[0].Content)
}

func TestDNSCreate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "CNAME", body["type"])
		assert.Equal(t, "alias.example.com", body["name"])

		// Unset optional fields are omitted, never sent as null.
		assert.NotContains(t, body, "priority")
		assert.NotContains(t, body, "comment")

		respondJSON(t, w, http.StatusOK,
			successEnvelope(`{"id":"rec-2","name":"alias.example.com","type":"CNAME","content":"example.com","ttl":1}`))
	}))

	record, err := client.DNS().Create(context.Background(), "zone-1", &cfapi.DNSRecordRequest{
		Type:    cfapi.DNSRecordTypeCNAME,
		Name:    "alias.example.com",
		Content: "example.com",
		TTL:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, "rec-2", record.ID)
}

func TestDNSGetEscapesIdentifier(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A hostile identifier must stay a single path segment.
		assert.Equal(t, "/zones/zone-1/dns_records/rec%2F..%2Fadmin", r.URL.EscapedPath())
		respondJSON(t, w, http.StatusOK, successEnvelope(`{"id":"rec/../admin","name":"x","type":"TXT","content":"v","ttl":1}`))
	}))

	record, err := client.DNS().Get(context.Background(), "zone-1", "rec/../admin")
	require.NoError(t, err)
	assert.Equal(t, "rec/../admin", record.ID)
}

func TestDNSUpdate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/zones/zone-1/dns_records/rec-1", r.URL.Path)
		respondJSON(t, w, http.StatusOK,
			successEnvelope(`{"id":"rec-1","name":"www.example.com","type":"A","content":"192.0.2.2","ttl":300}`))
	}))

	record, err := client.DNS().Update(context.Background(), "zone-1", "rec-1", &cfapi.DNSRecordRequest{
		Type:    cfapi.DNSRecordTypeA,
		Name:    "www.example.com",
		Content: "192.0.2.2",
		TTL:     300,
	})
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.2", record.Content)
}

func TestDNSScan(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/zones/zone-1/dns_records/scan", r.URL.Path)
		respondJSON(t, w, http.StatusOK, successEnvelope(`{"recs_added":5,"total_records_parsed":8}`))
	}))

	result, err := client.DNS().Scan(context.Background(), "zone-1")
	require.NoError(t, err)
	assert.Equal(t, 5, result.RecsAdded)
	assert.Equal(t, 8, result.TotalRecordsParsed)
}

func TestDNSScanEmptyResult(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, http.StatusOK, successEnvelope(`null`))
	}))

	// A queued scan returns no payload; that decodes to the zero value, not
	// an error.
	result, err := client.DNS().Scan(context.Background(), "zone-1")
	require.NoError(t, err)
	assert.Zero(t, result.RecsAdded)
}

func TestDNSDeleteMissingRecordID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the network")
	}))

	err := client.DNS().Delete(context.Background(), "zone-1", "")

	var missing *cfapi.MissingParamError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "recordID", missing.Param)
}
