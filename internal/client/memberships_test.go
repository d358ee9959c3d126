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

func TestMembershipsList(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/memberships", r.URL.Path)
		assert.Equal(t, "status=pending", r.URL.RawQuery)
		respondJSON(t, w, http.StatusOK,
			successEnvelope(`[{"id":"mem-1","status":"pending","account":{"id":"acc-1","name":"Example Org"}}]`))
	}))

	memberships, _, err := client.Memberships().List(context.Background(),
		&cfapi.MembershipListFilter{Status: cfapi.MembershipStatusPending}, nil)
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.Equal(t, "Example Org", memberships[0].Account.Name)
}

func TestMembershipsAccept(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/memberships/mem-1", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "accepted", body["status"])

		respondJSON(t, w, http.StatusOK,
			successEnvelope(`{"id":"mem-1","status":"accepted","account":{"id":"acc-1"}}`))
	}))

	membership, err := client.Memberships().Update(context.Background(), "mem-1",
		&cfapi.MembershipUpdateRequest{Status: cfapi.MembershipStatusAccepted})
	require.NoError(t, err)
	assert.True(t, membership.Status.Equal(cfapi.MembershipStatusAccepted))
}

func TestMembershipsDelete(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		respondJSON(t, w, http.StatusOK, successEnvelope(`{"id":"mem-1"}`))
	}))

	require.NoError(t, client.Memberships().Delete(context.Background(), "mem-1"))
}

func TestAccountMembersInvite(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts/acc-1/members", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "new@example.com", body["email"])

		respondJSON(t, w, http.StatusOK,
			successEnvelope(`{"id":"am-1","status":"pending","user":{"id":"u-1","email":"new@example.com","two_factor_authentication_enabled":false},"roles":[{"id":"role-1","name":"Administrator"}]}`))
	}))

	member, err := client.AccountMembers().Create(context.Background(), "acc-1", &cfapi.AccountMemberInvite{
		Email: "new@example.com",
		Roles: []string{"role-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "am-1", member.ID)
	require.Len(t, member.Roles, 1)
	assert.Equal(t, "Administrator", member.Roles[0].Name)
}

func TestAccountMembersIterate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, http.StatusOK,
			`{"success":true,"errors":[],"messages":[],"result":[{"id":"am-1","status":"accepted","user":{"id":"u-1","email":"a@example.com","two_factor_authentication_enabled":true},"roles":[]}],"result_info":{"page":1,"per_page":20,"count":1,"total_count":1,"total_pages":1}}`)
	}))

	members, err := client.AccountMembers().Iterate(context.Background(), "acc-1", 20).All()
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.True(t, members[0].User.TwoFactorEnabled)
}
