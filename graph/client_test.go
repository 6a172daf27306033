package graph

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCredential struct{}

func (staticCredential) GetToken(context.Context, policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "test-token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

func testClient(srv *httptest.Server) *Client {
	c := NewClient(staticCredential{})
	c.baseUrl = srv.URL

	return c
}

func TestListGroupMembers_FollowsNextLink(t *testing.T) {
	var srv *httptest.Server

	mux := http.NewServeMux()
	mux.HandleFunc("/groups/g1/members", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "999", r.URL.Query().Get("$top"))
		assert.NotEmpty(t, r.Header.Get("client-request-id"))

		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `{"value":[{"id":"m3","displayName":"Carol","mail":"carol@contoso.com"}]}`)
			return
		}

		fmt.Fprintf(w, `{
			"@odata.nextLink": %q,
			"value": [
				{"id":"m1","displayName":"Alice","mail":"alice@contoso.com"},
				{"id":"m2","displayName":"Bob","mail":"bob@contoso.com"}
			]
		}`, srv.URL+"/groups/g1/members?page=2&%24top=999")
	})

	srv = httptest.NewServer(mux)
	defer srv.Close()

	members, err := testClient(srv).ListGroupMembers(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "Alice", members[0].DisplayName)
	assert.Equal(t, "Carol", members[2].DisplayName)
}

func TestListUnifiedGroups(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eventual", r.Header.Get("ConsistencyLevel"))
		assert.Equal(t, "true", r.URL.Query().Get("$count"))
		assert.Contains(t, r.URL.Query().Get("$filter"), "groupTypes/any(c:c eq 'Unified')")
		assert.Contains(t, r.URL.Query().Get("$filter"), "displayName eq 'Team'")

		fmt.Fprint(w, `{"value":[{"id":"ug1","displayName":"Team","mail":"team@contoso.com","mailEnabled":true,"groupTypes":["Unified"]}]}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	groups, err := testClient(srv).ListUnifiedGroups(context.Background(), "Team")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, KindUnified, groups[0].Kind())
}

func TestListUnifiedGroups_EscapesQuotes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("$filter"), "displayName eq 'Bob''s Team'")
		fmt.Fprint(w, `{"value":[]}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := testClient(srv).ListUnifiedGroups(context.Background(), "Bob's Team")
	require.NoError(t, err)
}

func TestListDistributionGroups_ExcludesUnified(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"value":[
			{"id":"ug1","displayName":"Team","mailEnabled":true,"groupTypes":["Unified"]},
			{"id":"dg1","displayName":"Team","mailEnabled":true,"securityEnabled":false,"groupTypes":[]}
		]}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	groups, err := testClient(srv).ListDistributionGroups(context.Background(), "Team")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "dg1", groups[0].ID)
	assert.Equal(t, KindDistribution, groups[0].Kind())
}

func TestGet_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"Authorization_RequestDenied"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := testClient(srv).ListUnifiedGroups(context.Background(), "Team")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode())
}

func TestGetRecipient_PrefersUsers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("$filter"), "mail eq 'alice@contoso.com'")
		fmt.Fprint(w, `{"value":[{"displayName":"Alice Adams","mail":"alice@contoso.com"}]}`)
	})
	mux.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
		t.Error("groups should not be queried when a user matches")
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	rec, err := testClient(srv).GetRecipient(context.Background(), "alice@contoso.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice Adams", rec.DisplayName)
}

func TestGetRecipient_FallsBackToGroups(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"value":[]}`)
	})
	mux.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"value":[{"displayName":"Sales","mail":"sales@contoso.com"}]}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	rec, err := testClient(srv).GetRecipient(context.Background(), "sales@contoso.com")
	require.NoError(t, err)
	assert.Equal(t, "Sales", rec.DisplayName)
}

func TestGetRecipient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"value":[]}`)
	}))
	defer srv.Close()

	_, err := testClient(srv).GetRecipient(context.Background(), "nobody@contoso.com")
	require.Error(t, err)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
