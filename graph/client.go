package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/entrakit/groupexport/global"
)

var logger hclog.Logger

func init() {
	logger = global.Logger().Named("graph")
}

// Collections are requested at the maximum page size and paged to
// exhaustion, so results are never silently truncated.
const pageSize = 999

const groupSelect = "id,displayName,mail,mailEnabled,securityEnabled,groupTypes"

const memberSelect = "id,displayName,mail"

type Client struct {
	cred       azcore.TokenCredential
	httpClient *http.Client
	baseUrl    string
}

func NewClient(cred azcore.TokenCredential) *Client {
	return &Client{
		cred:       cred,
		httpClient: &http.Client{},
		baseUrl:    global.GraphBaseUrl,
	}
}

func (c *Client) get(ctx context.Context, uri string, eventual bool, out interface{}) error {
	token, err := c.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{global.GraphScope}})
	if err != nil {
		return fmt.Errorf("could not acquire a Graph token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+token.Token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("client-request-id", uuid.New().String())

	if eventual {
		// Advanced filters (groupTypes/any with $count) only work against
		// the eventually consistent directory store.
		req.Header.Set("ConsistencyLevel", "eventual")
	}

	logger.Trace("GET " + uri)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return NewStatusError(resp.StatusCode, fmt.Sprintf("%s returned %d: %s", uri, resp.StatusCode, strings.TrimSpace(string(body))))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) groupsUri(filter string, count bool) string {
	q := url.Values{}
	q.Set("$filter", filter)
	q.Set("$select", groupSelect)
	q.Set("$top", fmt.Sprintf("%d", pageSize))

	if count {
		q.Set("$count", "true")
	}

	return fmt.Sprintf("%s/groups?%s", c.baseUrl, q.Encode())
}

// escapeFilterValue doubles single quotes per the OData literal rules.
func escapeFilterValue(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// ListUnifiedGroups returns every unified (M365) group whose display name
// matches exactly.
func (c *Client) ListUnifiedGroups(ctx context.Context, name string) ([]*Group, error) {
	filter := fmt.Sprintf("displayName eq '%s' and groupTypes/any(c:c eq 'Unified')", escapeFilterValue(name))

	uri := c.groupsUri(filter, true)
	groups := make([]*Group, 0)

	for uri != "" {
		var page GroupList
		if err := c.get(ctx, uri, true, &page); err != nil {
			return nil, err
		}

		groups = append(groups, page.Groups...)
		uri = page.NextLink
	}

	return groups, nil
}

// ListDistributionGroups returns every mail-enabled distribution group whose
// display name matches exactly. Graph has no server-side filter that
// excludes unified groups from this query, so they are filtered out here.
func (c *Client) ListDistributionGroups(ctx context.Context, name string) ([]*Group, error) {
	filter := fmt.Sprintf("displayName eq '%s' and mailEnabled eq true and securityEnabled eq false", escapeFilterValue(name))

	uri := c.groupsUri(filter, false)
	groups := make([]*Group, 0)

	for uri != "" {
		var page GroupList
		if err := c.get(ctx, uri, false, &page); err != nil {
			return nil, err
		}

		for _, g := range page.Groups {
			if g.Kind() == KindUnified {
				continue
			}

			groups = append(groups, g)
		}

		uri = page.NextLink
	}

	return groups, nil
}

func (c *Client) listMembers(ctx context.Context, groupId string) ([]*Member, error) {
	q := url.Values{}
	q.Set("$select", memberSelect)
	q.Set("$top", fmt.Sprintf("%d", pageSize))

	uri := fmt.Sprintf("%s/groups/%s/members?%s", c.baseUrl, url.PathEscape(groupId), q.Encode())
	members := make([]*Member, 0)

	for uri != "" {
		var page MemberList
		if err := c.get(ctx, uri, false, &page); err != nil {
			return nil, err
		}

		members = append(members, page.Members...)
		uri = page.NextLink
	}

	return members, nil
}

// ListGroupMembers enumerates the membership links of a unified group.
func (c *Client) ListGroupMembers(ctx context.Context, groupId string) ([]*Member, error) {
	return c.listMembers(ctx, groupId)
}

// ListDistributionGroupMembers enumerates the members of a mail-enabled
// distribution group. Graph serves both group kinds from the same members
// relation; the operation is kept separate so each group kind keeps its own
// entry point.
func (c *Client) ListDistributionGroupMembers(ctx context.Context, groupId string) ([]*Member, error) {
	return c.listMembers(ctx, groupId)
}

// GetRecipient resolves an email address to its canonical recipient record.
// Users are checked first; mail-enabled groups can be addressed too, so
// they serve as the fallback.
func (c *Client) GetRecipient(ctx context.Context, email string) (*Recipient, error) {
	filter := fmt.Sprintf("mail eq '%s'", escapeFilterValue(email))

	q := url.Values{}
	q.Set("$filter", filter)
	q.Set("$select", "displayName,mail")

	var users RecipientList
	if err := c.get(ctx, fmt.Sprintf("%s/users?%s", c.baseUrl, q.Encode()), false, &users); err != nil {
		return nil, err
	}

	if len(users.Recipients) > 0 {
		return users.Recipients[0], nil
	}

	var groups RecipientList
	if err := c.get(ctx, fmt.Sprintf("%s/groups?%s", c.baseUrl, q.Encode()), false, &groups); err != nil {
		return nil, err
	}

	if len(groups.Recipients) > 0 {
		return groups.Recipients[0], nil
	}

	return nil, &NotFoundError{address: email}
}
