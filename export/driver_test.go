package export

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/entrakit/groupexport/graph"
	"github.com/entrakit/groupexport/prompt"
)

func testDriver(dir Directory, script *prompt.Script, out *bytes.Buffer, csvDir string) *Driver {
	d := NewDriver(dir, script, out)
	d.exporter = NewExporter(dir, out, csvDir)

	return d
}

func TestDriver_ExportDistributionGroup(t *testing.T) {
	sales := &graph.Group{ID: "dg1", DisplayName: "Sales", Mail: "sales@contoso.com", MailEnabled: true}

	dir := NewMockDirectory(t)
	dir.EXPECT().ListUnifiedGroups(mock.Anything, "Sales").Return(nil, nil)
	dir.EXPECT().ListDistributionGroups(mock.Anything, "Sales").Return([]*graph.Group{sales}, nil)
	dir.EXPECT().ListDistributionGroupMembers(mock.Anything, "dg1").Return([]*graph.Member{
		{ID: "m1", DisplayName: "Alice", Mail: "alice@contoso.com"},
		{ID: "m2", DisplayName: "Bob", Mail: "bob@contoso.com"},
		{ID: "m3", DisplayName: "Carol", Mail: "carol@contoso.com"},
	}, nil)
	dir.EXPECT().GetRecipient(mock.Anything, "alice@contoso.com").Return(&graph.Recipient{DisplayName: "Alice", Mail: "alice@contoso.com"}, nil)
	dir.EXPECT().GetRecipient(mock.Anything, "bob@contoso.com").Return(&graph.Recipient{DisplayName: "Bob", Mail: "bob@contoso.com"}, nil)
	dir.EXPECT().GetRecipient(mock.Anything, "carol@contoso.com").Return(&graph.Recipient{DisplayName: "Carol", Mail: "carol@contoso.com"}, nil)

	var out bytes.Buffer
	tmp := t.TempDir()

	// name, confirm group, export, stop
	script := prompt.NewScript("Sales", "y", "y", "n")
	err := testDriver(dir, script, &out, tmp).Run(context.Background())
	require.NoError(t, err)

	rows := readCsv(t, filepath.Join(tmp, "Sales.csv"))
	assert.Len(t, rows, 4)
	assert.Contains(t, out.String(), "Sales has 3 member(s):")
}

func TestDriver_AmbiguousNameSelectsSecondListed(t *testing.T) {
	dir := NewMockDirectory(t)
	dir.EXPECT().ListUnifiedGroups(mock.Anything, "Team").Return([]*graph.Group{unifiedTeam}, nil)
	dir.EXPECT().ListDistributionGroups(mock.Anything, "Team").Return([]*graph.Group{distributionTeam}, nil)
	dir.EXPECT().ListDistributionGroupMembers(mock.Anything, "dg1").Return([]*graph.Member{
		{ID: "m1", DisplayName: "Dave", Mail: "dave@contoso.com"},
	}, nil)

	var out bytes.Buffer

	// name, pick the second candidate, confirm, no export, stop
	script := prompt.NewScript("Team", "2", "y", "n", "n")
	err := testDriver(dir, script, &out, t.TempDir()).Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, script.Labels, "Use Team (Distribution)? [y/N] ")
	assert.Contains(t, out.String(), "  Dave")
}

func TestDriver_NotFoundReprompts(t *testing.T) {
	sales := &graph.Group{ID: "dg1", DisplayName: "Sales", Mail: "sales@contoso.com", MailEnabled: true}

	dir := NewMockDirectory(t)
	dir.EXPECT().ListUnifiedGroups(mock.Anything, "Ghost").Return(nil, nil)
	dir.EXPECT().ListDistributionGroups(mock.Anything, "Ghost").Return(nil, nil)
	dir.EXPECT().ListUnifiedGroups(mock.Anything, "Sales").Return(nil, nil)
	dir.EXPECT().ListDistributionGroups(mock.Anything, "Sales").Return([]*graph.Group{sales}, nil)
	dir.EXPECT().ListDistributionGroupMembers(mock.Anything, "dg1").Return([]*graph.Member{
		{ID: "m1", DisplayName: "Alice", Mail: "alice@contoso.com"},
	}, nil)

	var out bytes.Buffer

	script := prompt.NewScript("Ghost", "Sales", "y", "n", "n")
	err := testDriver(dir, script, &out, t.TempDir()).Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "No group found")
	assert.Contains(t, out.String(), "  Alice")
}

func TestDriver_DeclinedGroupIsNotListed(t *testing.T) {
	sales := &graph.Group{ID: "dg1", DisplayName: "Sales", Mail: "sales@contoso.com", MailEnabled: true}

	dir := NewMockDirectory(t)
	dir.EXPECT().ListUnifiedGroups(mock.Anything, "Sales").Return(nil, nil)
	dir.EXPECT().ListDistributionGroups(mock.Anything, "Sales").Return([]*graph.Group{sales}, nil)

	var out bytes.Buffer

	// Anything that is not the literal "y" declines the confirmation; the
	// driver then re-prompts for a name, and the script runs dry.
	script := prompt.NewScript("Sales", "nope")
	err := testDriver(dir, script, &out, t.TempDir()).Run(context.Background())
	require.NoError(t, err)

	dir.AssertNotCalled(t, "ListDistributionGroupMembers", mock.Anything, "dg1")
}

func TestDriver_UnsupportedKindYieldsNothing(t *testing.T) {
	secGroup := &graph.Group{ID: "sg1", DisplayName: "Admins", MailEnabled: true, SecurityEnabled: true}

	dir := NewMockDirectory(t)
	dir.EXPECT().ListUnifiedGroups(mock.Anything, "Admins").Return(nil, nil)
	dir.EXPECT().ListDistributionGroups(mock.Anything, "Admins").Return([]*graph.Group{secGroup}, nil)

	var out bytes.Buffer

	script := prompt.NewScript("Admins", "y", "n")
	err := testDriver(dir, script, &out, t.TempDir()).Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Groups of kind Unsupported are not supported.")
}

func TestDriver_SkipMessageForBlankEmail(t *testing.T) {
	ops := &graph.Group{ID: "ug2", DisplayName: "Ops", Mail: "ops@contoso.com", MailEnabled: true, GroupTypes: []string{"Unified"}}

	dir := NewMockDirectory(t)
	dir.EXPECT().ListUnifiedGroups(mock.Anything, "Ops").Return([]*graph.Group{ops}, nil)
	dir.EXPECT().ListDistributionGroups(mock.Anything, "Ops").Return(nil, nil)
	dir.EXPECT().ListGroupMembers(mock.Anything, "ug2").Return([]*graph.Member{
		{ID: "m1", DisplayName: "Mailboxless Mel", Mail: ""},
	}, nil)

	var out bytes.Buffer
	tmp := t.TempDir()

	script := prompt.NewScript("Ops", "y", "y", "n")
	err := testDriver(dir, script, &out, tmp).Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Skipping Mailboxless Mel")

	rows := readCsv(t, filepath.Join(tmp, "Ops.csv"))
	assert.Len(t, rows, 1)
}
