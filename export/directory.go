package export

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/entrakit/groupexport/global"
	"github.com/entrakit/groupexport/graph"
)

var logger hclog.Logger

func init() {
	logger = global.Logger().Named("export")
}

//go:generate go run github.com/vektra/mockery/v2 --name=Directory --with-expecter --inpackage

// Directory is the slice of the directory service this package needs.
// graph.Client satisfies it.
type Directory interface {
	ListUnifiedGroups(ctx context.Context, name string) ([]*graph.Group, error)
	ListDistributionGroups(ctx context.Context, name string) ([]*graph.Group, error)
	ListGroupMembers(ctx context.Context, groupId string) ([]*graph.Member, error)
	ListDistributionGroupMembers(ctx context.Context, groupId string) ([]*graph.Member, error)
	GetRecipient(ctx context.Context, email string) (*graph.Recipient, error)
}
