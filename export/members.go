package export

import (
	"context"
	"fmt"
	"io"

	"github.com/entrakit/groupexport/graph"
)

// ListMembers fetches the full membership of a group with the query that
// matches its kind. Unsupported kinds are reported and yield nothing.
func ListMembers(ctx context.Context, dir Directory, out io.Writer, group *graph.Group) []*graph.Member {
	var (
		members []*graph.Member
		err     error
	)

	switch kind := group.Kind(); kind {
	case graph.KindUnified:
		members, err = dir.ListGroupMembers(ctx, group.ID)
	case graph.KindDistribution:
		members, err = dir.ListDistributionGroupMembers(ctx, group.ID)
	default:
		fmt.Fprintf(out, "Groups of kind %s are not supported.\n", kind)
		return nil
	}

	if err != nil {
		fmt.Fprintf(out, "Could not list the members of %s: %v\n", group.DisplayName, err)
		return nil
	}

	return members
}

// ShowMembers prints each member's display name in input order. The email
// column is intentionally left out; add m.Mail here if it is ever wanted.
func ShowMembers(out io.Writer, members []*graph.Member) {
	for _, m := range members {
		fmt.Fprintf(out, "  %s\n", m.DisplayName)
	}
}
