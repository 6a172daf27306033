package export

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/raito-io/golang-set/set"

	"github.com/entrakit/groupexport/graph"
	"github.com/entrakit/groupexport/prompt"
)

// Resolver turns a free-text group name into exactly one directory group,
// asking the operator to pick when the name is ambiguous.
type Resolver struct {
	dir      Directory
	prompter prompt.Prompter
	out      io.Writer
}

func NewResolver(dir Directory, p prompt.Prompter, out io.Writer) *Resolver {
	return &Resolver{
		dir:      dir,
		prompter: p,
		out:      out,
	}
}

// FindGroup queries both group kinds by name and resolves the result down
// to one group. A failed lookup counts as zero results for that kind; group
// names are not unique across kinds, so collisions are put to the operator.
func (r *Resolver) FindGroup(ctx context.Context, name string) (*graph.Group, bool) {
	candidates := make([]*graph.Group, 0)

	unified, err := r.dir.ListUnifiedGroups(ctx, name)
	if err != nil {
		logger.Debug("unified group lookup failed", "name", name, "error", err.Error())
	}

	candidates = append(candidates, unified...)

	distribution, err := r.dir.ListDistributionGroups(ctx, name)
	if err != nil {
		logger.Debug("distribution group lookup failed", "name", name, "error", err.Error())
	}

	candidates = append(candidates, distribution...)

	// The same group can come back from both lookups.
	seen := set.NewSet[string]()
	merged := make([]*graph.Group, 0, len(candidates))

	for _, g := range candidates {
		if seen.Contains(g.ID) {
			continue
		}

		seen.Add(g.ID)
		merged = append(merged, g)
	}

	switch len(merged) {
	case 0:
		fmt.Fprintf(r.out, "No group found with the name %q.\n", name)
		return nil, false
	case 1:
		return merged[0], true
	}

	fmt.Fprintf(r.out, "Multiple groups share the name %q:\n", name)

	for i, g := range merged {
		fmt.Fprintf(r.out, "  %d. %s (%s)\n", i+1, g.DisplayName, g.Kind())
	}

	for {
		line, err := r.prompter.Line(fmt.Sprintf("Select a group [1-%d]: ", len(merged)))
		if err != nil {
			// Input source dried up; nothing left to select with.
			return nil, false
		}

		idx, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || idx < 1 || idx > len(merged) {
			fmt.Fprintf(r.out, "Enter a number between 1 and %d.\n", len(merged))
			continue
		}

		return merged[idx-1], true
	}
}
