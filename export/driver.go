package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/entrakit/groupexport/prompt"
)

// Driver runs the interactive loop: resolve a group, confirm it, show its
// members, optionally export them, repeat until the operator stops.
type Driver struct {
	dir      Directory
	prompter prompt.Prompter
	out      io.Writer

	resolver *Resolver
	exporter *Exporter
}

func NewDriver(dir Directory, p prompt.Prompter, out io.Writer) *Driver {
	return &Driver{
		dir:      dir,
		prompter: p,
		out:      out,
		resolver: NewResolver(dir, p, out),
		exporter: NewExporter(dir, out, "."),
	}
}

// Run loops until the operator declines to continue or input runs out. The
// only error it returns is a failed CSV write; everything else is handled
// inside the loop.
func (d *Driver) Run(ctx context.Context) error {
	for {
		name, err := d.prompter.Line("Group name: ")
		if err != nil {
			return nil
		}

		name = strings.TrimSpace(name)

		group, ok := d.resolver.FindGroup(ctx, name)
		if !ok {
			continue
		}

		if !d.prompter.Confirm(fmt.Sprintf("Use %s (%s)? [y/N] ", group.DisplayName, group.Kind())) {
			continue
		}

		members := ListMembers(ctx, d.dir, d.out, group)
		if len(members) > 0 {
			fmt.Fprintf(d.out, "%s has %d member(s):\n", group.DisplayName, len(members))
			ShowMembers(d.out, members)

			if d.prompter.Confirm("Export the members to CSV? [y/N] ") {
				if _, err := d.exporter.Export(ctx, group.DisplayName, members); err != nil {
					return err
				}
			}
		}

		if !d.prompter.Confirm("Look up another group? [y/N] ") {
			return nil
		}
	}
}
