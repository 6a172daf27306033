package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/entrakit/groupexport/graph"
)

// Exporter writes the canonical (name, email) pairs of a member list to a
// CSV file named after the group.
type Exporter struct {
	dir       Directory
	out       io.Writer
	targetDir string
}

func NewExporter(dir Directory, out io.Writer, targetDir string) *Exporter {
	if targetDir == "" {
		targetDir = "."
	}

	return &Exporter{
		dir:       dir,
		out:       out,
		targetDir: targetDir,
	}
}

// Export re-resolves each member's recipient record and writes the pairs
// that resolved to <groupName>.csv. Members without an email address and
// members whose lookup fails are reported and skipped; one bad record never
// aborts the batch. Only a failure to write the file itself is returned.
func (e *Exporter) Export(ctx context.Context, groupName string, members []*graph.Member) (string, error) {
	rows := make([][]string, 0, len(members))

	for _, m := range members {
		if strings.TrimSpace(m.Mail) == "" {
			fmt.Fprintf(e.out, "Skipping %s: no email address on record.\n", m.DisplayName)
			continue
		}

		// The mail field on a membership listing can be stale; the
		// recipient lookup is the authoritative record.
		rec, err := e.dir.GetRecipient(ctx, m.Mail)
		if err != nil {
			fmt.Fprintf(e.out, "Could not resolve the recipient for %s: %v\n", m.DisplayName, err)
			continue
		}

		rows = append(rows, []string{rec.DisplayName, rec.Mail})
	}

	path := filepath.Join(e.targetDir, groupName+".csv")

	if err := writeCsv(path, rows); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	fmt.Fprintf(e.out, "Wrote %d member(s) to %s\n", len(rows), abs)

	return abs, nil
}

func writeCsv(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err = w.Write([]string{"Name", "Email"}); err == nil {
		err = w.WriteAll(rows)
	}

	if err != nil {
		f.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	w.Flush()

	if err = w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	return nil
}
