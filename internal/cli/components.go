package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/components"
	"github.com/katalvlaran/wordladder/internal/config"
)

// sampleSize caps the example words shown per component.
const sampleSize = 5

func newComponentsCommand() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "components [words]",
		Short: "Show the connected components of a dictionary",
		Long: `Splits the dictionary into groups of words that can reach each other
and lists the largest groups. Words in different groups have no ladder.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := getConfig(ctx)
			path, _ := splitDictionaryArg(cfg, args, 0)

			_, idx, err := loadIndex(getLogger(ctx), cfg, path)
			if err != nil {
				return err
			}
			labels, err := components.Label(idx, bfs.WithContext(ctx))
			if err != nil {
				return err
			}
			return renderComponents(cmd.OutOrStdout(), cfg.Output, idx.Len(), labels, top)
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of components to list (0 = all)")

	return cmd
}

// componentReport is the JSON shape of one component.
type componentReport struct {
	ID     int      `json:"id"`
	Size   int      `json:"size"`
	Sample []string `json:"sample"`
}

func renderComponents(w io.Writer, format string, words int, l *components.Labels, top int) error {
	sizes := l.Sizes()
	ids := l.Largest(top)
	reports := make([]componentReport, 0, len(ids))
	for _, id := range ids {
		members, err := l.Members(id)
		if err != nil {
			return err
		}
		if len(members) > sampleSize {
			members = members[:sampleSize]
		}
		reports = append(reports, componentReport{ID: id, Size: sizes[id], Sample: members})
	}

	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Words      int               `json:"words"`
			Count      int               `json:"count"`
			Components []componentReport `json:"components"`
		}{Words: words, Count: l.Count(), Components: reports})
	case config.OutputTable:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Rank", "Component", "Size", "Sample"})
		for i, r := range reports {
			t.AppendRow(table.Row{i + 1, r.ID, r.Size, strings.Join(r.Sample, " ")})
		}
		t.AppendFooter(table.Row{"", "total", words, fmt.Sprintf("%d components", l.Count())})
		t.Render()
		return nil
	default:
		if _, err := fmt.Fprintf(w, "%d words in %d components\n", words, l.Count()); err != nil {
			return err
		}
		for i, r := range reports {
			if _, err := fmt.Fprintf(w, "%3d. %6d words  %s\n", i+1, r.Size, strings.Join(r.Sample, " ")); err != nil {
				return err
			}
		}
		return nil
	}
}
