package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/ladder"
)

func newFindPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find-path [words] <start-word> <end-word>",
		Short: "Find a path across two words",
		Long: `Loads the dictionary (the optional first argument, or --dictionary)
and prints the shortest ladder from start-word to end-word. Both words must
be in the dictionary.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runFindPath,
	}
}

func runFindPath(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfig(ctx)
	log := getLogger(ctx)
	out := cmd.OutOrStdout()

	path, args := splitDictionaryArg(cfg, args, 2)
	start, end := args[0], args[1]

	dict, idx, err := loadIndex(log, cfg, path)
	if err != nil {
		return err
	}
	if cfg.Output == config.OutputText {
		_, _ = fmt.Fprintf(out, "%d words were loaded\n", dict.Len())
	}

	res, err := ladder.FindPath(idx, dict, start, end,
		ladder.WithContext(ctx),
		ladder.WithWorkers(cfg.Workers),
		ladder.WithLogger(log),
	)
	if err != nil {
		var cfgErr *ladder.ConfigError
		if errors.As(err, &cfgErr) && errors.Is(err, ladder.ErrWordNotFound) {
			return fmt.Errorf("'%s' is not in the dictionary", cfgErr.Word)
		}
		return err
	}

	return renderPath(out, cfg.Output, res)
}

// pathReport is the JSON shape of a find-path result.
type pathReport struct {
	Found    bool     `json:"found"`
	Steps    int      `json:"steps"`
	Path     []string `json:"path"`
	Meeting  string   `json:"meeting,omitempty"`
	Expanded int      `json:"expanded"`
}

func renderPath(w io.Writer, format string, res *ladder.Result) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pathReport{
			Found:    res.Found,
			Steps:    res.Len(),
			Path:     res.Path,
			Meeting:  res.Meeting,
			Expanded: res.Stats.Expanded,
		})
	case config.OutputTable:
		if !res.Found {
			_, err := fmt.Fprintln(w, "no path found")
			return err
		}
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"#", "Word", "Changed"})
		for i, word := range res.Path {
			changed := ""
			if i > 0 {
				changed = strconv.Itoa(changedPosition(res.Path[i-1], word) + 1)
			}
			t.AppendRow(table.Row{i, word, changed})
		}
		t.AppendFooter(table.Row{"", "steps", res.Len()})
		t.Render()
		return nil
	default:
		if !res.Found {
			_, err := fmt.Fprintln(w, "no path found")
			return err
		}
		if _, err := fmt.Fprintln(w, "found path:"); err != nil {
			return err
		}
		for _, word := range res.Path {
			if _, err := fmt.Fprintf(w, "  - %s\n", word); err != nil {
				return err
			}
		}
		return nil
	}
}

// changedPosition returns the first index where a and b differ, or -1.
func changedPosition(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
