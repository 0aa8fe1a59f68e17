package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wordladder/dictionary"
)

func newExtractWordsCommand() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "extract-words --len N <words> <extracted-words>",
		Short: "Extract words of certain length from a list of words",
		Long: `Reads a raw word list and writes the words of exactly --len letters,
lowercased, without duplicates and without entries containing anything but
ASCII letters. The output is a dictionary suitable for find-path.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := getLogger(cmd.Context())

			n, err := dictionary.ExtractFile(args[0], args[1], length)
			if err != nil {
				return err
			}
			log.Debug("words extracted",
				zap.String("source", args[0]),
				zap.String("target", args[1]),
				zap.Int("length", length),
				zap.Int("count", n),
			)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d words were extracted to %s\n", n, args[1])
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "len", 0, "length of the resulting words")
	_ = cmd.MarkFlagRequired("len")

	return cmd
}
