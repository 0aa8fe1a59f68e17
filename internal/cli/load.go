package cli

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/wordindex"
)

// loadIndex reads the dictionary at path and indexes it.
func loadIndex(log *zap.Logger, cfg *config.Config, path string) (*dictionary.Dictionary, *wordindex.Index, error) {
	began := time.Now()
	dict, err := dictionary.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	loaded := time.Now()

	idx, err := wordindex.Build(dict.Words(), wordindex.WithWildcard(cfg.WildcardByte()))
	if err != nil {
		return nil, nil, err
	}
	log.Debug("dictionary indexed",
		zap.String("path", path),
		zap.Int("words", idx.Len()),
		zap.Int("word_length", idx.WordLen()),
		zap.Int("patterns", idx.Buckets()),
		zap.Duration("load", loaded.Sub(began)),
		zap.Duration("build", time.Since(loaded)),
	)
	return dict, idx, nil
}

// splitDictionaryArg pops an optional leading dictionary path off args,
// falling back to the configured one.
func splitDictionaryArg(cfg *config.Config, args []string, want int) (string, []string) {
	if len(args) > want {
		return args[0], args[1:]
	}
	return cfg.Dictionary, args
}
