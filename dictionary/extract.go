package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Extract copies the words of exactly length letters from a raw list to w,
// one per line. Words are lowercased; lines with anything but ASCII letters
// are skipped, as are repeats. It returns the number of words written.
func Extract(r io.Reader, w io.Writer, length int) (int, error) {
	if length < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	sc := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	seen := make(map[string]struct{})
	n := 0
	for sc.Scan() {
		word := strings.ToLower(strings.TrimSpace(sc.Text()))
		if len(word) != length || !IsWord(word) {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return n, fmt.Errorf("dictionary: write: %w", err)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("dictionary: read: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("dictionary: write: %w", err)
	}
	return n, nil
}

// ExtractFile runs Extract from the file src into dst, truncating dst.
func ExtractFile(src, dst string, length int) (n int, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("dictionary: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("dictionary: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("dictionary: %w", cerr)
		}
	}()

	return Extract(in, out, length)
}
