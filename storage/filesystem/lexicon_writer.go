package filesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/revelaction/lesk/sense"
	"github.com/revelaction/lesk/storage"
)

// LexiconWriter appends entries to a single lexicon JSON file.
type LexiconWriter struct {
	path string
}

var _ storage.SenseWriter = (*LexiconWriter)(nil)

func NewLexiconWriter(path string) *LexiconWriter {
	return &LexiconWriter{path: path}
}

// Write appends entries to the file, creating it if it does not exist.
// Generated ids follow the senses the file already holds for the word.
func (w *LexiconWriter) Write(_ context.Context, entries []sense.Entry) error {
	existing, err := ReadLexicon(w.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	counts := make(map[string]int)
	for _, e := range existing {
		counts[sense.Key(e.Word)] += len(e.Senses)
	}

	for _, e := range entries {
		word := sense.Key(e.Word)
		n, err := e.NormalizeFrom(counts[word])
		if err != nil {
			return err
		}
		counts[word] += len(n.Senses)
		existing = append(existing, n)
	}

	return WriteLexicon(w.path, existing)
}

// WriteLexicon writes entries to path as a JSON array, one entry per line.
func WriteLexicon(path string, entries []sense.Entry) error {
	if entries == nil {
		entries = []sense.Entry{}
	}

	var buf bytes.Buffer
	buf.WriteString("[")
	for i, e := range entries {
		line, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n\t")
		buf.Write(line)
	}
	buf.WriteString("\n]\n")

	return os.WriteFile(path, buf.Bytes(), 0644)
}
