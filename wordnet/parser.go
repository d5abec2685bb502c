// Package wordnet parses Open English WordNet GWN-LMF JSON files into
// knowledge base entries. Pure function: file path in, entries out.
package wordnet

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
)

// ParseResult holds the parsed entries, in order of first appearance of
// each word.
type ParseResult struct {
	Entries []sense.Entry
	Stats   Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalSynsets int
	TotalEntries int
	TotalSenses  int

	// senses whose synset is missing or has no definition
	Skipped int
}

// GWN-LMF JSON internal types for deserialization.

type gwnDocument struct {
	Graph []gwnLexicon `json:"@graph"`
}

type gwnLexicon struct {
	Entries []gwnEntry  `json:"entry"`
	Synsets []gwnSynset `json:"synset"`
}

type gwnEntry struct {
	ID    string     `json:"@id"`
	Lemma gwnLemma   `json:"lemma"`
	Sense []gwnSense `json:"sense"`
}

type gwnLemma struct {
	WrittenForm  string `json:"writtenForm"`
	PartOfSpeech string `json:"partOfSpeech"`
}

type gwnSense struct {
	ID     string `json:"@id"`
	Synset string `json:"synset"`
}

type gwnSynset struct {
	ID           string    `json:"@id"`
	PartOfSpeech string    `json:"partOfSpeech"`
	Definition   []gwnText `json:"definition"`
	Example      []gwnText `json:"example"`
}

// gwnText is either a plain string or an object with a text field.
type gwnText string

func (t *gwnText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = gwnText(s)
		return nil
	}

	var obj struct {
		Text  string `json:"text"`
		Value string `json:"@value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	if obj.Text != "" {
		*t = gwnText(obj.Text)
	} else {
		*t = gwnText(obj.Value)
	}
	return nil
}

// Parse reads a GWN-LMF JSON file.
func Parse(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ParseReader(f)
}

// ParseReader reads a GWN-LMF JSON document. Every sense of a lemma becomes
// a Sense with the definitions of its synset as gloss and the synset
// examples as examples. Entries of the same word with different parts of
// speech are merged, in document order.
func ParseReader(r io.Reader) (ParseResult, error) {
	var doc gwnDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ParseResult{}, fmt.Errorf("decode JSON: %w", err)
	}

	var result ParseResult
	index := make(map[string]int)

	for _, lex := range doc.Graph {
		result.Stats.TotalEntries += len(lex.Entries)
		result.Stats.TotalSynsets += len(lex.Synsets)

		synsets := make(map[string]gwnSynset, len(lex.Synsets))
		for _, ss := range lex.Synsets {
			synsets[ss.ID] = ss
		}

		for _, entry := range lex.Entries {
			word := sense.Key(entry.Lemma.WrittenForm)
			if word == "" {
				continue
			}

			for _, gs := range entry.Sense {
				ss, ok := synsets[gs.Synset]
				gloss := joinTexts(ss.Definition, "; ")
				if !ok || gloss == "" {
					result.Stats.Skipped++
					continue
				}

				pos := entry.Lemma.PartOfSpeech
				if pos == "" {
					pos = ss.PartOfSpeech
				}

				examples := make([]string, 0, len(ss.Example))
				for _, ex := range ss.Example {
					if s := strings.TrimSpace(string(ex)); s != "" {
						examples = append(examples, s)
					}
				}

				i, seen := index[word]
				if !seen {
					i = len(result.Entries)
					index[word] = i
					result.Entries = append(result.Entries, sense.Entry{Word: word})
				}

				result.Entries[i].Senses = append(result.Entries[i].Senses, sense.Sense{
					ID:       gs.ID,
					Word:     word,
					Pos:      sent.ParseCategory(pos),
					Gloss:    gloss,
					Examples: examples,
				})
				result.Stats.TotalSenses++
			}
		}
	}

	return result, nil
}

func joinTexts(texts []gwnText, sep string) string {
	parts := make([]string, 0, len(texts))
	for _, t := range texts {
		if s := strings.TrimSpace(string(t)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}
