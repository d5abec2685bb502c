package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/lesk/sense"
	sent "github.com/revelaction/lesk/sentence"
	"github.com/revelaction/lesk/stat"
	"github.com/revelaction/lesk/tokenize"
	"github.com/revelaction/lesk/wsd"
)

const (
	Defaultformat = "all"
	separatorLen  = 40

	// NoResults is printed when a sentence has no disambiguated word.
	NoResults = "No ambiguous words found or no valid senses identified."
)

var (
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

// Renderer writes disambiguation results and knowledge base entries.
type Renderer interface {
	Results(text string, tokens sent.Sentence, results []wsd.Result) error
	Senses(word string, senses []sense.Sense) error
	Stats(stats stat.Stats) error
}

func SupportedFormats() []string {
	return []string{"all", "short", "sentence"}
}

type TextRenderer struct {
	W io.Writer

	HasColor bool

	// HasPrefix prints the score and category before each result in the
	// short format
	HasPrefix bool

	// Format determines the layout of the results
	//
	// all: one block per result with definition and examples
	// short: one line per result
	// sentence: the sentence with the chosen sense after each word
	Format string
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w, Format: Defaultformat}
}

func (r *TextRenderer) Results(text string, tokens sent.Sentence, results []wsd.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(r.W, NoResults)
		return err
	}

	var str strings.Builder
	switch r.Format {
	case "short":
		for _, res := range results {
			fmt.Fprintf(&str, "%s%s %s %s\n", r.prefix(res), r.color(res.Word, Green256), r.color(res.SenseID, Yellow256), res.Definition)
		}
	case "sentence":
		str.WriteString(r.sentence(text, tokens, results, true))
		str.WriteString("\n")
	default:
		separator := strings.Repeat("-", separatorLen)
		fmt.Fprintf(&str, "%s\n\n", r.sentence(text, tokens, results, false))
		str.WriteString("Word Sense Disambiguation Results:\n")
		str.WriteString(separator + "\n")
		for _, res := range results {
			fmt.Fprintf(&str, "Word: %s\n", r.color(res.Word, Green256))
			fmt.Fprintf(&str, "Sense: %s\n", r.color(res.SenseID, Yellow256))
			fmt.Fprintf(&str, "Definition: %s\n", res.Definition)
			if len(res.Examples) > 0 {
				str.WriteString("Examples:\n")
				for _, ex := range res.Examples {
					fmt.Fprintf(&str, "  - %s\n", ex)
				}
			}
			str.WriteString(separator + "\n")
		}
	}

	_, err := io.WriteString(r.W, str.String())
	return err
}

// Senses lists every sense of the word in knowledge base order.
func (r *TextRenderer) Senses(word string, senses []sense.Sense) error {
	if len(senses) == 0 {
		_, err := fmt.Fprintf(r.W, "No senses found for %q.\n", word)
		return err
	}

	var str strings.Builder
	for i, s := range senses {
		fmt.Fprintf(&str, "%2d %s %s\n", i+1, r.color(s.ID, Yellow256), r.color("("+string(s.Pos)+")", Grey256))
		fmt.Fprintf(&str, "   %s\n", s.Gloss)
		for _, ex := range s.Examples {
			fmt.Fprintf(&str, "   - %s\n", ex)
		}
	}

	_, err := io.WriteString(r.W, str.String())
	return err
}

func (r *TextRenderer) Stats(stats stat.Stats) error {
	var str strings.Builder
	fmt.Fprintf(&str, "Words:              %d\n", stats.NumWords)
	fmt.Fprintf(&str, "Senses:             %d\n", stats.NumSenses)
	fmt.Fprintf(&str, "Ambiguous words:    %d\n", stats.NumAmbiguous)
	fmt.Fprintf(&str, "Senses w/ examples: %d\n", stats.NumWithExamples)
	fmt.Fprintf(&str, "Senses per word:    %.2f\n", stats.SensesPerWordMean)
	if stats.MaxSensesWord != "" {
		fmt.Fprintf(&str, "Most senses:        %s (%d)\n", stats.MaxSensesWord, stats.MaxSenses)
	}

	for _, c := range append(sent.Categories(), sent.Other) {
		if n := stats.PosDis[c]; n > 0 {
			fmt.Fprintf(&str, "  %-10s %d\n", c, n)
		}
	}

	_, err := io.WriteString(r.W, str.String())
	return err
}

// sentence returns the original text with the tokens of the results
// highlighted. With annotate, the chosen sense id follows the first
// occurrence of each word. Tokens carry rune offsets into text.
func (r *TextRenderer) sentence(text string, tokens sent.Sentence, results []wsd.Result, annotate bool) string {
	chosen := map[string]string{}
	for _, res := range results {
		chosen[res.Word] = res.SenseID
	}

	runes := []rune(text)
	var str strings.Builder
	var last int
	for i, token := range tokens {
		if token.Idx < last || token.Idx > len(runes) {
			continue
		}

		end := tokenize.WordEnd(runes, token.Idx)
		str.WriteString(string(runes[last:token.Idx]))

		word := string(runes[token.Idx:end])
		id, ok := chosen[token.Text]
		switch {
		case ok && annotate && r.isFirst(tokens, i):
			str.WriteString(r.color(word, Green256))
			str.WriteString(r.color("["+id+"]", Grey256))
		case ok:
			str.WriteString(r.color(word, Green256))
		default:
			str.WriteString(word)
		}

		last = end
	}

	str.WriteString(string(runes[last:]))
	return strings.ReplaceAll(str.String(), "\n", " ")
}

// isFirst reports whether token i is the first occurrence of its text.
func (r *TextRenderer) isFirst(tokens sent.Sentence, i int) bool {
	tok, _ := tokens.Find(tokens[i].Text)
	return tok.Index == tokens[i].Index
}

func (r *TextRenderer) prefix(res wsd.Result) string {
	if !r.HasPrefix {
		return ""
	}

	pos := res.Pos
	if pos == "" {
		pos = sent.Other
	}

	return fmt.Sprintf("[%2d %s] ", res.Score, pos.Letter())
}

func (r *TextRenderer) color(s, color string) string {
	if !r.HasColor {
		return s
	}

	return color + s + Off
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *TextRenderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *TextRenderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}

var _ Renderer = (*TextRenderer)(nil)
