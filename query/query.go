package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/lesk/render"
	sent "github.com/revelaction/lesk/sentence"
	"github.com/revelaction/lesk/storage"
	"github.com/revelaction/lesk/wsd"
)

const (
	completionThreshold = 2
	maxCompletions      = 50

	// targetPrefix is the Character in the prompt that prefixes the target
	// word
	targetPrefix = "/"

	// sensesPrefix lists the senses of the word instead of disambiguating
	sensesPrefix = "?"
)

// Disambiguator is the pipeline the REPL runs each line through.
type Disambiguator interface {
	Disambiguate(ctx context.Context, sentence, target string) ([]wsd.Result, error)
	Tokenize(sentence string) sent.Sentence
}

var _ Disambiguator = (*wsd.Pipeline)(nil)

type Handler struct {
	Pipeline Disambiguator
	KB       storage.SenseReader
	Renderer *render.TextRenderer

	// sorted knowledge base words, for completion
	Words []string

	Out io.Writer
}

func NewHandler(p Disambiguator, kb storage.SenseReader, words []string, r *render.TextRenderer) *Handler {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	return &Handler{
		Pipeline: p,
		KB:       kb,
		Renderer: r,
		Words:    sorted,
		Out:      os.Stdout,
	}
}

// command is a parsed prompt line
type command struct {
	target   string
	sentence string

	// list senses of target
	senses bool
}

func (h *Handler) Run(ctx context.Context) error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, /word sentence: target, ?word: senses, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      📖 ", h.completer,
			prompt.OptionTitle("lesk query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Out, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintln(h.Out, "Prefix set to "+fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		in = strings.TrimSpace(in)
		if in == "quit" {
			return nil
		}

		if in == "" {
			continue
		}

		history = append(history, in)
		if err := h.Eval(ctx, in); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(h.Out, "Error: %v\n", err)
		}
	}
}

// Eval runs one prompt line and renders its output.
func (h *Handler) Eval(ctx context.Context, in string) error {
	cmd, err := parse(in)
	if err != nil {
		return err
	}

	if cmd.senses {
		senses, err := h.KB.Senses(ctx, cmd.target)
		if err != nil {
			return err
		}
		return h.Renderer.Senses(cmd.target, senses)
	}

	results, err := h.Pipeline.Disambiguate(ctx, cmd.sentence, cmd.target)
	if err != nil {
		return err
	}

	return h.Renderer.Results(cmd.sentence, h.Pipeline.Tokenize(cmd.sentence), results)
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	word := in.GetWordBeforeCursor()
	befCursor := in.TextBeforeCursor()

	// only the first word of the line can be a target or a senses query
	isFirst := !strings.Contains(strings.TrimLeft(befCursor, " "), " ")

	for _, p := range []string{targetPrefix, sensesPrefix} {
		if isFirst && strings.HasPrefix(word, p) {
			return h.completeWord(p, strings.TrimPrefix(word, p))
		}
	}

	if len([]rune(word)) < completionThreshold {
		return []prompt.Suggest{}
	}

	return h.completeWord("", strings.ToLower(word))
}

// completeWord suggests the knowledge base words starting with token.
func (h *Handler) completeWord(prefix, token string) []prompt.Suggest {
	s := []prompt.Suggest{}
	if token == "" {
		return s
	}

	i := sort.SearchStrings(h.Words, token)
	for ; i < len(h.Words) && len(s) < maxCompletions; i++ {
		if !strings.HasPrefix(h.Words[i], token) {
			break
		}
		s = append(s, prompt.Suggest{Text: prefix + h.Words[i]})
	}

	return s
}

// parse reads "/target sentence", "?word" or a plain sentence.
func parse(in string) (command, error) {
	in = strings.TrimSpace(in)
	if in == "" {
		return command{}, errors.New("no sentence given")
	}

	if rest, ok := strings.CutPrefix(in, sensesPrefix); ok {
		word := strings.TrimSpace(rest)
		if word == "" || strings.ContainsAny(word, " \t") {
			return command{}, errors.New("expected one word after " + sensesPrefix)
		}
		return command{target: strings.ToLower(word), senses: true}, nil
	}

	rest, ok := strings.CutPrefix(in, targetPrefix)
	if !ok {
		return command{sentence: in}, nil
	}

	target, sentence, _ := strings.Cut(rest, " ")
	sentence = strings.TrimSpace(sentence)
	if target == "" {
		return command{}, errors.New("no target word after " + targetPrefix)
	}

	if sentence == "" {
		return command{}, fmt.Errorf("no sentence given for target %q", target)
	}

	return command{target: target, sentence: sentence}, nil
}
