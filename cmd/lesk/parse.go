package main

import (
	"errors"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/lesk/config"
	"github.com/revelaction/lesk/logger"
	"github.com/revelaction/lesk/render"
)

type DisambiguateOptions struct {
	Sentence string
	Word     string
	Format   string
	Style    string
	POS      bool
	NoColor  bool
}

type SensesOptions struct {
	Word    string
	Format  string
	NoColor bool
}

type QueryOptions struct {
	Style    string
	NoColor  bool
	NoPrefix bool
}

type ImportOptions struct {
	From    string
	To      string
	WordNet bool
}

type ExportOptions struct {
	To string
}

type StatOptions struct {
	Format string
}

type ServeOptions struct {
	Addr string
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "output format: text or json",
	}
}

func noColorFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "no-color",
		Usage: "do not color the output",
	}
}

func styleFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "style",
		Value: render.Defaultformat,
		Usage: "text layout: " + strings.Join(render.SupportedFormats(), ", "),
	}
}

func newApp(ui UI) *cli.App {
	e := &env{pool: &Pool{}}

	return &cli.App{
		Name:                 "lesk",
		Usage:                "word sense disambiguation with the simplified Lesk algorithm",
		Version:              BuildTag,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "lexicon",
				Aliases: []string{"l"},
				Usage:   "knowledge base: JSON file or directory, SQLite file or postgres:// DSN",
			},
			&cli.BoolFlag{
				Name:  "lemmatize",
				Usage: "look up the lemma of words without senses",
			},
			&cli.BoolFlag{
				Name:  "stem",
				Usage: "compare stems instead of words",
			},
			&cli.BoolFlag{
				Name:  "no-stopwords",
				Usage: "keep stopwords in context and signatures",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "console or json",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Log)
			if err != nil {
				return err
			}

			e.cfg = cfg
			e.log = log
			return nil
		},
		After: func(c *cli.Context) error {
			if e.log == nil {
				return nil
			}
			return e.close()
		},
		Commands: []*cli.Command{
			{
				Name:      "disambiguate",
				Aliases:   []string{"d"},
				Usage:     "choose the sense of the ambiguous words of a sentence",
				ArgsUsage: "<sentence>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "word",
						Aliases: []string{"w"},
						Usage:   "disambiguate only this word",
					},
					formatFlag(),
					styleFlag(),
					&cli.BoolFlag{
						Name:  "pos",
						Usage: "restrict senses to the tagged part of speech",
					},
					noColorFlag(),
				},
				Action: func(c *cli.Context) error {
					sentence := strings.Join(c.Args().Slice(), " ")
					if strings.TrimSpace(sentence) == "" {
						return errors.New("missing sentence")
					}

					opts := DisambiguateOptions{
						Sentence: sentence,
						Word:     c.String("word"),
						Format:   c.String("format"),
						Style:    c.String("style"),
						POS:      c.Bool("pos"),
						NoColor:  c.Bool("no-color"),
					}
					return disambiguateCommand(c.Context, opts, e, ui)
				},
			},
			{
				Name:      "senses",
				Usage:     "list the senses of a word",
				ArgsUsage: "<word>",
				Flags:     []cli.Flag{formatFlag(), noColorFlag()},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("expected one word")
					}

					opts := SensesOptions{
						Word:    c.Args().First(),
						Format:  c.String("format"),
						NoColor: c.Bool("no-color"),
					}
					return sensesCommand(c.Context, opts, e, ui)
				},
			},
			{
				Name:  "query",
				Usage: "interactive disambiguation prompt",
				Flags: []cli.Flag{
					styleFlag(),
					noColorFlag(),
					&cli.BoolFlag{
						Name:  "no-prefix",
						Usage: "do not print the score before results",
					},
				},
				Action: func(c *cli.Context) error {
					opts := QueryOptions{
						Style:    c.String("style"),
						NoColor:  c.Bool("no-color"),
						NoPrefix: c.Bool("no-prefix"),
					}
					return queryCommand(c.Context, opts, e, ui)
				},
			},
			{
				Name:  "import",
				Usage: "copy a lexicon or a WordNet file into a knowledge base",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "lexicon JSON file or directory, or WordNet JSON file with --wordnet",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "SQLite file, JSON file or postgres:// DSN",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "wordnet",
						Usage: "read --from as a GWN-LMF JSON WordNet",
					},
				},
				Action: func(c *cli.Context) error {
					opts := ImportOptions{
						From:    c.String("from"),
						To:      c.String("to"),
						WordNet: c.Bool("wordnet"),
					}
					return importCommand(c.Context, opts, e, ui)
				},
			},
			{
				Name:  "export",
				Usage: "write the knowledge base as a lexicon JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "to",
						Usage:    "destination JSON file",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					return exportCommand(c.Context, ExportOptions{To: c.String("to")}, e, ui)
				},
			},
			{
				Name:  "migrate",
				Usage: "apply the PostgreSQL schema migrations",
				Action: func(c *cli.Context) error {
					return migrateCommand(c.Context, e, ui)
				},
			},
			{
				Name:  "stat",
				Usage: "knowledge base statistics",
				Flags: []cli.Flag{formatFlag()},
				Action: func(c *cli.Context) error {
					return statCommand(c.Context, StatOptions{Format: c.String("format")}, e, ui)
				},
			},
			{
				Name:  "serve",
				Usage: "serve the JSON HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "listen address (default from configuration)",
					},
				},
				Action: func(c *cli.Context) error {
					return serveCommand(c.Context, ServeOptions{Addr: c.String("addr")}, e, ui)
				},
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}

// loadConfig reads the configuration and applies the global flags on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("lexicon") {
		cfg.Lexicon.Path = c.String("lexicon")
	}
	if c.IsSet("lemmatize") {
		cfg.Lexicon.Lemmatize = c.Bool("lemmatize")
	}
	if c.IsSet("stem") {
		cfg.Lesk.Stem = c.Bool("stem")
	}
	if c.IsSet("no-stopwords") {
		cfg.Lesk.NoStopwords = c.Bool("no-stopwords")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newRenderer returns the renderer for the --format and --style flags.
func newRenderer(format, style string, color bool, ui UI) (render.Renderer, error) {
	switch format {
	case "json":
		return render.NewJSONRenderer(ui.Out), nil
	case "text", "":
	default:
		return nil, errors.New("unknown format " + format + ", expected text or json")
	}

	r, err := newTextRenderer(style, ui)
	if err != nil {
		return nil, err
	}
	r.HasColor = color
	return r, nil
}

func newTextRenderer(style string, ui UI) (*render.TextRenderer, error) {
	r := render.NewTextRenderer(ui.Out)
	if style == "" {
		return r, nil
	}

	for _, f := range render.SupportedFormats() {
		if f == style {
			r.Format = style
			return r, nil
		}
	}

	return nil, errors.New("unknown style " + style + ", expected one of " + strings.Join(render.SupportedFormats(), ", "))
}
