// Command parsefile extracts and parses local PDF/DOCX resumes and prints one
// JSON document per input file, in input order.
//
//	parsefile [-workers N] [-pretty] [-lexicon path] [-nlp lexical|prose|none] files...
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/artem13815/resumeparser/pkg/extract"
	"github.com/artem13815/resumeparser/pkg/lexicon"
	"github.com/artem13815/resumeparser/pkg/nlp"
	"github.com/artem13815/resumeparser/pkg/resume"
)

type output struct {
	File   string         `json:"file"`
	Record *resume.Record `json:"record,omitempty"`
	Error  string         `json:"error,omitempty"`
}

var errSomeFailed = errors.New("some files could not be parsed")

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errSomeFailed) {
			fmt.Fprintf(os.Stderr, "parsefile: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("parsefile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	workers := fs.Int("workers", runtime.NumCPU(), "files parsed concurrently")
	pretty := fs.Bool("pretty", false, "indent JSON output")
	lexPath := fs.String("lexicon", os.Getenv("LEXICON_PATH"), "YAML file overriding the built-in keyword tables")
	model := fs.String("nlp", "lexical", "entity recognizer: lexical, prose or none")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		return errors.New("no input files")
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	lx, err := lexicon.Load(*lexPath)
	if err != nil {
		return err
	}
	recognizer, err := nlp.New(*model, lx)
	if err != nil {
		return err
	}
	parser := resume.NewParser(resume.WithLexicon(lx), resume.WithRecognizer(recognizer), resume.WithLogger(log))
	extractor := extract.New()

	results := make([]output, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*workers, 1))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = parseFile(extractor, parser, path)
			if results[i].Error != "" {
				log.Warn("parse failed", "file", path, "err", results[i].Error)
			}
			// best-effort: one bad file does not stop the others
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	failed := false
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
		failed = failed || r.Error != ""
	}
	if failed {
		return errSomeFailed
	}
	return nil
}

func parseFile(e *extract.Extractor, p *resume.Parser, path string) output {
	out := output{File: path}
	data, err := os.ReadFile(path)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	text, links, err := e.Extract(data, path)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	rec := p.Parse(text, links)
	out.Record = &rec
	return out
}
