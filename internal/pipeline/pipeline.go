// Package pipeline runs the polish flow: fetch each note in a folder,
// rewrite it, render the result to canonical plain text, wrap it in a
// display fragment and store it as a new note. Per-note failures are logged
// and skipped; the run continues.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/mithrel/notepolish/internal/enhance"
	"github.com/mithrel/notepolish/internal/fragment"
	"github.com/mithrel/notepolish/internal/notebook"
	"github.com/mithrel/notepolish/internal/render"
)

type Options struct {
	SourceFolder  string
	DestFolder    string
	NamePrefix    string
	SkipUnchanged bool

	// DryRun renders and wraps but stores nothing; fragments go to Out.
	DryRun bool
	Out    io.Writer
}

type Report struct {
	Processed int
	Skipped   int
	Unchanged int
}

// Process renders one markdown body into canonical plain text and its
// display fragment. Pure; safe to call concurrently.
func Process(markdown string) (plain, frag string) {
	plain = render.Markdown(markdown)
	return plain, fragment.Wrap(plain)
}

// Run polishes every note in the source folder into the destination folder.
// Only a failure to list the source or prepare the destination aborts the
// run; everything per-note is skip-and-continue.
func Run(ctx context.Context, logger *log.Logger, src notebook.Source, rw enhance.Rewriter, sink notebook.Sink, opts Options) (Report, error) {
	var rep Report

	if !opts.DryRun {
		if err := sink.EnsureFolder(ctx, opts.DestFolder); err != nil {
			return rep, fmt.Errorf("ensure folder %q: %w", opts.DestFolder, err)
		}
	}
	notes, err := src.Notes(ctx, opts.SourceFolder)
	if err != nil {
		return rep, fmt.Errorf("list notes in %q: %w", opts.SourceFolder, err)
	}

	for _, n := range notes {
		body, err := src.Body(ctx, opts.SourceFolder, n.Name)
		if err != nil {
			logger.Printf("skip %q: read: %v", n.Name, err)
			rep.Skipped++
			continue
		}
		n.Body = body
		hash := n.ContentHash()

		if opts.SkipUnchanged && !opts.DryRun {
			done, err := sink.HasPolished(ctx, hash)
			if err != nil {
				logger.Printf("skip %q: ledger: %v", n.Name, err)
				rep.Skipped++
				continue
			}
			if done {
				rep.Unchanged++
				continue
			}
		}

		enhanced, err := rw.Rewrite(ctx, body)
		if err != nil {
			logger.Printf("skip %q: rewrite: %v", n.Name, err)
			rep.Skipped++
			continue
		}

		_, frag := Process(enhanced)
		name := opts.NamePrefix + n.Name

		if opts.DryRun {
			if opts.Out != nil {
				fmt.Fprintf(opts.Out, "%s\n%s\n", name, frag)
			}
			rep.Processed++
			continue
		}
		if err := sink.CreateNote(ctx, opts.DestFolder, name, frag, hash); err != nil {
			logger.Printf("skip %q: store: %v", n.Name, err)
			rep.Skipped++
			continue
		}
		logger.Printf("polished %q -> %q", n.Name, name)
		rep.Processed++
	}
	return rep, nil
}
