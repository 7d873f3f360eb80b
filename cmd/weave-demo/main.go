// Command weave-demo mounts a small component tree into an in-memory
// document and prints the document every time it is committed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AnatoleLucet/weave"
	"github.com/AnatoleLucet/weave/config"
	"github.com/AnatoleLucet/weave/dom"
)

var errFinished = errors.New("finished")

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "weave-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		dir      = flag.String("config", ".", "directory containing "+config.FileName)
		interval = flag.Duration("interval", 500*time.Millisecond, "time between ticks")
		ticks    = flag.Int("ticks", 5, "number of ticks before exiting")
	)
	flag.Parse()

	cfg, err := config.LoadOptional(*dir)
	if err != nil {
		return err
	}
	if err := weave.Configure(cfg); err != nil {
		return err
	}

	weave.OnError(func(err *weave.PanicError) {
		fmt.Fprintf(os.Stderr, "weave-demo: %v\n%s", err, err.StackTrace)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := weave.NewLoopHost()
	weave.SetHost(host)

	doc := dom.NewDocument()
	out := newPrinter(os.Stdout)
	ready := make(chan func(int), 1)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return host.Run(ctx)
	})
	g.Go(func() error {
		var tick func(int)
		select {
		case tick = <-ready:
		case <-ctx.Done():
			return ctx.Err()
		}

		timer := time.NewTicker(*interval)
		defer timer.Stop()

		for n := 1; n <= *ticks; n++ {
			select {
			case <-timer.C:
				tick(n)
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		// wait for the last tick to be committed
		done := make(chan struct{})
		if !host.Post(func() { close(done) }) {
			return ctx.Err()
		}
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
		return errFinished
	})

	weave.Mount(doc.Root(), app, appProps{
		Title: "weave",
		Ready: func(tick func(int)) { ready <- tick },
		Commit: func() {
			out.print(doc)
		},
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errFinished) && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

type printer struct {
	w     io.Writer
	color bool
	n     int
}

func newPrinter(f *os.File) *printer {
	return &printer{w: f, color: config.IsTerminal(f)}
}

func (p *printer) print(doc *dom.Document) {
	p.n++
	if p.color {
		fmt.Fprintf(p.w, "\x1b[2m#%d\x1b[0m %s\n", p.n, doc.HTML())
		return
	}
	fmt.Fprintf(p.w, "#%d %s\n", p.n, doc.HTML())
}
