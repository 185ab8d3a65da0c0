// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differences

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/tfctl/flatdiff/internal/flatten"
	"github.com/tfctl/flatdiff/internal/log"
)

// Reporter receives the outcome of a comparison. diagnostic is empty when
// passed is true.
type Reporter interface {
	Report(passed bool, name string, diagnostic string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(passed bool, name string, diagnostic string)

func (f ReporterFunc) Report(passed bool, name string, diagnostic string) {
	f(passed, name, diagnostic)
}

var (
	defaultMu       sync.RWMutex
	defaultReporter Reporter

	// fallbackOut and warnOut are where the plain reporter writes.
	fallbackOut io.Writer = os.Stdout
	warnOut     io.Writer = os.Stderr
	warnOnce    sync.Once
	fallbackMu  sync.Mutex
)

// SetDefaultReporter installs the reporter used when Options.Reporter is nil.
// Call it once at startup; nil restores the plain fallback.
func SetDefaultReporter(r Reporter) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultReporter = r
}

func reporterFor(opts Options) Reporter {
	if opts.Reporter != nil {
		return opts.Reporter
	}

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultReporter != nil {
		return defaultReporter
	}
	return plainReporter{}
}

// TB reports failures through t.Errorf.
func TB(t testing.TB) Reporter {
	return tbReporter{t: t}
}

type tbReporter struct {
	t testing.TB
}

func (r tbReporter) Report(passed bool, name string, diagnostic string) {
	r.t.Helper()
	if passed {
		return
	}

	if name == "" {
		name = "values differ"
	}
	if diagnostic == "" {
		r.t.Errorf("%s", name)
		return
	}
	r.t.Errorf("%s\n%s", name, diagnostic)
}

// TAPReporter writes Test Anything Protocol lines. It is safe for concurrent
// use.
type TAPReporter struct {
	mu sync.Mutex
	w  io.Writer
	n  int
}

// TAP returns a TAPReporter writing to w.
func TAP(w io.Writer) *TAPReporter {
	return &TAPReporter{w: w}
}

func (r *TAPReporter) Report(passed bool, name string, diagnostic string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.n++
	status := "ok"
	if !passed {
		status = "not ok"
	}

	if name != "" {
		fmt.Fprintf(r.w, "%s %d - %s\n", status, r.n, name)
	} else {
		fmt.Fprintf(r.w, "%s %d\n", status, r.n)
	}
	writeDiagnostic(r.w, diagnostic)
}

// Done writes the trailing plan line for everything reported so far.
func (r *TAPReporter) Done() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "1..%d\n", r.n)
}

// plainReporter is used when nothing else was configured. It warns once per
// process and then prints bare ok/not ok lines.
type plainReporter struct{}

func (plainReporter) Report(passed bool, name string, diagnostic string) {
	warnOnce.Do(func() {
		log.Warnf("no reporter configured, using plain output")
		fmt.Fprintln(warnOut, "flatdiff: no reporter configured; printing plain ok/not ok lines")
	})

	status := "ok"
	if !passed {
		status = "not ok"
	}

	fallbackMu.Lock()
	defer fallbackMu.Unlock()
	if name != "" {
		fmt.Fprintf(fallbackOut, "%s - %s\n", status, name)
	} else {
		fmt.Fprintln(fallbackOut, status)
	}
	writeDiagnostic(fallbackOut, diagnostic)
}

// writeDiagnostic writes each line of diagnostic prefixed with "# ".
func writeDiagnostic(w io.Writer, diagnostic string) {
	for line := range flatten.Lines(diagnostic) {
		fmt.Fprintf(w, "# %s\n", strings.TrimSuffix(line, "\n"))
	}
}
