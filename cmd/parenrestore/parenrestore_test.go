package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"

	"github.com/signadot/parenrestore/batch"
	"github.com/signadot/parenrestore/dialect"
)

func TestDialectFor(t *testing.T) {
	d, err := dialectFor("", "x/y.el")
	if err != nil || d != dialect.EmacsLisp {
		t.Errorf("by extension: %v, %v", d, err)
	}
	d, err = dialectFor("janet", "x/y.el")
	if err != nil || d != dialect.Janet {
		t.Errorf("by name: %v, %v", d, err)
	}
	if _, err := dialectFor("", "notes.txt"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want usage error", err)
	}
	if _, err := dialectFor("cobol", "x.clj"); !errors.Is(err, dialect.ErrUnknownDialect) {
		t.Errorf("got %v, want ErrUnknownDialect", err)
	}
}

func TestStatus(t *testing.T) {
	o := &batch.Outcome{Action: batch.Restored, Count: 2}
	if got := status(o, false); got != "restored 2 blocks" {
		t.Errorf("got %q", got)
	}
	o = &batch.Outcome{Action: batch.Skipped}
	if got := status(o, true); got != "skipped" {
		t.Errorf("got %q", got)
	}
}

func TestCanonText(t *testing.T) {
	var buf bytes.Buffer
	if err := canonText(&buf, dialect.Clojure, "-", "(a\n  )\n"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "(a)\n  \n" {
		t.Errorf("got %q", buf.String())
	}
	err := canonText(&buf, dialect.Clojure, "x.clj", "(a")
	if err == nil || !strings.Contains(err.Error(), "x.clj") {
		t.Errorf("got %v", err)
	}
}

func TestLogDropsTimeAndInfo(t *testing.T) {
	var buf bytes.Buffer
	newLog(&buf, false).Info("reconciled", "file", "a.clj")
	if got := buf.String(); got != "msg=reconciled file=a.clj\n" {
		t.Errorf("got %q", got)
	}
	buf.Reset()
	newLog(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug record logged without -v: %q", buf.String())
	}
}
