package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/parenrestore/block"
	"github.com/signadot/parenrestore/dialect"
)

func blocks(cfg *BlocksConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Blocks.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: blocks requires 1 arg, got %v", cli.ErrUsage, args)
	}
	d, err := dialectFor(cfg.Dialect, args[0])
	if err != nil {
		return err
	}
	text, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	l, err := block.Segment(string(text), d.Scanner())
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	lines := block.SplitLines(string(text))
	for _, b := range l {
		preview := ""
		if !b.IsEmpty() {
			preview = strings.TrimSpace(lines[b.Start])
			if b.Len() > 1 {
				preview += " …"
			}
		}
		fmt.Fprintf(cc.Out, "%-4s %-10s %s\n", b.Kind, b.Span, preview)
	}
	return nil
}

func canon(cfg *CanonConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Canon.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		name := cfg.Dialect
		if name == "" {
			name = dialect.Clojure.Name
		}
		d, err := dialect.Get(name)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		text, err := io.ReadAll(cc.In)
		if err != nil {
			return err
		}
		return canonText(cc.Out, d, "-", string(text))
	}
	for _, arg := range args {
		d, err := dialectFor(cfg.Dialect, arg)
		if err != nil {
			return err
		}
		text, err := os.ReadFile(arg)
		if err != nil {
			return err
		}
		if err := canonText(cc.Out, d, arg, string(text)); err != nil {
			return err
		}
	}
	return nil
}

func canonText(w io.Writer, d *dialect.Dialect, name, text string) error {
	res, err := d.Canonicalizer().Canonicalize(text)
	if err != nil {
		return fmt.Errorf("error formatting %s: %w", name, err)
	}
	_, err = io.WriteString(w, res)
	return err
}

func dialects(cfg *DialectsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dialects.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: dialects takes no args", cli.ErrUsage)
	}
	all := dialect.All()
	for _, name := range dialect.Names() {
		fmt.Fprintf(cc.Out, "%-12s %s\n", name, strings.Join(all[name].Extensions, " "))
	}
	return nil
}
