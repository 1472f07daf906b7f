package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func files(cfg *FilesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Files.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: files requires 2 args, got %v", cli.ErrUsage, args)
	}
	oldPath, newPath := args[0], args[1]
	d, err := dialectFor(cfg.Dialect, newPath)
	if err != nil {
		return err
	}
	oldText, err := os.ReadFile(oldPath)
	if err != nil {
		return err
	}
	info, err := os.Stat(newPath)
	if err != nil {
		return err
	}
	newText, err := os.ReadFile(newPath)
	if err != nil {
		return err
	}
	res, err := d.Reconciler().Reconcile(string(oldText), string(newText))
	if err != nil {
		return fmt.Errorf("error reconciling %s with %s: %w", newPath, oldPath, err)
	}
	cfg.log.Info("reconciled", "file", newPath, "dialect", d.Name, "restored", res.Count)
	if !cfg.Write {
		_, err := fmt.Fprint(cc.Out, res.Text)
		return err
	}
	if res.Count == 0 {
		return nil
	}
	return os.WriteFile(newPath, []byte(res.Text), info.Mode().Perm())
}
