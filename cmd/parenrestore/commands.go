package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func MainCommand(ctx context.Context) *cli.Command {
	cfg := &MainConfig{ctx: ctx}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "parenrestore").
		WithSynopsis("parenrestore [opts] [command [opts]]").
		WithDescription("parenrestore undoes the reformatting of unchanged Lisp forms in modified files of a git repository.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mainRun(cfg, cc, args)
		}).
		WithSubs(
			RunCommand(cfg),
			DiffCommand(cfg),
			FilesCommand(cfg),
			BlocksCommand(cfg),
			CanonCommand(cfg),
			DialectsCommand(cfg))
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("run").
		WithAliases("r").
		WithSynopsis("run [-n] [pathspec]").
		WithDescription("restore the formatting of unchanged forms in modified files, compared to HEAD").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
	cfg.Run = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-U n] [-stat] [pathspec]").
		WithDescription("show what run would change, without writing").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func FilesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("files").
		WithAliases("f").
		WithSynopsis("files [-w] [-d dialect] <old> <new>").
		WithDescription("restore the formatting of <old> in <new>, outside of git").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return files(cfg, cc, args)
		})
	cfg.Files = cmd
	return cmd
}

func BlocksCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BlocksConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("blocks").
		WithAliases("b").
		WithSynopsis("blocks [-d dialect] <file>").
		WithDescription("print the gap and form blocks of a file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return blocks(cfg, cc, args)
		})
	cfg.Blocks = cmd
	return cmd
}

func CanonCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CanonConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("canon").
		WithAliases("c", "fmt").
		WithSynopsis("canon [-d dialect] [files]").
		WithDescription("print files, or stdin, in paren mode canonical formatting").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return canon(cfg, cc, args)
		})
	cfg.Canon = cmd
	return cmd
}

func DialectsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DialectsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("dialects").
		WithSynopsis("dialects").
		WithDescription("list known dialects and their file extensions").
		WithRun(func(cc *cli.Context, args []string) error {
			return dialects(cfg, cc, args)
		})
	cfg.Dialects = cmd
	return cmd
}
