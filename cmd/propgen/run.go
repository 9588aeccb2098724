package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/prop/gen"
)

func run(cfg *Config, cc *cli.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: propgen requires one argument, a manifest file", cli.ErrUsage)
	}
	manifestPath := args[0]
	d, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", manifestPath, err)
	}
	m, err := gen.Load(d)
	if err != nil {
		return err
	}
	rendered, err := gen.Render(m)
	if err != nil {
		return err
	}

	outPath := cfg.OutputFile
	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(manifestPath), m.Package+"_props.go")
	}

	if cfg.Diff || cfg.Check {
		old, err := os.ReadFile(outPath)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("could not read %q: %w", outPath, err)
		}
		diff := gen.Diff(old, rendered, isatty.IsTerminal(os.Stdout.Fd()))
		if diff == "" {
			return nil
		}
		if cfg.Diff {
			fmt.Fprintln(cc.Out, diff)
		}
		if cfg.Check {
			fmt.Fprintf(cc.Out, "%s is stale\n", outPath)
			return cli.ExitCodeErr(1)
		}
		return nil
	}

	if err := os.WriteFile(outPath, rendered, 0o644); err != nil {
		return fmt.Errorf("could not write %q: %w", outPath, err)
	}
	return nil
}
