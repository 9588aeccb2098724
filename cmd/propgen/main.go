package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("propgen").
		WithSynopsis("propgen [opts] manifest.yaml").
		WithDescription("Generate synthetic field accessor bundles from a YAML manifest.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	OutputFile string `cli:"name=o desc='output file for generated Go code (default: <package>_props.go next to the manifest)'"`
	Diff       bool   `cli:"name=diff desc='print changes regeneration would apply instead of writing'"`
	Check      bool   `cli:"name=check desc='exit nonzero if the generated output is stale'"`
}
