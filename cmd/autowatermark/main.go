package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/abiosoft/ishell"

	appcontext "github.com/SeakMengs/AutoWatermark/internal/app_context"
	"github.com/SeakMengs/AutoWatermark/internal/cli"
	"github.com/SeakMengs/AutoWatermark/internal/config"
	"github.com/SeakMengs/AutoWatermark/internal/env"
	"github.com/SeakMengs/AutoWatermark/internal/form"
	"github.com/SeakMengs/AutoWatermark/pkg/autowatermark"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.GetConfig()

	// No arguments: ask for them in a form instead of failing.
	if len(args) == 0 {
		return runForm(&cfg)
	}

	opts, err := cli.Parse(args, os.Stderr)
	if err == flag.ErrHelp {
		return autowatermark.ExitOK
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return autowatermark.ExitCode(err)
	}

	if opts.Preset != "" {
		cfg.Watermark.PRESET = opts.Preset
	}

	app, err := appcontext.NewApplication(&cfg, opts.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return autowatermark.ExitCode(err)
	}
	defer app.Logger.Sync()

	if _, err := app.Watermark(opts.InputPath, opts.OutputPath, opts.Source); err != nil {
		if opts.Verbose {
			app.Logger.Debugf("%+v", err)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return autowatermark.ExitCode(err)
	}

	return autowatermark.ExitOK
}

func runForm(cfg *config.Config) int {
	shell := ishell.New()
	shell.ShowPrompt(false)
	defer shell.Close()

	app, err := appcontext.NewApplication(cfg, false)
	if err != nil {
		shell.Println("Error:", err)
		return autowatermark.ExitCode(err)
	}
	defer app.Logger.Sync()

	if err := form.New(shell).Run(app); err != nil {
		return autowatermark.ExitCode(err)
	}
	return autowatermark.ExitOK
}
