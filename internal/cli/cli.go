// Package cli parses the command line of the watermark tool:
//
//	autowatermark <input.pdf> <output.pdf> (-wt TEXT | -wd DOCX_PATH | -wp PDF_PATH)
//
// Positional arguments and flags may come in any order.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/SeakMengs/AutoWatermark/internal/util"
	"github.com/SeakMengs/AutoWatermark/pkg/autowatermark"
)

type Options struct {
	InputPath  string
	OutputPath string
	Source     autowatermark.Source
	Verbose    bool
	// Text watermark preset, empty keeps the configured one
	Preset string
}

// Parse reads args without the program name. flag.ErrHelp is returned as is when help was
// requested; every other failure is an *autowatermark.ValidationError.
func Parse(args []string, output io.Writer) (*Options, error) {
	var (
		opts                Options
		text, docx, pdfPath string
	)

	fs := flag.NewFlagSet(util.GetAppName(), flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&text, "wt", "", "Watermark text.")
	fs.StringVar(&text, "watermark-text", "", "Same as -wt.")
	fs.StringVar(&docx, "wd", "", "Docx file whose first page is used as watermark.")
	fs.StringVar(&docx, "watermark-docx", "", "Same as -wd.")
	fs.StringVar(&pdfPath, "wp", "", "Pdf file whose first page is used as watermark.")
	fs.StringVar(&pdfPath, "watermark-pdf", "", "Same as -wp.")
	fs.StringVar(&opts.Preset, "style", "", "Text watermark style: diagonal or footer.")
	fs.BoolVar(&opts.Verbose, "v", false, "Enable debug output.")
	fs.Usage = func() {
		fmt.Fprintf(output, "%s\n\nUsage: %s <input.pdf> <output.pdf> (-wt TEXT | -wd DOCX_PATH | -wp PDF_PATH) [flags]\n\n",
			util.GetAppDescription(), fs.Name())
		fs.PrintDefaults()
		fmt.Fprintf(output, "\nExample: %s infile.pdf outfile.pdf -wt 'This is my nice watermark !!!'\n", fs.Name())
		fmt.Fprintf(output, "Run without arguments to fill in a form instead.\n")
	}

	// flag stops at the first positional argument, so parse again after each one
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				return nil, err
			}
			return nil, &autowatermark.ValidationError{Op: "arguments", Err: err}
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	if len(positional) != 2 {
		fs.Usage()
		return nil, &autowatermark.ValidationError{
			Op:  "arguments",
			Err: fmt.Errorf("expected input and output pdf files, got %d positional arguments", len(positional)),
		}
	}
	opts.InputPath, opts.OutputPath = positional[0], positional[1]

	var supplied []autowatermark.Source
	seen := map[autowatermark.SourceKind]bool{}
	fs.Visit(func(f *flag.Flag) {
		var src autowatermark.Source
		switch f.Name {
		case "wt", "watermark-text":
			src = autowatermark.TextSource{Text: text}
		case "wd", "watermark-docx":
			src = autowatermark.DocxSource{Path: docx}
		case "wp", "watermark-pdf":
			src = autowatermark.PdfSource{Path: pdfPath}
		default:
			return
		}
		if !seen[src.Kind()] {
			seen[src.Kind()] = true
			supplied = append(supplied, src)
		}
	})

	source, err := autowatermark.SelectSource(supplied...)
	if err != nil {
		return nil, err
	}
	opts.Source = source

	return &opts, nil
}
