// Package form is the interactive front end, used when the tool is started without arguments.
// It asks for the same three inputs as the command line.
package form

import (
	"errors"
	"strings"
	"time"

	"github.com/SeakMengs/AutoWatermark/internal/util"
	"github.com/SeakMengs/AutoWatermark/pkg/autowatermark"
)

// Prompter is the part of *ishell.Shell the form needs.
type Prompter interface {
	Print(val ...interface{})
	Println(val ...interface{})
	ReadLine() string
	MultiChoice(options []string, text string) int
}

var ErrCancelled = errors.New("cancelled")

var sourceChoices = []string{
	"Text",
	"Docx template (first page)",
	"Pdf template (first page)",
}

type Fields struct {
	InputPath  string
	OutputPath string
	Source     autowatermark.Source
}

type Form struct {
	prompter Prompter
	now      func() time.Time
}

func New(p Prompter) *Form {
	return &Form{prompter: p, now: time.Now}
}

func (f *Form) ask(label string) string {
	f.prompter.Print(label + ": ")
	return strings.TrimSpace(f.prompter.ReadLine())
}

// Collect asks for every field. Validation is left to the pipeline, except the
// watermark kind, which must be picked.
func (f *Form) Collect() (*Fields, error) {
	f.prompter.Println(util.GetAppDescription())

	fields := Fields{
		InputPath:  f.ask("Input pdf file"),
		OutputPath: f.ask("Output pdf file"),
	}

	choice := f.prompter.MultiChoice(sourceChoices, "Watermark source:")
	switch choice {
	case 0:
		defaultText := util.DefaultWatermarkText(f.now())
		text := f.ask("Watermark text [" + defaultText + "]")
		if text == "" {
			text = defaultText
		}
		fields.Source = autowatermark.TextSource{Text: text}
	case 1:
		fields.Source = autowatermark.DocxSource{Path: f.ask("Docx template file")}
	case 2:
		fields.Source = autowatermark.PdfSource{Path: f.ask("Pdf template file")}
	default:
		return nil, ErrCancelled
	}

	return &fields, nil
}

// Watermarker is the pipeline entry the form submits to.
type Watermarker interface {
	Watermark(input, output string, source autowatermark.Source) (*autowatermark.Result, error)
}

// Run collects the fields, submits them and shows the outcome.
func (f *Form) Run(w Watermarker) error {
	fields, err := f.Collect()
	if err != nil {
		f.prompter.Println("Error:", err)
		return err
	}

	res, err := w.Watermark(fields.InputPath, fields.OutputPath, fields.Source)
	if err != nil {
		f.prompter.Println("Error:", err)
		return err
	}

	f.prompter.Println("Watermarked", res.PageCount, "pages into", res.OutputPath)
	return nil
}
