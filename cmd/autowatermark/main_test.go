package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SeakMengs/AutoWatermark/pkg/autowatermark"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

func writeOnePagePDF(t *testing.T, path string) {
	t.Helper()

	c := canvas.New(210, 297)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.Hex("#CCCCCC"))
	ctx.DrawPath(30, 30, canvas.Rectangle(40, 40))
	require.NoError(t, renderers.Write(path, c))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMP_DIR", filepath.Join(dir, "tmp"))

	input := filepath.Join(dir, "document.pdf")
	writeOnePagePDF(t, input)
	output := filepath.Join(dir, "document_text.pdf")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  bool
	}{
		{"help", []string{"-h"}, autowatermark.ExitOK, false},
		{"no source", []string{input, output}, autowatermark.ExitValidation, false},
		{"two sources", []string{input, output, "-wt", "DRAFT", "-wp", input}, autowatermark.ExitValidation, false},
		{"missing input", []string{filepath.Join(dir, "missing.pdf"), output, "-wt", "DRAFT"}, autowatermark.ExitValidation, false},
		{"missing docx template", []string{input, output, "-wd", filepath.Join(dir, "missing.docx")}, autowatermark.ExitValidation, false},
		{"text watermark", []string{input, output, "-wt", "DRAFT"}, autowatermark.ExitOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Remove(output)

			assert.Equal(t, tt.wantCode, run(tt.args))
			if !tt.wantOut {
				assert.NoFileExists(t, output)
				return
			}

			n, err := api.PageCountFile(output)
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}
