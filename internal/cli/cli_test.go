package cli

import (
	"bytes"
	"flag"
	"testing"

	"github.com/SeakMengs/AutoWatermark/pkg/autowatermark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		input  string
		output string
		source autowatermark.Source
	}{
		{
			name:   "text after positionals",
			args:   []string{"document.pdf", "document_text.pdf", "-wt", "DRAFT"},
			input:  "document.pdf",
			output: "document_text.pdf",
			source: autowatermark.TextSource{Text: "DRAFT"},
		},
		{
			name:   "flag first",
			args:   []string{"-wp", "stamp.pdf", "in.pdf", "out.pdf"},
			input:  "in.pdf",
			output: "out.pdf",
			source: autowatermark.PdfSource{Path: "stamp.pdf"},
		},
		{
			name:   "flag between positionals",
			args:   []string{"in.pdf", "-wd", "stamp.docx", "out.pdf"},
			input:  "in.pdf",
			output: "out.pdf",
			source: autowatermark.DocxSource{Path: "stamp.docx"},
		},
		{
			name:   "long alias with equals",
			args:   []string{"in.pdf", "out.pdf", "--watermark-text=Top secret"},
			input:  "in.pdf",
			output: "out.pdf",
			source: autowatermark.TextSource{Text: "Top secret"},
		},
		{
			name:   "same kind given twice",
			args:   []string{"in.pdf", "out.pdf", "-wt", "A", "--watermark-text", "B"},
			input:  "in.pdf",
			output: "out.pdf",
			source: autowatermark.TextSource{Text: "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			opts, err := Parse(tt.args, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.input, opts.InputPath)
			assert.Equal(t, tt.output, opts.OutputPath)
			assert.Equal(t, tt.source, opts.Source)
		})
	}
}

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	opts, err := Parse([]string{"-v", "in.pdf", "out.pdf", "-style", "footer", "-wt", "x"}, &out)
	require.NoError(t, err)
	assert.True(t, opts.Verbose)
	assert.Equal(t, "footer", opts.Preset)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no source", []string{"in.pdf", "out.pdf"}},
		{"text and pdf", []string{"in.pdf", "out.pdf", "-wt", "DRAFT", "-wp", "stamp.pdf"}},
		{"all three", []string{"in.pdf", "out.pdf", "-wt", "DRAFT", "-wd", "a.docx", "-wp", "stamp.pdf"}},
		{"empty text still counts", []string{"in.pdf", "out.pdf", "-wt", "", "-wp", "stamp.pdf"}},
		{"missing output", []string{"in.pdf", "-wt", "DRAFT"}},
		{"extra positional", []string{"in.pdf", "out.pdf", "more.pdf", "-wt", "DRAFT"}},
		{"unknown flag", []string{"in.pdf", "out.pdf", "-w", "DRAFT"}},
		{"flag without value", []string{"in.pdf", "out.pdf", "-wt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			opts, err := Parse(tt.args, &out)
			require.Error(t, err)
			assert.Nil(t, opts)
			assert.True(t, autowatermark.IsValidationError(err), "expected ValidationError, got %v", err)
			assert.Equal(t, autowatermark.ExitValidation, autowatermark.ExitCode(err))
		})
	}
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse([]string{"-h"}, &out)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-wt")
}
