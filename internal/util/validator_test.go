package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
)

type validatedPaths struct {
	Input  string `validate:"required,pdfpath,file"`
	Output string `validate:"required,pdfpath,nefield=Input"`
	Docx   string `validate:"omitempty,docxpath"`
	Text   string `validate:"omitempty,strNotEmpty"`
}

func TestCustomValidations(t *testing.T) {
	v := validator.New()
	if err := RegisterCustomValidations(v); err != nil {
		t.Fatalf("RegisterCustomValidations() error = %v", err)
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(input, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}

	fields := map[string]string{"Input": "Input file", "Output": "Output file"}

	tests := []struct {
		name    string
		value   validatedPaths
		wantMsg string
	}{
		{
			name:  "valid",
			value: validatedPaths{Input: input, Output: filepath.Join(dir, "out.pdf")},
		},
		{
			name:    "missing input",
			value:   validatedPaths{Output: filepath.Join(dir, "out.pdf")},
			wantMsg: "Input file is required",
		},
		{
			name:    "input not pdf",
			value:   validatedPaths{Input: filepath.Join(dir, "in.txt"), Output: filepath.Join(dir, "out.pdf")},
			wantMsg: "Input file '" + filepath.Join(dir, "in.txt") + "' must be a pdf file",
		},
		{
			name:    "input does not exist",
			value:   validatedPaths{Input: filepath.Join(dir, "nope.pdf"), Output: filepath.Join(dir, "out.pdf")},
			wantMsg: "Input file '" + filepath.Join(dir, "nope.pdf") + "' does not exist",
		},
		{
			name:    "output equals input",
			value:   validatedPaths{Input: input, Output: input},
			wantMsg: "Output file can't be the same as Input",
		},
		{
			name:    "docx with wrong suffix",
			value:   validatedPaths{Input: input, Output: filepath.Join(dir, "out.pdf"), Docx: "template.doc"},
			wantMsg: "Docx 'template.doc' must be a docx file",
		},
		{
			name:    "whitespace text",
			value:   validatedPaths{Input: input, Output: filepath.Join(dir, "out.pdf"), Text: "   "},
			wantMsg: "Text must not be empty or contain only whitespace charaters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.value)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.wantMsg)
			}
			if got := GenerateErrorMessagesAsString(err, fields); got != tt.wantMsg {
				t.Errorf("GenerateErrorMessagesAsString() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}
