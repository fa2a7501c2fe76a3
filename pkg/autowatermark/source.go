package autowatermark

import (
	"fmt"
	"strings"
)

type SourceKind string

const (
	SourceText SourceKind = "text"
	SourceDocx SourceKind = "docx"
	SourcePdf  SourceKind = "pdf"
)

// Source is the watermark specification: literal text, a docx template or a pdf template.
// The only implementations are TextSource, DocxSource and PdfSource.
type Source interface {
	Kind() SourceKind
	String() string
	isSource()
}

type TextSource struct {
	Text string `validate:"strNotEmpty"`
}

type DocxSource struct {
	Path string `validate:"required,docxpath,file"`
}

type PdfSource struct {
	Path string `validate:"required,pdfpath,file"`
}

func (TextSource) Kind() SourceKind { return SourceText }
func (DocxSource) Kind() SourceKind { return SourceDocx }
func (PdfSource) Kind() SourceKind  { return SourcePdf }

func (s TextSource) String() string { return fmt.Sprintf("text %q", s.Text) }
func (s DocxSource) String() string { return fmt.Sprintf("docx template %s", s.Path) }
func (s PdfSource) String() string  { return fmt.Sprintf("pdf template %s", s.Path) }

func (TextSource) isSource() {}
func (DocxSource) isSource() {}
func (PdfSource) isSource()  {}

// NewSource builds the Source from the three optional inputs. An empty string means "not supplied".
// Exactly one input must be supplied; no file is touched here.
func NewSource(text, docxPath, pdfPath string) (Source, error) {
	var supplied []Source
	if text != "" {
		supplied = append(supplied, TextSource{Text: text})
	}
	if docxPath != "" {
		supplied = append(supplied, DocxSource{Path: docxPath})
	}
	if pdfPath != "" {
		supplied = append(supplied, PdfSource{Path: pdfPath})
	}
	return SelectSource(supplied...)
}

// SelectSource returns the only supplied source and fails when there are none or several.
func SelectSource(supplied ...Source) (Source, error) {
	switch len(supplied) {
	case 0:
		return nil, validationErrorf("watermark source", "one of text, docx template or pdf template is required")
	case 1:
		return supplied[0], nil
	default:
		kinds := make([]string, len(supplied))
		for i, s := range supplied {
			kinds[i] = string(s.Kind())
		}
		return nil, validationErrorf("watermark source", "only one watermark source may be given, got %s", strings.Join(kinds, ", "))
	}
}
