package autowatermark

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"go.uber.org/zap"
)

// Overlay is the single watermark page stamped onto every page of the document.
type Overlay struct {
	Kind      SourceKind
	Watermark *model.Watermark
	// TemplatePath is the one page pdf backing the overlay, empty for core font text.
	TemplatePath string
}

type Builder struct {
	style     Style
	converter Converter
	// nil unless the style uses a font loaded from file
	textRenderer *TextRenderer
	pdfConf      *model.Configuration
	logger       *zap.SugaredLogger
}

func NewBuilder(cfg *Config, converter Converter, pdfConf *model.Configuration, logger *zap.SugaredLogger) (*Builder, error) {
	b := &Builder{
		style:     cfg.Style,
		converter: converter,
		pdfConf:   pdfConf,
		logger:    logger,
	}

	if !IsCoreFont(cfg.Style.Font) {
		loader, err := NewFontLoader(*cfg)
		if err != nil {
			return nil, fmt.Errorf("font %q is not a standard pdf font: %w", cfg.Style.Font, err)
		}
		if b.textRenderer, err = NewTextRenderer(loader, cfg.Style, PageA4); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Build produces the overlay for src. Temporary files are written to workDir, the caller removes it.
func (b *Builder) Build(src Source, workDir string) (*Overlay, error) {
	switch s := src.(type) {
	case TextSource:
		return b.buildText(s, workDir)
	case DocxSource:
		return b.buildDocx(s, workDir)
	case PdfSource:
		return b.buildTemplate(SourcePdf, s.Path, workDir)
	default:
		return nil, validationErrorf("watermark source", "unsupported watermark source %T", src)
	}
}

func (b *Builder) buildText(s TextSource, workDir string) (*Overlay, error) {
	if b.textRenderer != nil {
		textPdf := filepath.Join(workDir, "text_watermark.pdf")
		b.logger.Debugf("Rendering text watermark with font %s to %s", b.style.Font, textPdf)
		if err := b.textRenderer.RenderTextAsPdf(s.Text, textPdf); err != nil {
			return nil, wrapLibrary("render text watermark", err)
		}

		return b.buildTemplate(SourceText, textPdf, workDir)
	}

	description := b.style.Description()
	b.logger.Debugf("Text watermark description: %s", description)

	onTop := true
	wm, err := api.TextWatermark(s.Text, description, onTop, false, types.POINTS)
	if err != nil {
		return nil, wrapLibrary("create text watermark", err)
	}

	return &Overlay{Kind: SourceText, Watermark: wm}, nil
}

func (b *Builder) buildDocx(s DocxSource, workDir string) (*Overlay, error) {
	outDir := filepath.Join(workDir, "docx")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, wrapIO("create", outDir, err)
	}

	b.logger.Infof("Converting %s to pdf", s.Path)
	pdfPath, err := b.converter.ConvertToPDF(s.Path, outDir)
	if err != nil {
		return nil, wrapConversion("convert docx template", err)
	}

	return b.buildTemplate(SourceDocx, pdfPath, workDir)
}

// buildTemplate keeps only the first page of the template pdf and turns it into a pdf watermark.
func (b *Builder) buildTemplate(kind SourceKind, templatePath, workDir string) (*Overlay, error) {
	firstPage := filepath.Join(workDir, fmt.Sprintf("%s_template.pdf", kind))
	if err := api.TrimFile(templatePath, firstPage, []string{"1"}, b.pdfConf); err != nil {
		return nil, wrapLibrary("read template "+templatePath, err)
	}

	onTop := true
	wm, err := api.PDFWatermark(firstPage, templateDescription, onTop, false, types.POINTS)
	if err != nil {
		return nil, wrapLibrary("create pdf watermark", err)
	}

	return &Overlay{Kind: kind, Watermark: wm, TemplatePath: firstPage}, nil
}
