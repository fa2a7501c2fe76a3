package autowatermark

import (
	"os"

	"github.com/SeakMengs/AutoWatermark/internal/util"
	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

type Result struct {
	RunID      string
	InputPath  string
	OutputPath string
	PageCount  int
	Source     SourceKind
}

// Watermarker runs the whole pipeline for one request at a time. It holds no state between runs.
type Watermarker struct {
	cfg      *Config
	resolver *Resolver
	builder  *Builder
	pdfConf  *model.Configuration
	logger   *zap.SugaredLogger
}

// NewWatermarker validates cfg and wires the pipeline. A nil converter selects the
// LibreOffice converter from cfg, a nil logger discards logs.
func NewWatermarker(cfg *Config, converter Converter, logger *zap.SugaredLogger) (*Watermarker, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if converter == nil {
		converter = NewOfficeConverter(cfg.ConverterPath)
	}

	pdfConf := model.NewDefaultConfiguration()

	resolver, err := NewResolver(pdfConf)
	if err != nil {
		return nil, err
	}
	if err := resolver.ValidateStyle(cfg.Style); err != nil {
		return nil, err
	}

	builder, err := NewBuilder(cfg, converter, pdfConf, logger)
	if err != nil {
		return nil, wrapValidation("watermark style", err)
	}

	return &Watermarker{
		cfg:      cfg,
		resolver: resolver,
		builder:  builder,
		pdfConf:  pdfConf,
		logger:   logger,
	}, nil
}

// Run validates req, builds the overlay and writes the watermarked document.
// Either the complete output file is written or the output path is left untouched.
func (w *Watermarker) Run(req Request) (*Result, error) {
	pageCount, err := w.resolver.Resolve(req)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := w.logger.With("run", runID)

	workDir, err := util.CreateRunDir(w.cfg.TmpDir, runID)
	if err != nil {
		return nil, wrapIO("create", w.cfg.TmpDir, err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			log.Warnf("Failed to remove temp directory %s: %v", workDir, err)
		}
	}()

	log.Infof("Input file: %s", req.InputPath)
	log.Infof("Watermark: %s", req.Source)

	overlay, err := w.builder.Build(req.Source, workDir)
	if err != nil {
		return nil, err
	}

	log.Infof("Stamping %d pages", pageCount)
	if err := Compose(req.InputPath, req.OutputPath, overlay, pageCount, w.pdfConf); err != nil {
		return nil, err
	}

	log.Infof("Output file: %s", req.OutputPath)
	log.Info("Done!")

	return &Result{
		RunID:      runID,
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		PageCount:  pageCount,
		Source:     req.Source.Kind(),
	}, nil
}

// HasWatermark reports whether the pdf at path carries a watermark added by pdfcpu.
func HasWatermark(path string) (bool, error) {
	ok, err := api.HasWatermarksFile(path, nil)
	if err != nil {
		return false, wrapLibrary("inspect "+path, err)
	}
	return ok, nil
}
