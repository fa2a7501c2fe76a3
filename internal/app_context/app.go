package appcontext

import (
	"github.com/SeakMengs/AutoWatermark/internal/config"
	"github.com/SeakMengs/AutoWatermark/internal/util"
	"github.com/SeakMengs/AutoWatermark/pkg/autowatermark"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Watermarker runs the watermark pipeline, shared by the cli and the form.
	Watermarker *autowatermark.Watermarker
}

func NewApplication(cfg *config.Config, verbose bool) (*Application, error) {
	logger := util.NewLogger(cfg.ENV, verbose)
	logger.Debugf("Configuration: %+v", *cfg)

	wcfg, err := cfg.WatermarkConfig()
	if err != nil {
		return nil, err
	}

	watermarker, err := autowatermark.NewWatermarker(wcfg, nil, logger)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:      cfg,
		Logger:      logger,
		Watermarker: watermarker,
	}, nil
}

func (app *Application) Watermark(input, output string, source autowatermark.Source) (*autowatermark.Result, error) {
	return app.Watermarker.Run(autowatermark.Request{
		InputPath:  input,
		OutputPath: output,
		Source:     source,
	})
}
