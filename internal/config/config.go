package config

import (
	"fmt"
	"strings"

	"github.com/SeakMengs/AutoWatermark/internal/env"
	"github.com/SeakMengs/AutoWatermark/internal/util"
	"github.com/SeakMengs/AutoWatermark/pkg/autowatermark"
)

type Config struct {
	ENV              string
	TmpDir           string
	FontMetadataPath string
	Converter        ConverterConfig
	Watermark        WatermarkConfig
}

type ConverterConfig struct {
	// Empty means look up libreoffice, then soffice in PATH
	PATH string
}

// Zero or empty values keep the preset's default.
type WatermarkConfig struct {
	PRESET     string
	FONT       string
	POINTS     int
	SCALE      float64
	ROTATION   float64
	OPACITY    float64
	COLOR      string
	POSITION   string
	STYLE_FILE string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	return Config{
		ENV:              env.GetString("ENV", "development"),
		TmpDir:           env.GetString("TMP_DIR", util.GetTempDir()),
		FontMetadataPath: env.GetString("FONT_METADATA_PATH", "font_metadata.json"),
		Converter: ConverterConfig{
			PATH: env.GetString("DOCX_CONVERTER", ""),
		},
		Watermark: WatermarkConfig{
			PRESET:     env.GetString("WATERMARK_PRESET", string(autowatermark.PresetDiagonal)),
			FONT:       env.GetString("WATERMARK_FONT", ""),
			POINTS:     env.GetInt("WATERMARK_POINTS", 0),
			SCALE:      env.GetFloat("WATERMARK_SCALE", 0),
			ROTATION:   env.GetFloat("WATERMARK_ROTATION", 0),
			OPACITY:    env.GetFloat("WATERMARK_OPACITY", 0),
			COLOR:      env.GetString("WATERMARK_COLOR", ""),
			POSITION:   env.GetString("WATERMARK_POSITION", ""),
			STYLE_FILE: env.GetString("WATERMARK_STYLE_FILE", ""),
		},
	}
}

// Style resolves the text watermark style: preset first, then the style file, then single overrides.
// A non-zero rotation turns off the diagonal placement.
func (w WatermarkConfig) Style() (autowatermark.Style, error) {
	style, err := autowatermark.StyleForPreset(autowatermark.Preset(w.PRESET))
	if err != nil {
		return style, err
	}

	if w.STYLE_FILE != "" {
		if style, err = autowatermark.LoadStyleFile(w.STYLE_FILE, style); err != nil {
			return style, fmt.Errorf("WATERMARK_STYLE_FILE: %w", err)
		}
	}

	if w.FONT != "" {
		style.Font = w.FONT
	}
	if w.POINTS > 0 {
		style.Points = w.POINTS
	}
	if w.SCALE > 0 {
		style.Scale = w.SCALE
	}
	if w.ROTATION != 0 {
		style.Rotation = w.ROTATION
		style.Diagonal = false
	}
	if w.OPACITY > 0 {
		style.Opacity = w.OPACITY
	}
	if w.COLOR != "" {
		style.Color = w.COLOR
	}
	if w.POSITION != "" {
		style.Position = w.POSITION
	}

	return style, nil
}

func (c Config) WatermarkConfig() (*autowatermark.Config, error) {
	style, err := c.Watermark.Style()
	if err != nil {
		return nil, err
	}

	return &autowatermark.Config{
		FontMetadataPath: c.FontMetadataPath,
		TmpDir:           c.TmpDir,
		ConverterPath:    c.Converter.PATH,
		Style:            style,
	}, nil
}
