package autowatermark

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

type Preset string

const (
	// Large diagonal text across the page, semi-transparent.
	PresetDiagonal Preset = "diagonal"
	// Small red line at the bottom of the page.
	PresetFooter Preset = "footer"
)

// Style is the visual policy of a text watermark. Rotation is ignored when Diagonal is set.
type Style struct {
	Preset   Preset  `yaml:"preset" validate:"oneof=diagonal footer"`
	Font     string  `yaml:"font" validate:"strNotEmpty"`
	Points   int     `yaml:"points" validate:"gt=0"`
	Scale    float64 `yaml:"scale" validate:"gt=0"`
	ScaleAbs bool    `yaml:"scale_abs"`
	Diagonal bool    `yaml:"diagonal"`
	Rotation float64 `yaml:"rotation" validate:"gte=-180,lte=180"`
	Opacity  float64 `yaml:"opacity" validate:"gt=0,lte=1"`
	Color    string  `yaml:"color" validate:"hexcolor"`
	Position string  `yaml:"position" validate:"oneof=c tl tc tr l r bl bc br"`
	OffsetX  float64 `yaml:"offset_x"`
	OffsetY  float64 `yaml:"offset_y"`
}

func DiagonalStyle() Style {
	return Style{
		Preset:   PresetDiagonal,
		Font:     "Helvetica",
		Points:   48,
		Scale:    0.9,
		Diagonal: true,
		Opacity:  0.3,
		Color:    "#808080",
		Position: "c",
	}
}

func FooterStyle() Style {
	return Style{
		Preset:   PresetFooter,
		Font:     "Helvetica",
		Points:   12,
		Scale:    1,
		ScaleAbs: true,
		Opacity:  1,
		Color:    "#FF0000",
		Position: "bc",
		OffsetY:  14,
	}
}

func StyleForPreset(p Preset) (Style, error) {
	switch Preset(strings.ToLower(string(p))) {
	case PresetDiagonal, "":
		return DiagonalStyle(), nil
	case PresetFooter:
		return FooterStyle(), nil
	default:
		return Style{}, fmt.Errorf("unknown watermark preset %q", p)
	}
}

// Description renders the style as a pdfcpu text watermark description.
func (s Style) Description() string {
	scaleMode := "rel"
	if s.ScaleAbs {
		scaleMode = "abs"
	}

	parts := []string{
		fmt.Sprintf("fontname:%s", s.Font),
		fmt.Sprintf("points:%d", s.Points),
		fmt.Sprintf("scalefactor:%g %s", s.Scale, scaleMode),
		fmt.Sprintf("opacity:%g", s.Opacity),
		fmt.Sprintf("fillcolor:%s", s.Color),
		fmt.Sprintf("position:%s", s.Position),
		fmt.Sprintf("offset:%g %g", s.OffsetX, s.OffsetY),
	}

	if s.Diagonal {
		parts = append(parts, "diagonal:1")
	} else {
		parts = append(parts, fmt.Sprintf("rotation:%g", s.Rotation))
	}

	return strings.Join(parts, ", ")
}

// Template pages are stamped centered, fitted to the page width and fully opaque.
// Transparency comes from the template itself.
const templateDescription = "position:c, scalefactor:1 rel, rotation:0, opacity:1"

// LoadStyleFile overrides fields of base with the ones present in the yaml file at path.
// A "preset" key resets base to that preset before the other keys are applied.
func LoadStyleFile(path string, base Style) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read style file: %w", err)
	}

	var head struct {
		Preset Preset `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return base, fmt.Errorf("failed to parse style file: %w", err)
	}

	style := base
	if head.Preset != "" {
		if style, err = StyleForPreset(head.Preset); err != nil {
			return base, err
		}
	}

	if err := yaml.Unmarshal(data, &style); err != nil {
		return base, fmt.Errorf("failed to parse style file: %w", err)
	}

	return style, nil
}
