package autowatermark

import (
	"os"
	"path/filepath"
)

type Config struct {
	// A path to json where it store font name and path to the font file
	FontMetadataPath string
	// Directory where the temporary files of each run are stored, a run's files are deleted when it finishes
	TmpDir string
	// Office converter executable used for docx templates, looked up in PATH when empty
	ConverterPath string
	// Visual policy for text watermarks
	Style Style
}

func NewDefaultConfig() *Config {
	return &Config{
		FontMetadataPath: "font_metadata.json",
		TmpDir:           filepath.Join(os.TempDir(), "autowatermark"),
		Style:            DiagonalStyle(),
	}
}
