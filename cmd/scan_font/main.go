package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/SeakMengs/AutoWatermark/internal/env"
	"github.com/SeakMengs/AutoWatermark/pkg/autowatermark"
)

// Writes the font metadata read by the text watermark when WATERMARK_FONT is not a standard pdf font.
func main() {
	env.LoadEnv(".env")

	fontDir := flag.String("dir", "fonts", "Directory scanned for .ttf and .otf files.")
	outputFile := flag.String("out", env.GetString("FONT_METADATA_PATH", "font_metadata.json"), "Metadata file to write.")
	flag.Parse()

	fonts, err := autowatermark.ScanFontDir(*fontDir)
	if err != nil {
		log.Fatalf("Failed to scan font directory: %v", err)
	}

	data, err := json.MarshalIndent(fonts, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal JSON: %v", err)
	}

	// The file can be read by the owner (you), read by users in the file's group, and read by anyone else on the system
	if err := os.WriteFile(*outputFile, data, 0644); err != nil {
		log.Fatalf("Failed to write JSON file: %v", err)
	}

	fmt.Printf("Saved metadata for %d fonts to %q\n", len(fonts), *outputFile)
}
