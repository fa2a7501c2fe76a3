package autowatermark

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeakMengs/AutoWatermark/internal/util"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Compose stamps ov on top of every page of inFile and writes the result to outFile.
// The document is written next to outFile first and renamed once its page count matches
// wantPages, so a failed run never leaves a partial outFile behind.
func Compose(inFile, outFile string, ov *Overlay, wantPages int, conf *model.Configuration) error {
	dir := filepath.Dir(outFile)
	tmpFile := filepath.Join(dir, "."+util.AddUniquePrefixToFileName(filepath.Base(outFile)))

	f, err := os.OpenFile(tmpFile, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return wrapIO("write", outFile, err)
	}
	f.Close()
	defer os.Remove(tmpFile)

	// nil selects all pages
	if err := api.AddWatermarksFile(inFile, tmpFile, nil, ov.Watermark, conf); err != nil {
		return wrapLibrary("apply watermark", err)
	}

	gotPages, err := api.PageCountFile(tmpFile)
	if err != nil {
		return wrapLibrary("read watermarked document", err)
	}
	if gotPages != wantPages {
		return wrapLibrary("apply watermark", fmt.Errorf("watermarked document has %d pages, expected %d", gotPages, wantPages))
	}

	if err := os.Rename(tmpFile, outFile); err != nil {
		return wrapIO("write", outFile, err)
	}

	return nil
}
