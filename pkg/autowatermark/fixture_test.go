package autowatermark

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"golang.org/x/image/font/gofont/goregular"
)

// writePDF writes an A4 document with the given number of pages, each carrying a grey box.
func writePDF(t *testing.T, path string, pages int) {
	t.Helper()

	dir := t.TempDir()
	files := make([]string, pages)
	for i := range files {
		c := canvas.New(PageA4.Width, PageA4.Height)
		ctx := canvas.NewContext(c)
		ctx.SetFillColor(canvas.Hex("#DDDDDD"))
		ctx.DrawPath(20, 20+float64(i)*10, canvas.Rectangle(50, 30))

		files[i] = filepath.Join(dir, fmt.Sprintf("page_%d.pdf", i+1))
		require.NoError(t, renderers.Write(files[i], c))
	}

	if pages == 1 {
		data, err := os.ReadFile(files[0])
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0644))
		return
	}

	require.NoError(t, api.MergeCreateFile(files, path, false, nil))
}

// writeDocx writes a minimal zip that passes the docx structure check.
func writeDocx(t *testing.T, path string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	archive := zip.NewWriter(f)
	w, err := archive.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body/></w:document>`))
	require.NoError(t, err)
	require.NoError(t, archive.Close())
}

func pageCount(t *testing.T, path string) int {
	t.Helper()

	n, err := api.PageCountFile(path)
	require.NoError(t, err)
	return n
}

// copyConverter pretends to convert a docx by copying a ready made pdf.
type copyConverter struct {
	pdf   string
	calls int
}

func (c *copyConverter) ConvertToPDF(docxPath, outDir string) (string, error) {
	c.calls++
	if err := checkDocx(docxPath); err != nil {
		return "", err
	}

	data, err := os.ReadFile(c.pdf)
	if err != nil {
		return "", err
	}
	out := filepath.Join(outDir, "converted.pdf")
	return out, os.WriteFile(out, data, 0644)
}

// writeGoFont writes the Go Regular font and a font_metadata.json listing it into dir.
// The font family name is "Go".
func writeGoFont(t *testing.T, dir string) string {
	t.Helper()

	fontPath := filepath.Join(dir, "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(fontPath, goregular.TTF, 0644))

	data, err := json.Marshal([]FontMetadata{{Name: "Go", Path: fontPath}})
	require.NoError(t, err)

	metaPath := filepath.Join(dir, "font_metadata.json")
	require.NoError(t, os.WriteFile(metaPath, data, 0644))
	return metaPath
}

// writeScript writes an executable shell script standing in for the office converter.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	return path
}

// formContents returns the decoded content of every form xobject in the pdf at path.
// Watermarks are drawn by pdfcpu as form xobjects.
func formContents(t *testing.T, path string) string {
	t.Helper()

	ctx, err := api.ReadContextFile(path)
	require.NoError(t, err)

	var sb strings.Builder
	for _, entry := range ctx.XRefTable.Table {
		if entry == nil || entry.Free {
			continue
		}
		sd, ok := entry.Object.(types.StreamDict)
		if !ok {
			continue
		}
		if subtype := sd.Subtype(); subtype == nil || *subtype != "Form" {
			continue
		}
		require.NoError(t, sd.Decode())
		sb.Write(sd.Content)
	}
	return sb.String()
}
