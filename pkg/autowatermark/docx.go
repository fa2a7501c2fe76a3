package autowatermark

import (
	"archive/zip"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Converter turns a docx file into a pdf written inside outDir and returns its path.
type Converter interface {
	ConvertToPDF(docxPath, outDir string) (string, error)
}

// Executables tried in order when OfficeConverter.Path is empty.
var officeExecutables = []string{"libreoffice", "soffice"}

// OfficeConverter runs LibreOffice in headless mode. The call blocks until the converter exits.
type OfficeConverter struct {
	Path string
}

func NewOfficeConverter(path string) *OfficeConverter {
	return &OfficeConverter{Path: path}
}

func (c *OfficeConverter) executable() (string, error) {
	if c.Path != "" {
		path, err := exec.LookPath(c.Path)
		if err != nil {
			return "", fmt.Errorf("office converter %s is not available: %w", c.Path, err)
		}
		return path, nil
	}

	for _, name := range officeExecutables {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("could not find %s in PATH", strings.Join(officeExecutables, " or "))
}

func (c *OfficeConverter) ConvertToPDF(docxPath, outDir string) (string, error) {
	if err := checkDocx(docxPath); err != nil {
		return "", err
	}

	bin, err := c.executable()
	if err != nil {
		return "", err
	}

	// A private profile keeps the conversion independent of a running office instance.
	profileDir, err := filepath.Abs(filepath.Join(outDir, "profile"))
	if err != nil {
		return "", err
	}

	cmd := exec.Command(bin,
		"-env:UserInstallation=file://"+filepath.ToSlash(profileDir),
		"--headless",
		"--convert-to", "pdf",
		"--outdir", outDir,
		docxPath,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s failed: %w: %s", filepath.Base(bin), err, strings.TrimSpace(string(out)))
	}

	pdfPath := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(docxPath), filepath.Ext(docxPath))+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return "", fmt.Errorf("converter produced no pdf for %s: %s", docxPath, msg)
		}
		return "", fmt.Errorf("converter produced no pdf for %s", docxPath)
	}

	return pdfPath, nil
}

// checkDocx rejects files that are not an OOXML word document before spawning the converter.
func checkDocx(path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("%s is not a valid docx file: %w", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			return nil
		}
	}
	return fmt.Errorf("%s is not a valid docx file: word/document.xml is missing", path)
}
