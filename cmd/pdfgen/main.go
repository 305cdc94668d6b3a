package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"conmates/logger"
)

const outputDir = "public/templates"

// One-shot asset build: renders each letter template into a PDF under
// public/templates. A single file failing does not stop the run; the result
// of every file is logged.
func main() {
	logger.InitFromEnv("LOG_LEVEL")

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		logger.Log.Errorf("failed to create output directory %s: %v", outputDir, err)
		os.Exit(1)
	}

	var ok, failed int
	for filename, text := range letterTemplates {
		path := filepath.Join(outputDir, filename)
		if err := renderPDF(path, text); err != nil {
			logger.Log.Errorf("failed to generate %s: %v", path, err)
			failed++
			continue
		}
		logger.Log.Infof("generated %s", path)
		ok++
	}

	logger.Log.Infof("pdf generation finished ok=%d failed=%d", ok, failed)
}

// renderPDF writes one template as a PDF. The first line of text is the
// document title; the rest is the body.
func renderPDF(path, text string) error {
	title, body, _ := strings.Cut(strings.TrimSpace(text), "\n")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, title, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, paragraph := range strings.Split(strings.TrimSpace(body), "\n\n") {
		pdf.MultiCell(0, 6, strings.TrimSpace(paragraph), "", "L", false)
		pdf.Ln(3)
	}

	return pdf.OutputFileAndClose(path)
}
