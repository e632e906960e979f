// Package export writes saved sketches out as documents.
package export

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin    = 15.0 // mm
	printableWide = 210.0 - 2*pageMargin
	maxImageHigh  = 297.0 - 2*pageMargin - 30
)

// PDFOptions controls the exported page.
type PDFOptions struct {
	Title    string
	Subtitle string
	Created  time.Time
}

// WritePDF lays the PNG sketch out on an A4 page and writes the document to w.
func WritePDF(w io.Writer, png []byte, opts PDFOptions) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(png))
	if err != nil {
		return fmt.Errorf("read sketch image: %w", err)
	}
	if opts.Title == "" {
		opts.Title = "Schita accidentului"
	}
	if opts.Created.IsZero() {
		opts.Created = time.Now()
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle(opts.Title, true)
	p.SetMargins(pageMargin, pageMargin, pageMargin)
	p.AddPage()

	p.SetFont("Helvetica", "B", 16)
	p.CellFormat(0, 10, opts.Title, "", 1, "L", false, 0, "")
	if opts.Subtitle != "" {
		p.SetFont("Helvetica", "", 11)
		p.CellFormat(0, 7, opts.Subtitle, "", 1, "L", false, 0, "")
	}
	p.Ln(4)

	// Fit the sketch to the printable width, keeping its aspect ratio.
	width := printableWide
	height := width * float64(cfg.Height) / float64(cfg.Width)
	if height > maxImageHigh {
		height = maxImageHigh
		width = height * float64(cfg.Width) / float64(cfg.Height)
	}
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("sketch", imgOpts, bytes.NewReader(png))
	p.ImageOptions("sketch", pageMargin, p.GetY(), width, height, false, imgOpts, 0, "")

	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(0.3)
	p.Rect(pageMargin, p.GetY(), width, height, "D")

	p.SetY(p.GetY() + height + 4)
	p.SetFont("Helvetica", "I", 9)
	p.CellFormat(0, 5, "Generat la "+opts.Created.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// ExportPDF writes the sketch PDF to path.
func ExportPDF(path string, png []byte, opts PDFOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePDF(f, png, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
