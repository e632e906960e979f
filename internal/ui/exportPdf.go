package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/rs/zerolog"

	"AccidentSketch/internal/export"
)

// exportSketch asks for a destination and writes the saved sketch there,
// as PNG or as a one-page PDF.
func exportSketch(win fyne.Window, png []byte, asPDF bool, log zerolog.Logger) {
	if len(png) == 0 {
		dialog.ShowInformation("Export", "Nu există încă o schiță salvată.", win)
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // dismissed
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Error().Err(err).Msg("closing export file")
			}
		}()

		if asPDF {
			err = export.WritePDF(writer, png, export.PDFOptions{
				Subtitle: "Constatare amiabilă de accident",
				Created:  time.Now(),
			})
		} else {
			_, err = writer.Write(png)
		}
		if err != nil {
			log.Error().Err(err).Str("uri", writer.URI().String()).Msg("export failed")
			dialog.ShowError(fmt.Errorf("export: %w", err), win)
			return
		}
		log.Info().Str("uri", writer.URI().String()).Bool("pdf", asPDF).Msg("sketch exported")
	}, win)

	if asPDF {
		save.SetFileName("schita-accident.pdf")
	} else {
		save.SetFileName("schita-accident.png")
	}
	save.Show()
}
