package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AccidentSketch/internal/render"
	"AccidentSketch/internal/state"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	r := render.NewRenderer(render.Size{Width: 200, Height: 120})
	data, err := render.EncodePNG(r.Render(render.Frame{Elements: state.ExampleVehicles()}))
	require.NoError(t, err)
	return data
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, samplePNG(t), PDFOptions{Subtitle: "Vehicul A / Vehicul B", Created: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, buf.String(), "%%EOF")
}

func TestWritePDFRejectsNonImage(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, []byte("not a png"), PDFOptions{})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schita.pdf")
	require.NoError(t, ExportPDF(path, samplePNG(t), PDFOptions{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
