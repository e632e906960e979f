package ui

import (
	"bytes"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"AccidentSketch/internal/config"
	"AccidentSketch/internal/editor"
	"AccidentSketch/internal/render"
)

// AppOptions configures RunApp.
type AppOptions struct {
	Config config.Config
	// Initial is a previously saved sketch, or nil.
	Initial []byte
	// ShareLink is shown when hand-off is enabled.
	ShareLink string
	// OnSaved receives every saved sketch, after the step has stored it.
	OnSaved func(png []byte)
	Logger  zerolog.Logger
}

type sketchApp struct {
	opts    AppOptions
	window  fyne.Window
	step    *editor.Step
	board   *SketchWidget
	palette *Palette
	log     zerolog.Logger
}

// RunApp shows the sketch step window and blocks until it closes.
func RunApp(opts AppOptions) {
	a := app.NewWithID("ro.constatare.accidentsketch")
	w := a.NewWindow("Schița accidentului")
	w.Resize(fyne.NewSize(float32(opts.Config.Canvas.Width)+40, float32(opts.Config.Canvas.Height)+160))

	sa := &sketchApp{opts: opts, window: w, log: opts.Logger}
	sa.step = editor.NewStep(opts.Initial, sa.saved, sa.reviewed, sa.back, opts.Logger)
	sa.board = NewSketchWidget(w, fyne.NewSize(float32(opts.Config.Canvas.Width), float32(opts.Config.Canvas.Height)), opts.Logger)
	sa.palette = NewToolbar(sa.board)

	w.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("Fișier",
		fyne.NewMenuItem("Exportă PNG...", func() { exportSketch(w, sa.step.Image(), false, sa.log) }),
		fyne.NewMenuItem("Exportă PDF...", func() { exportSketch(w, sa.step.Image(), true, sa.log) }),
	)))

	sa.showStep()
	w.ShowAndRun()
}

func (sa *sketchApp) header() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Schița accidentului", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	if sa.opts.ShareLink == "" {
		return title
	}
	link := widget.NewEntry()
	link.SetText(sa.opts.ShareLink)
	link.Disable()
	return container.NewVBox(title, container.NewBorder(nil, nil, widget.NewLabel("Link partajare:"), nil, link))
}

// showStep is the view outside the editor: the saved sketch, or an invitation to draw one.
func (sa *sketchApp) showStep() {
	sa.board.Bind(nil)

	var body fyne.CanvasObject
	if sa.step.HasImage() {
		img := canvas.NewImageFromReader(bytes.NewReader(sa.step.Image()), "schita.png")
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(float32(sa.opts.Config.Canvas.Width)/2, float32(sa.opts.Config.Canvas.Height)/2))
		body = container.NewBorder(nil, container.NewCenter(widget.NewButtonWithIcon("Editează Schița", theme.DocumentCreateIcon(), sa.openEditor)), nil, nil, img)
	} else {
		body = container.NewCenter(container.NewVBox(
			widget.NewLabel("Nu ați desenat încă schița accidentului."),
			widget.NewButtonWithIcon("Desenează Schița", theme.DocumentCreateIcon(), sa.openEditor),
		))
	}

	next := widget.NewButtonWithIcon("Revizuire Finală", theme.NavigateNextIcon(), func() {
		if err := sa.step.Continue(); err != nil {
			dialog.ShowError(err, sa.window)
		}
	})
	if !sa.step.HasImage() {
		next.Disable()
	}
	nav := container.NewHBox(
		widget.NewButtonWithIcon("Înapoi", theme.NavigateBackIcon(), sa.step.Back),
		layout.NewSpacer(),
		next,
	)

	sa.window.SetContent(container.NewBorder(sa.header(), nav, nil, nil, body))
}

func (sa *sketchApp) openEditor() {
	cfg := sa.opts.Config
	session, err := sa.step.Open(editor.Options{
		Size:       render.Size{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height},
		Background: editor.FileBackground(cfg.Background.Path),
		OnChange: func() {
			sa.board.Refresh()
			sa.palette.Sync()
		},
		Post:     fyne.Do,
		OnCancel: sa.showStep,
	})
	if err != nil {
		dialog.ShowError(err, sa.window)
		return
	}
	sa.board.Bind(session)
	sa.palette.Sync()

	cancel := widget.NewButtonWithIcon("Anulează", theme.CancelIcon(), session.Cancel)
	save := widget.NewButtonWithIcon("Salvează Schița", theme.DocumentSaveIcon(), func() {
		if _, err := session.Save(); err != nil {
			dialog.ShowError(err, sa.window)
		}
	})
	save.Importance = widget.HighImportance

	sa.window.SetContent(container.NewBorder(
		container.NewVBox(sa.header(), sa.palette.CanvasObject()),
		container.NewHBox(layout.NewSpacer(), cancel, save),
		nil, nil,
		sa.board,
	))
}

func (sa *sketchApp) saved(png []byte) {
	if sa.opts.OnSaved != nil {
		sa.opts.OnSaved(png)
	}
	sa.showStep()
}

func (sa *sketchApp) reviewed() {
	dialog.ShowInformation("Revizuire Finală", "Schița a fost atașată raportului.", sa.window)
}

func (sa *sketchApp) back() {
	sa.log.Info().Msg("back to the previous step")
	sa.showStep()
}
