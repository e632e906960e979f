package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"AccidentSketch/internal/editor"
	"AccidentSketch/internal/export"
	"AccidentSketch/internal/render"
)

var (
	replayOut string
	replayPDF string
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.json>",
	Short: "Replay a recorded editing session and save the sketch",
	Long: `replay runs a JSON script of pointer and tool events through a headless
editor, then writes the saved sketch as PNG and optionally as PDF.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		sc, err := editor.LoadScript(f)
		f.Close()
		if err != nil {
			return err
		}

		size := render.Size{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}
		if sc.Width > 0 && sc.Height > 0 {
			size = render.Size{Width: sc.Width, Height: sc.Height}
		}

		var saved []byte
		opts := editor.Options{
			Size:   size,
			Blank:  sc.Blank,
			Logger: logger,
			OnSave: func(png []byte) { saved = png },
		}
		if cfg.Background.Path != "" {
			opts.Background = editor.FileBackground(cfg.Background.Path)
		}

		s := editor.Open(opts)
		if err := s.AwaitBackground(cmd.Context()); err != nil {
			return err
		}
		if err := sc.Run(s); err != nil {
			return err
		}
		if !s.Closed() {
			if _, err := s.Save(); err != nil {
				return err
			}
		}
		if saved == nil {
			return fmt.Errorf("script %s cancelled the sketch", args[0])
		}

		if err := os.WriteFile(replayOut, saved, 0o644); err != nil {
			return fmt.Errorf("write sketch: %w", err)
		}
		logger.Info().Str("path", replayOut).Int("bytes", len(saved)).Msg("sketch saved")

		if replayPDF != "" {
			err := export.ExportPDF(replayPDF, saved, export.PDFOptions{
				Title:   "Schița accidentului",
				Created: time.Now(),
			})
			if err != nil {
				return err
			}
			logger.Info().Str("path", replayPDF).Msg("pdf exported")
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().StringVarP(&replayOut, "out", "o", "sketch.png", "where to write the PNG")
	replayCmd.Flags().StringVar(&replayPDF, "pdf", "", "also export a PDF to this path")
}
