package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	sketchnet "AccidentSketch/internal/net"
)

var joinDir string

var joinCmd = &cobra.Command{
	Use:   "join <share-link>",
	Short: "Receive sketches shared by a host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(joinDir, 0o755); err != nil {
			return err
		}
		err := sketchnet.Join(cmd.Context(), args[0], func(msg sketchnet.Message) {
			name := filepath.Join(joinDir, fmt.Sprintf("sketch-%s.png", msg.SavedAt.Format("20060102-150405")))
			if err := os.WriteFile(name, msg.PNG, 0o644); err != nil {
				logger.Error().Err(err).Str("path", name).Msg("could not store sketch")
				return
			}
			logger.Info().Str("path", name).Int("bytes", len(msg.PNG)).Msg("sketch received")
		}, logger)
		if err != nil && errors.Is(err, cmd.Context().Err()) {
			return nil
		}
		return err
	},
}

func init() {
	joinCmd.Flags().StringVar(&joinDir, "out", ".", "directory received sketches are written to")
}
