package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	sketchnet "AccidentSketch/internal/net"
)

var browseTimeout time.Duration

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "List hosts sharing sketches on the local network",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 0
		err := sketchnet.Browse(browseTimeout, func(h sketchnet.Host) {
			n++
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", h.Instance, h.Link())
		})
		if err != nil {
			return err
		}
		if n == 0 {
			logger.Info().Dur("timeout", browseTimeout).Msg("no hosts found")
		}
		return nil
	},
}

func init() {
	browseCmd.Flags().DurationVar(&browseTimeout, "timeout", 3*time.Second, "how long to listen for hosts")
}
