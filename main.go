package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"AccidentSketch/internal/config"
	"AccidentSketch/internal/logging"
	sketchnet "AccidentSketch/internal/net"
	"AccidentSketch/internal/ui"
)

var (
	configDir string
	cfg       config.Config
	logger    zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "accidentsketch [share-link]",
	Short: "Draw the sketch of a traffic accident",
	Long: `accidentsketch opens the sketch step of an accident report: a map
background with the two vehicles involved, where arrows and notes can be
added before the sketch is saved as a PNG.

Passing an accidentsketch:// link joins a host that shares its sketch.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configDir)
		if err != nil {
			return err
		}
		cfg = c
		logger = logging.New(logging.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEditor(cmd.Context())
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configDir, "config", ".", "directory holding "+config.FileName)
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.String("background", "", "map image drawn behind the sketch")
	_ = viper.BindPFlag("logLevel", pf.Lookup("log-level"))
	_ = viper.BindPFlag("background.path", pf.Lookup("background"))

	rootCmd.Flags().Bool("share", false, "hand saved sketches to devices on the local network")
	rootCmd.Flags().Int("port", 8888, "port the share hub listens on")
	_ = viper.BindPFlag("share.enabled", rootCmd.Flags().Lookup("share"))
	_ = viper.BindPFlag("share.port", rootCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(replayCmd, joinCmd, browseCmd)
}

func runEditor(ctx context.Context) error {
	opts := ui.AppOptions{Config: cfg, Logger: logger}

	if cfg.Share.Enabled {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		hub := sketchnet.NewHub(logger)
		go func() {
			if err := hub.ListenAndServe(ctx, cfg.Share.Port); err != nil {
				logger.Error().Err(err).Msg("share hub stopped")
			}
		}()

		server, err := sketchnet.Advertise(cfg.Share.Port)
		if err != nil {
			logger.Warn().Err(err).Msg("mDNS advertising disabled")
		} else {
			defer server.Shutdown()
		}

		opts.ShareLink = sketchnet.ShareLink(sketchnet.GetOutgoingIP(), cfg.Share.Port)
		opts.OnSaved = hub.Publish
		logger.Info().Str("link", opts.ShareLink).Msg("sharing sketches")
	}

	ui.RunApp(opts)
	return nil
}

func main() {
	// A share link handed over by the OS opens the join flow directly.
	if args := os.Args; len(args) > 1 && strings.HasPrefix(args[1], sketchnet.ShareScheme) {
		rootCmd.SetArgs(append([]string{"join"}, args[1:]...))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
