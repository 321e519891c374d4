package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/boostpow/boostpub/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the widget API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := server.ConfigFromEnv()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		h := server.NewRouter(cfg, server.Deps{
			Assembler: d.assembler,
			Base:      d.base,
			Pricing:   d.pricing,
			Logger:    d.logger,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.Run(ctx, cfg, h, d.logger)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides BOOSTPUB_HTTP_ADDR)")
}
