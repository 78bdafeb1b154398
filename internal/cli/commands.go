package cli

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/five82/wolfy/internal/app"
)

func newConsoleCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Start the interactive query console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), e.appOptions())
		},
	}
}

func newServeCmd(e *env) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway",
		Long: "Serves /v1/simple, /v1/result, /v1/spoken and /v2/query on the listen\n" +
			"address, forwarding each request with the configured appid.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := e.appOptions()
			opts.ClientOptions = e.clientOptions()
			if listen != "" {
				opts.Config.Listen = listen
			}
			if e.cfg.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			return app.Serve(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides config)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wolfy version",
		Args:  cobra.NoArgs,
		// The version needs no config.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wolfy %s\n", version)
		},
	}
}
