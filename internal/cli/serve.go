package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/codeesasi/Ai-Media-Guardian/internal/app"
)

var serveNoStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve player and library tools over MCP stdio",
	Long: `Run an MCP server on stdin/stdout that exposes every player and library
operation as a tool. VLC is launched first unless --no-start is given.

Logs go to stderr or log.file; stdout carries only the MCP stream.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveNoStart, "no-start", false, "Do not launch VLC on startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	fxApp := fx.New(
		app.Options(cfg, app.Params{
			Version:   Version,
			AutoStart: !serveNoStart,
			In:        os.Stdin,
			Out:       os.Stdout,
		}),
	)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fxApp.Start(ctx); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
	case <-fxApp.Done():
	}

	stopCtx, stop := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer stop()
	return fxApp.Stop(stopCtx)
}
