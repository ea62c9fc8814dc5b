package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/abdidvp/assetkraft/internal/adapters/inbound/mcp"
	"github.com/abdidvp/assetkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/assetkraft/internal/adapters/outbound/mainthread"
	"github.com/abdidvp/assetkraft/internal/adapters/outbound/scenefile"
	"github.com/abdidvp/assetkraft/internal/logging"
)

func newMCPCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the assetkraft MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *globalOptions) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "serve <scene.yaml>",
		Short: "Start assetkraft MCP server (stdio)",
		Long: "Load a scene snapshot and serve it over stdio so AI assistants can validate, fix and save it. " +
			"All scene access is serialised onto one goroutine.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(opts.projectPath)
			if err != nil {
				return err
			}
			doc, err := scenefile.Load(args[0])
			if err != nil {
				return err
			}

			log := opts.logger()
			loop := mainthread.New(interval, log.Named(logging.ComponentMainThread))
			sess, err := mcpadapter.NewSession(doc, cfg, loop, log.Named(logging.ComponentMCP))
			if err != nil {
				return err
			}
			s := mcpadapter.NewAssetKraftMCPServer(sess)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.ServeStdio(s)
				cancel()
			}()

			// The loop runs here so this goroutine owns the scene graph.
			if err := loop.Run(ctx); err != nil {
				return err
			}
			select {
			case err := <-errCh:
				return err
			default:
				return nil
			}
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", mainthread.DefaultInterval, "How often queued scene work is drained")

	return cmd
}
