package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/assetkraft/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	projectPath string
	logLevel    string
	logFormat   string

	log *zap.Logger
}

func (o *globalOptions) logger() *zap.Logger {
	if o.log == nil {
		o.log = logging.NewStderr(o.logLevel, o.logFormat)
	}
	return o.log
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "assetkraft",
		Short: "Catch broken assets before they ship",
		Long: "assetkraft checks exported 3D assets against a catalog of validators " +
			"(counts, transforms, mesh data, textures, materials, rigging) and fixes what it can.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.projectPath, "project", ".", "Project directory holding .assetkraft.yaml and run history")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env "+logging.EnvLevel+")")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: console or json (env "+logging.EnvFormat+")")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newValidateCmd(opts))
	cmd.AddCommand(newFixCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
