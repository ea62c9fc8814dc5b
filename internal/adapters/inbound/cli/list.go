package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/assetkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/assetkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/assetkraft/internal/domain/rules"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the validators this project runs",
		Long:  "List the validator catalog after applying the project's skip list, limits and severity overrides.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(opts.projectPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			cfg, err := config.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			reg, err := rules.NewRegistry(cfg)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, reg.List())
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidators(reg.List()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
