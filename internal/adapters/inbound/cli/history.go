package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/assetkraft/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/assetkraft/internal/adapters/outbound/history"
	"github.com/abdidvp/assetkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/assetkraft/internal/application"
)

func newHistoryCmd(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded validation runs",
		Long:  "Show the runs recorded with `validate --record`, oldest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(opts.projectPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewHistoryService(history.New(), gitinfo.New())
			entries, err := svc.Entries(absPath)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")
	return cmd
}
