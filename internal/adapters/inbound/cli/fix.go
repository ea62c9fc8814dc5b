package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/assetkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/assetkraft/internal/domain"
)

func newFixCmd(opts *globalOptions) *cobra.Command {
	var (
		export     exportFlags
		only       string
		dryRun     bool
		out        string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "fix <scene.yaml>",
		Short: "Fix what can be fixed automatically",
		Long: "Validate a scene snapshot, apply every available automatic fix, re-validate and write the " +
			"fixed snapshot back (or to --out). Exits non-zero while error-category validators still fail.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(opts, args[0])
			if err != nil {
				return err
			}
			data, err := export.resolve(sess.doc)
			if err != nil {
				return err
			}

			report, runErr := sess.svc.Fix(domain.FixOptions{DryRun: dryRun, Only: only}, data)
			if errors.Is(runErr, domain.ErrUnknownValidator) {
				return runErr
			}

			if !dryRun {
				dest := out
				if dest == "" {
					dest = sess.doc.Path
				}
				if err := sess.doc.Save(dest); err != nil {
					return fmt.Errorf("writing scene: %w", err)
				}
				report.Written = dest
				sess.log.Info("scene written", zap.String("path", dest), zap.Bool("in_place", dest == sess.doc.Path))
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderFixReport(report))
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report.After))
			}

			if runErr != nil {
				return fmt.Errorf("fix incomplete: %w", runErr)
			}
			if report.After.Blocking() {
				return fmt.Errorf("%d error(s) remain after fixing", len(report.After.Errors))
			}
			return nil
		},
	}

	export.register(cmd)
	cmd.Flags().StringVar(&only, "only", "", "Fix only this validator")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the fixes without writing the scene")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the fixed scene here instead of over the input")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output fix report as JSON")

	return cmd
}
