package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/assetkraft/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/assetkraft/internal/adapters/outbound/history"
	"github.com/abdidvp/assetkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/assetkraft/internal/application"
	"github.com/abdidvp/assetkraft/internal/domain"
)

func newValidateCmd(opts *globalOptions) *cobra.Command {
	var (
		export     exportFlags
		only       string
		ignore     []string
		jsonOutput bool
		strict     bool
		record     bool
	)

	cmd := &cobra.Command{
		Use:   "validate <scene.yaml>",
		Short: "Validate an exported asset",
		Long:  "Run the validator catalog against a scene snapshot. Exits non-zero when an error-category validator fails.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(opts, args[0])
			if err != nil {
				return err
			}
			data, err := export.resolve(sess.doc)
			if err != nil {
				return err
			}

			report, runErr := sess.svc.Validate(only, data)
			if errors.Is(runErr, domain.ErrUnknownValidator) {
				return runErr
			}
			for _, name := range ignore {
				if err := sess.svc.Ignore(name); err != nil {
					return err
				}
			}
			if len(ignore) > 0 {
				report = sess.svc.Report()
			}

			if record {
				hist := application.NewHistoryService(history.New(), gitinfo.New())
				if _, err := hist.Record(sess.projectPath, sess.doc.Path, report); err != nil {
					sess.log.Warn("could not record run", zap.Error(err))
				}
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if runErr != nil {
				return fmt.Errorf("validation incomplete: %w", runErr)
			}
			switch {
			case report.Blocking():
				return fmt.Errorf("validation failed: %d error(s)", len(report.Errors))
			case strict && len(report.Warnings) > 0:
				return fmt.Errorf("validation failed (strict): %d warning(s)", len(report.Warnings))
			}
			return nil
		},
	}

	export.register(cmd)
	cmd.Flags().StringVar(&only, "only", "", "Run only this validator")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "Validators to mark as ignored")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings too")
	cmd.Flags().BoolVar(&record, "record", false, "Append the result to the project's run history")

	return cmd
}
