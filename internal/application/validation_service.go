package application

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/rules"
	"github.com/abdidvp/assetkraft/internal/domain/scope"
	"github.com/abdidvp/assetkraft/internal/domain/validation"
)

// ValidationService orchestrates the validation pipeline over one scene graph:
// resolve export → run validators in order → aggregate → optionally fix → re-validate.
// It is not safe for concurrent use; callers off the owner goroutine go through
// a mainthread.Loop.
type ValidationService struct {
	registry  *validation.Registry
	env       validation.Env
	log       *zap.Logger
	assetType domain.AssetType
}

// NewValidationService builds the rule catalog from cfg and binds it to env.
func NewValidationService(cfg domain.ProjectConfig, env validation.Env, log *zap.Logger) (*ValidationService, error) {
	if env.Graph == nil {
		return nil, fmt.Errorf("scene graph is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	reg, err := rules.NewRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}
	return &ValidationService{registry: reg, env: env, log: log}, nil
}

// Registry exposes the underlying registry.
func (s *ValidationService) Registry() *validation.Registry { return s.registry }

// ListValidators describes the validators in execution order.
func (s *ValidationService) ListValidators() []domain.ValidatorInfo {
	return s.registry.List()
}

// Validate runs the named validator, or all of them for "" / "all", and returns
// the aggregated report. Per-validator errors do not stop the batch; they are
// returned joined alongside the report.
func (s *ValidationService) Validate(name string, data domain.ExportData) (domain.ValidationReport, error) {
	s.logScope(data)
	s.log.Debug("validation started", zap.String("validator", orAll(name)), zap.String("asset_type", data.Type))

	err := s.registry.RunValidation(s.env, name, data)
	if errors.Is(err, domain.ErrUnknownValidator) {
		return domain.ValidationReport{}, err
	}
	if err != nil {
		s.log.Warn("validation finished with errors", zap.Error(err))
	}

	report := s.report(data)
	for _, res := range report.Results {
		if res.Validated && !res.Valid {
			s.log.Debug("validator failed",
				zap.String("validator", res.Name),
				zap.String("category", string(res.Category)),
				zap.String("message", res.Message))
		}
	}
	s.log.Info("validation finished",
		zap.String("status", report.Status),
		zap.Int("errors", len(report.Errors)),
		zap.Int("warnings", len(report.Warnings)))
	return report, err
}

// Fix validates, runs the remediation of the validators selected by opts.Only, and
// reports the state before and after. Fixes that do not converge are logged and
// listed in the outcomes; they are not errors. The graph is changed even for a dry
// run; DryRun only tells callers not to persist it.
func (s *ValidationService) Fix(opts domain.FixOptions, data domain.ExportData) (domain.FixReport, error) {
	name := opts.Only
	before, err := s.Validate(name, data)
	if errors.Is(err, domain.ErrUnknownValidator) {
		return domain.FixReport{}, err
	}

	outcomes, fixErr := s.registry.RunFix(s.env, name, data)
	for _, o := range outcomes {
		if o.Attempted && !o.Converged {
			s.log.Warn("could not fix automatically",
				zap.String("validator", o.Validator),
				zap.String("message", o.Result.Message),
				zap.Error(domain.ErrFixDidNotConverge))
		}
	}
	if fixErr != nil {
		s.log.Warn("fix finished with errors", zap.Error(fixErr))
	}

	return domain.FixReport{
		Outcomes: outcomes,
		Before:   before,
		After:    s.report(data),
	}, fixErr
}

// Ignore forces the named validator, or all of them, to pass.
func (s *ValidationService) Ignore(name string) error {
	if err := s.registry.Ignore(name); err != nil {
		return err
	}
	s.log.Info("validator ignored", zap.String("validator", orAll(name)))
	return nil
}

// Results returns every validator's current result.
func (s *ValidationService) Results() map[string]domain.ValidationResult {
	return s.registry.Results()
}

// Report aggregates the current results without running anything. It carries
// the asset type of the last run.
func (s *ValidationService) Report() domain.ValidationReport {
	report := s.registry.Report()
	report.AssetType = s.assetType
	return report
}

func (s *ValidationService) report(data domain.ExportData) domain.ValidationReport {
	s.assetType, _ = data.AssetType()
	return s.Report()
}

// logScope records how the export resolves; validators resolve it again themselves.
func (s *ValidationService) logScope(data domain.ExportData) {
	at, err := data.AssetType()
	if err != nil {
		return
	}
	objects, err := scope.Resolve(s.env.Graph, at, data)
	switch {
	case errors.Is(err, domain.ErrMissingScopeData):
		s.log.Debug("export has no scope data, treating scope as empty", zap.Error(err))
	case err != nil:
		s.log.Debug("export scope could not be resolved", zap.Error(err))
	default:
		s.log.Debug("export scope resolved", zap.Int("objects", len(objects)))
	}
}

func orAll(name string) string {
	if name == "" {
		return validation.All
	}
	return name
}
