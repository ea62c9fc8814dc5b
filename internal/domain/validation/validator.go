// Package validation holds the validator abstraction and the registry that runs
// validators as a batch.
package validation

import (
	"errors"
	"fmt"

	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/scope"
)

// Rule inspects a target. Validate must not mutate the scene graph.
type Rule interface {
	Validate(t Target) domain.ValidationResult
}

// Fixer is implemented by rules that can remediate their own violations.
type Fixer interface {
	Fix(t Target) error
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(t Target) domain.ValidationResult

func (f RuleFunc) Validate(t Target) domain.ValidationResult { return f(t) }

// Validator is a named, categorized rule together with its last result.
type Validator struct {
	name        string
	category    domain.Category
	description string
	rule        Rule
	result      domain.ValidationResult
	validated   bool
}

// New creates a validator whose result starts as "not validated".
func New(name string, category domain.Category, description string, rule Rule) *Validator {
	return &Validator{
		name:        name,
		category:    category,
		description: description,
		rule:        rule,
		result:      domain.NotValidated(),
	}
}

// Name returns the catalog name.
func (v *Validator) Name() string { return v.name }

// Category returns the severity a failure is reported with.
func (v *Validator) Category() domain.Category { return v.category }

// Description returns the user-facing description of the rule.
func (v *Validator) Description() string { return v.description }

// Fixable reports whether the rule defines a remediation.
func (v *Validator) Fixable() bool {
	_, ok := v.rule.(Fixer)
	return ok
}

// Info describes the validator.
func (v *Validator) Info() domain.ValidatorInfo {
	return domain.ValidatorInfo{
		Name:        v.name,
		Category:    v.category,
		Description: v.description,
		Fixable:     v.Fixable(),
	}
}

// Result returns the result of the last run, fix or ignore.
func (v *Validator) Result() domain.ValidationResult { return v.result }

// Validated reports whether the validator has produced a result yet.
func (v *Validator) Validated() bool { return v.validated }

// Ignore forces a passing result without touching the scene.
func (v *Validator) Ignore() {
	v.set(domain.Ignored())
}

// RunValidation checks data against the scene graph and stores the result. An
// invalid asset type is stored as a failure and also returned.
func (v *Validator) RunValidation(env Env, data domain.ExportData) error {
	t, failed, err := v.target(env, data)
	if failed != nil {
		v.set(*failed)
		return err
	}
	v.set(v.rule.Validate(t))
	return nil
}

// RunFix applies the rule's remediation, if any, and re-validates. A fix that
// leaves the validator failing is reported through the outcome, not as an error.
// A fix that errors part way is still re-validated so the stored result matches
// the scene it left behind.
func (v *Validator) RunFix(env Env, data domain.ExportData) (domain.FixOutcome, error) {
	outcome := domain.FixOutcome{Validator: v.name}

	if fixer, ok := v.rule.(Fixer); ok {
		t, failed, err := v.target(env, data)
		if failed != nil {
			v.set(*failed)
			outcome.Result = v.result
			return outcome, err
		}
		outcome.Attempted = true
		if err := fixer.Fix(t); err != nil {
			fixErr := fmt.Errorf("fixing %s: %w", v.name, err)
			valErr := v.RunValidation(env, data)
			outcome.Result = v.result
			return outcome, errors.Join(fixErr, valErr)
		}
	}

	if err := v.RunValidation(env, data); err != nil {
		outcome.Result = v.result
		return outcome, err
	}
	outcome.Result = v.result
	outcome.Converged = v.result.Valid
	return outcome, nil
}

// target resolves the export for this run. When resolution fails the returned
// result holds the failure to store; err is non-nil only for conditions the
// caller must see (invalid asset type, accessor failure).
func (v *Validator) target(env Env, data domain.ExportData) (Target, *domain.ValidationResult, error) {
	assetType, err := data.AssetType()
	if err != nil {
		res := domain.Fail("Invalid asset type %q", data.Type)
		return Target{}, &res, fmt.Errorf("%s: %w", v.name, err)
	}

	objects, err := scope.Resolve(env.Graph, assetType, data)
	switch {
	case err == nil, errors.Is(err, domain.ErrMissingScopeData):
	case errors.Is(err, domain.ErrDanglingReference):
		res := ReferenceFailure(err)
		return Target{}, &res, nil
	default:
		res := domain.Fail("Could not resolve export scope: %v", err)
		return Target{}, &res, fmt.Errorf("%s: %w", v.name, err)
	}

	return Target{Env: env, AssetType: assetType, Data: data, Scope: objects}, nil, nil
}

func (v *Validator) set(res domain.ValidationResult) {
	v.result = res
	v.validated = true
}
