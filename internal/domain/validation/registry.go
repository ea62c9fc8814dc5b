package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abdidvp/assetkraft/internal/domain"
)

// All selects every validator in a registry operation.
const All = "all"

// Registry is an ordered, caller-owned collection of validators.
type Registry struct {
	validators []*Validator
	index      map[string]*Validator
}

// NewRegistry creates a registry holding vs in order.
func NewRegistry(vs ...*Validator) (*Registry, error) {
	r := &Registry{index: make(map[string]*Validator)}
	for _, v := range vs {
		if err := r.Register(v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends a validator. Names must be unique after normalization.
func (r *Registry) Register(v *Validator) error {
	key := domain.NormalizeName(v.Name())
	if key == "" {
		return fmt.Errorf("validator name must not be empty")
	}
	if existing, ok := r.index[key]; ok {
		return fmt.Errorf("validator %q already registered as %q", v.Name(), existing.Name())
	}
	r.index[key] = v
	r.validators = append(r.validators, v)
	return nil
}

// Get returns the validator with the given name, in any spelling NormalizeName folds.
func (r *Registry) Get(name string) (*Validator, error) {
	if v, ok := r.index[domain.NormalizeName(name)]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w %q", domain.ErrUnknownValidator, name)
}

// Validators returns the validators in registry order.
func (r *Registry) Validators() []*Validator {
	return append([]*Validator(nil), r.validators...)
}

// Len returns the number of registered validators.
func (r *Registry) Len() int { return len(r.validators) }

// List describes every validator in registry order.
func (r *Registry) List() []domain.ValidatorInfo {
	infos := make([]domain.ValidatorInfo, 0, len(r.validators))
	for _, v := range r.validators {
		infos = append(infos, v.Info())
	}
	return infos
}

// Select returns the named validator, or all of them for "" or All.
func (r *Registry) Select(name string) ([]*Validator, error) {
	if name == "" || strings.EqualFold(name, All) {
		return r.Validators(), nil
	}
	v, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return []*Validator{v}, nil
}

// RunValidation runs the selected validators in order. Every validator runs even
// when an earlier one errors; the errors are joined.
func (r *Registry) RunValidation(env Env, name string, data domain.ExportData) error {
	vs, err := r.Select(name)
	if err != nil {
		return err
	}
	var errs []error
	for _, v := range vs {
		if err := v.RunValidation(env, data); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RunFix fixes the selected validators in order and returns one outcome each.
func (r *Registry) RunFix(env Env, name string, data domain.ExportData) ([]domain.FixOutcome, error) {
	vs, err := r.Select(name)
	if err != nil {
		return nil, err
	}
	outcomes := make([]domain.FixOutcome, 0, len(vs))
	var errs []error
	for _, v := range vs {
		outcome, err := v.RunFix(env, data)
		if err != nil {
			errs = append(errs, err)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, errors.Join(errs...)
}

// Ignore forces the selected validators to pass.
func (r *Registry) Ignore(name string) error {
	vs, err := r.Select(name)
	if err != nil {
		return err
	}
	for _, v := range vs {
		v.Ignore()
	}
	return nil
}

// Results maps every validator name to its current result.
func (r *Registry) Results() map[string]domain.ValidationResult {
	results := make(map[string]domain.ValidationResult, len(r.validators))
	for _, v := range r.validators {
		results[v.Name()] = v.Result()
	}
	return results
}

// Report partitions the current results by severity. Validators that have not
// run yet are listed as pending rather than failed.
func (r *Registry) Report() domain.ValidationReport {
	report := domain.ValidationReport{
		Results:  make([]domain.ValidatorResult, 0, len(r.validators)),
		Warnings: []string{},
		Errors:   []string{},
	}

	for _, v := range r.validators {
		res := v.Result()
		report.Results = append(report.Results, domain.ValidatorResult{
			ValidatorInfo:    v.Info(),
			ValidationResult: res,
			Validated:        v.Validated(),
		})
		switch {
		case !v.Validated():
			report.Pending = append(report.Pending, v.Name())
		case res.Valid:
		case v.Category() == domain.CategoryError:
			report.Errors = append(report.Errors, v.Name())
		default:
			report.Warnings = append(report.Warnings, v.Name())
		}
	}

	switch {
	case len(report.Errors) > 0:
		report.Status = domain.StatusFail
	case len(report.Warnings) > 0:
		report.Status = domain.StatusWarn
	case len(report.Pending) > 0:
		report.Status = domain.StatusPending
	default:
		report.Status = domain.StatusPass
	}
	return report
}
