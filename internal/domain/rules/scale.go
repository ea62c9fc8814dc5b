package rules

import (
	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/validation"
)

// ScaleRule requires every object in scope to have unit scale.
type ScaleRule struct{}

func (ScaleRule) offending(t validation.Target) (nameList, error) {
	objs, err := t.Objects()
	var names nameList
	for _, obj := range objs {
		if obj.Scale != domain.UnitScale {
			names.add(obj.Name)
		}
	}
	return names, err
}

func (r ScaleRule) Validate(t validation.Target) domain.ValidationResult {
	names, err := r.offending(t)
	if err != nil {
		return validation.ReferenceFailure(err)
	}
	return offenders(names, "Objects with wrong scale", "All objects have (1,1,1) scale.")
}

// Fix resets the scale of offending objects.
func (r ScaleRule) Fix(t validation.Target) error {
	names, err := r.offending(t)
	if err := fatal(err); err != nil {
		return err
	}
	cmds := make([]domain.Command, 0, len(names))
	for _, name := range names {
		cmds = append(cmds, domain.SetProperty(domain.KindObject, name, domain.PropScale, domain.UnitScale))
	}
	return applyAll(t.Graph, cmds)
}
