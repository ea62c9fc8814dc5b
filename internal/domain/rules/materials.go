package rules

import (
	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/validation"
)

// BackfaceCullingRule requires backface culling on every material in scope.
type BackfaceCullingRule struct{}

func (BackfaceCullingRule) offending(t validation.Target) (nameList, error) {
	mats, err := t.Materials()
	var names nameList
	for _, m := range mats {
		if !m.UseBackfaceCulling {
			names.add(m.Name)
		}
	}
	return names, err
}

func (r BackfaceCullingRule) Validate(t validation.Target) domain.ValidationResult {
	names, err := r.offending(t)
	if err != nil {
		return validation.ReferenceFailure(err)
	}
	return offenders(names, "Materials without backface culling", "All materials use backface culling.")
}

func (r BackfaceCullingRule) Fix(t validation.Target) error {
	names, err := r.offending(t)
	if err := fatal(err); err != nil {
		return err
	}
	cmds := make([]domain.Command, 0, len(names))
	for _, name := range names {
		cmds = append(cmds, domain.SetProperty(domain.KindMaterial, name, domain.PropUseBackfaceCulling, true))
	}
	return applyAll(t.Graph, cmds)
}
