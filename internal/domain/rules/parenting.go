package rules

import (
	"errors"

	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/validation"
)

// ParentingRule flags meshes nested under an armature that are not deformed by it:
// the nearest armature ancestor must be the target of one of the mesh's armature
// modifiers.
type ParentingRule struct{}

func (ParentingRule) Validate(t validation.Target) domain.ValidationResult {
	objs, err := t.Objects()
	if err != nil {
		return validation.ReferenceFailure(err)
	}
	var names nameList
	for _, obj := range objs {
		if obj.Type != domain.ObjectTypeMesh {
			continue
		}
		rig, err := armatureAncestor(t.Graph, obj)
		if err != nil {
			return validation.ReferenceFailure(err)
		}
		if rig == "" {
			continue
		}
		if !deformedBy(obj, rig) {
			names.add(obj.Name)
		}
	}
	return offenders(names,
		"Meshes parented to an armature without an armature modifier",
		"All meshes under an armature are deformed by it.")
}

// armatureAncestor walks the parent chain and returns the nearest armature, or "".
// A parent missing from the graph ends the walk.
func armatureAncestor(graph domain.SceneGraph, obj domain.Object) (string, error) {
	visited := map[string]bool{obj.Name: true}
	current := obj
	for current.HasParent() {
		if visited[current.Parent] {
			return "", nil
		}
		visited[current.Parent] = true

		parent, err := graph.Object(current.Parent)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return "", nil
			}
			return "", err
		}
		if parent.Type == domain.ObjectTypeArmature {
			return parent.Name, nil
		}
		current = parent
	}
	return "", nil
}

func deformedBy(obj domain.Object, rig string) bool {
	for _, m := range obj.Modifiers {
		if m.Type == domain.ModifierArmature && m.Object == rig {
			return true
		}
	}
	return false
}
