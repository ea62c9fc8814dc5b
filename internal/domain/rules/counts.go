package rules

import (
	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/validation"
)

// CountRule passes while an extracted count stays at or below Limit.
// The message is the same either way: "Asset has <n> <noun>".
type CountRule struct {
	Noun  string
	Limit int
	Count func(t validation.Target) (int, error)
}

func (r CountRule) Validate(t validation.Target) domain.ValidationResult {
	n, err := r.Count(t)
	if err != nil {
		return validation.ReferenceFailure(err)
	}
	if n <= r.Limit {
		return domain.Pass("Asset has %d %s", n, r.Noun)
	}
	return domain.Fail("Asset has %d %s", n, r.Noun)
}

func countObjects(t validation.Target) (int, error) {
	return len(t.Scope), nil
}

// countTriangles sums triangles over unique mesh data, so linked duplicates count once.
func countTriangles(t validation.Target) (int, error) {
	meshes, err := scopeMeshes(t)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, m := range uniqueMeshes(meshes) {
		total += m.Triangles()
	}
	return total, nil
}

func countBones(t validation.Target) (int, error) {
	objs, err := t.Objects()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, obj := range objs {
		if obj.Type != domain.ObjectTypeArmature || obj.Data == "" {
			continue
		}
		arm, err := t.Graph.Armature(obj.Data)
		if err != nil {
			continue
		}
		total += len(arm.Bones)
	}
	return total, nil
}

func countAnimations(t validation.Target) (int, error) {
	objs, err := t.Objects()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, obj := range objs {
		if obj.Animated {
			total++
		}
	}
	return total, nil
}

func countMaterials(t validation.Target) (int, error) {
	objs, err := t.Objects()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, obj := range objs {
		for _, slot := range obj.MaterialSlots {
			if slot != "" {
				total++
			}
		}
	}
	return total, nil
}
