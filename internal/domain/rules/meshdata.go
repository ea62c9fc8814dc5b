package rules

import (
	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/validation"
)

// meshDataRule flags mesh objects whose data matches bad and fixes each offending
// mesh once with the command built by fix.
type meshDataRule struct {
	bad         func(m domain.Mesh) bool
	fix         func(m domain.Mesh) domain.Command
	failPrefix  string
	passMessage string
}

func (r meshDataRule) offending(t validation.Target) (nameList, []domain.Mesh, error) {
	objs, err := scopeMeshes(t)
	var names nameList
	var meshes []domain.Mesh
	for _, mo := range objs {
		if r.bad(mo.Mesh) {
			names.add(mo.Object)
			meshes = append(meshes, mo.Mesh)
		}
	}
	return names, meshes, err
}

func (r meshDataRule) Validate(t validation.Target) domain.ValidationResult {
	names, _, err := r.offending(t)
	if err != nil {
		return validation.ReferenceFailure(err)
	}
	return offenders(names, r.failPrefix, r.passMessage)
}

func (r meshDataRule) Fix(t validation.Target) error {
	_, meshes, err := r.offending(t)
	if err := fatal(err); err != nil {
		return err
	}
	seen := make(map[string]bool)
	var cmds []domain.Command
	for _, m := range meshes {
		if seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		cmds = append(cmds, r.fix(m))
	}
	return applyAll(t.Graph, cmds)
}

// UVLayerRule allows at most one UV layer per mesh. The fix keeps the layer flagged
// for rendering, or the first layer when none is flagged.
func UVLayerRule() validation.Rule {
	return meshDataRule{
		bad: func(m domain.Mesh) bool { return len(m.UVLayers) > 1 },
		fix: func(m domain.Mesh) domain.Command {
			return domain.SetProperty(domain.KindMesh, m.Name, domain.PropUVLayers, []domain.UVLayer{renderLayer(m.UVLayers)})
		},
		failPrefix:  "Meshes with more than one UV layer",
		passMessage: "All meshes have at most one UV layer.",
	}
}

func renderLayer(layers []domain.UVLayer) domain.UVLayer {
	for _, l := range layers {
		if l.ActiveRender {
			return l
		}
	}
	kept := layers[0]
	kept.ActiveRender = true
	return kept
}

// VertexColorRule forbids vertex-color layers.
func VertexColorRule() validation.Rule {
	return meshDataRule{
		bad: func(m domain.Mesh) bool { return len(m.VertexColors) > 0 },
		fix: func(m domain.Mesh) domain.Command {
			return domain.SetProperty(domain.KindMesh, m.Name, domain.PropVertexColors, []string(nil))
		},
		failPrefix:  "Meshes with vertex colors",
		passMessage: "No meshes have vertex colors.",
	}
}

// MorphTargetRule forbids shape keys.
func MorphTargetRule() validation.Rule {
	return meshDataRule{
		bad: func(m domain.Mesh) bool { return len(m.ShapeKeys) > 0 },
		fix: func(m domain.Mesh) domain.Command {
			return domain.SetProperty(domain.KindMesh, m.Name, domain.PropShapeKeys, []string(nil))
		},
		failPrefix:  "Meshes with shape keys",
		passMessage: "No meshes have shape keys.",
	}
}
