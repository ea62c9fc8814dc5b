// Package rules is the catalog of asset validators.
package rules

import (
	"fmt"

	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/validation"
)

// Entry describes one catalog validator before it is instantiated.
type Entry struct {
	Name        string
	Category    domain.Category
	Description string
	Rule        validation.Rule
}

// Entries returns the catalog in execution order, with thresholds taken from limits.
func Entries(limits domain.Limits) []Entry {
	return []Entry{
		{
			Name:        domain.ValidatorObjectCount,
			Category:    domain.CategoryWarning,
			Description: fmt.Sprintf("The asset should have at most %d objects.", limits.MaxObjects),
			Rule:        CountRule{Noun: "objects", Limit: limits.MaxObjects, Count: countObjects},
		},
		{
			Name:        domain.ValidatorTriangleCount,
			Category:    domain.CategoryWarning,
			Description: fmt.Sprintf("The asset should have at most %d triangles.", limits.MaxTriangles),
			Rule:        CountRule{Noun: "triangles", Limit: limits.MaxTriangles, Count: countTriangles},
		},
		{
			Name:        domain.ValidatorJointCount,
			Category:    domain.CategoryError,
			Description: fmt.Sprintf("Armatures in the asset must have at most %d bones in total.", limits.MaxBones),
			Rule:        CountRule{Noun: "bones", Limit: limits.MaxBones, Count: countBones},
		},
		{
			Name:        domain.ValidatorAnimationCount,
			Category:    domain.CategoryError,
			Description: fmt.Sprintf("At most %d object(s) in the asset may carry animation data.", limits.MaxAnimations),
			Rule:        CountRule{Noun: "animations", Limit: limits.MaxAnimations, Count: countAnimations},
		},
		{
			Name:        domain.ValidatorMaterialCount,
			Category:    domain.CategoryWarning,
			Description: fmt.Sprintf("The asset should use at most %d material slots.", limits.MaxMaterials),
			Rule:        CountRule{Noun: "materials", Limit: limits.MaxMaterials, Count: countMaterials},
		},
		{
			Name:        domain.ValidatorScale,
			Category:    domain.CategoryWarning,
			Description: "Objects should have their scale applied, i.e. a scale of (1,1,1).",
			Rule:        ScaleRule{},
		},
		{
			Name:        domain.ValidatorUVLayers,
			Category:    domain.CategoryError,
			Description: "Meshes must have at most one UV layer.",
			Rule:        UVLayerRule(),
		},
		{
			Name:        domain.ValidatorVertexColors,
			Category:    domain.CategoryError,
			Description: "Meshes must not carry vertex colors.",
			Rule:        VertexColorRule(),
		},
		{
			Name:        domain.ValidatorMorphTargets,
			Category:    domain.CategoryError,
			Description: "Meshes must not carry shape keys (morph targets).",
			Rule:        MorphTargetRule(),
		},
		{
			Name:        domain.ValidatorMissingTextures,
			Category:    domain.CategoryError,
			Description: "Every image used by a material must exist on disk or be packed.",
			Rule:        MissingTextureRule{},
		},
		{
			Name:        domain.ValidatorSquareTextures,
			Category:    domain.CategoryError,
			Description: "Image textures must be square.",
			Rule:        SquareTextureRule{},
		},
		{
			Name:        domain.ValidatorTextureSize,
			Category:    domain.CategoryError,
			Description: fmt.Sprintf("Image texture widths must be a power of two no larger than %d.", limits.MaxTextureSize),
			Rule:        TextureSizeRule{MaxSize: limits.MaxTextureSize},
		},
		{
			Name:        domain.ValidatorBackfaceCulling,
			Category:    domain.CategoryError,
			Description: "Materials must enable backface culling.",
			Rule:        BackfaceCullingRule{},
		},
		{
			Name:        domain.ValidatorAnimatedParented,
			Category:    domain.CategoryWarning,
			Description: "Meshes parented under an armature should be deformed by it through an armature modifier.",
			Rule:        ParentingRule{},
		},
	}
}

// NewRegistry builds a registry from the catalog, honouring the config's limits,
// skipped validators and severity overrides.
func NewRegistry(cfg domain.ProjectConfig) (*validation.Registry, error) {
	reg, err := validation.NewRegistry()
	if err != nil {
		return nil, err
	}
	for _, e := range Entries(cfg.EffectiveLimits()) {
		if cfg.IsSkipped(e.Name) {
			continue
		}
		v := validation.New(e.Name, cfg.CategoryFor(e.Name, e.Category), e.Description, e.Rule)
		if err := reg.Register(v); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
