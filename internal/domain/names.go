package domain

import (
	"strings"

	"github.com/fatih/camelcase"
)

// Validator names. They double as stable identifiers.
const (
	ValidatorObjectCount      = "Object count"
	ValidatorTriangleCount    = "Triangle count"
	ValidatorJointCount       = "Joint count"
	ValidatorAnimationCount   = "Animation count"
	ValidatorMaterialCount    = "Material count"
	ValidatorScale            = "Scale"
	ValidatorUVLayers         = "UV layers"
	ValidatorVertexColors     = "Vertex colors"
	ValidatorMorphTargets     = "Morph targets"
	ValidatorMissingTextures  = "Missing textures"
	ValidatorSquareTextures   = "Square textures"
	ValidatorTextureSize      = "Texture size"
	ValidatorBackfaceCulling  = "Backface culling"
	ValidatorAnimatedParented = "Animated mesh parenting"
)

// ValidValidators enumerates the catalog in execution order.
var ValidValidators = []string{
	ValidatorObjectCount,
	ValidatorTriangleCount,
	ValidatorJointCount,
	ValidatorAnimationCount,
	ValidatorMaterialCount,
	ValidatorScale,
	ValidatorUVLayers,
	ValidatorVertexColors,
	ValidatorMorphTargets,
	ValidatorMissingTextures,
	ValidatorSquareTextures,
	ValidatorTextureSize,
	ValidatorBackfaceCulling,
	ValidatorAnimatedParented,
}

// NormalizeName folds a validator name to a lookup key so that "Object count",
// "object_count", "object-count" and "ObjectCount" all compare equal.
func NormalizeName(name string) string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-' || r == '.'
	})

	var words []string
	for _, f := range fields {
		for _, w := range camelcase.Split(f) {
			words = append(words, strings.ToLower(w))
		}
	}
	return strings.Join(words, " ")
}

// CanonicalValidatorName maps any spelling of a catalog name to its canonical form.
func CanonicalValidatorName(name string) (string, bool) {
	key := NormalizeName(name)
	for _, v := range ValidValidators {
		if NormalizeName(v) == key {
			return v, true
		}
	}
	return "", false
}
