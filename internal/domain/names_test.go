package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdidvp/assetkraft/internal/domain"
)

func TestNormalizeName(t *testing.T) {
	for _, in := range []string{"Object count", "object_count", "object-count", "ObjectCount", "  OBJECT count "} {
		assert.Equal(t, "object count", domain.NormalizeName(in), "input %q", in)
	}
}

func TestCanonicalValidatorName(t *testing.T) {
	name, ok := domain.CanonicalValidatorName("uv_layers")
	assert.True(t, ok)
	assert.Equal(t, domain.ValidatorUVLayers, name)

	name, ok = domain.CanonicalValidatorName("animated-mesh-parenting")
	assert.True(t, ok)
	assert.Equal(t, domain.ValidatorAnimatedParented, name)

	_, ok = domain.CanonicalValidatorName("polycount")
	assert.False(t, ok)
}

func TestValidValidators_UniqueAfterNormalization(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range domain.ValidValidators {
		key := domain.NormalizeName(v)
		assert.False(t, seen[key], "duplicate %q", v)
		seen[key] = true
	}
	assert.Len(t, domain.ValidValidators, 14)
}
