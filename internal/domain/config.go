package domain

import (
	"fmt"
	"math/bits"
)

// Limits holds the numeric thresholds used by the rule catalog.
type Limits struct {
	MaxObjects     int `yaml:"max_objects"      json:"max_objects"`
	MaxTriangles   int `yaml:"max_triangles"    json:"max_triangles"`
	MaxBones       int `yaml:"max_bones"        json:"max_bones"`
	MaxAnimations  int `yaml:"max_animations"   json:"max_animations"`
	MaxMaterials   int `yaml:"max_materials"    json:"max_materials"`
	MaxTextureSize int `yaml:"max_texture_size" json:"max_texture_size"`
}

// DefaultLimits returns the export constraints the catalog ships with.
func DefaultLimits() Limits {
	return Limits{
		MaxObjects:     300,
		MaxTriangles:   100000,
		MaxBones:       254,
		MaxAnimations:  1,
		MaxMaterials:   10,
		MaxTextureSize: 2048,
	}
}

// ProjectConfig holds project-level configuration loaded from .assetkraft.yaml.
type ProjectConfig struct {
	Limits   LimitOverrides    `yaml:"limits"   json:"limits,omitempty"`
	Skip     []string          `yaml:"skip"     json:"skip,omitempty"`
	Severity map[string]string `yaml:"severity" json:"severity,omitempty"`
}

// LimitOverrides allows users to override specific thresholds.
// Pointer types distinguish "not specified" from zero values.
type LimitOverrides struct {
	MaxObjects     *int `yaml:"max_objects,omitempty"      json:"max_objects,omitempty"`
	MaxTriangles   *int `yaml:"max_triangles,omitempty"    json:"max_triangles,omitempty"`
	MaxBones       *int `yaml:"max_bones,omitempty"        json:"max_bones,omitempty"`
	MaxAnimations  *int `yaml:"max_animations,omitempty"   json:"max_animations,omitempty"`
	MaxMaterials   *int `yaml:"max_materials,omitempty"    json:"max_materials,omitempty"`
	MaxTextureSize *int `yaml:"max_texture_size,omitempty" json:"max_texture_size,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// EffectiveLimits overlays configured limits on the defaults.
func (c ProjectConfig) EffectiveLimits() Limits {
	l := DefaultLimits()
	o := c.Limits
	if o.MaxObjects != nil {
		l.MaxObjects = *o.MaxObjects
	}
	if o.MaxTriangles != nil {
		l.MaxTriangles = *o.MaxTriangles
	}
	if o.MaxBones != nil {
		l.MaxBones = *o.MaxBones
	}
	if o.MaxAnimations != nil {
		l.MaxAnimations = *o.MaxAnimations
	}
	if o.MaxMaterials != nil {
		l.MaxMaterials = *o.MaxMaterials
	}
	if o.MaxTextureSize != nil {
		l.MaxTextureSize = *o.MaxTextureSize
	}
	return l
}

// IsSkipped reports whether the named validator is excluded.
func (c ProjectConfig) IsSkipped(name string) bool {
	key := NormalizeName(name)
	for _, s := range c.Skip {
		if NormalizeName(s) == key {
			return true
		}
	}
	return false
}

// CategoryFor returns the configured category for a validator, or def.
func (c ProjectConfig) CategoryFor(name string, def Category) Category {
	key := NormalizeName(name)
	for k, v := range c.Severity {
		if NormalizeName(k) != key {
			continue
		}
		if cat, err := ParseCategory(v); err == nil {
			return cat
		}
	}
	return def
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. skip entries must name catalog validators
	for _, s := range c.Skip {
		if _, ok := CanonicalValidatorName(s); !ok {
			return fmt.Errorf("unknown validator %q in skip", s)
		}
	}

	// 2. cannot skip every validator
	skipped := 0
	for _, v := range ValidValidators {
		if c.IsSkipped(v) {
			skipped++
		}
	}
	if skipped == len(ValidValidators) {
		return fmt.Errorf("cannot skip all validators (must have at least one active)")
	}

	// 3. severity keys must be validators, values must be categories
	for k, v := range c.Severity {
		if _, ok := CanonicalValidatorName(k); !ok {
			return fmt.Errorf("unknown validator %q in severity", k)
		}
		if _, err := ParseCategory(v); err != nil {
			return fmt.Errorf("severity[%q]: %w", k, err)
		}
	}

	// 4. limits must be positive where set
	return c.Limits.validate()
}

func (o LimitOverrides) validate() error {
	intFields := map[string]*int{
		"max_objects":      o.MaxObjects,
		"max_triangles":    o.MaxTriangles,
		"max_bones":        o.MaxBones,
		"max_materials":    o.MaxMaterials,
		"max_texture_size": o.MaxTextureSize,
	}
	for name, ptr := range intFields {
		if ptr != nil && *ptr <= 0 {
			return fmt.Errorf("limits.%s must be > 0 (got %d)", name, *ptr)
		}
	}

	// zero animations is a valid "static only" constraint
	if o.MaxAnimations != nil && *o.MaxAnimations < 0 {
		return fmt.Errorf("limits.max_animations must be >= 0 (got %d)", *o.MaxAnimations)
	}

	if o.MaxTextureSize != nil && !IsPowerOfTwo(*o.MaxTextureSize) {
		return fmt.Errorf("limits.max_texture_size must be a power of two (got %d)", *o.MaxTextureSize)
	}

	return nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}
