package domain

import (
	"fmt"
	"strings"
)

// AssetType identifies the kind of exportable unit and how its object scope is resolved.
type AssetType string

const (
	AssetTypeModel    AssetType = "model"
	AssetTypeMaterial AssetType = "material"
	AssetTypeScene    AssetType = "scene"
)

// ValidAssetTypes enumerates all recognized asset types.
var ValidAssetTypes = []AssetType{
	AssetTypeModel,
	AssetTypeMaterial,
	AssetTypeScene,
}

// ParseAssetType converts a type tag to an AssetType, ignoring case.
func ParseAssetType(tag string) (AssetType, error) {
	t := AssetType(strings.ToLower(strings.TrimSpace(tag)))
	for _, valid := range ValidAssetTypes {
		if t == valid {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: model, material, scene)", ErrInvalidAssetType, tag)
}

// ExportData is the record produced by the export step. Only Type, Models, Scene and
// Material matter for validation; everything else is carried in Extra untouched.
type ExportData struct {
	Type     string         `yaml:"type"               json:"type"`
	Models   []string       `yaml:"models,omitempty"   json:"models,omitempty"`
	Scene    string         `yaml:"scene,omitempty"    json:"scene,omitempty"`
	Material string         `yaml:"material,omitempty" json:"material,omitempty"`
	Extra    map[string]any `yaml:",inline"            json:"extra,omitempty"`
}

// AssetType parses the Type field.
func (d ExportData) AssetType() (AssetType, error) {
	return ParseAssetType(d.Type)
}
