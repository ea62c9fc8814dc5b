// Package scope resolves which scene entities an export covers.
package scope

import (
	"errors"
	"fmt"

	"github.com/abdidvp/assetkraft/internal/domain"
)

// Resolve returns the object names in scope for an export. A missing scope field
// yields an empty scope together with domain.ErrMissingScopeData, which callers
// may log and otherwise ignore. A scene that cannot be found yields
// domain.ErrDanglingReference.
func Resolve(graph domain.SceneGraph, assetType domain.AssetType, data domain.ExportData) ([]string, error) {
	switch assetType {
	case domain.AssetTypeModel:
		if data.Models == nil {
			return []string{}, fmt.Errorf("%w: model export has no models", domain.ErrMissingScopeData)
		}
		return append([]string(nil), data.Models...), nil

	case domain.AssetTypeScene:
		if data.Scene == "" {
			return []string{}, fmt.Errorf("%w: scene export has no scene", domain.ErrMissingScopeData)
		}
		sc, err := graph.Scene(data.Scene)
		if err != nil {
			return []string{}, danglingErr("scene", data.Scene, err)
		}
		return append([]string{}, sc.Objects...), nil

	case domain.AssetTypeMaterial:
		return []string{}, nil

	default:
		return nil, fmt.Errorf("%w %q", domain.ErrInvalidAssetType, assetType)
	}
}

// Materials returns the material names in scope. Material exports resolve the single
// named material; other exports collect the non-empty material slots of the given
// objects, de-duplicated in encounter order. Objects that cannot be found are skipped;
// rules report them separately.
func Materials(graph domain.SceneGraph, assetType domain.AssetType, data domain.ExportData, objects []string) ([]string, error) {
	if assetType == domain.AssetTypeMaterial {
		if data.Material == "" {
			return []string{}, fmt.Errorf("%w: material export has no material", domain.ErrMissingScopeData)
		}
		if _, err := graph.Material(data.Material); err != nil {
			return []string{}, danglingErr("material", data.Material, err)
		}
		return []string{data.Material}, nil
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, name := range objects {
		obj, err := graph.Object(name)
		if err != nil {
			continue
		}
		for _, slot := range obj.MaterialSlots {
			if slot == "" || seen[slot] {
				continue
			}
			seen[slot] = true
			names = append(names, slot)
		}
	}
	return names, nil
}

func danglingErr(kind, name string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.ReferenceError{Kind: kind, Names: []string{name}}
	}
	return fmt.Errorf("resolving %s %q: %w", kind, name, err)
}
