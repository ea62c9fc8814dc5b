package validation

import (
	"errors"

	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/scope"
)

// Env bundles the collaborators every rule reads from.
type Env struct {
	Graph domain.SceneGraph
	Files domain.FileProbe
}

// Target is what a rule inspects: one export resolved against the scene graph.
// It is rebuilt for every rule invocation so a fix applied by an earlier rule is
// always visible to later ones.
type Target struct {
	Env
	AssetType domain.AssetType
	Data      domain.ExportData
	Scope     []string
}

// Objects loads every object in scope. Names the graph cannot resolve are
// returned as a *domain.ReferenceError alongside the objects that were found.
func (t Target) Objects() ([]domain.Object, error) {
	objs := make([]domain.Object, 0, len(t.Scope))
	var missing []string
	for _, name := range t.Scope {
		obj, err := t.Graph.Object(name)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			missing = append(missing, name)
			continue
		}
		objs = append(objs, obj)
	}
	if len(missing) > 0 {
		return objs, &domain.ReferenceError{Kind: "objects", Names: missing}
	}
	return objs, nil
}

// Materials loads every material in scope, de-duplicated in encounter order.
func (t Target) Materials() ([]domain.Material, error) {
	names, err := scope.Materials(t.Graph, t.AssetType, t.Data, t.Scope)
	if err != nil && !errors.Is(err, domain.ErrMissingScopeData) {
		return nil, err
	}

	mats := make([]domain.Material, 0, len(names))
	var missing []string
	for _, name := range names {
		m, err := t.Graph.Material(name)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			missing = append(missing, name)
			continue
		}
		mats = append(mats, m)
	}
	if len(missing) > 0 {
		return mats, &domain.ReferenceError{Kind: "materials", Names: missing}
	}
	return mats, nil
}

// ReferenceFailure turns a lookup error into a failed result. Dangling references
// surface as their own message; anything else is reported verbatim.
func ReferenceFailure(err error) domain.ValidationResult {
	var ref *domain.ReferenceError
	if errors.As(err, &ref) {
		return domain.Fail("%s", ref.Message())
	}
	return domain.Fail("Scene graph lookup failed: %v", err)
}
