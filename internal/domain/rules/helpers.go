package rules

import (
	"errors"
	"strings"

	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/validation"
)

// meshObject pairs an object with the mesh data it uses.
type meshObject struct {
	Object string
	Mesh   domain.Mesh
}

// scopeMeshes returns the mesh objects in scope with their mesh data. Objects of
// other types, and meshes whose data block is missing, contribute nothing. A
// dangling object name is returned as the error alongside the meshes found.
func scopeMeshes(t validation.Target) ([]meshObject, error) {
	objs, lookupErr := t.Objects()
	var out []meshObject
	for _, obj := range objs {
		if obj.Type != domain.ObjectTypeMesh || obj.Data == "" {
			continue
		}
		mesh, err := t.Graph.Mesh(obj.Data)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, meshObject{Object: obj.Name, Mesh: mesh})
	}
	return out, lookupErr
}

func uniqueMeshes(objs []meshObject) []domain.Mesh {
	seen := make(map[string]bool)
	var meshes []domain.Mesh
	for _, mo := range objs {
		if seen[mo.Mesh.Name] {
			continue
		}
		seen[mo.Mesh.Name] = true
		meshes = append(meshes, mo.Mesh)
	}
	return meshes
}

// scopeImages returns the names of images referenced by image-texture nodes of the
// materials in scope, de-duplicated in encounter order.
func scopeImages(t validation.Target) ([]string, error) {
	mats, lookupErr := t.Materials()
	seen := make(map[string]bool)
	var names []string
	for _, m := range mats {
		for _, n := range m.ImageNodes() {
			if seen[n.Image] {
				continue
			}
			seen[n.Image] = true
			names = append(names, n.Image)
		}
	}
	return names, lookupErr
}

// resolvedImages loads the images in scope, skipping names the graph lacks.
// Unresolved images are the missing-texture rule's concern.
func resolvedImages(t validation.Target) ([]domain.Image, error) {
	names, lookupErr := scopeImages(t)
	if fatal(lookupErr) != nil {
		return nil, lookupErr
	}
	var imgs []domain.Image
	for _, name := range names {
		img, err := t.Graph.Image(name)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		imgs = append(imgs, img)
	}
	return imgs, lookupErr
}

// nameList is an insertion-ordered set of entity names.
type nameList []string

func (l *nameList) add(name string) {
	for _, n := range *l {
		if n == name {
			return
		}
	}
	*l = append(*l, name)
}

func (l nameList) String() string { return strings.Join(l, ", ") }

// offenders builds the result shared by the "list every offender" rules.
func offenders(names nameList, failPrefix, passMessage string) domain.ValidationResult {
	if len(names) == 0 {
		return domain.Pass("%s", passMessage)
	}
	return domain.Fail("%s: %s", failPrefix, names)
}

// fatal drops dangling-reference errors so a fix still repairs what it can find.
func fatal(err error) error {
	if errors.Is(err, domain.ErrDanglingReference) {
		return nil
	}
	return err
}

// applyAll applies commands in order and stops at the first error.
func applyAll(graph domain.SceneGraph, cmds []domain.Command) error {
	for _, cmd := range cmds {
		if err := graph.Apply(cmd); err != nil {
			return err
		}
	}
	return nil
}
