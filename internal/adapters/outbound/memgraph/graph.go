// Package memgraph is an in-memory scene graph. It backs scene snapshot files and
// serves as the fake host in tests.
package memgraph

import (
	"fmt"
	"slices"

	"github.com/abdidvp/assetkraft/internal/domain"
)

// table keeps data blocks by name in insertion order.
type table[T any] struct {
	items map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{items: make(map[string]T)}
}

func (t *table[T]) put(name string, v T) {
	if _, ok := t.items[name]; !ok {
		t.order = append(t.order, name)
	}
	t.items[name] = v
}

func (t *table[T]) get(name string) (T, bool) {
	v, ok := t.items[name]
	return v, ok
}

func (t *table[T]) remove(name string) {
	if _, ok := t.items[name]; !ok {
		return
	}
	delete(t.items, name)
	t.order = slices.DeleteFunc(t.order, func(n string) bool { return n == name })
}

func (t *table[T]) values() []T {
	out := make([]T, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.items[name])
	}
	return out
}

// Graph implements domain.SceneGraph. It is not safe for concurrent use; callers
// that share it across goroutines funnel access through a single owner.
type Graph struct {
	objects   *table[domain.Object]
	meshes    *table[domain.Mesh]
	armatures *table[domain.Armature]
	scenes    *table[domain.Scene]
	materials *table[domain.Material]
	images    *table[domain.Image]
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		objects:   newTable[domain.Object](),
		meshes:    newTable[domain.Mesh](),
		armatures: newTable[domain.Armature](),
		scenes:    newTable[domain.Scene](),
		materials: newTable[domain.Material](),
		images:    newTable[domain.Image](),
	}
}

// Snapshot is the full content of a graph in insertion order.
type Snapshot struct {
	Objects   []domain.Object
	Meshes    []domain.Mesh
	Armatures []domain.Armature
	Scenes    []domain.Scene
	Materials []domain.Material
	Images    []domain.Image
}

// FromSnapshot builds a graph holding the snapshot's data blocks.
func FromSnapshot(s Snapshot) *Graph {
	g := New()
	for _, o := range s.Objects {
		g.AddObject(o)
	}
	for _, m := range s.Meshes {
		g.AddMesh(m)
	}
	for _, a := range s.Armatures {
		g.AddArmature(a)
	}
	for _, sc := range s.Scenes {
		g.AddScene(sc)
	}
	for _, m := range s.Materials {
		g.AddMaterial(m)
	}
	for _, i := range s.Images {
		g.AddImage(i)
	}
	return g
}

// Snapshot returns a deep copy of the graph's content.
func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{}
	for _, o := range g.objects.values() {
		s.Objects = append(s.Objects, cloneObject(o))
	}
	for _, m := range g.meshes.values() {
		s.Meshes = append(s.Meshes, cloneMesh(m))
	}
	for _, a := range g.armatures.values() {
		s.Armatures = append(s.Armatures, cloneArmature(a))
	}
	for _, sc := range g.scenes.values() {
		s.Scenes = append(s.Scenes, cloneScene(sc))
	}
	for _, m := range g.materials.values() {
		s.Materials = append(s.Materials, cloneMaterial(m))
	}
	s.Images = append(s.Images, g.images.values()...)
	return s
}

func (g *Graph) AddObject(o domain.Object) *Graph {
	g.objects.put(o.Name, cloneObject(o))
	return g
}

func (g *Graph) AddMesh(m domain.Mesh) *Graph {
	g.meshes.put(m.Name, cloneMesh(m))
	return g
}

func (g *Graph) AddArmature(a domain.Armature) *Graph {
	g.armatures.put(a.Name, cloneArmature(a))
	return g
}

func (g *Graph) AddScene(s domain.Scene) *Graph {
	g.scenes.put(s.Name, cloneScene(s))
	return g
}

func (g *Graph) AddMaterial(m domain.Material) *Graph {
	g.materials.put(m.Name, cloneMaterial(m))
	return g
}

func (g *Graph) AddImage(i domain.Image) *Graph {
	g.images.put(i.Name, i)
	return g
}

func (g *Graph) Object(name string) (domain.Object, error) {
	o, ok := g.objects.get(name)
	if !ok {
		return domain.Object{}, notFound(domain.KindObject, name)
	}
	return cloneObject(o), nil
}

func (g *Graph) Mesh(name string) (domain.Mesh, error) {
	m, ok := g.meshes.get(name)
	if !ok {
		return domain.Mesh{}, notFound(domain.KindMesh, name)
	}
	return cloneMesh(m), nil
}

func (g *Graph) Armature(name string) (domain.Armature, error) {
	a, ok := g.armatures.get(name)
	if !ok {
		return domain.Armature{}, notFound("armature", name)
	}
	return cloneArmature(a), nil
}

func (g *Graph) Scene(name string) (domain.Scene, error) {
	s, ok := g.scenes.get(name)
	if !ok {
		return domain.Scene{}, notFound("scene", name)
	}
	return cloneScene(s), nil
}

func (g *Graph) Material(name string) (domain.Material, error) {
	m, ok := g.materials.get(name)
	if !ok {
		return domain.Material{}, notFound(domain.KindMaterial, name)
	}
	return cloneMaterial(m), nil
}

func (g *Graph) Image(name string) (domain.Image, error) {
	i, ok := g.images.get(name)
	if !ok {
		return domain.Image{}, notFound(domain.KindImage, name)
	}
	return i, nil
}

func notFound[K ~string](kind K, name string) error {
	return fmt.Errorf("%s %q: %w", kind, name, domain.ErrNotFound)
}

func cloneObject(o domain.Object) domain.Object {
	o.Modifiers = slices.Clone(o.Modifiers)
	o.MaterialSlots = slices.Clone(o.MaterialSlots)
	return o
}

func cloneMesh(m domain.Mesh) domain.Mesh {
	m.UVLayers = slices.Clone(m.UVLayers)
	m.VertexColors = slices.Clone(m.VertexColors)
	m.ShapeKeys = slices.Clone(m.ShapeKeys)
	m.Polygons = slices.Clone(m.Polygons)
	return m
}

func cloneArmature(a domain.Armature) domain.Armature {
	a.Bones = slices.Clone(a.Bones)
	return a
}

func cloneScene(s domain.Scene) domain.Scene {
	s.Objects = slices.Clone(s.Objects)
	return s
}

func cloneMaterial(m domain.Material) domain.Material {
	m.Nodes = slices.Clone(m.Nodes)
	return m
}
