// Package scenefile reads and writes scene snapshots: YAML documents an exporter
// writes from the host application, describing the data blocks assetkraft checks.
package scenefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abdidvp/assetkraft/internal/adapters/outbound/memgraph"
	"github.com/abdidvp/assetkraft/internal/domain"
)

// relativePrefix marks image paths relative to the snapshot file.
const relativePrefix = "//"

type file struct {
	Export    *domain.ExportData `yaml:"export,omitempty"`
	Objects   []objectRecord     `yaml:"objects"`
	Meshes    []domain.Mesh      `yaml:"meshes,omitempty"`
	Armatures []domain.Armature  `yaml:"armatures,omitempty"`
	Scenes    []domain.Scene     `yaml:"scenes,omitempty"`
	Materials []domain.Material  `yaml:"materials,omitempty"`
	Images    []domain.Image     `yaml:"images,omitempty"`
}

// objectRecord mirrors domain.Object; an omitted scale means (1,1,1).
type objectRecord struct {
	Name          string            `yaml:"name"`
	Type          domain.ObjectType `yaml:"type"`
	Parent        string            `yaml:"parent,omitempty"`
	Data          string            `yaml:"data,omitempty"`
	Modifiers     []domain.Modifier `yaml:"modifiers,omitempty"`
	Scale         *domain.Vector3   `yaml:"scale,omitempty"`
	MaterialSlots []string          `yaml:"material_slots,omitempty"`
	Animated      bool              `yaml:"animated,omitempty"`
}

// Document is a loaded snapshot.
type Document struct {
	Path   string
	Graph  *memgraph.Graph
	Export *domain.ExportData

	// rawPaths keeps image paths as written so Save round-trips them.
	rawPaths map[string]string
}

// Load reads a snapshot and builds its scene graph. Image paths are resolved
// against the snapshot's directory.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	dir := filepath.Dir(abs)

	doc := &Document{Path: abs, Export: f.Export, rawPaths: make(map[string]string)}
	snap := memgraph.Snapshot{
		Meshes:    f.Meshes,
		Armatures: f.Armatures,
		Scenes:    f.Scenes,
		Materials: f.Materials,
	}
	for _, rec := range f.Objects {
		snap.Objects = append(snap.Objects, rec.toObject())
	}
	for _, img := range f.Images {
		doc.rawPaths[img.Name] = img.Filepath
		img.Filepath = resolveImagePath(dir, img.Filepath)
		snap.Images = append(snap.Images, img)
	}
	doc.Graph = memgraph.FromSnapshot(snap)
	return doc, nil
}

// Save writes the document's current graph to path, or back to its own path
// when path is empty.
func (d *Document) Save(path string) error {
	if path == "" {
		path = d.Path
	}
	snap := d.Graph.Snapshot()

	f := file{
		Export:    d.Export,
		Meshes:    snap.Meshes,
		Armatures: snap.Armatures,
		Scenes:    snap.Scenes,
		Materials: snap.Materials,
	}
	for _, o := range snap.Objects {
		f.Objects = append(f.Objects, fromObject(o))
	}
	for _, img := range snap.Images {
		if raw, ok := d.rawPaths[img.Name]; ok {
			img.Filepath = raw
		}
		f.Images = append(f.Images, img)
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("encoding scene: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (f file) validate() error {
	seen := make(map[string]bool)
	for i, o := range f.Objects {
		if o.Name == "" {
			return fmt.Errorf("objects[%d].name must not be empty", i)
		}
		if seen[o.Name] {
			return fmt.Errorf("duplicate object %q", o.Name)
		}
		seen[o.Name] = true
	}
	for i, img := range f.Images {
		if img.Name == "" {
			return fmt.Errorf("images[%d].name must not be empty", i)
		}
	}
	return nil
}

func (r objectRecord) toObject() domain.Object {
	scale := domain.UnitScale
	if r.Scale != nil {
		scale = *r.Scale
	}
	return domain.Object{
		Name:          r.Name,
		Type:          r.Type,
		Parent:        r.Parent,
		Data:          r.Data,
		Modifiers:     r.Modifiers,
		Scale:         scale,
		MaterialSlots: r.MaterialSlots,
		Animated:      r.Animated,
	}
}

func fromObject(o domain.Object) objectRecord {
	scale := o.Scale
	return objectRecord{
		Name:          o.Name,
		Type:          o.Type,
		Parent:        o.Parent,
		Data:          o.Data,
		Modifiers:     o.Modifiers,
		Scale:         &scale,
		MaterialSlots: o.MaterialSlots,
		Animated:      o.Animated,
	}
}

func resolveImagePath(dir, p string) string {
	switch {
	case p == "":
		return ""
	case strings.HasPrefix(p, relativePrefix):
		return filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(p, relativePrefix)))
	case filepath.IsAbs(p):
		return p
	default:
		return filepath.Join(dir, filepath.FromSlash(p))
	}
}

// LoadExportData reads an export-data record from a YAML or JSON file.
func LoadExportData(path string) (domain.ExportData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ExportData{}, fmt.Errorf("reading export data: %w", err)
	}
	var ed domain.ExportData
	if err := yaml.Unmarshal(data, &ed); err != nil {
		return domain.ExportData{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return ed, nil
}

// OSFiles implements domain.FileProbe against the local filesystem.
type OSFiles struct{}

func (OSFiles) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
