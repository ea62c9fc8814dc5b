package memgraph

import (
	"fmt"
	"slices"

	"github.com/abdidvp/assetkraft/internal/domain"
)

// Apply performs a typed mutation.
func (g *Graph) Apply(cmd domain.Command) error {
	switch cmd.Op {
	case domain.OpRemove:
		return g.remove(cmd)
	case domain.OpSet:
		return g.set(cmd)
	default:
		return fmt.Errorf("%w: unknown op %q", domain.ErrInvalidCommand, cmd.Op)
	}
}

func (g *Graph) remove(cmd domain.Command) error {
	if cmd.Target.Kind != domain.KindImage {
		return fmt.Errorf("%w: cannot remove %s", domain.ErrInvalidCommand, cmd.Target)
	}

	// Removing an image also clears it from every node, even when the image block
	// itself was already gone.
	g.images.remove(cmd.Target.Name)
	for _, name := range g.materials.order {
		m := g.materials.items[name]
		changed := false
		for i := range m.Nodes {
			if m.Nodes[i].Image == cmd.Target.Name {
				m.Nodes[i].Image = ""
				changed = true
			}
		}
		if changed {
			g.materials.items[name] = m
		}
	}
	return nil
}

func (g *Graph) set(cmd domain.Command) error {
	name := cmd.Target.Name
	switch cmd.Target.Kind {
	case domain.KindObject:
		o, ok := g.objects.get(name)
		if !ok {
			return notFound(domain.KindObject, name)
		}
		if cmd.Property != domain.PropScale {
			return unknownProperty(cmd)
		}
		v, ok := cmd.Value.(domain.Vector3)
		if !ok {
			return badValue(cmd)
		}
		o.Scale = v
		g.objects.put(name, o)

	case domain.KindMesh:
		m, ok := g.meshes.get(name)
		if !ok {
			return notFound(domain.KindMesh, name)
		}
		switch cmd.Property {
		case domain.PropUVLayers:
			v, ok := cmd.Value.([]domain.UVLayer)
			if !ok {
				return badValue(cmd)
			}
			m.UVLayers = slices.Clone(v)
		case domain.PropVertexColors:
			v, ok := cmd.Value.([]string)
			if !ok {
				return badValue(cmd)
			}
			m.VertexColors = slices.Clone(v)
		case domain.PropShapeKeys:
			v, ok := cmd.Value.([]string)
			if !ok {
				return badValue(cmd)
			}
			m.ShapeKeys = slices.Clone(v)
		default:
			return unknownProperty(cmd)
		}
		g.meshes.put(name, m)

	case domain.KindMaterial:
		m, ok := g.materials.get(name)
		if !ok {
			return notFound(domain.KindMaterial, name)
		}
		if cmd.Property != domain.PropUseBackfaceCulling {
			return unknownProperty(cmd)
		}
		v, ok := cmd.Value.(bool)
		if !ok {
			return badValue(cmd)
		}
		m.UseBackfaceCulling = v
		g.materials.put(name, m)

	case domain.KindImage:
		img, ok := g.images.get(name)
		if !ok {
			return notFound(domain.KindImage, name)
		}
		if cmd.Property != domain.PropSize {
			return unknownProperty(cmd)
		}
		v, ok := cmd.Value.([2]int)
		if !ok || v[0] <= 0 || v[1] <= 0 {
			return badValue(cmd)
		}
		img.Width, img.Height = v[0], v[1]
		g.images.put(name, img)

	default:
		return fmt.Errorf("%w: unknown target kind %q", domain.ErrInvalidCommand, cmd.Target.Kind)
	}
	return nil
}

func unknownProperty(cmd domain.Command) error {
	return fmt.Errorf("%w: %s has no property %q", domain.ErrInvalidCommand, cmd.Target, cmd.Property)
}

func badValue(cmd domain.Command) error {
	return fmt.Errorf("%w: bad value %v (%T) for %s", domain.ErrInvalidCommand, cmd.Value, cmd.Value, cmd)
}
