package domain

import "fmt"

// TargetKind names the data-block family a command addresses.
type TargetKind string

const (
	KindObject   TargetKind = "object"
	KindMesh     TargetKind = "mesh"
	KindMaterial TargetKind = "material"
	KindImage    TargetKind = "image"
)

// Op is the mutation a command performs.
type Op string

const (
	OpSet    Op = "set"
	OpRemove Op = "remove"
)

// Properties understood by SceneGraph.Apply.
const (
	PropScale              = "scale"                // object, Vector3
	PropUVLayers           = "uv_layers"            // mesh, []UVLayer
	PropVertexColors       = "vertex_colors"        // mesh, []string
	PropShapeKeys          = "shape_keys"           // mesh, []string
	PropUseBackfaceCulling = "use_backface_culling" // material, bool
	PropSize               = "size"                 // image, [2]int
)

// Ref addresses one data block by kind and name.
type Ref struct {
	Kind TargetKind `json:"kind"`
	Name string     `json:"name"`
}

func (r Ref) String() string { return fmt.Sprintf("%s %q", r.Kind, r.Name) }

// Command is a typed scene graph mutation. Remove commands carry no property.
type Command struct {
	Op       Op     `json:"op"`
	Target   Ref    `json:"target"`
	Property string `json:"property,omitempty"`
	Value    any    `json:"value,omitempty"`
}

func (c Command) String() string {
	if c.Op == OpRemove {
		return fmt.Sprintf("remove %s", c.Target)
	}
	return fmt.Sprintf("set %s.%s", c.Target, c.Property)
}

// SetProperty builds a set command.
func SetProperty(kind TargetKind, name, property string, value any) Command {
	return Command{Op: OpSet, Target: Ref{Kind: kind, Name: name}, Property: property, Value: value}
}

// Remove builds a remove command.
func Remove(kind TargetKind, name string) Command {
	return Command{Op: OpRemove, Target: Ref{Kind: kind, Name: name}}
}
