package domain

// ObjectType is the kind of a scene object.
type ObjectType string

const (
	ObjectTypeMesh     ObjectType = "MESH"
	ObjectTypeArmature ObjectType = "ARMATURE"
	ObjectTypeEmpty    ObjectType = "EMPTY"
	ObjectTypeLight    ObjectType = "LIGHT"
	ObjectTypeCamera   ObjectType = "CAMERA"
	ObjectTypeCurve    ObjectType = "CURVE"
)

// ModifierType is the kind of an object modifier.
type ModifierType string

const (
	ModifierArmature    ModifierType = "ARMATURE"
	ModifierSubdivision ModifierType = "SUBSURF"
	ModifierMirror      ModifierType = "MIRROR"
)

// NodeTypeImageTexture marks material nodes that sample an image.
const NodeTypeImageTexture = "TEX_IMAGE"

// Vector3 is an XYZ triple.
type Vector3 [3]float64

// UnitScale is the identity scale.
var UnitScale = Vector3{1, 1, 1}

// Object is a snapshot of a scene object.
type Object struct {
	Name          string     `yaml:"name"                     json:"name"`
	Type          ObjectType `yaml:"type"                     json:"type"`
	Parent        string     `yaml:"parent,omitempty"         json:"parent,omitempty"`
	Data          string     `yaml:"data,omitempty"           json:"data,omitempty"`
	Modifiers     []Modifier `yaml:"modifiers,omitempty"      json:"modifiers,omitempty"`
	Scale         Vector3    `yaml:"scale"                    json:"scale"`
	MaterialSlots []string   `yaml:"material_slots,omitempty" json:"material_slots,omitempty"`
	Animated      bool       `yaml:"animated,omitempty"       json:"animated,omitempty"`
}

// HasParent reports whether the object is parented to another object.
func (o Object) HasParent() bool { return o.Parent != "" }

// Modifier is a single entry in an object's modifier stack. Object names the
// modifier's target object (the armature, for armature modifiers).
type Modifier struct {
	Type   ModifierType `yaml:"type"             json:"type"`
	Object string       `yaml:"object,omitempty" json:"object,omitempty"`
}

// Mesh is a snapshot of mesh data.
type Mesh struct {
	Name         string    `yaml:"name"                    json:"name"`
	UVLayers     []UVLayer `yaml:"uv_layers,omitempty"     json:"uv_layers,omitempty"`
	VertexColors []string  `yaml:"vertex_colors,omitempty" json:"vertex_colors,omitempty"`
	ShapeKeys    []string  `yaml:"shape_keys,omitempty"    json:"shape_keys,omitempty"`
	// Polygons holds the vertex count of every polygon.
	Polygons []int `yaml:"polygons,omitempty" json:"polygons,omitempty"`
}

// Triangles returns the triangle count of the mesh once triangulated.
func (m Mesh) Triangles() int {
	total := 0
	for _, v := range m.Polygons {
		if v > 2 {
			total += v - 2
		}
	}
	return total
}

// UVLayer is a named UV map.
type UVLayer struct {
	Name         string `yaml:"name"                    json:"name"`
	ActiveRender bool   `yaml:"active_render,omitempty" json:"active_render,omitempty"`
}

// Armature is a snapshot of armature data.
type Armature struct {
	Name  string   `yaml:"name"  json:"name"`
	Bones []string `yaml:"bones" json:"bones"`
}

// Scene groups objects under a name.
type Scene struct {
	Name    string   `yaml:"name"    json:"name"`
	Objects []string `yaml:"objects" json:"objects"`
}

// Material is a snapshot of a material and its node tree.
type Material struct {
	Name               string `yaml:"name"                 json:"name"`
	UseBackfaceCulling bool   `yaml:"use_backface_culling" json:"use_backface_culling"`
	Nodes              []Node `yaml:"nodes,omitempty"      json:"nodes,omitempty"`
}

// ImageNodes returns the image-texture nodes that reference an image.
func (m Material) ImageNodes() []Node {
	var nodes []Node
	for _, n := range m.Nodes {
		if n.Type == NodeTypeImageTexture && n.Image != "" {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Node is a material shader node.
type Node struct {
	Name  string `yaml:"name"            json:"name"`
	Type  string `yaml:"type"            json:"type"`
	Image string `yaml:"image,omitempty" json:"image,omitempty"`
}

// Image is a snapshot of an image data block. Filepath is already resolved
// against the owning file; Packed images are embedded and need no file.
type Image struct {
	Name     string `yaml:"name"               json:"name"`
	Width    int    `yaml:"width"              json:"width"`
	Height   int    `yaml:"height"             json:"height"`
	Filepath string `yaml:"filepath,omitempty" json:"filepath,omitempty"`
	Packed   bool   `yaml:"packed,omitempty"   json:"packed,omitempty"`
}

// IsSquare reports whether width equals height.
func (i Image) IsSquare() bool { return i.Width == i.Height }
