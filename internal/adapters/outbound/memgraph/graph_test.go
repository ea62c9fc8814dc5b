package memgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/assetkraft/internal/adapters/outbound/memgraph"
	"github.com/abdidvp/assetkraft/internal/domain"
)

func newGraph() *memgraph.Graph {
	return memgraph.New().
		AddObject(domain.Object{Name: "Body", Type: domain.ObjectTypeMesh, Data: "BodyMesh", Scale: domain.Vector3{2, 2, 2}, MaterialSlots: []string{"Skin"}}).
		AddMesh(domain.Mesh{Name: "BodyMesh", UVLayers: []domain.UVLayer{{Name: "A"}, {Name: "B"}}, VertexColors: []string{"Col"}}).
		AddMaterial(domain.Material{Name: "Skin", Nodes: []domain.Node{
			{Name: "Base", Type: domain.NodeTypeImageTexture, Image: "skin.png"},
		}}).
		AddMaterial(domain.Material{Name: "Other", Nodes: []domain.Node{
			{Name: "Base", Type: domain.NodeTypeImageTexture, Image: "skin.png"},
		}}).
		AddImage(domain.Image{Name: "skin.png", Width: 1000, Height: 1000})
}

func TestGraph_NotFound(t *testing.T) {
	g := newGraph()

	_, err := g.Object("Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = g.Mesh("Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = g.Armature("Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = g.Scene("Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = g.Material("Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = g.Image("Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGraph_AccessorsReturnCopies(t *testing.T) {
	g := newGraph()

	obj, err := g.Object("Body")
	require.NoError(t, err)
	obj.MaterialSlots[0] = "Changed"
	obj.Scale = domain.UnitScale

	again, err := g.Object("Body")
	require.NoError(t, err)
	assert.Equal(t, "Skin", again.MaterialSlots[0])
	assert.Equal(t, domain.Vector3{2, 2, 2}, again.Scale)

	mesh, err := g.Mesh("BodyMesh")
	require.NoError(t, err)
	mesh.UVLayers[0].Name = "Changed"
	mesh, err = g.Mesh("BodyMesh")
	require.NoError(t, err)
	assert.Equal(t, "A", mesh.UVLayers[0].Name)
}

func TestGraph_ApplySet(t *testing.T) {
	g := newGraph()

	require.NoError(t, g.Apply(domain.SetProperty(domain.KindObject, "Body", domain.PropScale, domain.UnitScale)))
	require.NoError(t, g.Apply(domain.SetProperty(domain.KindMesh, "BodyMesh", domain.PropUVLayers, []domain.UVLayer{{Name: "B"}})))
	require.NoError(t, g.Apply(domain.SetProperty(domain.KindMesh, "BodyMesh", domain.PropVertexColors, []string(nil))))
	require.NoError(t, g.Apply(domain.SetProperty(domain.KindMaterial, "Skin", domain.PropUseBackfaceCulling, true)))
	require.NoError(t, g.Apply(domain.SetProperty(domain.KindImage, "skin.png", domain.PropSize, [2]int{512, 512})))

	obj, _ := g.Object("Body")
	assert.Equal(t, domain.UnitScale, obj.Scale)
	mesh, _ := g.Mesh("BodyMesh")
	assert.Equal(t, []domain.UVLayer{{Name: "B"}}, mesh.UVLayers)
	assert.Empty(t, mesh.VertexColors)
	mat, _ := g.Material("Skin")
	assert.True(t, mat.UseBackfaceCulling)
	img, _ := g.Image("skin.png")
	assert.Equal(t, 512, img.Width)
	assert.Equal(t, 512, img.Height)
}

func TestGraph_ApplyRemoveImageClearsNodes(t *testing.T) {
	g := newGraph()

	require.NoError(t, g.Apply(domain.Remove(domain.KindImage, "skin.png")))

	_, err := g.Image("skin.png")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	for _, name := range []string{"Skin", "Other"} {
		mat, err := g.Material(name)
		require.NoError(t, err)
		assert.Empty(t, mat.Nodes[0].Image, name)
		assert.Empty(t, mat.ImageNodes(), name)
	}

	// Removing again is a no-op.
	assert.NoError(t, g.Apply(domain.Remove(domain.KindImage, "skin.png")))
}

func TestGraph_ApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  domain.Command
	}{
		{"unknown op", domain.Command{Op: "rename", Target: domain.Ref{Kind: domain.KindObject, Name: "Body"}}},
		{"remove object", domain.Remove(domain.KindObject, "Body")},
		{"unknown kind", domain.SetProperty("light", "Key", "energy", 10)},
		{"unknown property", domain.SetProperty(domain.KindObject, "Body", "location", domain.UnitScale)},
		{"wrong value type", domain.SetProperty(domain.KindObject, "Body", domain.PropScale, []float64{1, 1, 1})},
		{"non-positive size", domain.SetProperty(domain.KindImage, "skin.png", domain.PropSize, [2]int{0, 512})},
		{"mesh property on material", domain.SetProperty(domain.KindMaterial, "Skin", domain.PropUVLayers, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, newGraph().Apply(tt.cmd), domain.ErrInvalidCommand)
		})
	}

	err := newGraph().Apply(domain.SetProperty(domain.KindMesh, "Ghost", domain.PropShapeKeys, []string(nil)))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGraph_SnapshotRoundTrip(t *testing.T) {
	g := newGraph().AddObject(domain.Object{Name: "Alpha", Type: domain.ObjectTypeEmpty})
	snap := g.Snapshot()

	require.Len(t, snap.Objects, 2)
	assert.Equal(t, "Body", snap.Objects[0].Name)
	assert.Equal(t, "Alpha", snap.Objects[1].Name)

	clone := memgraph.FromSnapshot(snap)
	require.NoError(t, clone.Apply(domain.SetProperty(domain.KindObject, "Body", domain.PropScale, domain.UnitScale)))

	orig, err := g.Object("Body")
	require.NoError(t, err)
	assert.Equal(t, domain.Vector3{2, 2, 2}, orig.Scale)
	assert.Equal(t, snap.Materials, clone.Snapshot().Materials)
}

func TestGraph_AddReplacesInPlace(t *testing.T) {
	g := newGraph().
		AddObject(domain.Object{Name: "Second", Type: domain.ObjectTypeEmpty}).
		AddObject(domain.Object{Name: "Body", Type: domain.ObjectTypeMesh, Scale: domain.UnitScale})

	snap := g.Snapshot()
	require.Len(t, snap.Objects, 2)
	assert.Equal(t, "Body", snap.Objects[0].Name)
	assert.Equal(t, domain.UnitScale, snap.Objects[0].Scale)
}
