package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/assetkraft/internal/domain"
)

func TestResultHelpers(t *testing.T) {
	assert.Equal(t, domain.ValidationResult{Valid: true, Message: "Asset has 3 objects"}, domain.Pass("Asset has %d objects", 3))
	assert.Equal(t, domain.ValidationResult{Valid: false, Message: "Missing textures: a.png"}, domain.Fail("Missing textures: %s", "a.png"))
	assert.Equal(t, domain.ValidationResult{Valid: false, Message: "Validation has yet to be run"}, domain.NotValidated())
	assert.Equal(t, domain.ValidationResult{Valid: true, Message: "Ignored"}, domain.Ignored())
}

func TestParseCategory(t *testing.T) {
	c, err := domain.ParseCategory("WARNING")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryWarning, c)

	_, err = domain.ParseCategory("info")
	assert.Error(t, err)
}

func TestReferenceError(t *testing.T) {
	err := fmt.Errorf("resolving: %w", &domain.ReferenceError{Kind: "objects", Names: []string{"Body", "Prop"}})
	assert.ErrorIs(t, err, domain.ErrDanglingReference)

	var ref *domain.ReferenceError
	require.True(t, errors.As(err, &ref))
	assert.Equal(t, "objects could not be found: Body, Prop", ref.Error())
	assert.Equal(t, "Objects could not be found: Body, Prop", ref.Message())
}

func TestCommandString(t *testing.T) {
	set := domain.SetProperty(domain.KindObject, "Body", domain.PropScale, domain.UnitScale)
	assert.Equal(t, `set object "Body".scale`, set.String())

	rm := domain.Remove(domain.KindImage, "a.png")
	assert.Equal(t, `remove image "a.png"`, rm.String())
}

func TestValidationReport(t *testing.T) {
	report := domain.ValidationReport{
		Results: []domain.ValidatorResult{
			{ValidatorInfo: domain.ValidatorInfo{Name: domain.ValidatorScale}, ValidationResult: domain.Fail("x"), Validated: true},
		},
		Errors: []string{domain.ValidatorUVLayers},
	}
	assert.True(t, report.Blocking())

	res, ok := report.Result(domain.ValidatorScale)
	require.True(t, ok)
	assert.Equal(t, "x", res.Message)

	_, ok = report.Result(domain.ValidatorUVLayers)
	assert.False(t, ok)
}

func TestFixReport_Unconverged(t *testing.T) {
	report := domain.FixReport{Outcomes: []domain.FixOutcome{
		{Validator: domain.ValidatorScale, Attempted: true, Converged: true},
		{Validator: domain.ValidatorTextureSize, Attempted: true},
		{Validator: domain.ValidatorSquareTextures},
	}}
	assert.Equal(t, []string{domain.ValidatorTextureSize}, report.Unconverged())
}

func TestMeshTriangles(t *testing.T) {
	m := domain.Mesh{Polygons: []int{3, 4, 5, 2}}
	assert.Equal(t, 1+2+3, m.Triangles())
}

func TestMaterialImageNodes(t *testing.T) {
	m := domain.Material{Nodes: []domain.Node{
		{Name: "a", Type: domain.NodeTypeImageTexture, Image: "a.png"},
		{Name: "b", Type: domain.NodeTypeImageTexture},
		{Name: "c", Type: "BSDF_PRINCIPLED", Image: "c.png"},
	}}
	nodes := m.ImageNodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, "a.png", nodes[0].Image)
}
