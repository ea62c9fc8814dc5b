package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/assetkraft/internal/adapters/outbound/memgraph"
	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/validation"
)

// scaleRule fails while any object in scope is not at unit scale.
type scaleRule struct{}

func (scaleRule) Validate(t validation.Target) domain.ValidationResult {
	objs, err := t.Objects()
	if err != nil {
		return validation.ReferenceFailure(err)
	}
	for _, o := range objs {
		if o.Scale != domain.UnitScale {
			return domain.Fail("%s is scaled", o.Name)
		}
	}
	return domain.Pass("All scales applied")
}

func (scaleRule) Fix(t validation.Target) error {
	for _, name := range t.Scope {
		if err := t.Graph.Apply(domain.SetProperty(domain.KindObject, name, domain.PropScale, domain.UnitScale)); err != nil {
			return err
		}
	}
	return nil
}

// brokenFix claims to fix but changes nothing.
type brokenFix struct{}

func (brokenFix) Validate(validation.Target) domain.ValidationResult { return domain.Fail("always") }
func (brokenFix) Fix(validation.Target) error                       { return nil }

func passing(msg string) validation.Rule {
	return validation.RuleFunc(func(validation.Target) domain.ValidationResult { return domain.Pass("%s", msg) })
}

func failing(msg string) validation.Rule {
	return validation.RuleFunc(func(validation.Target) domain.ValidationResult { return domain.Fail("%s", msg) })
}

func env() (validation.Env, *memgraph.Graph) {
	g := memgraph.New().
		AddObject(domain.Object{Name: "Body", Type: domain.ObjectTypeMesh, Scale: domain.Vector3{2, 2, 2}})
	return validation.Env{Graph: g}, g
}

var modelExport = domain.ExportData{Type: "model", Models: []string{"Body"}}

func TestValidator_StartsNotValidated(t *testing.T) {
	v := validation.New("Scale", domain.CategoryWarning, "desc", scaleRule{})
	assert.False(t, v.Validated())
	assert.Equal(t, domain.NotValidated(), v.Result())
	assert.True(t, v.Fixable())

	info := v.Info()
	assert.Equal(t, domain.ValidatorInfo{Name: "Scale", Category: domain.CategoryWarning, Description: "desc", Fixable: true}, info)

	assert.False(t, validation.New("x", domain.CategoryError, "", passing("ok")).Fixable())
}

func TestValidator_RunValidation(t *testing.T) {
	e, _ := env()
	v := validation.New("Scale", domain.CategoryWarning, "", scaleRule{})

	require.NoError(t, v.RunValidation(e, modelExport))
	assert.True(t, v.Validated())
	assert.Equal(t, domain.Fail("Body is scaled"), v.Result())
}

func TestValidator_InvalidAssetType(t *testing.T) {
	e, _ := env()
	v := validation.New("Scale", domain.CategoryWarning, "", scaleRule{})

	err := v.RunValidation(e, domain.ExportData{Type: "texture"})
	assert.ErrorIs(t, err, domain.ErrInvalidAssetType)
	assert.False(t, v.Result().Valid)
	assert.Equal(t, `Invalid asset type "texture"`, v.Result().Message)
}

func TestValidator_DanglingSceneFailsWithoutError(t *testing.T) {
	e, _ := env()
	v := validation.New("Scale", domain.CategoryWarning, "", scaleRule{})

	require.NoError(t, v.RunValidation(e, domain.ExportData{Type: "scene", Scene: "Nope"}))
	assert.Equal(t, domain.Fail("Scene could not be found: Nope"), v.Result())
}

func TestValidator_MissingObjectsReported(t *testing.T) {
	e, _ := env()
	v := validation.New("Scale", domain.CategoryWarning, "", scaleRule{})

	require.NoError(t, v.RunValidation(e, domain.ExportData{Type: "model", Models: []string{"Body", "Ghost"}}))
	assert.Equal(t, "Objects could not be found: Ghost", v.Result().Message)
}

func TestValidator_RunFix(t *testing.T) {
	e, g := env()
	v := validation.New("Scale", domain.CategoryWarning, "", scaleRule{})

	outcome, err := v.RunFix(e, modelExport)
	require.NoError(t, err)
	assert.True(t, outcome.Attempted)
	assert.True(t, outcome.Converged)
	assert.Equal(t, domain.Pass("All scales applied"), outcome.Result)

	body, err := g.Object("Body")
	require.NoError(t, err)
	assert.Equal(t, domain.UnitScale, body.Scale)
}

// refusingGraph accepts the first allowed commands and refuses the rest.
type refusingGraph struct {
	domain.SceneGraph
	allowed int
}

func (g *refusingGraph) Apply(cmd domain.Command) error {
	if g.allowed == 0 {
		return errors.New("host refused")
	}
	g.allowed--
	return g.SceneGraph.Apply(cmd)
}

func TestValidator_RunFixPartialFailureRevalidates(t *testing.T) {
	g := memgraph.New().
		AddObject(domain.Object{Name: "A", Type: domain.ObjectTypeMesh, Scale: domain.Vector3{2, 2, 2}}).
		AddObject(domain.Object{Name: "B", Type: domain.ObjectTypeMesh, Scale: domain.Vector3{2, 2, 2}})
	e := validation.Env{Graph: &refusingGraph{SceneGraph: g, allowed: 1}}
	data := domain.ExportData{Type: "model", Models: []string{"A", "B"}}
	v := validation.New("Scale", domain.CategoryWarning, "", scaleRule{})

	outcome, err := v.RunFix(e, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixing Scale: host refused")

	assert.True(t, outcome.Attempted)
	assert.False(t, outcome.Converged)
	assert.Equal(t, domain.Fail("B is scaled"), outcome.Result)
	assert.Equal(t, outcome.Result, v.Result())

	a, err := g.Object("A")
	require.NoError(t, err)
	assert.Equal(t, domain.UnitScale, a.Scale)
}

func TestValidator_RunFixWithoutFixer(t *testing.T) {
	e, _ := env()
	v := validation.New("Count", domain.CategoryError, "", failing("too many"))

	outcome, err := v.RunFix(e, modelExport)
	require.NoError(t, err)
	assert.False(t, outcome.Attempted)
	assert.False(t, outcome.Converged)
	assert.True(t, v.Validated())
}

func TestValidator_RunFixNotConverged(t *testing.T) {
	e, _ := env()
	v := validation.New("Broken", domain.CategoryError, "", brokenFix{})

	outcome, err := v.RunFix(e, modelExport)
	require.NoError(t, err)
	assert.True(t, outcome.Attempted)
	assert.False(t, outcome.Converged)
}

func TestValidator_Ignore(t *testing.T) {
	v := validation.New("Count", domain.CategoryError, "", failing("too many"))
	v.Ignore()
	assert.True(t, v.Validated())
	assert.Equal(t, domain.Ignored(), v.Result())
}

func TestRegistry_DuplicateNames(t *testing.T) {
	_, err := validation.NewRegistry(
		validation.New("Object count", domain.CategoryError, "", passing("")),
		validation.New("object_count", domain.CategoryError, "", passing("")),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	_, err = validation.NewRegistry(validation.New(" ", domain.CategoryError, "", passing("")))
	assert.Error(t, err)
}

func TestRegistry_SelectAndGet(t *testing.T) {
	reg, err := validation.NewRegistry(
		validation.New("Object count", domain.CategoryError, "", passing("")),
		validation.New("Scale", domain.CategoryWarning, "", scaleRule{}),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	for _, name := range []string{"", "all", "ALL"} {
		vs, err := reg.Select(name)
		require.NoError(t, err)
		assert.Len(t, vs, 2)
	}

	v, err := reg.Get("object-count")
	require.NoError(t, err)
	assert.Equal(t, "Object count", v.Name())

	_, err = reg.Select("polycount")
	assert.ErrorIs(t, err, domain.ErrUnknownValidator)
}

func TestRegistry_ReportStatuses(t *testing.T) {
	e, _ := env()
	reg, err := validation.NewRegistry(
		validation.New("Errors", domain.CategoryError, "", failing("bad")),
		validation.New("Warnings", domain.CategoryWarning, "", failing("meh")),
		validation.New("Fine", domain.CategoryError, "", passing("ok")),
	)
	require.NoError(t, err)

	report := reg.Report()
	assert.Equal(t, domain.StatusPending, report.Status)
	assert.Equal(t, []string{"Errors", "Warnings", "Fine"}, report.Pending)
	assert.Empty(t, report.Errors)

	require.NoError(t, reg.RunValidation(e, "Fine", modelExport))
	report = reg.Report()
	assert.Equal(t, domain.StatusPending, report.Status)
	assert.Equal(t, []string{"Errors", "Warnings"}, report.Pending)

	require.NoError(t, reg.RunValidation(e, "", modelExport))
	report = reg.Report()
	assert.Equal(t, domain.StatusFail, report.Status)
	assert.Equal(t, []string{"Errors"}, report.Errors)
	assert.Equal(t, []string{"Warnings"}, report.Warnings)
	assert.Empty(t, report.Pending)
	require.Len(t, report.Results, 3)
	assert.Equal(t, "Errors", report.Results[0].Name)

	require.NoError(t, reg.Ignore("Errors"))
	assert.Equal(t, domain.StatusWarn, reg.Report().Status)

	require.NoError(t, reg.Ignore(validation.All))
	assert.Equal(t, domain.StatusPass, reg.Report().Status)
}

func TestRegistry_RunValidationContinuesAfterError(t *testing.T) {
	e, _ := env()
	var ran []string
	record := func(name string) validation.Rule {
		return validation.RuleFunc(func(validation.Target) domain.ValidationResult {
			ran = append(ran, name)
			return domain.Pass("ok")
		})
	}
	reg, err := validation.NewRegistry(
		validation.New("A", domain.CategoryError, "", record("A")),
		validation.New("B", domain.CategoryError, "", record("B")),
	)
	require.NoError(t, err)

	err = reg.RunValidation(e, "", domain.ExportData{Type: "bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidAssetType)
	assert.Empty(t, ran)
	assert.Equal(t, []string{"A", "B"}, reg.Report().Errors)

	require.NoError(t, reg.RunValidation(e, "", modelExport))
	assert.Equal(t, []string{"A", "B"}, ran)
}

func TestRegistry_RunFix(t *testing.T) {
	e, _ := env()
	reg, err := validation.NewRegistry(
		validation.New("Scale", domain.CategoryWarning, "", scaleRule{}),
		validation.New("Broken", domain.CategoryError, "", brokenFix{}),
		validation.New("Count", domain.CategoryError, "", passing("ok")),
	)
	require.NoError(t, err)

	outcomes, err := reg.RunFix(e, "", modelExport)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	assert.True(t, outcomes[0].Converged)
	assert.True(t, outcomes[1].Attempted)
	assert.False(t, outcomes[1].Converged)
	assert.False(t, outcomes[2].Attempted)
	assert.True(t, outcomes[2].Converged)

	_, err = reg.RunFix(e, "nope", modelExport)
	assert.ErrorIs(t, err, domain.ErrUnknownValidator)
}

func TestRegistry_Results(t *testing.T) {
	reg, err := validation.NewRegistry(validation.New("A", domain.CategoryError, "", passing("ok")))
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.ValidationResult{"A": domain.NotValidated()}, reg.Results())
}

func TestReferenceFailure(t *testing.T) {
	res := validation.ReferenceFailure(&domain.ReferenceError{Kind: "materials", Names: []string{"Gold"}})
	assert.Equal(t, domain.Fail("Materials could not be found: Gold"), res)

	res = validation.ReferenceFailure(errors.New("boom"))
	assert.Equal(t, "Scene graph lookup failed: boom", res.Message)
}
