package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/abdidvp/assetkraft/internal/domain"
)

func TestParseAssetType(t *testing.T) {
	tests := []struct {
		tag  string
		want domain.AssetType
	}{
		{"model", domain.AssetTypeModel},
		{"MODEL", domain.AssetTypeModel},
		{" Scene ", domain.AssetTypeScene},
		{"material", domain.AssetTypeMaterial},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := domain.ParseAssetType(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAssetType_Invalid(t *testing.T) {
	for _, tag := range []string{"", "texture", "models"} {
		_, err := domain.ParseAssetType(tag)
		assert.ErrorIs(t, err, domain.ErrInvalidAssetType, "tag %q", tag)
	}
}

func TestExportData_KeepsUnknownFields(t *testing.T) {
	var data domain.ExportData
	require.NoError(t, yaml.Unmarshal([]byte(`
type: model
models: [Body]
exporter: gltf
draco: true
`), &data))

	at, err := data.AssetType()
	require.NoError(t, err)
	assert.Equal(t, domain.AssetTypeModel, at)
	assert.Equal(t, []string{"Body"}, data.Models)
	assert.Equal(t, "gltf", data.Extra["exporter"])
	assert.Equal(t, true, data.Extra["draco"])
}
