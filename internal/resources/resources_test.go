package resources

import (
	"testing"
	"testing/fstest"

	"github.com/specialistvlad/rpinject/internal/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BundledTemplates(t *testing.T) {
	for _, path := range []string{ExtensionTemplate, PlatformPropertiesTemplate} {
		t.Run(path, func(t *testing.T) {
			data, err := Load(path)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestLoad_ExtensionTemplateNamesTheExtension(t *testing.T) {
	data, err := Load(ExtensionTemplate)
	require.NoError(t, err)
	assert.Contains(t, string(data), "com.epam.reportportal.junit5.ReportPortalExtension")
}

func TestLoadFrom_MissingResource(t *testing.T) {
	// --- Arrange ---
	fsys := fstest.MapFS{"present.txt": &fstest.MapFile{Data: []byte("x")}}

	// --- Act ---
	_, err := LoadFrom(fsys, "absent.txt")

	// --- Assert ---
	var missing *fault.ResourceMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "absent.txt", missing.Path)
}
