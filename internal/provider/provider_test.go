package provider

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/rpinject/internal/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extensionLine = "com.epam.reportportal.junit5.ReportPortalExtension"

func TestInstallProvider_CreatesMissingFile(t *testing.T) {
	// --- Arrange ---
	root := t.TempDir()
	dest := ExtensionPath(root)

	// --- Act ---
	err := InstallProvider(context.Background(), []byte(extensionLine), dest)

	// --- Assert ---
	require.NoError(t, err)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, extensionLine, string(data))
	assert.Equal(t, filepath.Join(root, "META-INF", "services", ExtensionFile), dest)
}

func TestInstallProvider_AppendsAndKeepsPriorContent(t *testing.T) {
	// --- Arrange ---
	dest := ExtensionPath(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(dest), 0o755))
	require.NoError(t, os.WriteFile(dest, []byte("org.example.OtherExtension"), 0o644))

	// --- Act ---
	require.NoError(t, InstallProvider(context.Background(), []byte(extensionLine), dest))
	require.NoError(t, InstallProvider(context.Background(), []byte(extensionLine), dest))

	// --- Assert ---
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "org.example.OtherExtension\n"))
	assert.Equal(t, 2, strings.Count(content, extensionLine))
	assert.Equal(t, "org.example.OtherExtension\n"+extensionLine+"\n"+extensionLine, content)
}

func TestInstallProvider_FailsWhenParentIsAFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "META-INF"), []byte("x"), 0o644))

	err := InstallProvider(context.Background(), []byte(extensionLine), ExtensionPath(root))

	var ioErr *fault.IOError
	require.ErrorAs(t, err, &ioErr)
}

func TestInstallCompanion_FirstWriterWins(t *testing.T) {
	testCases := []struct {
		name        string
		existing    *string
		wantWritten bool
		wantContent string
	}{
		{
			name:        "absent file is written",
			wantWritten: true,
			wantContent: "junit.jupiter.extensions.autodetection.enabled=true\n",
		},
		{
			name:        "present file is untouched",
			existing:    ptr("junit.jupiter.execution.parallel.enabled=true\n"),
			wantWritten: false,
			wantContent: "junit.jupiter.execution.parallel.enabled=true\n",
		},
		{
			name:        "empty file still counts as present",
			existing:    ptr(""),
			wantWritten: false,
			wantContent: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			dest := PlatformPropertiesPath(t.TempDir())
			if tc.existing != nil {
				require.NoError(t, os.WriteFile(dest, []byte(*tc.existing), 0o644))
			}

			// --- Act ---
			written, err := InstallCompanion(context.Background(),
				[]byte("junit.jupiter.extensions.autodetection.enabled=true\n"), dest)

			// --- Assert ---
			require.NoError(t, err)
			assert.Equal(t, tc.wantWritten, written)
			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			assert.Equal(t, tc.wantContent, string(data))
		})
	}
}

func ptr(s string) *string { return &s }
