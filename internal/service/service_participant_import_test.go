package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/julekalender/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNamesFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseLegacyNames(t *testing.T) {
	ids := &sequentialIDs{}

	got := parseLegacyNames([]byte("Alice\n#Bob\n\n  \nCarol\n#\n  #  Dave  \r\n"), ids.Generate)

	assert.Equal(t, []models.Participant{
		{ID: "p-1", Name: "Alice", Enabled: true},
		{ID: "p-2", Name: "Bob", Enabled: false},
		{ID: "p-3", Name: "Carol", Enabled: true},
		{ID: "p-4", Name: "Dave", Enabled: false},
	}, got)
}

func TestParseLegacyNames_Empty(t *testing.T) {
	ids := &sequentialIDs{}

	assert.Empty(t, parseLegacyNames(nil, ids.Generate))
	assert.Empty(t, parseLegacyNames([]byte("\n\n   \n#\n"), ids.Generate))
}

func TestParseLegacyNames_LongLine(t *testing.T) {
	ids := &sequentialIDs{}
	long := strings.Repeat("x", 70*1024)

	got := parseLegacyNames([]byte("Alice\n"+long+"\nCarol\n"), ids.Generate)

	require.Len(t, got, 3)
	assert.Equal(t, "Alice", got[0].Name)
	assert.Equal(t, long, got[1].Name)
	assert.Equal(t, "Carol", got[2].Name)
}

func TestImportLegacy_LongLineImportsWholeFile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileBackedService(t)
	long := strings.Repeat("x", 70*1024)

	svc.ImportLegacy(ctx, writeNamesFile(t, "Alice\n"+long+"\nCarol\n"))

	assert.Len(t, svc.List(ctx), 3)
	assert.Equal(t, []string{"Alice", long, "Carol"}, svc.ListEnabledNames(ctx))
}

func TestImportLegacy_SeedsEmptyCollection(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileBackedService(t)

	svc.ImportLegacy(ctx, writeNamesFile(t, "Alice\n#Bob\n\n  \nCarol"))

	participants := svc.List(ctx)
	require.Len(t, participants, 3)
	assert.Equal(t, "Alice", participants[0].Name)
	assert.True(t, participants[0].Enabled)
	assert.Equal(t, "Bob", participants[1].Name)
	assert.False(t, participants[1].Enabled)
	assert.Equal(t, "Carol", participants[2].Name)
	assert.True(t, participants[2].Enabled)

	assert.Equal(t, []string{"Alice", "Carol"}, svc.ListEnabledNames(ctx))
}

func TestImportLegacy_SkipsNonEmptyCollection(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileBackedService(t)

	_, err := svc.Add(ctx, "Zed")
	require.NoError(t, err)

	svc.ImportLegacy(ctx, writeNamesFile(t, "Alice\nBob"))

	assert.Equal(t, []string{"Zed"}, svc.ListEnabledNames(ctx))
}

func TestImportLegacy_RunsAgainOnceEmptied(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileBackedService(t)
	path := writeNamesFile(t, "Alice")

	svc.ImportLegacy(ctx, path)
	participants := svc.List(ctx)
	require.Len(t, participants, 1)

	require.NoError(t, svc.Delete(ctx, participants[0].ID))
	svc.ImportLegacy(ctx, path)

	assert.Equal(t, []string{"Alice"}, svc.ListEnabledNames(ctx))
}

func TestImportLegacy_MissingOrUnreadableFile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileBackedService(t)

	svc.ImportLegacy(ctx, "")
	svc.ImportLegacy(ctx, filepath.Join(t.TempDir(), "absent.txt"))
	// a directory cannot be read as a file
	svc.ImportLegacy(ctx, t.TempDir())

	assert.Empty(t, svc.List(ctx))
}
