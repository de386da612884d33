package service

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/store"
	"github.com/stretchr/testify/require"
)

// sequentialIDs hands out p-1, p-2, ... so tests can predict ids.
type sequentialIDs struct {
	mu   sync.Mutex
	next int
}

func (g *sequentialIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++
	return fmt.Sprintf("p-%d", g.next)
}

// newFileBackedService returns a participant service persisting into a state
// file under t.TempDir, plus the repository for direct inspection.
func newFileBackedService(t *testing.T) (ParticipantService, store.ParticipantRepository) {
	t.Helper()

	kv, err := store.NewFileStore(filepath.Join(t.TempDir(), "state.json"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	repo := store.NewParticipantRepository(kv, logger.Nop())
	return NewParticipantService(repo, &sequentialIDs{}, logger.Nop()), repo
}
