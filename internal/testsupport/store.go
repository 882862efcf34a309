package testsupport

import (
	"testing"

	"slate/internal/config"
	"slate/internal/project"
)

// MustOpenStore opens a project store for the test config and closes it when
// the test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *project.Store {
	t.Helper()

	store, err := project.Open(cfg)
	if err != nil {
		t.Fatalf("open project store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close project store: %v", err)
		}
	})
	return store
}
