package storage

// ProcessedStore persists per-file byte offsets so watch mode can resume
// where it left off after a restart.
type ProcessedStore interface {
	Load() (map[string]int64, error)
	Save(data map[string]int64) error
}
