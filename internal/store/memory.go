package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"ride-analytics/internal/model"
)

// Dataset is one uploaded record set plus its provenance. Records are
// normalized and read-only once stored.
type Dataset struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	LoadedAt    time.Time `json:"loadedAt"`
	Version     uint64    `json:"version"`
	TotalRows   int       `json:"totalRows"`
	DroppedRows int       `json:"droppedRows"`

	Records []model.BookingRecord `json:"-"`
}

// Info is the dataset without its records, for API responses.
type Info struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	LoadedAt    time.Time `json:"loadedAt"`
	Version     uint64    `json:"version"`
	TotalRows   int       `json:"totalRows"`
	RecordCount int       `json:"recordCount"`
	DroppedRows int       `json:"droppedRows"`
}

// Memory holds the current dataset. An upload replaces it wholesale:
// last write wins, no merging, nothing survives a restart. The version
// counter increments on every replace so callers can key caches off
// (version, criteria) if they ever want to.
type Memory struct {
	mu      sync.RWMutex
	current *Dataset
	version uint64
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{}
}

// Replace installs a new dataset and discards the previous one.
func (m *Memory) Replace(source string, records []model.BookingRecord, totalRows int) Info {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.version++
	m.current = &Dataset{
		ID:          uuid.New().String(),
		Source:      source,
		LoadedAt:    time.Now().UTC(),
		Version:     m.version,
		TotalRows:   totalRows,
		DroppedRows: totalRows - len(records),
		Records:     records,
	}
	return m.current.info()
}

// Current returns the current dataset, or false when nothing has been
// uploaded yet. The returned records must not be mutated.
func (m *Memory) Current() (*Dataset, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil, false
	}
	return m.current, true
}

// CurrentInfo returns the current dataset's metadata.
func (m *Memory) CurrentInfo() (Info, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return Info{}, false
	}
	return m.current.info(), true
}

// Clear drops the current dataset.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
}

func (d *Dataset) info() Info {
	return Info{
		ID:          d.ID,
		Source:      d.Source,
		LoadedAt:    d.LoadedAt,
		Version:     d.Version,
		TotalRows:   d.TotalRows,
		RecordCount: len(d.Records),
		DroppedRows: d.DroppedRows,
	}
}
