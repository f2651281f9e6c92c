package bdata

import (
	"sync"

	"git.thinkinpower.net/bingen/file"
	"git.thinkinpower.net/bingen/mod"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

type memoryDatabase struct {
	mu      sync.RWMutex
	records []mod.BinRecord
	index   map[string]int
	dataDir string
}

func NewMemoryDatabase() BinDatabase {
	return &memoryDatabase{index: make(map[string]int)}
}

func (m *memoryDatabase) Init(cfg BinDataConfig) error {
	if cfg.DataDir == "" {
		return errors.New("data dir is not configured")
	}
	m.mu.Lock()
	m.dataDir = cfg.DataDir
	m.mu.Unlock()
	return m.Reload()
}

// Reload reads every bin data file again and swaps the whole collection. On
// failure the previous collection stays in place.
func (m *memoryDatabase) Reload() error {
	m.mu.RLock()
	dataDir := m.dataDir
	m.mu.RUnlock()

	var (
		filepaths []string
		err       error
	)
	if filepaths, err = file.SearchDir(dataDir, isBinDataFile); err != nil {
		return errors.Wrapf(err, "search bin data in %s", dataDir)
	}

	records := make([]mod.BinRecord, 0, 64)
	index := make(map[string]int, 64)
	for _, filepath := range filepaths {
		var data []mod.BinRecord
		if data, err = read(filepath); err != nil {
			return err
		}
		for _, r := range data {
			if _, ok := index[r.Id]; ok {
				logger.Warnf("duplicate bin id %s in %s, skipped", r.Id, filepath)
				continue
			}
			index[r.Id] = len(records)
			records = append(records, r)
		}
	}

	m.mu.Lock()
	m.records = records
	m.index = index
	m.mu.Unlock()
	logger.Infof("loaded %d bin records from %d files", len(records), len(filepaths))
	return nil
}

func (m *memoryDatabase) ReadById(id string) (mod.BinRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i, ok := m.index[id]; ok {
		return m.records[i], nil
	}
	return mod.BinRecord{}, errors.Wrapf(ErrNotFound, "id %s", id)
}

func (m *memoryDatabase) Filter(f BinFilter) []mod.BinRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]mod.BinRecord, 0, len(m.records))
	for _, r := range m.records {
		if f.Match(r) {
			result = append(result, r)
		}
	}
	return result
}

func (m *memoryDatabase) All() []mod.BinRecord {
	return m.Filter(BinFilter{})
}
