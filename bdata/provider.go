package bdata

import (
	"context"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"git.thinkinpower.net/bingen/file"
	"git.thinkinpower.net/bingen/mod"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

const (
	BinDatabaseModeMemory = "memory"

	binDataFilePrefix = "bins"
	binDataFileExt    = ".json"
)

var ErrNotFound = errors.New("bin not found")

type BinDataConfig struct {
	DataDir string
}

// BinDatabase is read-only access to the BIN reference dataset.
type BinDatabase interface {
	Init(cfg BinDataConfig) error
	Reload() error
	ReadById(id string) (mod.BinRecord, error)
	Filter(f BinFilter) []mod.BinRecord
	All() []mod.BinRecord
}

type FileEventListener func(file.FileEvent)

func NewBinDatabase(mode string) BinDatabase {
	switch mode {
	case BinDatabaseModeMemory:
		return NewMemoryDatabase()
	default:
		logger.Warnf("unknown bin database mode %q, fallback to %s", mode, BinDatabaseModeMemory)
		return NewMemoryDatabase()
	}
}

// BinFilter selects records by exact network type and a case-insensitive
// substring of bin, bank, country or description. Empty fields match all.
type BinFilter struct {
	Type  string
	Query string
}

func (f BinFilter) Match(r mod.BinRecord) bool {
	if f.Type != "" && f.Type != "all" && string(r.Type) != f.Type {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(r.Bin, q) ||
		strings.Contains(strings.ToLower(r.Bank), q) ||
		strings.Contains(strings.ToLower(r.Country), q) ||
		strings.Contains(strings.ToLower(r.Description), q)
}

//bins.json, bins_2024.json ...
func isBinDataFile(path string) bool {
	name := filepath.Base(path)
	return strings.HasPrefix(name, binDataFilePrefix) && filepath.Ext(name) == binDataFileExt
}

// WatchBinDataDir blocks until ctx is done, passing every write or create of
// a bin data file under dir to the listeners.
func WatchBinDataDir(ctx context.Context, dir string, listeners ...FileEventListener) error {
	var (
		watcher *fsnotify.Watcher
		dirs    []string
		err     error
	)
	if watcher, err = fsnotify.NewWatcher(); err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			logger.Error(err)
		}
	}()

	if dirs, err = watchDirs(dir); err != nil {
		return err
	}
	for _, d := range dirs {
		if err = watcher.Add(d); err != nil {
			return errors.Wrapf(err, "watch %s", d)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					addWatchDirs(watcher, event.Name)
					continue
				}
			}
			if !isBinDataFile(event.Name) {
				continue
			}
			var e file.FileEvent
			if event.Op&fsnotify.Write == fsnotify.Write {
				logger.Infof("file modified %s", event.Name)
				e = file.FileEvent{Filepath: event.Name, FileCreated: false}
			} else if event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infof("file created %s", event.Name)
				e = file.FileEvent{Filepath: event.Name, FileCreated: true}
			} else {
				continue
			}
			dispatch(e, listeners)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorf("watch %s error: %s", dir, err)
		}
	}
}

//目录本身以及所有子目录
func watchDirs(dir string) ([]string, error) {
	var (
		entries []os.DirEntry
		err     error
	)
	if entries, err = os.ReadDir(dir); err != nil {
		return nil, errors.Wrapf(err, "read %s", dir)
	}
	dirs := []string{dir}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		var sub []string
		if sub, err = watchDirs(filepath.Join(dir, entry.Name())); err != nil {
			return nil, err
		}
		dirs = append(dirs, sub...)
	}
	return dirs, nil
}

//新建的子目录, 加入监听
func addWatchDirs(watcher *fsnotify.Watcher, dir string) {
	dirs, err := watchDirs(dir)
	if err != nil {
		logger.Errorf("watch new dir %s error: %s", dir, err)
		return
	}
	for _, d := range dirs {
		if err = watcher.Add(d); err != nil {
			logger.Errorf("watch new dir %s error: %s", d, err)
			continue
		}
		logger.Infof("watching new dir %s", d)
	}
}

func dispatch(e file.FileEvent, listeners []FileEventListener) {
	defer func() {
		if err := recover(); err != nil {
			logger.Errorf("file listener panic: %v, %s", err, string(debug.Stack()))
		}
	}()
	for _, l := range listeners {
		l(e)
	}
}
