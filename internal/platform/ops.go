package platform

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/notebook/pkg/adapters/badger"
	"github.com/aretw0/notebook/pkg/adapters/fs"
	"github.com/aretw0/notebook/pkg/adapters/memory"
	"github.com/aretw0/notebook/pkg/adapters/sqlite"
	"github.com/aretw0/notebook/pkg/core"
)

// SQLiteFileName is the database file created inside a directory uri.
const SQLiteFileName = "notebook.db"

// OpenStore builds the store selected by the options.
// The uri is adapter-specific: a directory for fs and badger, a file or
// directory for sqlite, ignored for memory.
// The returned closer is nil when the store holds no resources.
func OpenStore(uri string, opts ...Option) (core.Store, io.Closer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return openStore(uri, o)
}

func openStore(uri string, o *options) (core.Store, io.Closer, error) {
	if o.store != nil {
		return o.store, nil, nil
	}

	switch o.adapter {
	case AdapterMemory:
		return memory.NewStore(), nil, nil

	case AdapterFS:
		s := fs.NewStore(fs.Config{
			Path:         resolve(uri, o),
			MustExist:    o.mustExist,
			ReadOnly:     o.readOnly,
			Logger:       o.logger,
			ErrorHandler: o.errorHandler,
		})
		if err := s.Initialize(context.Background()); err != nil {
			return nil, nil, err
		}
		return s, nil, nil

	case AdapterBadger:
		if o.readOnly {
			return nil, nil, fmt.Errorf("%s adapter: %w", o.adapter, core.ErrReadOnly)
		}
		path := resolve(uri, o)
		if o.mustExist {
			if _, err := os.Stat(path); err != nil {
				return nil, nil, fmt.Errorf("store path does not exist: %s", path)
			}
		}
		cfg := badger.DefaultConfig(path)
		cfg.SyncWrites = o.syncWrites
		cfg.Logger = o.logger
		s, err := badger.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case AdapterSQLite:
		if o.readOnly {
			return nil, nil, fmt.Errorf("%s adapter: %w", o.adapter, core.ErrReadOnly)
		}
		dsn := uri
		if dsn != sqlite.MemoryDSN {
			dsn = resolve(uri, o)
			if filepath.Ext(dsn) == "" {
				dsn = filepath.Join(dsn, SQLiteFileName)
			}
			if err := prepareFile(dsn, o.mustExist); err != nil {
				return nil, nil, err
			}
		}
		s, err := sqlite.Open(dsn, o.logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	default:
		return nil, nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// prepareFile ensures the parent directory of a database file exists.
func prepareFile(path string, mustExist bool) error {
	if mustExist {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("store path does not exist: %s", path)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// resolve applies the dev sandbox to a store location.
func resolve(path string, o *options) string {
	bypass := o.readOnly || !o.devSafety
	useTemp := o.forceTemp || (IsDevRun() && !bypass)
	resolved := ResolvePath(path, useTemp)

	if o.logger != nil {
		switch {
		case useTemp && resolved != filepath.Clean(path):
			o.logger.Warn("running in SAFE MODE (dev sandbox)", "original_path", path, "resolved_path", resolved)
		case IsDevRun() && bypass && !o.readOnly:
			o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolved)
		}
	}
	return resolved
}
