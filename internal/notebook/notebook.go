// Package notebook provides access to note storage backends. A Source
// enumerates folders and yields raw note bodies; a Sink stores polished
// copies. The sqlite backend keeps a local notebook file; the applescript
// backend talks to Apple Notes through osascript.
package notebook

import (
	"context"
	"errors"
	"fmt"

	"github.com/mithrel/notepolish/pkg/api"
)

var ErrNotFound = errors.New("not found")

// Source yields folders, note listings and raw note bodies.
type Source interface {
	Folders(ctx context.Context) ([]api.Folder, error)
	Notes(ctx context.Context, folder string) ([]api.Note, error)
	Body(ctx context.Context, folder, name string) (string, error)
}

// Sink accepts polished copies. CreateNote stores htmlBody as a new note and
// records sourceHash so HasPolished can answer whether a source note already
// has a current polished copy. Backends that cannot persist hashes report
// false from HasPolished.
type Sink interface {
	EnsureFolder(ctx context.Context, folder string) error
	CreateNote(ctx context.Context, folder, name, htmlBody, sourceHash string) error
	HasPolished(ctx context.Context, sourceHash string) (bool, error)
}

// Store combines both ends for backends that are a full notebook.
type Store interface {
	Source
	Sink
	Close() error
}

// Importer is implemented by backends that accept raw notes directly; the
// sqlite backend uses it to load markdown files from disk.
type Importer interface {
	PutNote(ctx context.Context, n api.Note) (api.Note, error)
}

// Open returns a Store for the configured backend.
func Open(ctx context.Context, backend, dbPath string) (Store, error) {
	switch backend {
	case "", "sqlite":
		return openSQLite(ctx, dbPath)
	case "applescript":
		return NewAppleNotes(), nil
	default:
		return nil, fmt.Errorf("unknown notebook backend %q", backend)
	}
}
