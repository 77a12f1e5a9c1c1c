// Package sink holds the destinations mirrored images are written to.
package sink

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Sink stores one object per illustration page, keyed by a
// slash-separated relative path ("<work id>/<file name>").
type Sink interface {
	Put(ctx context.Context, key string, r io.Reader) error
}

// Local writes objects under a root directory. Writes go to a
// uuid-suffixed staging file first and are renamed into place, so a
// failed download never leaves a plausible-looking partial file.
type Local struct {
	Root string
}

func (l *Local) Put(_ context.Context, key string, r io.Reader) error {
	dest := filepath.Join(l.Root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	staging := dest + "." + uuid.NewString() + ".part"
	f, err := os.Create(staging)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(staging)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(staging)
		return err
	}

	return os.Rename(staging, dest)
}
