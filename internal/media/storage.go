package media

import (
	"context"
	"io"
)

// Storage abstracts where portfolio images live. The only implementation
// today is local disk; the interface keeps handlers testable and leaves the
// door open for object storage.
type Storage interface {
	Save(ctx context.Context, path string, content io.Reader) error
	Delete(ctx context.Context, path string) error
}
