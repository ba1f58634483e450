package intel

import (
	"context"
)

// BlobStore is a content-addressable store for document payloads. Uploads
// are idempotent under the caller-computed content hash regardless of the
// backing store's own semantics.
type BlobStore interface {
	// Upload stores the payload under the owner's namespace and returns a
	// stable download reference. Re-uploading the same hash returns the
	// existing reference without writing again.
	Upload(ctx context.Context, ownerID, contentHash string, data []byte, mimeType string) (string, error)
}
