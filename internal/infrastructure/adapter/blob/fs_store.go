package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	coreport "github.com/fintomate/receipt-matcher/internal/domain/port/core"
)

// FSStore is a content-addressable blob store on the local filesystem.
// Payloads live at <root>/<ownerID>/<hash[0:2]>/<hash>; the path doubles as
// the download reference. Uploads of an existing hash are no-ops.
type FSStore struct {
	root   string
	logger coreport.Logger
}

// NewFSStore creates a filesystem blob store rooted at dir
func NewFSStore(root string, logger coreport.Logger) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob root: %w", err)
	}
	return &FSStore{
		root:   root,
		logger: logger,
	}, nil
}

// Upload stores the payload and returns its reference. Writes go through a
// temp file and rename so readers never observe partial content.
func (s *FSStore) Upload(ctx context.Context, ownerID, contentHash string, data []byte, mimeType string) (string, error) {
	if len(contentHash) < 2 {
		return "", fmt.Errorf("invalid content hash %q", contentHash)
	}

	dir := filepath.Join(s.root, ownerID, contentHash[:2])
	path := filepath.Join(dir, contentHash)
	ref := filepath.ToSlash(filepath.Join(ownerID, contentHash[:2], contentHash))

	if _, err := os.Stat(path); err == nil {
		s.logger.Debug("Blob already stored", map[string]any{
			"owner_id":     ownerID,
			"content_hash": contentHash,
		})
		return ref, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create blob directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create blob temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("failed to close blob temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("failed to finalize blob: %w", err)
	}

	s.logger.Info("Blob stored", map[string]any{
		"owner_id":     ownerID,
		"content_hash": contentHash,
		"size":         len(data),
		"mime_type":    mimeType,
	})
	return ref, nil
}
