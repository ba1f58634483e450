package matching

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	"github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/domain/port/intel"
	mailport "github.com/fintomate/receipt-matcher/internal/domain/port/mail"
	"github.com/fintomate/receipt-matcher/internal/domain/port/persistence"
)

// SourceMeta describes where ingested bytes came from
type SourceMeta struct {
	Filename string
	MimeType string
	Source   entity.DocumentSource
	Mail     entity.MailProvenance
}

// Ingestor turns raw evidence bytes into stored, deduplicated document
// records. Idempotent by content: the same bytes for the same owner always
// resolve to the same document.
type Ingestor struct {
	documents    persistence.DocumentRepository
	blobs        intel.BlobStore
	timeProvider core.TimeProvider
	logger       core.Logger
}

// NewIngestor creates a new Ingestor
func NewIngestor(
	documents persistence.DocumentRepository,
	blobs intel.BlobStore,
	timeProvider core.TimeProvider,
	logger core.Logger,
) *Ingestor {
	return &Ingestor{
		documents:    documents,
		blobs:        blobs,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Ingest stores raw bytes as a document. When a document with the same
// content hash already exists for the owner, the existing record is
// returned and created is false.
func (i *Ingestor) Ingest(ctx context.Context, ownerID string, data []byte, meta SourceMeta) (*entity.Document, bool, error) {
	if ownerID == "" {
		return nil, false, errs.ErrInvalidOwnerID
	}
	if len(data) == 0 {
		return nil, false, fmt.Errorf("%w: empty payload", errs.ErrInvalidRequest)
	}

	hash := ContentHash(data)

	existing, err := i.documents.FindByContentHash(ctx, ownerID, hash)
	if err == nil {
		i.logger.Debug("Ingest deduplicated by content hash", map[string]any{
			"owner_id":    ownerID,
			"document_id": existing.ID,
			"hash":        hash,
		})
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrDocumentNotFound) {
		return nil, false, fmt.Errorf("failed to check content hash: %w", err)
	}

	blobRef, err := i.blobs.Upload(ctx, ownerID, hash, data, meta.MimeType)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upload blob: %w", err)
	}

	now := i.timeProvider.Now()
	doc := &entity.Document{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		ContentHash: hash,
		BlobRef:     blobRef,
		Filename:    meta.Filename,
		MimeType:    meta.MimeType,
		Source:      meta.Source,
		Mail:        meta.Mail,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := i.documents.Create(ctx, doc); err != nil {
		// A concurrent ingestion of the same bytes may have won the
		// unique (owner, hash) race; resolve to the surviving row
		if existing, findErr := i.documents.FindByContentHash(ctx, ownerID, hash); findErr == nil {
			i.logger.Debug("Ingest lost a concurrent duplicate race", map[string]any{
				"owner_id":    ownerID,
				"document_id": existing.ID,
				"hash":        hash,
			})
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create document: %w", err)
	}

	i.logger.Info("Document ingested", map[string]any{
		"owner_id":    ownerID,
		"document_id": doc.ID,
		"source":      string(doc.Source),
		"filename":    doc.Filename,
	})
	return doc, true, nil
}

// IngestEmailBody renders an email body into a synthetic document when the
// email content itself is the invoice. Same dedup-by-hash guarantee as
// Ingest.
func (i *Ingestor) IngestEmailBody(ctx context.Context, ownerID, mailboxID string, msg *mailport.Message) (*entity.Document, bool, error) {
	rendered := RenderEmailBody(msg)
	meta := SourceMeta{
		Filename: syntheticFilename(msg),
		MimeType: "text/html",
		Source:   entity.SourceMailBody,
		Mail: entity.MailProvenance{
			MailboxID: mailboxID,
			MessageID: msg.ID,
			Sender:    msg.From,
			Subject:   msg.Subject,
			SentAt:    msg.SentAt,
		},
	}
	return i.Ingest(ctx, ownerID, rendered, meta)
}

// ContentHash computes the dedup key over raw bytes
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// RenderEmailBody wraps the message body in a fixed HTML shell so that the
// same message always renders to the same bytes
func RenderEmailBody(msg *mailport.Message) []byte {
	body := msg.BodyHTML
	if body == "" {
		body = "<pre>" + html.EscapeString(msg.BodyText) + "</pre>"
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>")
	b.WriteString(html.EscapeString(msg.Subject))
	b.WriteString("</title></head>\n<body>\n<header><p>")
	b.WriteString(html.EscapeString(msg.From))
	b.WriteString(" &mdash; ")
	b.WriteString(msg.SentAt.UTC().Format("2006-01-02"))
	b.WriteString("</p></header>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return []byte(b.String())
}

func syntheticFilename(msg *mailport.Message) string {
	subject := strings.TrimSpace(msg.Subject)
	if subject == "" {
		subject = "email"
	}
	// Truncate on rune boundaries; subjects are not always ASCII
	if runes := []rune(subject); len(runes) > 60 {
		subject = string(runes[:60])
	}
	return subject + ".html"
}
