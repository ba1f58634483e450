package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	"github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/domain/port/persistence"
)

// ConnectResult reports the outcome of a connect call
type ConnectResult struct {
	ConnectionID     string
	AlreadyConnected bool
}

// Connector idempotently links documents to transactions. The junction row
// and both denormalized id lists are written in one database transaction
// so a crash can never leave a half-linked state.
type Connector struct {
	uow          persistence.UnitOfWork
	connections  persistence.ConnectionRepository
	partners     persistence.PartnerRepository
	timeProvider core.TimeProvider
	logger       core.Logger
	cfg          Config
}

// NewConnector creates a new Connector
func NewConnector(
	uow persistence.UnitOfWork,
	connections persistence.ConnectionRepository,
	partners persistence.PartnerRepository,
	timeProvider core.TimeProvider,
	logger core.Logger,
	cfg Config,
) *Connector {
	return &Connector{
		uow:          uow,
		connections:  connections,
		partners:     partners,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// Connect links a document to a transaction. Idempotent under the
// (document, transaction, owner) key: a second call returns the existing
// connection unchanged. On first connection the junction record is created
// with provenance, the document id is set-unioned into the transaction's
// list (marking it complete) and the transaction id into the document's
// list, all atomically.
func (c *Connector) Connect(
	ctx context.Context,
	documentID, transactionID, ownerID string,
	connType entity.ConnectionType,
	confidence float64,
	prov entity.ConnectionProvenance,
) (*ConnectResult, error) {
	// Fast path: no locks taken for repeated calls
	if existing, err := c.connections.FindByKey(ctx, documentID, transactionID, ownerID); err == nil {
		return &ConnectResult{ConnectionID: existing.ID, AlreadyConnected: true}, nil
	} else if !errors.Is(err, errs.ErrConnectionNotFound) {
		return nil, fmt.Errorf("failed to check existing connection: %w", err)
	}

	txCtx, err := c.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	result, err := c.connectInTx(txCtx, documentID, transactionID, ownerID, connType, confidence, prov)
	if err != nil {
		if rbErr := c.uow.Rollback(txCtx); rbErr != nil {
			c.logger.Error("Rollback failed after connect error", map[string]any{
				"error":          rbErr.Error(),
				"document_id":    documentID,
				"transaction_id": transactionID,
			})
		}
		return nil, err
	}
	if err := c.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit connection: %w", err)
	}

	if !result.AlreadyConnected {
		c.logger.Info("Document connected to transaction", map[string]any{
			"connection_id":  result.ConnectionID,
			"document_id":    documentID,
			"transaction_id": transactionID,
			"type":           string(connType),
			"confidence":     confidence,
		})
		// Best-effort side channel, never fails the connection
		c.learnSourcePattern(ctx, ownerID, transactionID, prov)
	}
	return result, nil
}

func (c *Connector) connectInTx(
	txCtx context.Context,
	documentID, transactionID, ownerID string,
	connType entity.ConnectionType,
	confidence float64,
	prov entity.ConnectionProvenance,
) (*ConnectResult, error) {
	txRepo := c.uow.GetTransactionRepository(txCtx)
	docRepo := c.uow.GetDocumentRepository(txCtx)
	connRepo := c.uow.GetConnectionRepository(txCtx)

	// Re-check under the transaction; the fast path races with other writers
	if existing, err := connRepo.FindByKey(txCtx, documentID, transactionID, ownerID); err == nil {
		return &ConnectResult{ConnectionID: existing.ID, AlreadyConnected: true}, nil
	} else if !errors.Is(err, errs.ErrConnectionNotFound) {
		return nil, fmt.Errorf("failed to check existing connection: %w", err)
	}

	transaction, err := txRepo.GetByID(txCtx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	if transaction.OwnerID != ownerID {
		return nil, errs.ErrTransactionNotFound
	}
	if transaction.IsRejected(documentID) {
		return nil, errs.ErrDocumentRejected
	}

	document, err := docRepo.GetByID(txCtx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if document.OwnerID != ownerID {
		return nil, errs.ErrDocumentNotFound
	}

	connection := &entity.Connection{
		ID:            uuid.NewString(),
		DocumentID:    documentID,
		TransactionID: transactionID,
		OwnerID:       ownerID,
		Type:          connType,
		Confidence:    confidence,
		Provenance:    prov,
		CreatedAt:     c.timeProvider.Now(),
	}
	if err := connRepo.Create(txCtx, connection); err != nil {
		if errors.Is(err, errs.ErrDuplicateConnection) {
			// Lost the race; resolve to the winner's row
			if existing, findErr := connRepo.FindByKey(txCtx, documentID, transactionID, ownerID); findErr == nil {
				return &ConnectResult{ConnectionID: existing.ID, AlreadyConnected: true}, nil
			}
		}
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	document.LinkTransaction(transactionID)
	if err := docRepo.Update(txCtx, document); err != nil {
		return nil, fmt.Errorf("failed to update document links: %w", err)
	}

	transaction.AttachDocument(documentID)
	if err := txRepo.Update(txCtx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction links: %w", err)
	}

	return &ConnectResult{ConnectionID: connection.ID}, nil
}

// learnSourcePattern records the sender domain and (domain, mailbox)
// source pattern on the transaction's partner. Best-effort: failures are
// logged and never propagate.
func (c *Connector) learnSourcePattern(ctx context.Context, ownerID, transactionID string, prov entity.ConnectionProvenance) {
	if prov.Sender == "" {
		return
	}
	domain := senderDomain(prov.Sender)
	if domain == "" {
		return
	}

	txRepo := c.uow.GetTransactionRepository(ctx)
	transaction, err := txRepo.GetByID(ctx, transactionID)
	if err != nil || transaction.PartnerID == "" {
		return
	}

	partner, err := c.partners.GetByID(ctx, transaction.PartnerID)
	if err != nil {
		c.logger.Warn("Pattern learning skipped, partner not loadable", map[string]any{
			"partner_id": transaction.PartnerID,
			"error":      err.Error(),
		})
		return
	}
	if partner.OwnerID != ownerID {
		return
	}

	changed := partner.AddDomain(domain)
	if partner.UpsertSourcePattern(domain, prov.MailboxID, c.cfg.PatternStartingConfidence, c.timeProvider.Now()) {
		changed = true
	}
	if !changed {
		return
	}
	if err := c.partners.Update(ctx, partner); err != nil {
		c.logger.Warn("Pattern learning failed to persist", map[string]any{
			"partner_id": partner.ID,
			"error":      err.Error(),
		})
		return
	}
	c.logger.Debug("Learned source pattern for partner", map[string]any{
		"partner_id": partner.ID,
		"domain":     domain,
		"mailbox_id": prov.MailboxID,
	})
}
