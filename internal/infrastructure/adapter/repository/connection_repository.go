package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	coreport "github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ConnectionRepository implements the ConnectionRepository port using GORM
type ConnectionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewConnectionRepository creates a new ConnectionRepository instance
func NewConnectionRepository(db *gorm.DB, logger coreport.Logger) *ConnectionRepository {
	return &ConnectionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a connection entity to a database model
func (r *ConnectionRepository) entityToModel(connection *entity.Connection) model.Connection {
	return model.Connection{
		ID:                      connection.ID,
		DocumentID:              connection.DocumentID,
		TransactionID:           connection.TransactionID,
		OwnerID:                 connection.OwnerID,
		Type:                    string(connection.Type),
		Confidence:              connection.Confidence,
		ProvenanceSourceType:    connection.Provenance.SourceType,
		ProvenanceSearchPattern: connection.Provenance.SearchPattern,
		ProvenanceMailMessageID: connection.Provenance.MailMessageID,
		ProvenanceSender:        connection.Provenance.Sender,
		ProvenanceMailboxID:     connection.Provenance.MailboxID,
		CreatedAt:               connection.CreatedAt,
	}
}

// modelToEntity converts a connection model to an entity
func (r *ConnectionRepository) modelToEntity(m *model.Connection) *entity.Connection {
	return &entity.Connection{
		ID:            m.ID,
		DocumentID:    m.DocumentID,
		TransactionID: m.TransactionID,
		OwnerID:       m.OwnerID,
		Type:          entity.ConnectionType(m.Type),
		Confidence:    m.Confidence,
		Provenance: entity.ConnectionProvenance{
			SourceType:    m.ProvenanceSourceType,
			SearchPattern: m.ProvenanceSearchPattern,
			MailMessageID: m.ProvenanceMailMessageID,
			Sender:        m.ProvenanceSender,
			MailboxID:     m.ProvenanceMailboxID,
		},
		CreatedAt: m.CreatedAt,
	}
}

// FindByKey retrieves the connection for the unique
// (document, transaction, owner) triple
func (r *ConnectionRepository) FindByKey(ctx context.Context, documentID, transactionID, ownerID string) (*entity.Connection, error) {
	var connectionModel model.Connection
	result := r.db.WithContext(ctx).
		Where("document_id = ? AND transaction_id = ? AND owner_id = ?", documentID, transactionID, ownerID).
		First(&connectionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&connectionModel), nil
}

// Create saves a new connection. The unique index turns a concurrent
// double-connect into ErrDuplicateConnection, which callers treat as
// already-connected.
func (r *ConnectionRepository) Create(ctx context.Context, connection *entity.Connection) error {
	connectionModel := r.entityToModel(connection)

	result := r.db.WithContext(ctx).Create(&connectionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate connection detected", map[string]any{
				"document_id":    connection.DocumentID,
				"transaction_id": connection.TransactionID,
			})
			return errs.ErrDuplicateConnection
		}
		r.logger.Error("Failed to create connection", map[string]any{
			"document_id":    connection.DocumentID,
			"transaction_id": connection.TransactionID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Connection created", map[string]any{
		"connection_id":  connection.ID,
		"document_id":    connection.DocumentID,
		"transaction_id": connection.TransactionID,
		"type":           string(connection.Type),
	})
	return nil
}

// ListByTransaction returns all connections of a transaction
func (r *ConnectionRepository) ListByTransaction(ctx context.Context, transactionID, ownerID string) ([]*entity.Connection, error) {
	var models []model.Connection
	result := r.db.WithContext(ctx).
		Where("transaction_id = ? AND owner_id = ?", transactionID, ownerID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	connections := make([]*entity.Connection, 0, len(models))
	for i := range models {
		connections = append(connections, r.modelToEntity(&models[i]))
	}
	return connections, nil
}
