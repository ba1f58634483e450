package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	coreport "github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PartnerRepository implements the PartnerRepository port using GORM
type PartnerRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPartnerRepository creates a new PartnerRepository instance
func NewPartnerRepository(db *gorm.DB, logger coreport.Logger) *PartnerRepository {
	return &PartnerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PartnerRepository) modelToEntity(m *model.Partner) *entity.Partner {
	partner := &entity.Partner{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Name:         m.Name,
		EmailDomains: m.EmailDomains,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	for _, p := range m.SourcePatterns {
		partner.SourcePatterns = append(partner.SourcePatterns, entity.SourcePattern(p))
	}
	for _, l := range m.InvoiceLinks {
		partner.InvoiceLinks = append(partner.InvoiceLinks, entity.InvoiceLink(l))
	}
	return partner
}

// GetByID retrieves a partner by id
func (r *PartnerRepository) GetByID(ctx context.Context, id string) (*entity.Partner, error) {
	var partnerModel model.Partner
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&partnerModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPartnerNotFound
		}
		r.logger.Error("Failed to get partner", map[string]any{
			"partner_id": id,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&partnerModel), nil
}

// Update persists learned state on a partner (email domains, source
// patterns, recorded invoice links)
func (r *PartnerRepository) Update(ctx context.Context, partner *entity.Partner) error {
	patterns := make(datatypes.JSONSlice[model.SourcePattern], 0, len(partner.SourcePatterns))
	for _, p := range partner.SourcePatterns {
		patterns = append(patterns, model.SourcePattern(p))
	}
	links := make(datatypes.JSONSlice[model.InvoiceLink], 0, len(partner.InvoiceLinks))
	for _, l := range partner.InvoiceLinks {
		links = append(links, model.InvoiceLink(l))
	}

	result := r.db.WithContext(ctx).Model(&model.Partner{}).
		Where("id = ?", partner.ID).
		Updates(map[string]interface{}{
			"email_domains":   datatypes.JSONSlice[string](partner.EmailDomains),
			"source_patterns": patterns,
			"invoice_links":   links,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update partner", map[string]any{
			"partner_id": partner.ID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrPartnerNotFound
	}
	return nil
}
