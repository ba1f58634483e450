package persistence

import (
	"context"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
)

// PartnerRepository defines persistence operations for partners
type PartnerRepository interface {
	// GetByID retrieves a partner by id
	//
	// Possible errors:
	// - ErrPartnerNotFound
	// - ErrDatabaseConnection
	GetByID(ctx context.Context, id string) (*entity.Partner, error)

	// Update persists learned state on a partner (email domains, source
	// patterns, recorded invoice links)
	Update(ctx context.Context, partner *entity.Partner) error
}
