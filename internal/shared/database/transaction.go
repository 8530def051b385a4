package database

import (
	"context"
	"errors"

	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

// WithTransaction executes fn within a transaction bound to ctx.
// Returning an error (or panicking) from fn rolls the transaction back; returning nil commits.
// The tx handed to fn already carries ctx, so repositories can use it directly.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    if err := repo.Create(ctx, tx, member, actor); err != nil {
//	        return err // rollback
//	    }
//	    return nil // commit
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	err := db.WithContext(ctx).Transaction(fn)
	if err != nil {
		logger.FromContext(ctx).Debug("트랜잭션 롤백", "error", err)
	}
	return err
}
