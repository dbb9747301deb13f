package handoffrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errWrongStage = errors.New("handoff is at another stage")

// GormHandoffStore implements ports.HandoffStore using GORM.
type GormHandoffStore struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewGormHandoffStore creates a store whose handoffs expire after ttl.
func NewGormHandoffStore(db *gorm.DB, ttl time.Duration, now func() time.Time) *GormHandoffStore {
	return &GormHandoffStore{db: db, ttl: ttl, now: now}
}

// Migrate creates or updates the handoffs table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&HandoffDTO{})
}

// Put saves a handoff under a new token.
func (r *GormHandoffStore) Put(ctx context.Context, handoff order.Handoff) (kernel.UUID, error) {
	if handoff == nil {
		return kernel.UUID{}, errs.NewValueIsRequiredError("handoff")
	}
	if err := handoff.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	token := kernel.NewUUID()
	dto, err := fromDomain(token, handoff, r.now().Add(r.ttl))
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.UUID{}, err
	}
	return token, nil
}

// Take locks the row, deletes it and returns its handoff. Concurrent takes of
// the same token serialize on the row lock, so only one of them succeeds. A row
// of another stage is unlocked untouched.
func (r *GormHandoffStore) Take(ctx context.Context, token kernel.UUID, stage order.Stage) (order.Handoff, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	var dto HandoffDTO
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&dto, "token = ?", token.Bytes()).Error; err != nil {
			return err
		}
		if r.now().Before(dto.ExpiresAt) && dto.Stage != int(stage) {
			return errWrongStage
		}
		return tx.Delete(&HandoffDTO{}, "token = ?", token.Bytes()).Error
	})
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errs.NewObjectNotFoundError("handoff", token.String())
	case errors.Is(err, errWrongStage):
		return nil, errs.NewObjectNotFoundErrorWithCause("handoff", token.String(),
			fmt.Errorf("handoff is at stage %s, expected %s", order.Stage(dto.Stage), stage))
	case err != nil:
		return nil, err
	}

	if !r.now().Before(dto.ExpiresAt) {
		return nil, errs.NewObjectNotFoundError("handoff", token.String())
	}
	return toDomain(dto)
}

// DeleteExpired removes every handoff past its expiry.
func (r *GormHandoffStore) DeleteExpired(ctx context.Context) (int, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", r.now().UTC()).Delete(&HandoffDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}
