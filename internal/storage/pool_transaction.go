package storage

import (
	"fmt"
	"time"
)

// PoolTransaction is one observed protocol transaction. Rows are append-only:
// the signature is the idempotency key for replay-safe ingestion, and
// ProcessedAt is stamped once at insertion and never rewritten.
type PoolTransaction struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement:true;"`
	Signature   string          `gorm:"uniqueIndex;type:varchar(96);not null"`
	PoolID      uint64          `gorm:"not null;index:idx_pool_tx_pool_time,priority:1"`
	UserAddress string          `gorm:"type:varchar(64)"`
	Type        TransactionType `gorm:"type:smallint;not null"`
	Success     bool
	Network     string    `gorm:"index;type:varchar(32);not null"`
	ProcessedAt time.Time `gorm:"index;index:idx_pool_tx_pool_time,priority:2;autoCreateTime:false"`
}

func (t *PoolTransaction) Validate() error {
	if err := validateSignature("transaction signature", t.Signature); err != nil {
		return err
	}
	if t.PoolID == 0 {
		return fmt.Errorf("%w: transaction %s has no owning pool", ErrValidation, t.Signature)
	}
	if t.UserAddress != "" {
		if err := validatePubkey("user address", t.UserAddress); err != nil {
			return err
		}
	}
	return validateNetwork(t.Network)
}
