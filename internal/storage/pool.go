package storage

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pool mirrors the on-chain state of one fixed-ratio trading pool. Canonical
// fields are overwritten wholesale by the sync source; audit timestamps are
// stamped by the unit of work.
type Pool struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement:true;"`
	Address string `gorm:"uniqueIndex;type:varchar(64);not null"`
	Owner   string `gorm:"type:varchar(64);not null"`
	Network string `gorm:"index;type:varchar(32);not null"`

	// a token pair backs at most one pool regardless of side order;
	// BeforeSave normalizes the order so the composite unique index
	// treats (A,B) and (B,A) as the same pair
	TokenAMint string `gorm:"uniqueIndex:idx_pools_token_pair;type:varchar(64);not null"`
	TokenBMint string `gorm:"uniqueIndex:idx_pools_token_pair;type:varchar(64);not null"`

	IsActive      bool `gorm:"index"`
	IsInitialized bool
	IsPaused      bool `gorm:"index"`
	SwapsPaused   bool

	// lamport totals, kept as numeric to stay exact past float precision
	CollectedFeesTokenA decimal.Decimal `gorm:"type:numeric(40,0)"`
	CollectedFeesTokenB decimal.Decimal `gorm:"type:numeric(40,0)"`

	CreatedAt time.Time `gorm:"index;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`

	Transactions []PoolTransaction `gorm:"foreignKey:PoolID;constraint:OnDelete:CASCADE"`
}

func (p *Pool) BeforeSave(*gorm.DB) error {
	if p.TokenAMint == p.TokenBMint {
		return fmt.Errorf("%w: pool %s: token mints must differ", ErrValidation, p.Address)
	}
	if p.TokenBMint < p.TokenAMint {
		p.TokenAMint, p.TokenBMint = p.TokenBMint, p.TokenAMint
		p.CollectedFeesTokenA, p.CollectedFeesTokenB = p.CollectedFeesTokenB, p.CollectedFeesTokenA
	}
	return nil
}

func (p *Pool) Validate() error {
	if err := validatePubkey("pool address", p.Address); err != nil {
		return err
	}
	if err := validatePubkey("pool owner", p.Owner); err != nil {
		return err
	}
	if err := validatePubkey("token A mint", p.TokenAMint); err != nil {
		return err
	}
	if err := validatePubkey("token B mint", p.TokenBMint); err != nil {
		return err
	}
	return validateNetwork(p.Network)
}

// applySnapshot overwrites canonical fields from a sync-source snapshot,
// preserving identity and the creation timestamp.
func (p *Pool) applySnapshot(snap *Pool) {
	p.Owner = snap.Owner
	p.Network = snap.Network
	p.TokenAMint = snap.TokenAMint
	p.TokenBMint = snap.TokenBMint
	p.IsActive = snap.IsActive
	p.IsInitialized = snap.IsInitialized
	p.IsPaused = snap.IsPaused
	p.SwapsPaused = snap.SwapsPaused
	p.CollectedFeesTokenA = snap.CollectedFeesTokenA
	p.CollectedFeesTokenB = snap.CollectedFeesTokenB
}

// Legacy accessors kept for older dashboard code. None of these are columns.

// EmergencyStop is the old name for the pause flag.
func (p *Pool) EmergencyStop() bool { return p.IsPaused }

func (p *Pool) SetEmergencyStop(v bool) { p.IsPaused = v }

// TotalFeesWithdrawnTokenA was dropped upstream; reads report zero.
func (p *Pool) TotalFeesWithdrawnTokenA() decimal.Decimal { return decimal.Zero }

func (p *Pool) TotalFeesWithdrawnTokenB() decimal.Decimal { return decimal.Zero }

// SetTotalFeesWithdrawnTokenA is a deliberate no-op: the counter no longer
// exists on-chain and must not become a column here.
func (p *Pool) SetTotalFeesWithdrawnTokenA(decimal.Decimal) {}

func (p *Pool) SetTotalFeesWithdrawnTokenB(decimal.Decimal) {}

// LastConsolidationAt was dropped upstream; reads report absence.
func (p *Pool) LastConsolidationAt() *time.Time { return nil }

func (p *Pool) SetLastConsolidationAt(*time.Time) {}

func (p *Pool) DelegateCount() int { return 0 }

func (p *Pool) SetDelegateCount(int) {}
