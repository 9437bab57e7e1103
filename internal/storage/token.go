package storage

import "time"

// Token is one token mint known to the dashboard.
type Token struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement:true;"`
	MintAddress    string `gorm:"uniqueIndex;type:varchar(64);not null"`
	Symbol         string `gorm:"type:varchar(16)"`
	Network        string `gorm:"index;type:varchar(32);not null"`
	IsActive       bool   `gorm:"index"`
	IsVerified     bool
	TestnetCreated bool
	CreatedAt      time.Time `gorm:"index;autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`
}

func (t *Token) Validate() error {
	if err := validatePubkey("token mint", t.MintAddress); err != nil {
		return err
	}
	return validateNetwork(t.Network)
}

func (t *Token) applySnapshot(snap *Token) {
	t.Symbol = snap.Symbol
	t.Network = snap.Network
	t.IsActive = snap.IsActive
	t.IsVerified = snap.IsVerified
	t.TestnetCreated = snap.TestnetCreated
}
