package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Sync-source boundary: upsert-by-natural-key writers and indexed readers.
// Absence on lookup is returned as nil, never as an error. Conflicts from
// racing inserts surface as ErrConflict so the caller can re-run the upsert.

func PoolByAddress(db *gorm.DB, address string) (*Pool, error) {
	var p Pool
	err := db.Where("address = ?", address).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func TokenByMint(db *gorm.DB, mint string) (*Token, error) {
	var t Token
	err := db.Where("mint_address = ?", mint).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func SystemStateByNetwork(db *gorm.DB, network string) (*SystemState, error) {
	var s SystemState
	err := db.Where("network = ?", network).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func ListSystemStates(db *gorm.DB) ([]SystemState, error) {
	var states []SystemState
	if err := db.Order("network").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

func PoolsByNetwork(db *gorm.DB, network string) ([]Pool, error) {
	var pools []Pool
	if err := db.Where("network = ?", network).Order("created_at").Find(&pools).Error; err != nil {
		return nil, err
	}
	return pools, nil
}

func CountPoolsByNetwork(db *gorm.DB, network string) (int64, error) {
	var n int64
	if err := db.Model(&Pool{}).Where("network = ?", network).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// TransactionsByPool returns a pool's transactions with processed_at in
// [from, to), oldest first. Served by the (pool_id, processed_at) index.
func TransactionsByPool(db *gorm.DB, poolID uint64, from, to time.Time) ([]PoolTransaction, error) {
	var txs []PoolTransaction
	err := db.
		Where("pool_id = ? AND processed_at >= ? AND processed_at < ?", poolID, from, to).
		Order("processed_at").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// UpsertPool inserts a pool observed for the first time, or overwrites the
// canonical fields of the existing row keyed by pool address. Surrogate ID
// and CreatedAt survive overwrites.
func UpsertPool(db *gorm.DB, snap *Pool) (*Pool, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	target := snap
	existing, err := PoolByAddress(db, snap.Address)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.applySnapshot(snap)
		target = existing
	}

	uow := Begin(db)
	uow.Save(target)
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return target, nil
}

// UpsertToken inserts or overwrites the token row keyed by mint address.
func UpsertToken(db *gorm.DB, snap *Token) (*Token, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	target := snap
	existing, err := TokenByMint(db, snap.MintAddress)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.applySnapshot(snap)
		target = existing
	}

	uow := Begin(db)
	uow.Save(target)
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return target, nil
}

// UpsertSystemState replaces the whole canonical row for a network, creating
// it on first sync. Concurrent syncs of the same network are serialized by
// the unique index on network.
func UpsertSystemState(db *gorm.DB, snap *SystemState) (*SystemState, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	target := snap
	existing, err := SystemStateByNetwork(db, snap.Network)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.applySnapshot(snap)
		target = existing
	}

	uow := Begin(db)
	uow.Save(target)
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return target, nil
}

// RecordTransaction ingests one observed transaction. Replays of an already
// ingested signature fail with ErrConflict and write nothing.
func RecordTransaction(db *gorm.DB, tx *PoolTransaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	uow := Begin(db)
	uow.Save(tx)
	return uow.Commit()
}

// DeletePool removes a pool and, via the cascade constraint, all of its
// transactions in the same commit. Deleting an unknown address is a no-op.
func DeletePool(db *gorm.DB, address string) error {
	pool, err := PoolByAddress(db, address)
	if err != nil {
		return err
	}
	if pool == nil {
		return nil
	}

	uow := Begin(db)
	uow.Delete(pool)
	return uow.Commit()
}
