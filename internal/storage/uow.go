package storage

import (
	"time"

	"gorm.io/gorm"
)

// UnitOfWork batches entity writes into one transaction. The batch clock is
// read once when the unit of work starts; every audit timestamp stamped in
// this batch carries that same instant, so co-committed rows agree.
type UnitOfWork struct {
	tx      *gorm.DB
	now     time.Time
	pending []any
	deletes []any
}

func Begin(db *gorm.DB) *UnitOfWork {
	return BeginAt(db, time.Now().UTC())
}

// BeginAt starts a unit of work with an explicit batch clock, for callers
// that already captured the sync instant.
func BeginAt(db *gorm.DB, now time.Time) *UnitOfWork {
	return &UnitOfWork{tx: db.Begin(), now: now}
}

// Save queues entities for write. Inserts vs updates are decided by the
// surrogate ID at commit time.
func (u *UnitOfWork) Save(entities ...any) {
	u.pending = append(u.pending, entities...)
}

// Delete queues entities for removal. Cascades are the store's job: deleting
// a pool removes its transactions in the same commit via the FK constraint.
func (u *UnitOfWork) Delete(entities ...any) {
	u.deletes = append(u.deletes, entities...)
}

func (u *UnitOfWork) Rollback() error {
	return u.tx.Rollback().Error
}

// Commit stamps audit timestamps on every queued entity and writes the whole
// batch atomically. Any error rolls back with no partial state; conflicts
// surface as ErrConflict. No internal retries.
func (u *UnitOfWork) Commit() error {
	for _, e := range u.pending {
		tx := u.tx
		if pt, ok := e.(*PoolTransaction); ok && pt.ID != 0 {
			// append-only: the ingestion timestamp is never rewritten
			tx = tx.Omit("processed_at")
		}
		stamp(e, u.now)
		if err := tx.Save(e).Error; err != nil {
			u.tx.Rollback()
			return classify(err)
		}
	}

	for _, e := range u.deletes {
		if err := u.tx.Delete(e).Error; err != nil {
			u.tx.Rollback()
			return classify(err)
		}
	}

	return classify(u.tx.Commit().Error)
}

// stamp applies the audit-timestamp rules for one entity:
//   - Pool/Token: CreatedAt on insert, UpdatedAt on insert or update
//   - SystemState: UpdatedAt and LastSyncAt together, always (a sync and an
//     update are the same event for a mirrored row)
//   - PoolTransaction: ProcessedAt on insert only
func stamp(e any, now time.Time) {
	switch v := e.(type) {
	case *Pool:
		if v.ID == 0 {
			v.CreatedAt = now
		}
		v.UpdatedAt = now
	case *Token:
		if v.ID == 0 {
			v.CreatedAt = now
		}
		v.UpdatedAt = now
	case *SystemState:
		v.UpdatedAt = now
		v.LastSyncAt = now
	case *PoolTransaction:
		if v.ID == 0 {
			v.ProcessedAt = now
		}
	}
}
