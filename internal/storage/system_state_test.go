package storage

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSystemState(network string) *SystemState {
	return &SystemState{
		Network:      network,
		Authority:    testPubkey(0xA1),
		LastSyncSlot: 12345,
		LastOpType:   OpSystemUnpause,
	}
}

func TestFirstSyncScenario(t *testing.T) {
	db := newTestDB(t)

	state, err := SystemStateByNetwork(db, "testnet")
	require.NoError(t, err)
	require.Nil(t, state)

	state, err = UpsertSystemState(db, makeSystemState("testnet"))
	require.NoError(t, err)

	reread, err := SystemStateByNetwork(db, "testnet")
	require.NoError(t, err)
	require.NotNil(t, reread)

	assert.Equal(t, state.ID, reread.ID)
	assert.False(t, reread.UpdatedAt.IsZero())
	assert.True(t, reread.UpdatedAt.Equal(reread.LastSyncAt))
	assert.Equal(t, "System is operational", reread.PauseStatusText())
	assert.Zero(t, reread.PauseDuration())
	assert.Nil(t, reread.PausedAt())
}

func TestSyncAndUpdateTimestampsMoveTogether(t *testing.T) {
	db := newTestDB(t)

	first, err := UpsertSystemState(db, makeSystemState("testnet"))
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	snap := makeSystemState("testnet")
	snap.IsPaused = true
	snap.PauseTimestamp = time.Now().Add(-time.Hour).Unix()
	snap.PauseReasonCode = 4
	snap.LastOpType = OpSystemPause
	second, err := UpsertSystemState(db, snap)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	reread, err := SystemStateByNetwork(db, "testnet")
	require.NoError(t, err)
	assert.True(t, reread.UpdatedAt.Equal(reread.LastSyncAt))
	assert.True(t, reread.LastSyncAt.After(first.LastSyncAt))
}

func TestEmergencyStopAlias(t *testing.T) {
	db := newTestDB(t)

	snap := makeSystemState("testnet")
	snap.IsPaused = true
	snap.PauseTimestamp = time.Now().Add(-30 * time.Minute).Unix()
	snap.PauseReason = "routine maintenance"
	_, err := UpsertSystemState(db, snap)
	require.NoError(t, err)

	state, err := SystemStateByNetwork(db, "testnet")
	require.NoError(t, err)
	assert.True(t, state.EmergencyStop())

	// the alias redirects to the canonical flag and is never its own column
	state.SetEmergencyStop(false)
	assert.False(t, state.IsPaused)
	assert.False(t, state.EmergencyStop())
	assert.False(t, db.Migrator().HasColumn(&SystemState{}, "emergency_stop"))

	uow := Begin(db)
	uow.Save(state)
	require.NoError(t, uow.Commit())

	reread, err := SystemStateByNetwork(db, "testnet")
	require.NoError(t, err)
	assert.False(t, reread.EmergencyStop())
}

func TestShimSinksNeverPersist(t *testing.T) {
	db := newTestDB(t)

	_, err := UpsertSystemState(db, makeSystemState("testnet"))
	require.NoError(t, err)

	state, err := SystemStateByNetwork(db, "testnet")
	require.NoError(t, err)

	state.SetTotalPausesCount(42)
	state.SetAdminNotes("remember to unpause")
	state.SetSecondaryAuthority(testPubkey(0xC1))
	state.SetMaintenanceWindow(time.Now(), time.Now().Add(time.Hour))

	uow := Begin(db)
	uow.Save(state)
	require.NoError(t, uow.Commit())

	reread, err := SystemStateByNetwork(db, "testnet")
	require.NoError(t, err)

	// sinks read back their fixed defaults, not the assigned values
	assert.Zero(t, reread.TotalPausesCount())
	assert.Empty(t, reread.AdminNotes())
	assert.Empty(t, reread.SecondaryAuthority())
	start, end := reread.MaintenanceWindow()
	assert.Nil(t, start)
	assert.Nil(t, end)

	// canonical columns are untouched by the sink writes
	assert.Equal(t, testPubkey(0xA1), reread.Authority)
	assert.False(t, reread.IsPaused)
	assert.EqualValues(t, 12345, reread.LastSyncSlot)
	assert.Equal(t, OpSystemUnpause, reread.LastOpType)

	// and none of the legacy fields exist in the physical schema
	for _, column := range []string{
		"total_pauses_count",
		"admin_notes",
		"secondary_authority",
		"maintenance_window",
	} {
		assert.False(t, db.Migrator().HasColumn(&SystemState{}, column), column)
	}
}

func TestPauseStatusText(t *testing.T) {
	state := &SystemState{Network: "testnet"}
	assert.Equal(t, "System is operational", state.PauseStatusText())

	state.IsPaused = true
	state.PauseTimestamp = time.Now().Add(-2 * time.Hour).Unix()
	state.PauseReasonCode = 3
	assert.Equal(t, "System paused: critical security issue", state.PauseStatusText())

	// free text from the sync source wins over the code label
	state.PauseReason = "incident #4521"
	assert.Equal(t, "System paused: incident #4521", state.PauseStatusText())

	paused := state.PauseDuration()
	assert.InDelta(t, (2 * time.Hour).Seconds(), paused.Seconds(), 5)

	pausedAt := state.PausedAt()
	require.NotNil(t, pausedAt)
	assert.Equal(t, time.Unix(state.PauseTimestamp, 0).UTC(), *pausedAt)
}

func TestPoolLegacyAccessors(t *testing.T) {
	pool := makePool(1, 2, 3)
	pool.IsPaused = true
	assert.True(t, pool.EmergencyStop())

	pool.SetEmergencyStop(false)
	assert.False(t, pool.IsPaused)

	pool.SetTotalFeesWithdrawnTokenA(decimal.NewFromInt(999))
	assert.True(t, pool.TotalFeesWithdrawnTokenA().IsZero())
	assert.True(t, pool.TotalFeesWithdrawnTokenB().IsZero())

	assert.Nil(t, pool.LastConsolidationAt())
	pool.SetDelegateCount(7)
	assert.Zero(t, pool.DelegateCount())
}
