package storage

import (
	"time"
)

// SystemState is the per-network snapshot of global protocol state. The
// dashboard never originates a transition: every canonical field is replaced
// wholesale from chain state on each sync.
type SystemState struct {
	ID              uint64 `gorm:"primaryKey;autoIncrement:true;"`
	Network         string `gorm:"uniqueIndex;type:varchar(32);not null"`
	Authority       string `gorm:"type:varchar(64)"`
	IsPaused        bool   `gorm:"index"`
	PauseTimestamp  int64
	PauseReasonCode uint8               `gorm:"type:smallint"`
	PauseReason     string              `gorm:"type:varchar(128)"`
	LastSyncSlot    uint64
	LastOpSignature string              `gorm:"type:varchar(96)"`
	LastOpType      SystemOperationType `gorm:"type:smallint"`
	LastSyncAt      time.Time
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`
}

func (s *SystemState) Validate() error {
	if err := validateNetwork(s.Network); err != nil {
		return err
	}
	if s.Authority != "" {
		if err := validatePubkey("authority", s.Authority); err != nil {
			return err
		}
	}
	if s.LastOpSignature != "" {
		if err := validateSignature("last operation signature", s.LastOpSignature); err != nil {
			return err
		}
	}
	return nil
}

func (s *SystemState) applySnapshot(snap *SystemState) {
	s.Authority = snap.Authority
	s.IsPaused = snap.IsPaused
	s.PauseTimestamp = snap.PauseTimestamp
	s.PauseReasonCode = snap.PauseReasonCode
	s.PauseReason = snap.PauseReason
	s.LastSyncSlot = snap.LastSyncSlot
	s.LastOpSignature = snap.LastOpSignature
	s.LastOpType = snap.LastOpType
}

// PauseStatusText renders the pause state for display. Falls back to the
// on-chain reason code label when the sync source supplied no free text.
func (s *SystemState) PauseStatusText() string {
	if !s.IsPaused {
		return "System is operational"
	}
	reason := s.PauseReason
	if reason == "" {
		reason = PauseReasonLabel(s.PauseReasonCode)
	}
	return "System paused: " + reason
}

// PauseDuration reports how long the system has been paused, zero when it
// is not.
func (s *SystemState) PauseDuration() time.Duration {
	if !s.IsPaused || s.PauseTimestamp == 0 {
		return 0
	}
	return time.Since(time.Unix(s.PauseTimestamp, 0))
}

// Legacy accessors below keep the previous field surface alive for older
// dashboard code. None of them are columns: aliases read canonical fields,
// the rest absorb writes and report defaults.

// EmergencyStop is the old name for the global pause flag.
func (s *SystemState) EmergencyStop() bool { return s.IsPaused }

func (s *SystemState) SetEmergencyStop(v bool) { s.IsPaused = v }

// PausedAt converts the canonical pause epoch into an instant, absent when
// the system is not paused.
func (s *SystemState) PausedAt() *time.Time {
	if !s.IsPaused || s.PauseTimestamp == 0 {
		return nil
	}
	t := time.Unix(s.PauseTimestamp, 0).UTC()
	return &t
}

// TotalPausesCount was dropped upstream; reads report zero and writes are
// absorbed so old call sites keep working.
func (s *SystemState) TotalPausesCount() uint64 { return 0 }

func (s *SystemState) SetTotalPausesCount(uint64) {}

// MaintenanceWindow was dropped upstream; reads report absence.
func (s *SystemState) MaintenanceWindow() (start, end *time.Time) { return nil, nil }

func (s *SystemState) SetMaintenanceWindow(start, end time.Time) {}

func (s *SystemState) AdminNotes() string { return "" }

func (s *SystemState) SetAdminNotes(string) {}

func (s *SystemState) SecondaryAuthority() string { return "" }

func (s *SystemState) SetSecondaryAuthority(string) {}
