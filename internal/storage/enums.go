package storage

// TransactionType classifies an observed protocol transaction. Persisted as
// its integer code; the labels below are display-only and may be renamed
// without touching stored rows.
type TransactionType int16

const (
	TxUnknown TransactionType = iota
	TxPoolCreate
	TxDeposit
	TxWithdraw
	TxSwap
	TxFeeWithdraw
	TxPoolPause
	TxPoolUnpause
)

func (t TransactionType) String() string {
	switch t {
	case TxPoolCreate:
		return "pool_create"
	case TxDeposit:
		return "deposit"
	case TxWithdraw:
		return "withdraw"
	case TxSwap:
		return "swap"
	case TxFeeWithdraw:
		return "fee_withdraw"
	case TxPoolPause:
		return "pool_pause"
	case TxPoolUnpause:
		return "pool_unpause"
	default:
		return "unknown"
	}
}

// SystemOperationType classifies the last privileged operation observed for a
// network. Persisted as its integer code.
type SystemOperationType int16

const (
	OpUnknown SystemOperationType = iota
	OpSystemPause
	OpSystemUnpause
	OpPoolPause
	OpPoolUnpause
	OpTreasuryWithdraw
	OpFeeUpdate
)

func (t SystemOperationType) String() string {
	switch t {
	case OpSystemPause:
		return "system_pause"
	case OpSystemUnpause:
		return "system_unpause"
	case OpPoolPause:
		return "pool_pause"
	case OpPoolUnpause:
		return "pool_unpause"
	case OpTreasuryWithdraw:
		return "treasury_withdraw"
	case OpFeeUpdate:
		return "fee_update"
	default:
		return "unknown"
	}
}

// pauseReasonLabels maps the on-chain pause reason codes to display text.
// Code 255 is reserved for custom reasons documented off-chain.
var pauseReasonLabels = map[uint8]string{
	0:   "no pause active",
	1:   "funds consolidation",
	2:   "contract upgrade in progress",
	3:   "critical security issue",
	4:   "routine maintenance",
	5:   "emergency halt",
	6:   "governance action in progress",
	7:   "external dependency issues",
	8:   "compliance requirements",
	9:   "testing activities",
	10:  "oracle issues",
	11:  "liquidity management",
	12:  "network congestion",
	13:  "token economic rebalancing",
	14:  "external audit in progress",
	15:  "scheduled maintenance",
	255: "custom reason",
}

// PauseReasonLabel returns display text for an on-chain pause reason code.
func PauseReasonLabel(code uint8) string {
	if label, ok := pauseReasonLabels[code]; ok {
		return label
	}
	return "unknown reason"
}
