package storage

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

const maxNetworkLen = 32

func validatePubkey(field, value string) error {
	if _, err := solana.PublicKeyFromBase58(value); err != nil {
		return fmt.Errorf("%w: %s %q: %s", ErrValidation, field, value, err)
	}
	return nil
}

func validateSignature(field, value string) error {
	if _, err := solana.SignatureFromBase58(value); err != nil {
		return fmt.Errorf("%w: %s %q: %s", ErrValidation, field, value, err)
	}
	return nil
}

func validateNetwork(value string) error {
	if value == "" {
		return fmt.Errorf("%w: network is required", ErrValidation)
	}
	if len(value) > maxNetworkLen {
		return fmt.Errorf("%w: network %q exceeds %d chars", ErrValidation, value, maxNetworkLen)
	}
	return nil
}
