package storage

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// single connection keeps the in-memory database shared between sessions
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&Pool{},
		&PoolTransaction{},
		&Token{},
		&SystemState{},
	))

	return db
}

func testPubkey(b byte) string {
	var pk solana.PublicKey
	copy(pk[:], bytes.Repeat([]byte{b}, 32))
	return pk.String()
}

func testSignature(b byte) string {
	var sig solana.Signature
	copy(sig[:], bytes.Repeat([]byte{b}, 64))
	return sig.String()
}

func makePool(addr, mintA, mintB byte) *Pool {
	return &Pool{
		Address:       testPubkey(addr),
		Owner:         testPubkey(0xAA),
		Network:       "testnet",
		TokenAMint:    testPubkey(mintA),
		TokenBMint:    testPubkey(mintB),
		IsActive:      true,
		IsInitialized: true,
	}
}

func makeToken(mint byte, symbol string) *Token {
	return &Token{
		MintAddress: testPubkey(mint),
		Symbol:      symbol,
		Network:     "testnet",
		IsActive:    true,
	}
}

func makeTransaction(sig byte, poolID uint64) *PoolTransaction {
	return &PoolTransaction{
		Signature:   testSignature(sig),
		PoolID:      poolID,
		UserAddress: testPubkey(0xBB),
		Type:        TxSwap,
		Success:     true,
		Network:     "testnet",
	}
}
