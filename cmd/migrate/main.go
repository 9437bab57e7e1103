package main

import (
	"log"

	"github.com/solfrt/dashboard/internal/app"
	"github.com/solfrt/dashboard/internal/storage"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if _, err := app.InitApp(); err != nil {
		return err
	}

	dbTx := app.DB.Begin()
	if err := dbTx.AutoMigrate(
		&storage.Pool{},
		&storage.PoolTransaction{},
		&storage.Token{},
		&storage.SystemState{},
	); err != nil {
		dbTx.Rollback()
		return err
	}
	if err := dbTx.Commit().Error; err != nil {
		return err
	}

	return nil
}
