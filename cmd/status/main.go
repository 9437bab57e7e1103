package main

import (
	"log"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/solfrt/dashboard/internal/app"
	"github.com/solfrt/dashboard/internal/storage"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	a, err := app.InitApp()
	if err != nil {
		return err
	}

	var eg errgroup.Group
	for _, network := range a.Cfg.Networks {
		eg.Go(func() error {
			state, err := storage.SystemStateByNetwork(app.DB, network)
			if err != nil {
				return err
			}
			if state == nil {
				logrus.Warnf("[DASH] %s: not synced yet", network)
				return nil
			}

			pools, err := storage.CountPoolsByNetwork(app.DB, network)
			if err != nil {
				return err
			}

			logrus.Infof("[DASH] %s: %s | pools=%d | slot=%d | synced %s",
				network,
				state.PauseStatusText(),
				pools,
				state.LastSyncSlot,
				state.LastSyncAt.Format(time.RFC3339),
			)
			if state.IsPaused {
				logrus.Infof("[DASH] %s: paused for %s", network, state.PauseDuration().Round(time.Second))
			}

			return nil
		})
	}

	return eg.Wait()
}
