package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Blackdeer1524/joaat/src"
	"github.com/Blackdeer1524/joaat/src/delivery"
	"github.com/Blackdeer1524/joaat/src/joaat"
	"github.com/Blackdeer1524/joaat/src/pkg/utils"
)

const CloseTimeout = 15 * time.Second

// NewLogger builds the sugared zap logger for the given environment.
func NewLogger(environment string) src.Logger {
	if environment == EnvDev {
		return utils.Must(zap.NewDevelopment()).Sugar()
	}

	return utils.Must(zap.NewProduction()).Sugar()
}

type APIEntrypoint struct {
	// EnvFiles are the dotenv files to load; empty means ./.env.
	EnvFiles []string
	// Configure, if set, adjusts the loaded environment before use.
	Configure func(*Env)

	Env Env

	s        *delivery.Server
	searcher *joaat.Searcher
	log      src.Logger
}

func (e *APIEntrypoint) Init(_ context.Context) error {
	e.Env = mustLoadEnv(e.EnvFiles...)
	if e.Configure != nil {
		e.Configure(&e.Env)
	}
	e.log = NewLogger(e.Env.Environment)

	searcher, err := joaat.NewSearcher(e.Env.SearchAlphabet(), e.Env.Workers, e.log)
	if err != nil {
		return fmt.Errorf("APIEntrypoint.Init: %w", err)
	}
	e.searcher = searcher

	e.s = delivery.NewServer(
		e.Env.ServerHost,
		e.Env.ServerPort,
		delivery.NewAPIHandler(searcher, e.Env.MaxLength, e.log),
		e.log,
	)

	return nil
}

func (e *APIEntrypoint) Run(_ context.Context) error {
	return e.s.Run()
}

func (e *APIEntrypoint) Close() (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), CloseTimeout)
	defer cancel()

	if e.s != nil {
		err = e.s.Close(ctx)
	}

	// after the server, so no handler is left mid-search on a released pool
	if e.searcher != nil {
		e.searcher.Close()
	}

	if e.log != nil {
		if err != nil {
			e.log.Error("failed to close server", zap.Error(err))
		}

		logErr := e.log.Sync()
		if logErr != nil && err != nil {
			err = fmt.Errorf("%w, %w", err, logErr)
		} else if logErr != nil {
			err = logErr
		}
	}

	return
}
