package httpapi

import (
	"database/sql"
	"sync/atomic"
	"time"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/events"
	"jobscout-engine/internal/provider"
)

type Deps struct {
	DB  *sql.DB
	Hub *events.Hub

	Searcher     *provider.Searcher
	FetchTimeout time.Duration

	// ApplyCredentials re-resolves provider secrets into the Searcher after
	// one of them changes at runtime.
	ApplyCredentials func()

	// Config persistence
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
