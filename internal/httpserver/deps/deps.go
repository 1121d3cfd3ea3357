package deps

import (
	"time"

	"github.com/markermap/markermap/internal/logger"
	"github.com/markermap/markermap/internal/mapcfg"
	"github.com/markermap/markermap/internal/store/file"
	redisstore "github.com/markermap/markermap/internal/store/redis"
)

type Deps struct {
	Logger      logger.Logger
	StartTime   time.Time
	Version     string
	Commit      string
	BuildDate   string
	GoVersion   string
	Dataset     *file.Store       // dataset file store, re-read per request
	MapConfig   mapcfg.Config     // map page settings
	History     *redisstore.Store // outcome history, nil when redis is disabled
	HistorySize int               // max entries returned by the outcomes endpoint
}
