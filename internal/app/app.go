// Package app wires configuration, logging and stores, and dispatches the
// markermap subcommands.
package app

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/markermap/markermap/internal/config"
	"github.com/markermap/markermap/internal/logger"
	"github.com/markermap/markermap/internal/redisconn"
	redisstore "github.com/markermap/markermap/internal/store/redis"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
}

func New() *App {
	cfg := config.Load()
	return &App{
		cfg:    cfg,
		logger: logger.New(cfg.LogLevel, cfg.PrettyLog),
	}
}

// Run dispatches one subcommand. args is os.Args[1:].
func (a *App) Run(args []string) error {
	defer func() { _ = a.logger.Sync() }()

	cmd := "apply"
	var rest []string
	if len(args) > 0 {
		cmd = args[0]
		rest = args[1:]
	}

	switch cmd {
	case "apply":
		return a.runApply(rest)
	case "validate":
		return a.runValidate(rest)
	case "import":
		return a.runImport(rest)
	case "serve":
		return a.runServe(rest)
	case "help", "--help", "-h":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printUsage() {
	fmt.Print(`markermap - issue-driven marker dataset maintenance

Usage:
  markermap apply             Apply one issue event to the dataset
  markermap validate [path]   Validate a dataset file against the schema
  markermap import <file>     Replace the dataset from a TSV export
  markermap serve             Serve the dataset on an interactive map
  markermap help              Show this help

Configuration is read from MARKERMAP_* environment variables; see each
command's --help for flag overrides.
`)
}

// connectHistory dials the optional outcome-history backend. A nil store
// with no error means history is disabled by configuration.
func (a *App) connectHistory() (*redisstore.Store, *goredis.Client, error) {
	if !a.cfg.HistoryEnabled() {
		return nil, nil, nil
	}

	client, err := redisconn.New(redisconn.ConnectOptions{
		Addr:           a.cfg.RedisAddr,
		User:           a.cfg.RedisUser,
		Password:       a.cfg.RedisPassword,
		DB:             a.cfg.RedisDB,
		DialTimeout:    a.cfg.RedisDT,
		ReadTimeout:    a.cfg.RedisRT,
		WriteTimeout:   a.cfg.RedisWT,
		PoolSize:       a.cfg.RedisPoolSize,
		ConnectTimeout: a.cfg.RedisConnectTimeout,
		RetryInterval:  a.cfg.RedisRetryInterval,
		MaxWait:        a.cfg.RedisMaxWait,
		PingTimeout:    a.cfg.RedisPingTimeout,
		WarnThreshold:  a.cfg.RedisWarnThreshold,
	}, a.logger)
	if err != nil {
		return nil, nil, err
	}
	return redisstore.NewStore(client, a.cfg.HistorySize), client, nil
}
