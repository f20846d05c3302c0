package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/bizreg/pkg/config"
	"github.com/matzehuels/bizreg/pkg/store"
	mongostore "github.com/matzehuels/bizreg/pkg/store/mongo"
	redisstore "github.com/matzehuels/bizreg/pkg/store/redis"
	sqlitestore "github.com/matzehuels/bizreg/pkg/store/sqlite"
)

// openStore opens the backend selected by cfg.Driver.
func openStore(ctx context.Context, cfg config.Store) (store.Store, error) {
	switch cfg.Driver {
	case "", store.DriverNone:
		return store.NewNullStore(), nil
	case store.DriverFile:
		return store.NewFileStore(cfg.Path)
	case store.DriverSQLite:
		return sqlitestore.New(cfg.Path)
	case store.DriverRedis:
		return redisstore.New(ctx, redisstore.Options{Addr: cfg.Addr, Prefix: cfg.Prefix})
	case store.DriverMongo:
		return mongostore.New(ctx, mongostore.Options{URI: cfg.URI, Database: cfg.Database})
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
