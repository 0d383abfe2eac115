package repository

import (
	"context"
	"fmt"

	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/adapters/repository/postgres"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/config"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/ports"
)

// Open connects the backend selected by cfg and makes sure the enlaces
// table exists.
func Open(ctx context.Context, cfg *config.Config) (ports.LinkRepository, error) {
	switch driver := cfg.Driver(); driver {
	case config.DriverSQLite, config.DriverLibSQL:
		repo, err := sqlite.NewRepository(driver, cfg.DSN())
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.DriverPostgres:
		repo, err := postgres.NewPostgresRepository(ctx, cfg.DSN())
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
