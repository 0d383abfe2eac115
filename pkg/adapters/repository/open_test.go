package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/config"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/core/domain"
)

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{DatabaseURL: filepath.Join(t.TempDir(), "database.db")}

	repo, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer repo.Close()

	require.IsType(t, &sqlite.SQLiteRepository{}, repo)
	assert.Equal(t, sqlite.DriverSQLite, repo.(*sqlite.SQLiteRepository).Driver())

	link := &domain.Link{Title: "Docs", URL: "https://example.com"}
	require.NoError(t, repo.Create(context.Background(), link))
	assert.NotZero(t, link.ID)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Database: config.Database{Driver: "mysql"}})
	assert.Error(t, err)
}

func TestOpenPostgresUnreachable(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "postgres://enlaces@127.0.0.1:1/enlaces?connect_timeout=1"}

	_, err := Open(context.Background(), cfg)
	var se *domain.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "ping", se.Op)
}

func TestOpenExplicitLibSQL(t *testing.T) {
	var se *domain.StorageError

	cfg := &config.Config{Database: config.Database{Driver: "libsql"}}
	_, err := Open(context.Background(), cfg)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "open", se.Op)

	cfg = &config.Config{DatabaseURL: "https://127.0.0.1:1", Database: config.Database{Driver: "libsql"}}
	_, err = Open(context.Background(), cfg)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "unable to open database file")
}
