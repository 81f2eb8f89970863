package pg

import (
	"context"
	"database/sql"

	"github.com/itchan-dev/forum/backend/internal/utils"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
	shared_pg "github.com/itchan-dev/forum/shared/storage/pg"
)

// Storage binds the forum storage contract to PostgreSQL.
// Every operation is a single parameterized statement on the shared pool.
type Storage struct {
	db  *sql.DB
	ids *utils.IdScheme
}

// New wraps an existing connection pool. newId produces id suffixes.
func New(db *sql.DB, newId utils.IdGenerator) *Storage {
	return &Storage{db: db, ids: utils.NewIdScheme(newId)}
}

// Connect opens the pool described by cfg and wraps it.
func Connect(cfg *config.Config, newId utils.IdGenerator) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := shared_pg.Connect(cfg, shared_pg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return New(db, newId), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
