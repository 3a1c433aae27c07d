package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/zuacaldeira/kita-dienstplan/internal/config"
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

func (r *Repository) queryContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
}
