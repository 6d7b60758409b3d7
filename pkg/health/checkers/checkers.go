package checkers

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pinger is satisfied by the object store client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe is a readiness check backed by a single ping call bounded by a timeout.
type Probe struct {
	name    string
	timeout time.Duration
	ping    func(ctx context.Context) error
}

func (p *Probe) Name() string { return p.name }

func (p *Probe) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.ping(ctx)
}

func NewPostgresChecker(pool *pgxpool.Pool) *Probe {
	return &Probe{name: "postgres", timeout: time.Second, ping: pool.Ping}
}

func NewSQLiteChecker(db *sql.DB) *Probe {
	return &Probe{name: "sqlite", timeout: time.Second, ping: db.PingContext}
}

// NewObjectStoreChecker checks the bucket. HeadBucket goes over the network and gets
// a longer timeout than the local stores.
func NewObjectStoreChecker(store Pinger) *Probe {
	return &Probe{name: "objectstore", timeout: 2 * time.Second, ping: store.Ping}
}
