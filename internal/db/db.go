package db

import (
  "context"
  "crypto/tls"
  "time"

  "github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig parses url into a pool configuration. TLS is always
// enabled and the server certificate is never verified (the storage
// instance presents a certificate the service cannot validate).
func PoolConfig(url string) (*pgxpool.Config, error) {
  cfg, err := pgxpool.ParseConfig(url)
  if err != nil {
    return nil, err
  }
  cfg.ConnConfig.TLSConfig = &tls.Config{
    InsecureSkipVerify: true,
    ServerName:         cfg.ConnConfig.Host,
  }
  return cfg, nil
}

// MustConnect builds the shared pool and verifies connectivity.
// The pool is held for the life of the process and never closed.
func MustConnect(url string) *pgxpool.Pool {
  cfg, err := PoolConfig(url)
  if err != nil { panic(err) }
  ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
  defer cancel()
  pool, err := pgxpool.NewWithConfig(ctx, cfg)
  if err != nil { panic(err) }
  if err := pool.Ping(ctx); err != nil { panic(err) }
  return pool
}
