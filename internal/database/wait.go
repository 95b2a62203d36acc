// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sethvargo/go-retry"

	"github.com/mia-platform/pipectl/internal/logger"
)

const (
	loggerName = "pipectl:database"

	initialBackoff = 500 * time.Millisecond
	maximumBackoff = 5 * time.Second
)

var (
	// ErrInvalidDatabaseURL reports a connection string that cannot be parsed.
	ErrInvalidDatabaseURL = errors.New("invalid database url")
)

// probeFunc attempts a single connection to the database.
type probeFunc func(ctx context.Context) error

// WaitReady blocks until the database at databaseURL accepts connections and
// answers a ping, retrying with capped exponential backoff. It returns when
// the database is reachable or when ctx is cancelled or expires.
func WaitReady(ctx context.Context, databaseURL string) error {
	connConfig, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDatabaseURL, err.Error())
	}

	return waitReady(ctx, func(ctx context.Context) error {
		return ping(ctx, connConfig)
	}, initialBackoff)
}

func waitReady(ctx context.Context, probe probeFunc, backoffBase time.Duration) error {
	log := logger.FromContext(ctx).WithName(loggerName)

	backoff := retry.WithCappedDuration(maximumBackoff, retry.NewExponential(backoffBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := probe(ctx); err != nil {
			log.Debug("database not ready yet", "error", err)
			return retry.RetryableError(err)
		}

		log.Info("database is ready")
		return nil
	})
}

// ping opens a connection, verifies it with a round trip, and closes it.
func ping(ctx context.Context, connConfig *pgx.ConnConfig) error {
	conn, err := pgx.ConnectConfig(ctx, connConfig)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	return conn.Ping(ctx)
}
