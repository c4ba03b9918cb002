package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/padeltour/tournament-server/repositories"
)

// storeError wraps unexpected repository failures so handlers can map them
// to 503 without losing the cause. Sentinel repository errors (not found,
// conflicts) pass through untouched via the errXlate helpers below.
func storeError(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// runInTx runs fn inside a transaction, rolling back on error or panic.
// Pattern follows the bracket generation flow: the cascades here touch
// several tables and must land atomically.
func runInTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return storeError(err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("rollback failed: %v (original error: %v)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return storeError(err)
	}
	return nil
}

func translateTeamError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrTeamNotFound):
		return ErrTeamNotFound
	case errors.Is(err, repositories.ErrTeamNameConflict):
		return ErrTeamNameConflict
	default:
		return storeError(err)
	}
}

func translateGroupError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrGroupNotFound):
		return ErrGroupNotFound
	case errors.Is(err, repositories.ErrGroupTeamInvalid):
		return ErrTeamNotFound
	default:
		return storeError(err)
	}
}

func translateMatchError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, repositories.ErrMatchGroupInvalid):
		return ErrGroupNotFound
	case errors.Is(err, repositories.ErrMatchTeamInvalid):
		return ErrTeamNotFound
	default:
		return storeError(err)
	}
}
