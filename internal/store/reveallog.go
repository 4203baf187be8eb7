package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"time"

	"grimoire-cli/internal/model"

	_ "modernc.org/sqlite"
)

const revealLogFileName = "reveals.sqlite"

// The reveal log is an append-only local history of flip events. It exists
// purely for the user ("progress --history", the recent-reveals strip); the
// seen set in Settings remains the single source of truth for reveal state,
// so every call site treats log failures as best-effort.

func revealLogPath() (string, error) {
	dir, err := ensureConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, revealLogFileName), nil
}

func openRevealLog(ctx context.Context) (*sql.DB, error) {
	path, err := revealLogPath()
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids "database is
	// locked" flakiness when a CLI command runs next to the TUI.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS reveals (
		card_id INTEGER NOT NULL,
		revealed_at_unixms INTEGER NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// AppendReveal records one flip event.
func AppendReveal(ctx context.Context, cardID int) error {
	db, err := openRevealLog(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx,
		`INSERT INTO reveals(card_id, revealed_at_unixms) VALUES(?, ?)`,
		cardID, time.Now().UTC().UnixMilli())
	return err
}

// ReadReveals returns reveal events, newest first. limit <= 0 means all.
func ReadReveals(ctx context.Context, limit int) ([]model.RevealEvent, error) {
	db, err := openRevealLog(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT card_id, revealed_at_unixms FROM reveals ORDER BY revealed_at_unixms DESC`
	var rows *sql.Rows
	if limit > 0 {
		rows, err = db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.RevealEvent{}
	for rows.Next() {
		var id int
		var tsMs int64
		if err := rows.Scan(&id, &tsMs); err != nil {
			return nil, err
		}
		out = append(out, model.RevealEvent{CardID: id, At: time.UnixMilli(tsMs).UTC()})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ClearReveals empties the history log (used by the seal-all action, which
// also reloads the session).
func ClearReveals(ctx context.Context) error {
	db, err := openRevealLog(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx, `DELETE FROM reveals`)
	return err
}
