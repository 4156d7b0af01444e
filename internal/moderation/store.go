// Package moderation provides the SQLite-backed moderation store.
package moderation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS warnings (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	guild_id     TEXT NOT NULL,
	user_id      TEXT NOT NULL,
	moderator_id TEXT NOT NULL,
	reason       TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_warnings_guild_user ON warnings (guild_id, user_id);
`

// Warning is a single stored warning.
type Warning struct {
	ID          int64
	GuildID     discord.GuildID
	UserID      discord.UserID
	ModeratorID discord.UserID
	Reason      string
	CreatedAt   time.Time
}

// Store wraps the SQLite database holding moderation state.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db, logger: logger.Named("moderation_store")}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddWarning records a warning and returns its ID.
func (s *Store) AddWarning(ctx context.Context, guildID discord.GuildID, userID, moderatorID discord.UserID, reason string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO warnings (guild_id, user_id, moderator_id, reason) VALUES (?, ?, ?, ?)`,
		guildID.String(), userID.String(), moderatorID.String(), reason,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert warning: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read warning id: %w", err)
	}

	s.logger.Info("Warning recorded",
		zap.Int64("warningID", id),
		zap.Stringer("guildID", guildID),
		zap.Stringer("userID", userID),
	)

	return id, nil
}

// Warnings returns all warnings for a user in a guild, oldest first.
func (s *Store) Warnings(ctx context.Context, guildID discord.GuildID, userID discord.UserID) ([]Warning, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, moderator_id, reason, created_at FROM warnings
		 WHERE guild_id = ? AND user_id = ? ORDER BY id`,
		guildID.String(), userID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query warnings: %w", err)
	}
	defer rows.Close()

	var warnings []Warning
	for rows.Next() {
		w := Warning{GuildID: guildID, UserID: userID}
		var moderatorID string
		if err := rows.Scan(&w.ID, &moderatorID, &w.Reason, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan warning: %w", err)
		}
		sf, err := discord.ParseSnowflake(moderatorID)
		if err != nil {
			return nil, fmt.Errorf("corrupt moderator id %q: %w", moderatorID, err)
		}
		w.ModeratorID = discord.UserID(sf)
		warnings = append(warnings, w)
	}

	return warnings, rows.Err()
}

// ClearWarnings deletes all warnings for a user in a guild and returns how
// many were removed.
func (s *Store) ClearWarnings(ctx context.Context, guildID discord.GuildID, userID discord.UserID) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM warnings WHERE guild_id = ? AND user_id = ?`,
		guildID.String(), userID.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete warnings: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	s.logger.Info("Warnings cleared",
		zap.Int64("removed", removed),
		zap.Stringer("guildID", guildID),
		zap.Stringer("userID", userID),
	)

	return removed, nil
}
