package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"

	"llmChat/internal/db/conversation"

	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

type RepositorySQlite struct {
	db   *sql.DB
	path string
}

func NewRepositorySQlite(db *sql.DB, path string) *RepositorySQlite {
	return &RepositorySQlite{db: db, path: path}
}

// Open returns a repository backed by the database file at path. The file is
// not touched until Init or the first query.
func Open(path string) (*RepositorySQlite, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// one writer at a time; SQLite serializes writes anyway
	db.SetMaxOpenConns(1)
	return NewRepositorySQlite(db, path), nil
}

// Init creates the database file and the Conversation table when the file does
// not exist yet. An existing file is used as-is.
func (r *RepositorySQlite) Init() error {
	if r.path != "" {
		_, err := os.Stat(r.path)
		switch {
		case err == nil:
			log.Printf("[conversation/RepositorySQlite.Init] %s exists, schema trusted", r.path)
			return nil
		case !errors.Is(err, os.ErrNotExist):
			log.Printf("[conversation/RepositorySQlite.Init] stat %s err=%v", r.path, err)
			return fmt.Errorf("stat database file: %w", err)
		}
	}

	if _, err := r.db.Exec(createTable); err != nil {
		log.Println("[conversation/RepositorySQlite.Init] failed to create table:", err)
		return fmt.Errorf("create table: %w", err)
	}
	log.Printf("[conversation/RepositorySQlite.Init] created %s with table %s", r.path, tableName)
	return nil
}

func (r *RepositorySQlite) Close() error {
	log.Println("[conversation/RepositorySQlite.Close] closing db connection")
	return r.db.Close()
}

func (r *RepositorySQlite) Append(ctx context.Context, entry conversation.NewEntry) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertEntry, entry.Timestamp, entry.UserMessage, entry.BotResponse)
	if err != nil {
		log.Printf("[conversation/RepositorySQlite.Append] timestamp=%s err=%v", entry.Timestamp, err)
		return 0, fmt.Errorf("insert conversation entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Printf("[conversation/RepositorySQlite.Append] error getting LastInsertId=%v", err)
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	log.Printf("[conversation/RepositorySQlite.Append] success id=%d timestamp=%s", id, entry.Timestamp)
	return id, nil
}

func (r *RepositorySQlite) LoadAll(ctx context.Context) ([]conversation.Entry, error) {
	rows, err := r.db.QueryContext(ctx, selectAll)
	if err != nil {
		log.Printf("[conversation/RepositorySQlite.LoadAll] selectAll err=%v", err)
		return nil, fmt.Errorf("select conversation entries: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			log.Println("[conversation/RepositorySQlite.LoadAll] failed to close rows:", err)
		}
	}(rows)

	entries := make([]conversation.Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.UserMessage, &e.BotResponse); err != nil {
			log.Printf("[conversation/RepositorySQlite.LoadAll] failed to scan rows:%v", err)
			return nil, fmt.Errorf("scan conversation row: %w", err)
		}
		entries = append(entries, conversation.Entry{
			ID:          e.ID,
			Timestamp:   e.Timestamp.String,
			UserMessage: e.UserMessage.String,
			BotResponse: e.BotResponse.String,
		})
	}

	if err := rows.Err(); err != nil {
		log.Printf("[conversation/RepositorySQlite.LoadAll] failed to iterate rows:%v", err)
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	log.Printf("[conversation/RepositorySQlite.LoadAll] loaded %d entries", len(entries))
	return entries, nil
}
