package sqlite

import "database/sql"

// Entry mirrors a Conversation row. Columns are nullable in the schema, so
// rows written by other tools may hold NULLs.
type Entry struct {
	ID          int64          `db:"Id"`
	Timestamp   sql.NullString `db:"Timestamp"`
	UserMessage sql.NullString `db:"UserMessage"`
	BotResponse sql.NullString `db:"BotResponse"`
}
