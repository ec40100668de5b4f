package sqlite

import "fmt"

const (
	tableName = "Conversation"

	colID          = "Id"
	colTimestamp   = "Timestamp"
	colUserMessage = "UserMessage"
	colBotResponse = "BotResponse"
)

var createTable = fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
  %s INTEGER PRIMARY KEY AUTOINCREMENT,
  %s TEXT,
  %s TEXT,
  %s TEXT
);`,
	tableName,
	colID,
	colTimestamp,
	colUserMessage,
	colBotResponse,
)

var insertEntry = fmt.Sprintf(`
INSERT INTO %s (%s, %s, %s)
VALUES (?, ?, ?);`,
	tableName,
	colTimestamp, colUserMessage, colBotResponse,
)

var selectAll = fmt.Sprintf(`
SELECT %s, %s, %s, %s
FROM %s
ORDER BY %s ASC;`,
	colID, colTimestamp, colUserMessage, colBotResponse,
	tableName,
	colID,
)
