package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RecentLimit caps how many messages a transcript load returns.
const RecentLimit = 50

// Kind classifies messages that carry no plain text body.
type Kind string

const (
	KindAudio   Kind = "Audio Message"
	KindImage   Kind = "Image"
	KindEffect  Kind = "iMessage Effect"
	KindSpecial Kind = "Special Message"
)

// Message is one entry in a conversation transcript. Text and Kind may
// both be empty.
type Message struct {
	Text   string
	Time   time.Time
	Kind   Kind
	FromMe bool
}

// Content returns the text to show for a message: the body when present,
// the bracketed kind otherwise, or a placeholder for messages with
// neither.
func (m Message) Content() string {
	if m.Text != "" {
		return m.Text
	}
	if m.Kind != "" {
		return fmt.Sprintf("[%s]", m.Kind)
	}
	return "<empty message>"
}

// Timestamps in chat.db count nanoseconds since 2001-01-01; the strftime
// term shifts them onto the Unix epoch. The kind CASE mirrors how the
// Messages schema marks non-text rows, first match wins.
const selectMessages = `
SELECT text,
       date / 1000000000 + strftime('%s','2001-01-01') AS unix_ts,
       CASE
           WHEN is_audio_message = 1 THEN 'Audio Message'
           WHEN cache_has_attachments = 1 AND (text IS NULL OR text = '￼') THEN 'Image'
           WHEN balloon_bundle_id IS NOT NULL THEN 'iMessage Effect'
           WHEN item_type != 0 THEN 'Special Message'
           ELSE NULL
       END AS kind,
       is_from_me
FROM message
JOIN handle ON message.handle_id = handle.ROWID
WHERE handle.id = ?`

// Messages returns the most recent messages exchanged with the contact,
// newest first, capped at RecentLimit.
func (db *DB) Messages(identifier string) ([]Message, error) {
	rows, err := db.Query(selectMessages+`
ORDER BY date DESC
LIMIT ?`, identifier, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var msgs []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// LastMessage returns the most recent message received from the contact,
// or nil when there is none. Outgoing messages are skipped.
func (db *DB) LastMessage(identifier string) (*Message, error) {
	row := db.QueryRow(selectMessages+`
  AND is_from_me = 0
ORDER BY date DESC
LIMIT 1`, identifier)

	m, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last message: %w", err)
	}
	return &m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (Message, error) {
	var (
		text sql.NullString
		ts   int64
		kind sql.NullString
		m    Message
	)
	if err := row.Scan(&text, &ts, &kind, &m.FromMe); err != nil {
		return Message{}, err
	}
	m.Text = text.String
	m.Time = time.Unix(ts, 0)
	m.Kind = Kind(kind.String)
	return m, nil
}
