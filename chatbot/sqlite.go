package chatbot

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements ConversationStore on a local SQLite database so
// conversations survive restarts. Messages are stored as a JSON column; the
// store never queries inside them.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS conversations (
			id TEXT PRIMARY KEY,
			messages TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get retrieves a conversation by ID
func (s *SQLiteStore) Get(id string) (*Conversation, error) {
	var raw string
	conv := &Conversation{ID: id}

	err := s.db.QueryRow(
		"SELECT messages, created_at, updated_at FROM conversations WHERE id = ?", id,
	).Scan(&raw, &conv.CreatedAt, &conv.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), &conv.Messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return conv, nil
}

// Create creates a new conversation
func (s *SQLiteStore) Create() (*Conversation, error) {
	now := time.Now()
	conv := &Conversation{
		ID:        uuid.NewString(),
		Messages:  []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.db.Exec(
		"INSERT INTO conversations (id, messages, created_at, updated_at) VALUES (?, ?, ?, ?)",
		conv.ID, "[]", conv.CreatedAt, conv.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// AddMessages appends messages to a conversation
func (s *SQLiteStore) AddMessages(id string, msgs []Message) error {
	conv, err := s.Get(id)
	if err != nil {
		return err
	}
	if conv == nil {
		return nil
	}

	conv.Messages = append(conv.Messages, msgs...)
	raw, err := json.Marshal(conv.Messages)
	if err != nil {
		return fmt.Errorf("failed to encode messages: %w", err)
	}

	if _, err := s.db.Exec(
		"UPDATE conversations SET messages = ?, updated_at = ? WHERE id = ?",
		string(raw), time.Now(), id,
	); err != nil {
		return fmt.Errorf("failed to update conversation: %w", err)
	}
	return nil
}
