// ABOUTME: Durable session store backed by a SQLite file
// ABOUTME: Keeps namespaced scalar key-value pairs; writes are synchronous upserts

package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite" // SQLite driver
)

// FileName is the session database inside the config directory
const FileName = "session.db"

const schema = `
CREATE TABLE IF NOT EXISTS prefs (
	namespace TEXT NOT NULL,
	key       TEXT NOT NULL,
	value     TEXT NOT NULL,
	PRIMARY KEY (namespace, key)
);`

// SQLiteStore is a Store persisted in a SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// DefaultPath returns the session database path inside configDir
func DefaultPath(configDir string) string {
	return filepath.Join(configDir, FileName)
}

// Open opens (creating if needed) the session database at path
func Open(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}

	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=synchronous(FULL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open session database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate session database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) set(namespace, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs (namespace, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value`,
		namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("save %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (s *SQLiteStore) get(namespace, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		`SELECT value FROM prefs WHERE namespace = ? AND key = ?`,
		namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s/%s: %w", namespace, key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) SaveLoginState(loggedIn bool) error {
	return s.set(NamespaceAuth, KeyLoggedIn, strconv.FormatBool(loggedIn))
}

func (s *SQLiteStore) LoginState() (bool, error) {
	value, ok, err := s.get(NamespaceAuth, KeyLoggedIn)
	if err != nil || !ok {
		return false, err
	}
	loggedIn, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("corrupt %s value %q: %w", KeyLoggedIn, value, err)
	}
	return loggedIn, nil
}

func (s *SQLiteStore) SaveAuthToken(token string) error {
	return s.set(NamespaceAuth, KeyAuthToken, token)
}

func (s *SQLiteStore) AuthToken() (string, bool, error) {
	return s.get(NamespaceAuth, KeyAuthToken)
}

func (s *SQLiteStore) SaveLoggedInUserID(id int64) error {
	return s.set(NamespaceUser, KeyUserID, strconv.FormatInt(id, 10))
}

func (s *SQLiteStore) LoggedInUserID() (int64, error) {
	value, ok, err := s.get(NamespaceUser, KeyUserID)
	if err != nil {
		return NoUser, err
	}
	if !ok {
		return NoUser, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return NoUser, fmt.Errorf("corrupt %s value %q: %w", KeyUserID, value, err)
	}
	return id, nil
}

// Clear deletes both namespaces in one transaction
func (s *SQLiteStore) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	defer tx.Rollback()

	for _, ns := range []string{NamespaceAuth, NamespaceUser} {
		if _, err := tx.Exec(`DELETE FROM prefs WHERE namespace = ?`, ns); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	return tx.Commit()
}
