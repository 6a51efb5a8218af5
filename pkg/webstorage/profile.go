//go:build !js

package webstorage

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const (
	// ProfileFileName is the name of the database file inside a profile
	// directory.
	ProfileFileName = "webappsstore.sqlite"
	// DefaultOrigin is the origin used when none is configured.
	DefaultOrigin = "default"
)

const profileSchema = `CREATE TABLE IF NOT EXISTS webappsstore (
	origin TEXT NOT NULL,
	key    TEXT NOT NULL,
	value  TEXT NOT NULL,
	PRIMARY KEY (origin, key)
)`

// A Profile is the Web Storage of a non-browser program: a sqlite database in
// a profile directory, partitioned by origin the way a browser partitions
// localStorage.
type Profile struct {
	db     *sql.DB
	origin string
	path   string
}

// OpenProfile opens (creating if necessary) the profile database in dir and
// scopes it to origin.
func OpenProfile(dir, origin string) (*Profile, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("profile directory is required")
	}
	if origin == "" {
		origin = DefaultOrigin
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrapf(err, "failed to create profile directory %s", dir)
	}

	path := filepath.Join(filepath.Clean(dir), ProfileFileName)
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open profile database")
	}
	// one writer at a time, like a browser's storage thread
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping profile database")
	}
	if _, err := db.Exec(profileSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create profile schema")
	}

	log.Debug().Str("path", path).Str("origin", origin).Msg("[webstorage] opened profile")

	return &Profile{db: db, origin: origin, path: path}, nil
}

// Origin returns the origin the profile is scoped to.
func (p *Profile) Origin() string {
	return p.origin
}

// Path returns the location of the profile database.
func (p *Profile) Path() string {
	return p.path
}

func (p *Profile) GetItem(key string) (value string, ok bool, err error) {
	row := p.db.QueryRow(`SELECT value FROM webappsstore WHERE origin = ? AND key = ?`, p.origin, key)
	err = row.Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	} else if err != nil {
		return "", false, errors.Wrapf(err, "failed to read %s", key)
	}
	return value, true, nil
}

func (p *Profile) SetItem(key, value string) error {
	_, err := p.db.Exec(`INSERT INTO webappsstore (origin, key, value) VALUES (?, ?, ?)
		ON CONFLICT (origin, key) DO UPDATE SET value = excluded.value`, p.origin, key, value)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}
	return nil
}

func (p *Profile) RemoveItem(key string) error {
	_, err := p.db.Exec(`DELETE FROM webappsstore WHERE origin = ? AND key = ?`, p.origin, key)
	if err != nil {
		return errors.Wrapf(err, "failed to remove %s", key)
	}
	return nil
}

// Keys returns the keys stored for the profile's origin in sorted order.
func (p *Profile) Keys() ([]string, error) {
	rows, err := p.db.Query(`SELECT key FROM webappsstore WHERE origin = ? ORDER BY key`, p.origin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list keys")
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, errors.Wrap(err, "failed to scan key")
		}
		keys = append(keys, key)
	}
	return keys, errors.Wrap(rows.Err(), "failed to list keys")
}

// Clear removes every entry for the profile's origin. Other origins are left
// alone.
func (p *Profile) Clear() error {
	_, err := p.db.Exec(`DELETE FROM webappsstore WHERE origin = ?`, p.origin)
	if err != nil {
		return errors.Wrap(err, "failed to clear storage")
	}
	return nil
}

// Close closes the profile database.
func (p *Profile) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}
