/*
Package database uses SQLite to store a scanned asset catalog so the files
found by a directory walk can be indexed once and turned into ROM8 files
later, without the original directory tree.
*/
package database

import (
	"crypto/sha1"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bodgit/rom8/asset"

	// Database driver
	_ "github.com/mattn/go-sqlite3"
)

// Database holds the SQLite database handle
type Database struct {
	db *sql.DB
}

// NewDatabase opens an existing database or returns a new empty one
func NewDatabase(file string) (*Database, error) {
	if file == "" {
		return nil, errors.New("no file")
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS file (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, data BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (model TEXT NOT NULL, role TEXT NOT NULL, file_id INTEGER NOT NULL, PRIMARY KEY(model, role), FOREIGN KEY(file_id) REFERENCES file(id))"); err != nil {
		return nil, err
	}

	return &Database{
		db: db,
	}, nil
}

// Close closes the database rendering it unusable
func (db *Database) Close() error {
	return db.db.Close()
}

func (db *Database) addFile(tx *sql.Tx, b []byte) (int64, error) {
	sha := fmt.Sprintf("%X", sha1.Sum(b))

	var id int64
	switch err := tx.QueryRow("SELECT id FROM file WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := tx.Exec("INSERT INTO file (sha1, data) VALUES (?, ?)", sha, b)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// ImportCatalog stores every asset in the catalog, replacing any file already
// stored for the same model and role. Identical files are stored once
func (db *Database) ImportCatalog(c *asset.Catalog) (err error) {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	for _, id := range c.IDs() {
		a, _ := c.Asset(id)
		for role, b := range a {
			file, err := db.addFile(tx, b)
			if err != nil {
				return err
			}

			if _, err := tx.Exec("INSERT OR REPLACE INTO asset (model, role, file_id) VALUES (?, ?, ?)", id, string(role), file); err != nil {
				return err
			}
		}
	}

	return nil
}

// Catalog adds every stored asset to c
func (db *Database) Catalog(c *asset.Catalog) error {
	rows, err := db.db.Query("SELECT a.model, a.role, b.data FROM asset AS a JOIN file AS b ON a.file_id = b.id ORDER BY a.model, a.role")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			model, role string
			data        []byte
		)
		if err := rows.Scan(&model, &role, &data); err != nil {
			return err
		}
		c.Add(model, asset.Role(role), data)
	}

	return rows.Err()
}

// Models returns the number of stored models and files
func (db *Database) Models() (models, files int, err error) {
	err = db.db.QueryRow("SELECT COUNT(DISTINCT model), COUNT(*) FROM asset").Scan(&models, &files)
	return
}
