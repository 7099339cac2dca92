package db

import (
	"database/sql"
	"os"
)

// Migrate aplica el schema completo; las sentencias usan IF NOT EXISTS,
// así que ejecutarlo en cada arranque es seguro.
func Migrate(db *sql.DB, schemaPath string) error {
	b, err := os.ReadFile(schemaPath)
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}
