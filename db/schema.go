package db

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// SchemaStatements returns the CREATE TABLE statements for the given driver.
func SchemaStatements(driverName string) ([]string, error) {
	file := "schema/mysql.sql"
	if driverName == PostgresDriverName {
		file = "schema/postgres.sql"
	}
	raw, err := schemaFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}

	var statements []string
	for _, stmt := range strings.Split(string(raw), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements, nil
}
