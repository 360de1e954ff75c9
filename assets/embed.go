// apps/go-solver/assets/embed.go
//
// Embedded SQL migrations, applied in lexical order by the database package.

package assets

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed sql/*.sql
var FS embed.FS

// MigrationNames lists the embedded *.sql files in apply order.
func MigrationNames() ([]string, error) {
	entries, err := fs.ReadDir(FS, "sql")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".sql") {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// Migration returns the SQL text of one embedded migration.
func Migration(name string) (string, error) {
	b, err := FS.ReadFile("sql/" + name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
