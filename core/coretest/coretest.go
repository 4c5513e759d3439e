// Package coretest opens throwaway in-memory stores for tests.
package coretest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"hrmslite.com/hrms/core"
)

// NewDatabaseManager returns a migrated in-memory SQLite store private to t.
func NewDatabaseManager(t testing.TB, models ...interface{}) *core.DatabaseManager {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	dm, err := core.New(sqlite.Open(dsn), 1, core.LogLevelSilent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dm.Close() })

	require.NoError(t, dm.Migrate(context.Background(), models...))
	return dm
}
