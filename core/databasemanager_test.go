package core

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type widget struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"uniqueIndex"`
}

func newTestManager(t *testing.T) *DatabaseManager {
	dm, err := New(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), 1, LogLevelSilent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dm.Close() })
	require.NoError(t, dm.Migrate(context.Background(), &widget{}))
	return dm
}

func TestExecCommitsOnSuccess(t *testing.T) {
	dm := newTestManager(t)
	ctx := context.Background()

	err := dm.Exec(ctx, func(tx *gorm.DB) error {
		return tx.Create(&widget{Code: "a"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, dm.DB.Model(&widget{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestExecRollsBackOnError(t *testing.T) {
	dm := newTestManager(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := dm.Exec(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&widget{Code: "a"}).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, dm.DB.Model(&widget{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestExecRollsBackOnPanic(t *testing.T) {
	dm := newTestManager(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = dm.Exec(ctx, func(tx *gorm.DB) error {
			tx.Create(&widget{Code: "a"})
			panic("boom")
		})
	})

	var count int64
	require.NoError(t, dm.DB.Model(&widget{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestIsDuplicateKey(t *testing.T) {
	dm := newTestManager(t)
	require.NoError(t, dm.DB.Create(&widget{Code: "a"}).Error)

	err := dm.DB.Create(&widget{Code: "a"}).Error
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "gorm translated", err: gorm.ErrDuplicatedKey, expected: true},
		{name: "mysql 1062", err: &mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"}, expected: true},
		{name: "mysql other", err: &mysqldriver.MySQLError{Number: 1146, Message: "Table doesn't exist"}, expected: false},
		{name: "postgres message", err: errors.New(`ERROR: duplicate key value violates unique constraint "x" (SQLSTATE 23505)`), expected: true},
		{name: "unrelated", err: errors.New("connection refused"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDuplicateKey(tt.err))
		})
	}
}

func TestDialector(t *testing.T) {
	for _, driver := range []string{"mysql", "postgres", "sqlite", ""} {
		d, err := Dialector(driver, "dsn")
		assert.NoError(t, err, driver)
		assert.NotNil(t, d, driver)
	}

	_, err := Dialector("oracle", "dsn")
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelSilent, ParseLogLevel("silent"))
	assert.Equal(t, LogLevelError, ParseLogLevel("ERROR"))
	assert.Equal(t, LogLevelWarn, ParseLogLevel(" warn "))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("info"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel(""))
}
