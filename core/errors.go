package core

import (
	"errors"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type sqlStateErr interface {
	SQLState() string
}

// IsDuplicateKey reports whether err is a unique constraint violation raised by
// any of the supported dialects.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// 23505 = unique_violation
	var pgErr sqlStateErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return true
	}

	// 1062 = ER_DUP_ENTRY
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "duplicate entry") ||
		strings.Contains(s, "sqlstate 23505")
}
