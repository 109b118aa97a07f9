package sqldb

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation detects duplicate-key failures across the
// supported drivers. GORM's TranslateError covers most cases; the message
// checks catch drivers that do not translate.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint failed") || // SQLite
		strings.Contains(errMsg, "duplicate key") || // PostgreSQL
		strings.Contains(errMsg, "duplicate entry") // MySQL
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint")
}
