package services

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ReferenceError reports a foreign-key field pointing at a row that does not
// exist. The services raise it ahead of the insert so a dangling id surfaces
// as a client error instead of a driver failure.
type ReferenceError struct {
	Field  string
	Entity string
	ID     uint
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s %d does not exist", e.Field, e.Entity, e.ID)
}

const (
	mysqlDuplicateEntry   = 1062
	mysqlForeignKeyFailed = 1452
)

// IsDuplicate reports whether err is a MySQL unique-constraint violation.
func IsDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}

// IsForeignKeyViolation reports whether err is a MySQL foreign-key failure
// that slipped past the pre-insert checks (e.g. a concurrent delete).
func IsForeignKeyViolation(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlForeignKeyFailed
}

// checkRef verifies that the row a foreign-key field points at exists.
func checkRef[M any](db *gorm.DB, field, entity string, id uint) error {
	var m M
	var count int64
	if err := db.Model(&m).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &ReferenceError{Field: field, Entity: entity, ID: id}
	}
	return nil
}
