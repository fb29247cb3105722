// Package dberrs maps gorm errors onto the domain error kinds.
//
// The gorm connection must be opened with TranslateError enabled so driver
// specific unique and foreign key violations arrive as gorm.ErrDuplicatedKey
// and gorm.ErrForeignKeyViolated.
package dberrs

import (
	"errors"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// OnWrite translates the error of an insert or update. param and value name
// the unique attribute reported on a duplicate.
func OnWrite(err error, param string, value any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewObjectAlreadyExistsErrorWithCause(param, value, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	default:
		return err
	}
}

// OnRead translates the error of a single-row lookup.
func OnRead(err error, param string, id any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundErrorWithCause(param, id, err)
	default:
		return err
	}
}

// OnDelete translates the error of a delete. A row still referenced through a
// restricting foreign key reports an ObjectIsReferencedError.
func OnDelete(err error, param string, id any, referencedBy string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewObjectIsReferencedErrorWithCause(param, id, referencedBy, err)
	default:
		return err
	}
}
