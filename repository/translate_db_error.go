package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"learnsphere/domain"
)

// translateDBError classifies a database error into one of the domain
// error kinds with a user-facing message. Errors it cannot classify are
// returned unchanged and surface as internal errors.
func translateDBError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique violation
			if strings.Contains(pgErr.Message, "email") {
				return domain.E(domain.ErrConflict, "Email already exists")
			}
			if strings.Contains(pgErr.Message, "student_courses") {
				return domain.E(domain.ErrConflict, "Course already added to your account")
			}
			return domain.E(domain.ErrConflict, "Duplicate value, please use another")

		case "23503": // foreign key violation
			return domain.E(domain.ErrValidation, "Referenced record does not exist")

		case "23502": // not-null violation
			return domain.E(domain.ErrValidation, "Some required fields are missing")

		case "22P02": // invalid text representation
			return domain.E(domain.ErrValidation, "Invalid data format")
		}
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.E(domain.ErrNotFound, "Record not found")
	}

	return err
}
