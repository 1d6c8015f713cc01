package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/campuscare/backend/internal/apperrors"
)

// wrapSaveError converts a store write failure into a persistence
// error. Duplicate-key violations report the conflicting constraint
// when the driver exposes it.
func wrapSaveError(message string, err error) *apperrors.Error {
	e := apperrors.Persistence(message, err)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		e.Message = message + ": duplicate value"
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
			e = e.WithField(pgErr.ConstraintName)
		}
	}
	return e
}
