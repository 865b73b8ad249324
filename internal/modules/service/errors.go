package service

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("already exists")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrExportDisabled = errors.New("export storage is not configured")
)

// translate maps storage errors onto the service taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}

// now is the service clock. Postgres keeps microseconds, so the value a
// create returns matches what later reads return.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
