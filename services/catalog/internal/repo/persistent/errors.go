package persistent

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// validID reports whether id can be compared against a uuid column. Postgres
// rejects anything else with 22P02 instead of matching no rows.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
