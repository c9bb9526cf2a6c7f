package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an operation targets a row that does not
// exist.
var ErrNotFound = errors.New("record not found")

// ErrStillReferenced is returned when a delete is refused because another
// row still holds a protected reference to the target.
var ErrStillReferenced = errors.New("row is still referenced by other records")

// notFound maps gorm's record-not-found onto the package sentinel.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// referenceCheck describes one table column that protects a row from
// deletion while any match exists.
type referenceCheck struct {
	model  any
	column string
}

func (c referenceCheck) blocked(tx *gorm.DB, id uint) error {
	var n int64
	if err := tx.Model(c.model).Where(c.column+" = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrStillReferenced
	}
	return nil
}
