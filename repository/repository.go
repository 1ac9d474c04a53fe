// Package repository wraps gorm access to each table. Callers get sentinel
// errors instead of gorm ones so services do not depend on the driver.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup matches no row
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique index
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenced is returned when a delete would orphan dependent rows
	ErrReferenced = errors.New("record is referenced")
)

// translate maps gorm errors onto the package sentinels
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

// normalizeOrder returns "asc" or "desc", defaulting to desc
func normalizeOrder(order string) string {
	if order == "asc" {
		return "asc"
	}
	return "desc"
}
