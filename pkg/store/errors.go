package store

import (
	"errors"

	"github.com/matzehuels/bizreg/pkg/entity"
)

// ErrNoRegistrationNumber is returned when saving a record that has no key.
var ErrNoRegistrationNumber = errors.New("store: record has no registration number")

// CheckRecord reports whether r can be saved.
func CheckRecord(r *entity.Record) error {
	if r == nil || r.RegistrationNumber == "" {
		return ErrNoRegistrationNumber
	}
	return nil
}
