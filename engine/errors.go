package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match with errors.Is.
var (
	// ErrUnknownField is returned when a group key or metric names a field
	// that does not exist in the dataset schema. Programmer error — fail fast.
	ErrUnknownField = errors.New("unknown field")

	// ErrEmptyDataset is returned by operations whose result is undefined
	// over zero records (means need at least one value).
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrZeroRevenue marks an undefined profit margin. Zero revenue is a
	// legitimate business state, so recommendations report it instead of
	// failing outright.
	ErrZeroRevenue = errors.New("zero total revenue, margin undefined")
)

func unknownField(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, name)
}
