package collectivity

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrOutOfBounds is returned when a position falls outside of the range a sequence accepts.
	ErrOutOfBounds errorkit.Error = "ErrOutOfBounds"
	// ErrUnsupportedContainerType is returned when the delegate is not the kind of container the operation needs.
	ErrUnsupportedContainerType errorkit.Error = "ErrUnsupportedContainerType"
	// ErrInsertRejected is returned when the delegate storage refused to store the entry.
	ErrInsertRejected errorkit.Error = "ErrInsertRejected"
)
