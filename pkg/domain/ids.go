// Package domain defines shared identifier types used across feature packages.
//
// IDs are typed wrappers over uuid.UUID so a ProcessID can never be passed where
// a DocumentID is expected. Construct via Parse* at trust boundaries; direct
// casting bypasses validation.
package domain

import (
	"github.com/google/uuid"

	dErrors "dossier/pkg/domain-errors"
)

// ProcessID identifies a client transaction process (the aggregate root).
type ProcessID uuid.UUID

func (p ProcessID) String() string {
	return uuid.UUID(p).String()
}

// IsZero reports whether the ID is the nil UUID.
func (p ProcessID) IsZero() bool {
	return p == ProcessID(uuid.Nil)
}

// NewProcessID returns a fresh random process ID.
func NewProcessID() ProcessID {
	return ProcessID(uuid.New())
}

// ParseProcessID constructs a ProcessID from external input.
func ParseProcessID(s string) (ProcessID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ProcessID{}, dErrors.New(dErrors.CodeValidation, "invalid process id")
	}
	return ProcessID(u), nil
}

// DocumentID identifies one uploaded document within a process.
type DocumentID uuid.UUID

func (d DocumentID) String() string {
	return uuid.UUID(d).String()
}

// NewDocumentID returns a fresh random document ID.
func NewDocumentID() DocumentID {
	return DocumentID(uuid.New())
}

// ParseDocumentID constructs a DocumentID from external input.
func ParseDocumentID(s string) (DocumentID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return DocumentID{}, dErrors.New(dErrors.CodeValidation, "invalid document id")
	}
	return DocumentID(u), nil
}
