package domain

import "errors"

var (
	// Institution errors
	ErrUnsupportedInstitution = errors.New("institution has no profile")
	ErrInvalidProfile         = errors.New("invalid institution profile")

	// Sheet and file errors
	ErrUnparsableSheet = errors.New("header row not found")
	ErrStructural      = errors.New("structural error in source layout")
	ErrColumnMissing   = errors.New("column missing")
	ErrNoRows          = errors.New("no parseable rows")

	// Cell errors
	ErrMalformedCell = errors.New("malformed cell value")

	// Sign derivation errors
	ErrUnorderedBalance = errors.New("balance rows are not ordered by date")
)
