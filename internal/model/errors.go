package model

import "errors"

var (
	// ErrInvalidParameter indicates malformed generator, deriver or
	// simulator inputs. Raised before any computation proceeds.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidPrice indicates a zero or non-finite price where a
	// division is required. The run is terminal; no partial ledger is
	// returned.
	ErrInvalidPrice = errors.New("invalid price")
)
