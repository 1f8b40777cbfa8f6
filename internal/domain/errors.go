package domain

import "errors"

var (
	ErrFieldsRequired      = errors.New("please fill in all fields")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInvalidAddress      = errors.New("invalid account address")
	ErrNotConnected        = errors.New("wallet is not connected")
	ErrInvalidTransition   = errors.New("invalid session transition")
	ErrKeyNotFound         = errors.New("storage key not found")
	ErrStorageUnavailable  = errors.New("durable storage unavailable")
	ErrTransactionFailed   = errors.New("transaction failed")
	ErrSessionNotPersisted = errors.New("no persisted wallet session")
)
