package domain

import "errors"

var (
	ErrUnauthorized              = errors.New("unauthorized")
	ErrChargeNotFound            = errors.New("charge not found")
	ErrMarketParticipantNotFound = errors.New("market participant not found")
	ErrDuplicateCharge           = errors.New("charge already exists")
	ErrConcurrentUpdate          = errors.New("charge was modified concurrently")
	ErrSenderMismatch            = errors.New("document sender does not match authenticated market participant")
	ErrArchiveFailed             = errors.New("archiving document failed")
)
