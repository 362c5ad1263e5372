package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so that the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrSessionExpiredOrInvalid is returned for any token that fails
	// verification: bad signature, wrong issuer, expired, or a session that
	// has been revoked by logout.
	ErrSessionExpiredOrInvalid = errors.New("session is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrNotAdvertisementOwner is returned when a delete is attempted by an
	// authenticated user who does not own the advertisement.
	ErrNotAdvertisementOwner = errors.New("requester is not the advertisement owner")
)
