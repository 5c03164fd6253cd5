package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("mail relay unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrInvalidMessage is returned when a header field would break the
	// message framing (CR or LF) or the recipient is not an address.
	ErrInvalidMessage = errors.New("invalid mail message")

	// ErrDelivery wraps transport failures while talking to the mail server.
	ErrDelivery = errors.New("mail delivery failed")
)
