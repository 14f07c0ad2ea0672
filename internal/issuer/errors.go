package issuer

import "errors"

var (
	// ErrIssuerConnection indicates the identity service could not be reached
	ErrIssuerConnection = errors.New("failed to connect to identity service")

	// ErrIssuerRejected indicates the identity service rejected the request
	ErrIssuerRejected = errors.New("identity service rejected request")

	// ErrIssuerInvalidResp indicates an unparseable or incomplete response
	ErrIssuerInvalidResp = errors.New("invalid response from identity service")
)
