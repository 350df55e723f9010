package errs

import (
	"net/http"
)

// Unauthorized is the single outcome for every authentication failure.
// Expired, forged and malformed tokens all surface as this value so the
// response never leaks why a credential was rejected.
var (
	Unauthorized = &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrUnauthorized}
)

func Malformed(payloadName string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, payloadName+" malformed")
}

func BadRequest(message string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, message)
}

// NewInvalidFieldError reports a validation failure on a single field,
// rejected before any persistence is attempted.
func NewInvalidFieldError(fieldName string, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrBadRequest,
		Details:    reason,
		Field:      fieldName,
	}
}

// NewMissingRequiredFieldError reports an absent required field.
func NewMissingRequiredFieldError(fieldName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrBadRequest,
		Details:    "missing required field",
		Field:      fieldName,
	}
}
