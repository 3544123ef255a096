package srvcerror

import "net/http"

type Error struct {
	errorCode  string
	msgToUser  string // public
	dbgInfoErr error  // private, for debugging

	httpStatus int // optional, for HTTP responses
}

func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) ErrorCode() string {
	return e.errorCode
}

func (e *Error) DebugInfo() error {
	return e.dbgInfoErr
}

func (e *Error) SetDebug(err error) *Error {
	e.dbgInfoErr = err
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.httpStatus
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.httpStatus = code
	return e
}

func New(errorCode string, msgToUser string) *Error {
	return &Error{
		errorCode: errorCode,
		msgToUser: msgToUser,
	}
}

const (
	ErrCodeInternalServerError = "internal_server_error"
	ErrCodeDataIntegrity       = "data_integrity"
	ErrCodeInvalidScoreParams  = "invalid_score_params"
	ErrCodeUnknownScoreType    = "unknown_score_type"
)

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"iekšēja servera kļūda",
	).SetHttpStatusCode(http.StatusInternalServerError)
}

// a configured testcase has no evaluation in the submission result
func ErrDataIntegrity() *Error {
	return New(
		ErrCodeDataIntegrity,
		"iesūtījuma izvērtējums ir nepilnīgs",
	).SetHttpStatusCode(http.StatusInternalServerError)
}

func ErrInvalidScoreParams() *Error {
	return New(
		ErrCodeInvalidScoreParams,
		"nederīgi vērtēšanas parametri",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func ErrUnknownScoreType() *Error {
	return New(
		ErrCodeUnknownScoreType,
		"nezināms vērtēšanas veids",
	).SetHttpStatusCode(http.StatusBadRequest)
}
