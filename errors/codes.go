package errors

// ErrorCode identifies a failure category independent of the HTTP status.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS    ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005

	// Authentication
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2000
	ErrorCode_AUTH_SESSION_EXPIRED     ErrorCode = 2001
	ErrorCode_AUTH_NO_SESSION          ErrorCode = 2002

	// Database
	ErrorCode_DB_QUERY_FAILED       ErrorCode = 3000
	ErrorCode_DB_TRANSACTION_FAILED ErrorCode = 3001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:           "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:        "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:          "UNAUTHENTICATED",
	ErrorCode_AUTH_INVALID_CREDENTIALS: "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_SESSION_EXPIRED:     "AUTH_SESSION_EXPIRED",
	ErrorCode_AUTH_NO_SESSION:          "AUTH_NO_SESSION",
	ErrorCode_DB_QUERY_FAILED:          "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED:    "DB_TRANSACTION_FAILED",
}

// String returns the symbolic name of the error code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
