package errors

// ErrorCode identifies the kind of an application error
type ErrorCode int

const (
	ErrorCode_INTERNAL ErrorCode = iota + 1
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_SOURCE_UNAVAILABLE
	ErrorCode_SOURCE_PROTOCOL
	ErrorCode_DETAIL_FETCH_FAILED
	ErrorCode_NO_MEETINGS
	ErrorCode_NO_LEAD_STATEMENTS
	ErrorCode_AI_ANALYSIS_FAILED
	ErrorCode_EXPORT_FAILED
	ErrorCode_CONFIG_INVALID
	ErrorCode_HTTP_OK
)

var codeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:            "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:    "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:           "NOT_FOUND",
	ErrorCode_SOURCE_UNAVAILABLE:  "SOURCE_UNAVAILABLE",
	ErrorCode_SOURCE_PROTOCOL:     "SOURCE_PROTOCOL",
	ErrorCode_DETAIL_FETCH_FAILED: "DETAIL_FETCH_FAILED",
	ErrorCode_NO_MEETINGS:         "NO_MEETINGS",
	ErrorCode_NO_LEAD_STATEMENTS:  "NO_LEAD_STATEMENTS",
	ErrorCode_AI_ANALYSIS_FAILED:  "AI_ANALYSIS_FAILED",
	ErrorCode_EXPORT_FAILED:       "EXPORT_FAILED",
	ErrorCode_CONFIG_INVALID:      "CONFIG_INVALID",
	ErrorCode_HTTP_OK:             "OK",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
