package protocol

const (
	// Protocol/transport validation.
	ErrProtoBadRequest = "E_PROTO_BAD_REQUEST"
	ErrBadSnapshot     = "E_BAD_SNAPSHOT"

	// Command layer.
	ErrUnknownAction  = "E_UNKNOWN_ACTION"
	ErrDispatchFailed = "E_DISPATCH_FAILED"
	ErrCancelTimeout  = "E_CANCEL_TIMEOUT"
	ErrInvalidTarget  = "E_INVALID_TARGET"
	ErrNoResource     = "E_NO_RESOURCE"
	ErrStale          = "E_STALE"

	// Connection layer.
	ErrAuthRejected = "E_AUTH_REJECTED"
	ErrInternal     = "E_INTERNAL"
)

var knownCodes = map[string]struct{}{
	ErrProtoBadRequest: {},
	ErrBadSnapshot:     {},
	ErrUnknownAction:   {},
	ErrDispatchFailed:  {},
	ErrCancelTimeout:   {},
	ErrInvalidTarget:   {},
	ErrNoResource:      {},
	ErrStale:           {},
	ErrAuthRejected:    {},
	ErrInternal:        {},
}

func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}
