package rpc

import (
	"errors"
	"fmt"
)

var (
	ErrTransport         = errors.New("rpc transport failure")
	ErrClosed            = errors.New("rpc client is closed")
	ErrUnsupportedScheme = errors.New("unsupported url scheme")
	ErrInvalidEndpoint   = errors.New("invalid rpc endpoint")
	ErrMissingPassword   = errors.New("rpc password not set")
)

// Error codes returned by the node, plus two the client raises itself.
const (
	CodeForbiddenBySafeMode  int64 = -2
	CodeInvalidAddressOrKey  int64 = -5
	CodeInvalidParameter     int64 = -8
	CodeVerifyError          int64 = -25
	CodeVerifyRejected       int64 = -26
	CodeVerifyAlreadyInChain int64 = -27
	CodeInWarmup             int64 = -28

	CodeMissingResponse int64 = -342
	CodeMissingResult   int64 = -343
)

// Kind classifies an *Error by its code. Kinds are errors themselves so that
// errors.Is(err, rpc.KindInWarmup) works on anything wrapping an *Error.
type Kind uint8

const (
	KindUnclassified Kind = iota
	KindForbiddenBySafeMode
	KindInvalidAddressOrKey
	KindInvalidParameter
	KindVerifyError
	KindVerifyRejected
	KindVerifyAlreadyInChain
	KindInWarmup
	KindMissingResponse
	KindMissingResult
)

var kindByCode = map[int64]Kind{
	CodeForbiddenBySafeMode:  KindForbiddenBySafeMode,
	CodeInvalidAddressOrKey:  KindInvalidAddressOrKey,
	CodeInvalidParameter:     KindInvalidParameter,
	CodeVerifyError:          KindVerifyError,
	CodeVerifyRejected:       KindVerifyRejected,
	CodeVerifyAlreadyInChain: KindVerifyAlreadyInChain,
	CodeInWarmup:             KindInWarmup,
	CodeMissingResponse:      KindMissingResponse,
	CodeMissingResult:        KindMissingResult,
}

var kindNames = [...]string{
	KindUnclassified:         "unclassified",
	KindForbiddenBySafeMode:  "forbidden by safe mode",
	KindInvalidAddressOrKey:  "invalid address or key",
	KindInvalidParameter:     "invalid parameter",
	KindVerifyError:          "verify error",
	KindVerifyRejected:       "verify rejected",
	KindVerifyAlreadyInChain: "verify already in chain",
	KindInWarmup:             "in warmup",
	KindMissingResponse:      "missing response",
	KindMissingResult:        "missing result",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) Error() string {
	return "rpc: " + k.String()
}

// KindOf returns the kind registered for code, KindUnclassified otherwise.
func KindOf(code int64) Kind {
	if k, ok := kindByCode[code]; ok {
		return k
	}
	return KindUnclassified
}

// Error is a JSON-RPC error reported by the node.
type Error struct {
	Kind    Kind
	Code    int64
	Message string
}

func NewError(code int64, message string) *Error {
	return &Error{
		Kind:    KindOf(code),
		Code:    code,
		Message: message,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d (%s): %s", e.Code, e.Kind.String(), e.Message)
}

func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func (e *Error) Loggable() map[string]any {
	return map[string]any{
		"code":    e.Code,
		"kind":    e.Kind.String(),
		"message": e.Message,
	}
}

type errorObject struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

func (eo *errorObject) err() *Error {
	return NewError(eo.Code, eo.Message)
}
