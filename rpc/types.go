package rpc

import (
	"encoding/json"
)

const Version = "1.1"

type Request struct {
	Version string `json:"version"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      uint64 `json:"id"`
}

func (r Request) Loggable() map[string]any {
	return map[string]any{
		"method": r.Method,
		"id":     r.ID,
	}
}

// Response is a raw reply as returned by Batch. Err maps the error member the
// same way Call does.
type Response struct {
	Result json.RawMessage `json:"result"`
	Error  *errorObject    `json:"error"`
	ID     json.Number     `json:"id"`
}

func (r Response) Err() error {
	if r.Error != nil {
		return r.Error.err()
	}
	if len(r.Result) == 0 {
		return NewError(CodeMissingResult, "missing JSON-RPC result")
	}
	return nil
}
