package structs

import (
	"encoding/json"
	"fmt"
)

const (
	// MemoSize is the width in bytes of the shielded output memo field.
	MemoSize = 512
)

var (
	DefaultFee        = MustAmount("0.0001")
	DefaultSendAmount = MustAmount("0.0001")
)

// OperationID is the handle the node returns for an asynchronous operation.
type OperationID string

func (id OperationID) Loggable() map[string]any {
	return map[string]any{
		"opid": string(id),
	}
}

type OperationState string

const (
	OperationQueued    OperationState = "queued"
	OperationExecuting OperationState = "executing"
	OperationSuccess   OperationState = "success"
	OperationFailed    OperationState = "failed"
	OperationCancelled OperationState = "cancelled"
)

type OperationError struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// OperationStatus is one entry of z_getoperationstatus or
// z_getoperationresult.
type OperationStatus struct {
	ID            OperationID     `json:"id"`
	Status        OperationState  `json:"status"`
	CreationTime  int64           `json:"creation_time"`
	Method        string          `json:"method,omitempty"`
	Error         *OperationError `json:"error,omitempty"`
	Result        json.RawMessage `json:"result,omitempty"`
	ExecutionSecs json.Number     `json:"execution_secs,omitempty"`
}

// TxID extracts the transaction id a successful z_sendmany reports.
func (st OperationStatus) TxID() string {
	if len(st.Result) == 0 {
		return ""
	}
	var r struct {
		TxID string `json:"txid"`
	}
	if err := json.Unmarshal(st.Result, &r); err != nil {
		return ""
	}
	return r.TxID
}

func (st OperationStatus) Loggable() map[string]any {
	return map[string]any{
		"opid":   string(st.ID),
		"status": string(st.Status),
	}
}
