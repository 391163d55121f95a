package wallet

import (
	"github.com/blocknative/zmsg/structs"
)

// ReceivedNote is one entry of z_listreceivedbyaddress.
type ReceivedNote struct {
	TxID     string         `json:"txid"`
	Amount   structs.Amount `json:"amount"`
	Memo     string         `json:"memo"`
	OutIndex *int           `json:"outindex,omitempty"`
	JSIndex  *int           `json:"jsindex,omitempty"`
	Change   bool           `json:"change,omitempty"`
}

func (rn ReceivedNote) Loggable() map[string]any {
	return map[string]any{
		"txid":   rn.TxID,
		"amount": rn.Amount.String(),
	}
}

// Unspent is one entry of listunspent.
type Unspent struct {
	TxID          string         `json:"txid"`
	Vout          int            `json:"vout"`
	Address       string         `json:"address"`
	Amount        structs.Amount `json:"amount"`
	Confirmations int64          `json:"confirmations"`
	Spendable     bool           `json:"spendable"`
}

// Transaction is the subset of gettransaction the client reads.
type Transaction struct {
	TxID          string         `json:"txid"`
	Amount        structs.Amount `json:"amount"`
	Confirmations int64          `json:"confirmations"`
	BlockHash     string         `json:"blockhash,omitempty"`
	BlockTime     int64          `json:"blocktime,omitempty"`
	Time          int64          `json:"time"`
	TimeReceived  int64          `json:"timereceived,omitempty"`
}

// SendAmount is one output of z_sendmany. Memo is hex and omitted when empty.
type SendAmount struct {
	Address string         `json:"address"`
	Amount  structs.Amount `json:"amount"`
	Memo    string         `json:"memo,omitempty"`
}
