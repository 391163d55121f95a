// Package wallet exposes the node wallet methods zmsg needs as typed calls.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/blocknative/zmsg/rpc"
	"github.com/blocknative/zmsg/structs"
	"github.com/lthibault/log"
)

const (
	DefaultUnspentMinConf = 0
	DefaultUnspentMaxConf = 9999999
	DefaultSendMinConf    = 1
	DefaultReceiveMinConf = 1
)

var ErrNotFound = errors.New("not found in wallet")

// Caller is satisfied by *rpc.Client.
type Caller interface {
	CallFor(ctx context.Context, out any, method string, params ...any) error
}

type Wallet struct {
	c Caller
	l log.Logger
}

func New(c Caller, l log.Logger) *Wallet {
	if l == nil {
		l = log.New()
	}
	return &Wallet{c: c, l: l.WithField("service", "wallet")}
}

// ListAddresses returns the shielded addresses of the wallet.
func (w *Wallet) ListAddresses(ctx context.Context) (addrs []string, err error) {
	if err := w.c.CallFor(ctx, &addrs, "z_listaddresses"); err != nil {
		return nil, fmt.Errorf("z_listaddresses: %w", err)
	}
	return addrs, nil
}

func (w *Wallet) ListReceivedByAddress(ctx context.Context, addr string, minconf int) (notes []ReceivedNote, err error) {
	if err := w.c.CallFor(ctx, &notes, "z_listreceivedbyaddress", addr, minconf); err != nil {
		return nil, fmt.Errorf("z_listreceivedbyaddress %s: %w", addr, err)
	}
	return notes, nil
}

// ListUnspent returns transparent outputs with between minconf and maxconf
// confirmations, in the order the node lists them. addrs filters when not
// empty.
func (w *Wallet) ListUnspent(ctx context.Context, minconf, maxconf int, addrs []string) (unspent []Unspent, err error) {
	params := []any{minconf, maxconf}
	if len(addrs) > 0 {
		params = append(params, addrs)
	}
	if err := w.c.CallFor(ctx, &unspent, "listunspent", params...); err != nil {
		return nil, fmt.Errorf("listunspent: %w", err)
	}
	return unspent, nil
}

// GetTransaction looks up an in-wallet transaction. An unknown id yields
// ErrNotFound rather than the node's invalid-address-or-key error.
func (w *Wallet) GetTransaction(ctx context.Context, txid string) (tx Transaction, err error) {
	if err := w.c.CallFor(ctx, &tx, "gettransaction", txid); err != nil {
		var rerr *rpc.Error
		if errors.As(err, &rerr) && rerr.Kind == rpc.KindInvalidAddressOrKey {
			return tx, fmt.Errorf("gettransaction %s: %w: %s (%d)", txid, ErrNotFound, rerr.Message, rerr.Code)
		}
		return tx, fmt.Errorf("gettransaction %s: %w", txid, err)
	}
	return tx, nil
}

// SendMany submits an asynchronous send and returns its operation id.
func (w *Wallet) SendMany(ctx context.Context, from string, amounts []SendAmount, minconf int, fee structs.Amount) (opid structs.OperationID, err error) {
	if err := w.c.CallFor(ctx, &opid, "z_sendmany", from, amounts, minconf, fee); err != nil {
		return "", fmt.Errorf("z_sendmany: %w", err)
	}
	w.l.With(opid).WithField("from", from).Debug("send submitted")
	return opid, nil
}

// GetOperationStatus leaves the operations in node memory.
func (w *Wallet) GetOperationStatus(ctx context.Context, ids []structs.OperationID) (statuses []structs.OperationStatus, err error) {
	if err := w.c.CallFor(ctx, &statuses, "z_getoperationstatus", ids); err != nil {
		return nil, fmt.Errorf("z_getoperationstatus: %w", err)
	}
	return statuses, nil
}

// GetOperationResult returns finished operations and removes them from node
// memory; a second call for the same id returns nothing.
func (w *Wallet) GetOperationResult(ctx context.Context, ids []structs.OperationID) (results []structs.OperationStatus, err error) {
	if err := w.c.CallFor(ctx, &results, "z_getoperationresult", ids); err != nil {
		return nil, fmt.Errorf("z_getoperationresult: %w", err)
	}
	return results, nil
}
