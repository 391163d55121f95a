package message

import (
	"context"
	"fmt"
	"time"

	"github.com/blocknative/zmsg/memo"
	"github.com/blocknative/zmsg/structs"
	"github.com/lthibault/log"
)

type ReceivedMessage struct {
	Address string
	TxID    string
	Amount  structs.Amount
	Time    time.Time
	Text    string
}

func (rm ReceivedMessage) Loggable() map[string]any {
	return map[string]any{
		"address": rm.Address,
		"txid":    rm.TxID,
		"amount":  rm.Amount.String(),
	}
}

// AddressMessages holds the messages received at one shielded address, in
// the order the node lists them.
type AddressMessages struct {
	Address  string
	Messages []ReceivedMessage
}

// Inbox follows the order of z_listaddresses. Addresses without messages are
// kept with an empty list.
type Inbox []AddressMessages

func (in Inbox) Count() (n int) {
	for _, am := range in {
		n += len(am.Messages)
	}
	return n
}

type Receiver struct {
	w Wallet
	l log.Logger
}

func NewReceiver(w Wallet, l log.Logger) *Receiver {
	if l == nil {
		l = log.New()
	}
	return &Receiver{w: w, l: l.WithField("service", "receiver")}
}

// Check rescans every shielded address of the wallet.
func (r *Receiver) Check(ctx context.Context, minconf int) (Inbox, error) {
	addrs, err := r.w.ListAddresses(ctx)
	if err != nil {
		return nil, err
	}

	inbox := make(Inbox, 0, len(addrs))
	for _, addr := range addrs {
		msgs, err := r.ReceivedBy(ctx, addr, minconf)
		if err != nil {
			return nil, err
		}
		inbox = append(inbox, AddressMessages{Address: addr, Messages: msgs})
	}

	r.l.With(log.F{
		"addresses": len(inbox),
		"messages":  inbox.Count(),
		"minconf":   minconf,
	}).Debug("inbox checked")
	return inbox, nil
}

// ReceivedBy returns the messages received at addr. Notes without a memo are
// skipped; the rest are dated with their transaction time.
func (r *Receiver) ReceivedBy(ctx context.Context, addr string, minconf int) ([]ReceivedMessage, error) {
	notes, err := r.w.ListReceivedByAddress(ctx, addr, minconf)
	if err != nil {
		return nil, err
	}

	msgs := []ReceivedMessage{}
	for _, n := range notes {
		text, ok, err := memo.Decode(n.Memo)
		if err != nil {
			return nil, fmt.Errorf("note %s at %s: %w", n.TxID, addr, err)
		}
		if !ok {
			r.l.With(n).Trace("note without memo")
			continue
		}

		tx, err := r.w.GetTransaction(ctx, n.TxID)
		if err != nil {
			return nil, err
		}

		msgs = append(msgs, ReceivedMessage{
			Address: addr,
			TxID:    n.TxID,
			Amount:  n.Amount,
			Time:    time.Unix(tx.Time, 0),
			Text:    text,
		})
	}
	return msgs, nil
}
