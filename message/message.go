//go:generate mockgen  -destination=./mocks/mocks.go -package=mocks github.com/blocknative/zmsg/message Wallet
package message

import (
	"context"
	"errors"

	"github.com/blocknative/zmsg/structs"
	"github.com/blocknative/zmsg/wallet"
)

var (
	ErrNoFundsAvailable  = errors.New("no spendable transparent output covers the amount")
	ErrOperationFailed   = errors.New("send operation failed")
	ErrOperationTimedOut = errors.New("send operation timed out")
)

// Wallet is the subset of *wallet.Wallet the workflows use.
type Wallet interface {
	ListAddresses(ctx context.Context) ([]string, error)
	ListReceivedByAddress(ctx context.Context, addr string, minconf int) ([]wallet.ReceivedNote, error)
	ListUnspent(ctx context.Context, minconf, maxconf int, addrs []string) ([]wallet.Unspent, error)
	GetTransaction(ctx context.Context, txid string) (wallet.Transaction, error)
	SendMany(ctx context.Context, from string, amounts []wallet.SendAmount, minconf int, fee structs.Amount) (structs.OperationID, error)
	GetOperationStatus(ctx context.Context, ids []structs.OperationID) ([]structs.OperationStatus, error)
	GetOperationResult(ctx context.Context, ids []structs.OperationID) ([]structs.OperationStatus, error)
}
