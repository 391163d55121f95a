package message

import (
	"context"
	"fmt"
	"time"

	"github.com/blocknative/zmsg/memo"
	"github.com/blocknative/zmsg/structs"
	"github.com/blocknative/zmsg/wallet"
	"github.com/lthibault/log"
)

const (
	DefaultPollInterval = time.Second
	DefaultTimeout      = 120 * time.Second
)

type State uint8

const (
	SelectingSender State = iota
	Submitting
	Polling
	Succeeded
	Failed
	TimedOut
)

var stateNames = [...]string{
	SelectingSender: "selecting_sender",
	Submitting:      "submitting",
	Polling:         "polling",
	Succeeded:       "succeeded",
	Failed:          "failed",
	TimedOut:        "timed_out",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// SendRequest is sent as given; a zero Amount sends a bare memo.
type SendRequest struct {
	// From is optional; an empty sender picks a funded transparent address.
	From   string
	To     string
	Amount structs.Amount
	Text   string
}

func (r SendRequest) Loggable() map[string]any {
	return map[string]any{
		"from":   r.From,
		"to":     r.To,
		"amount": r.Amount.String(),
	}
}

// Outcome is where a send stopped. Status is the last status observed, or the
// operation result when the send timed out.
type Outcome struct {
	State       State
	OperationID structs.OperationID
	Sender      string
	Status      structs.OperationStatus
}

type SenderConfig struct {
	PollInterval time.Duration
	Timeout      time.Duration
	MinConf      int
	Fee          structs.Amount
}

func DefaultSenderConfig() SenderConfig {
	return SenderConfig{
		PollInterval: DefaultPollInterval,
		Timeout:      DefaultTimeout,
		MinConf:      wallet.DefaultSendMinConf,
		Fee:          structs.DefaultFee,
	}
}

type Sender struct {
	w   Wallet
	l   log.Logger
	cfg SenderConfig
	m   SenderMetrics

	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

func NewSender(w Wallet, l log.Logger, cfg SenderConfig) *Sender {
	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if l == nil {
		l = log.New()
	}

	s := &Sender{
		w:     w,
		cfg:   cfg,
		now:   time.Now,
		sleep: sleepContext,
		l: l.With(log.F{
			"service":      "sender",
			"pollInterval": cfg.PollInterval,
			"timeout":      cfg.Timeout,
		}),
	}
	s.initMetrics()
	return s
}

// Send selects a sender when none is given, submits the message and tracks the
// operation until it ends. A failed operation returns ErrOperationFailed, a
// timed out one ErrOperationTimedOut; the outcome is filled in either way.
func (s *Sender) Send(ctx context.Context, req SendRequest) (out Outcome, err error) {
	defer func() {
		s.m.Sends.WithLabelValues(out.State.String()).Inc()
	}()

	out.State = SelectingSender
	out.Sender = req.From
	if out.Sender == "" {
		if out.Sender, err = s.SelectSender(ctx, req.Amount); err != nil {
			return out, err
		}
	}

	logger := s.l.With(req).WithField("sender", out.Sender)

	out.State = Submitting
	amount := wallet.SendAmount{
		Address: req.To,
		Amount:  req.Amount,
	}
	if req.Text != "" {
		if amount.Memo, err = memo.Encode(req.Text); err != nil {
			return out, fmt.Errorf("encode memo: %w", err)
		}
	}

	out.OperationID, err = s.w.SendMany(ctx, out.Sender, []wallet.SendAmount{amount}, s.cfg.MinConf, s.cfg.Fee)
	if err != nil {
		return out, err
	}
	logger.With(out.OperationID).Debug("message submitted")

	out.State = Polling
	return s.track(ctx, out, s.now())
}

// Track polls an already submitted operation until it ends.
func (s *Sender) Track(ctx context.Context, opid structs.OperationID) (Outcome, error) {
	return s.track(ctx, Outcome{State: Polling, OperationID: opid}, s.now())
}

// SelectSender returns the address of the first spendable unspent output, in
// the order the node lists them, holding more than amount.
func (s *Sender) SelectSender(ctx context.Context, amount structs.Amount) (string, error) {
	unspent, err := s.w.ListUnspent(ctx, wallet.DefaultUnspentMinConf, wallet.DefaultUnspentMaxConf, nil)
	if err != nil {
		return "", err
	}

	for _, u := range unspent {
		if u.Spendable && u.Amount.GT(amount) {
			s.l.With(log.F{
				"address": u.Address,
				"amount":  u.Amount.String(),
			}).Debug("sender selected")
			return u.Address, nil
		}
	}
	return "", fmt.Errorf("%w: need more than %s", ErrNoFundsAvailable, amount)
}

func (s *Sender) track(ctx context.Context, out Outcome, submitted time.Time) (Outcome, error) {
	logger := s.l.With(out.OperationID)
	ids := []structs.OperationID{out.OperationID}

	for {
		statuses, err := s.w.GetOperationStatus(ctx, ids)
		if err != nil {
			return out, err
		}
		out.Status = structs.OperationStatus{ID: out.OperationID}
		if len(statuses) > 0 {
			out.Status = statuses[0]
		}
		logger.With(out.Status).Trace("operation polled")

		switch out.Status.Status {
		case structs.OperationSuccess:
			out.State = Succeeded
			logger.WithField("txid", out.Status.TxID()).Debug("message sent")
			return out, nil

		case structs.OperationFailed:
			out.State = Failed
			if out.Status.Error != nil {
				return out, fmt.Errorf("%w: %s: %w", ErrOperationFailed, out.OperationID, out.Status.Error)
			}
			return out, fmt.Errorf("%w: %s", ErrOperationFailed, out.OperationID)

		case structs.OperationExecuting:

		default:
			if s.now().Sub(submitted) > s.cfg.Timeout {
				return s.expire(ctx, out)
			}
		}

		if err := s.sleep(ctx, s.cfg.PollInterval); err != nil {
			logger.WithError(err).Warn("stopped tracking operation")
			return out, err
		}
	}
}

// expire drains the operation result from node memory. The node forgets the
// operation afterwards, so this is called at most once per operation.
func (s *Sender) expire(ctx context.Context, out Outcome) (Outcome, error) {
	results, err := s.w.GetOperationResult(ctx, []structs.OperationID{out.OperationID})
	if err != nil {
		return out, err
	}
	if len(results) > 0 {
		out.Status = results[0]
	}
	out.State = TimedOut

	s.l.With(out.Status).Warnf("operation still unresolved after %s", s.cfg.Timeout)
	return out, fmt.Errorf("%w: %s: last status %q", ErrOperationTimedOut, out.OperationID, out.Status.Status)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
