package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/blocknative/zmsg/message"
)

var (
	rule    = strings.Repeat("=", 80)
	divider = strings.Repeat("-", 80)
)

func printInbox(w io.Writer, inbox message.Inbox) {
	for _, am := range inbox {
		fmt.Fprintf(w, "\n%s\n", rule)
		fmt.Fprintf(w, "Messages received at %s\n\n", am.Address)
		for _, msg := range am.Messages {
			fmt.Fprintf(w, "Time received: %s   Amount: %s\n", msg.Time.Format(time.ANSIC), msg.Amount)
			fmt.Fprintf(w, "Message: %s\n", msg.Text)
			fmt.Fprintln(w, divider)
		}
	}
}

func printOutcome(w io.Writer, req message.SendRequest, out message.Outcome) {
	if req.From == "" && out.Sender != "" {
		fmt.Fprintf(w, "No fromaddress provided, sending from %s\n", out.Sender)
	}

	switch out.State {
	case message.Succeeded:
		fmt.Fprintf(w, "Success, message sent! OPID: %s\n", out.OperationID)
		if txid := out.Status.TxID(); txid != "" {
			fmt.Fprintf(w, "Transaction: %s\n", txid)
		}
	case message.Failed:
		fmt.Fprintf(w, "Sending message failed. OPID: %s\n", out.OperationID)
	case message.TimedOut:
		fmt.Fprintf(w, "Sending timed out, operation result is %s\n", out.Status.Status)
	case message.Polling:
		fmt.Fprintf(w, "Stopped waiting for operation %s\n", out.OperationID)
	}
}
