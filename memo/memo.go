// Package memo converts text to and from the hex memo field of shielded
// outputs.
package memo

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/blocknative/zmsg/structs"
)

// Empty is what an output without a memo decodes to once the node's zero
// padding is stripped.
const Empty = "f6"

var (
	ErrNotASCII = errors.New("memo is not ascii")
	ErrTooLong  = errors.New("memo exceeds field size")
	ErrDecode   = errors.New("malformed memo")
)

// Encode returns the hex form of an ASCII message. Padding to the field size
// is left to the node.
func Encode(text string) (string, error) {
	if len(text) > structs.MemoSize {
		return "", fmt.Errorf("%w: %d bytes, max %d", ErrTooLong, len(text), structs.MemoSize)
	}
	for i := 0; i < len(text); i++ {
		if text[i] > 0x7f {
			return "", fmt.Errorf("%w: byte 0x%02x at %d", ErrNotASCII, text[i], i)
		}
	}
	return hex.EncodeToString([]byte(text)), nil
}

// Decode turns a received memo back into text. ok is false when the memo is
// the empty sentinel.
func Decode(memo string) (text string, ok bool, err error) {
	stripped := strings.TrimRight(memo, "0")
	if stripped == Empty {
		return "", false, nil
	}

	// a message whose last byte ends in a zero nibble loses it to the strip:
	// "p" encodes as "70" and reaches us as "7" once the padding is gone
	if len(stripped)%2 == 1 && len(stripped) < len(memo) {
		stripped += "0"
	}

	b, err := hex.DecodeString(stripped)
	if err != nil {
		return "", false, fmt.Errorf("%w: %s", ErrDecode, err.Error())
	}
	for i, c := range b {
		if c > 0x7f {
			return "", false, fmt.Errorf("%w: %v: byte 0x%02x at %d", ErrDecode, ErrNotASCII, c, i)
		}
	}
	return string(b), true, nil
}
