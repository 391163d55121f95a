package structs

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"cosmossdk.io/math"
)

var ErrInvalidAmount = errors.New("invalid amount")

var precisionMultiplier = new(big.Int).Exp(big.NewInt(10), big.NewInt(math.LegacyPrecision), nil)

// Amount is an exact decimal ZEC value. It is encoded as a bare JSON number
// and never passes through float64.
type Amount struct {
	d math.LegacyDec
}

func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "eE") {
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		scaled := new(big.Rat).Mul(r, new(big.Rat).SetInt(precisionMultiplier))
		if !scaled.IsInt() {
			return Amount{}, fmt.Errorf("%w: %q: more than %d decimal places", ErrInvalidAmount, s, math.LegacyPrecision)
		}
		s = r.FloatString(math.LegacyPrecision)
	}

	d, err := math.LegacyNewDecFromStr(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q: %s", ErrInvalidAmount, s, err.Error())
	}
	return Amount{d: d}, nil
}

// MustAmount is ParseAmount for constants.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) dec() math.LegacyDec {
	if a.d.IsNil() {
		return math.LegacyZeroDec()
	}
	return a.d
}

func (a Amount) GT(b Amount) bool {
	return a.dec().GT(b.dec())
}

func (a Amount) Equal(b Amount) bool {
	return a.dec().Equal(b.dec())
}

func (a Amount) IsZero() bool {
	return a.dec().IsZero()
}

// String prints the amount without trailing zeros, "0.00012345" rather than
// "0.000123450000000000".
func (a Amount) String() string {
	s := a.dec().String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "" || s == "-0" {
		return "0"
	}
	return s
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = Amount{}
		return nil
	}

	parsed, err := ParseAmount(string(bytes.Trim(b, `"`)))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a *Amount) Set(value string) error {
	parsed, err := ParseAmount(value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
