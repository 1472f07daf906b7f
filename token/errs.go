package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated")
	ErrDocBalance   = errors.New("imbalanced document")
	ErrCharLiteral  = errors.New("bad character literal")
)

type ErrImbalancedStructure struct {
	Open, Close *Token
}

func (i *ErrImbalancedStructure) Unwrap() error {
	return ErrDocBalance
}

func (i *ErrImbalancedStructure) Error() string {
	if i.Open == nil {
		return ErrDocBalance.Error() + ": " + UnexpectedErr(string(i.Close.Bytes), i.Close.Pos).Error()
	}
	if i.Close == nil {
		return ErrDocBalance.Error() + ": " + fmt.Sprintf("unmatched %s at %s", string(i.Open.Bytes),
			i.Open.Pos.String())
	}
	return fmt.Sprintf("%s: %s at %s closed by %s at %s",
		ErrDocBalance.Error(),
		string(i.Open.Bytes), i.Open.Pos.String(),
		string(i.Close.Bytes), i.Close.Pos.String())
}

// Pos returns the position most useful for reporting: the stray or
// mismatched close bracket if there is one, otherwise the unmatched opener.
func (i *ErrImbalancedStructure) Pos() *Pos {
	if i.Close != nil {
		return i.Close.Pos
	}
	return i.Open.Pos
}
