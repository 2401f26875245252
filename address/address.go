// Fichier: address/address.go

package address

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TokenCount is the number of tokens in an address.
const TokenCount = 4

var (
	// ErrMalformedToken is returned when a token is empty or not a decimal number.
	ErrMalformedToken = errors.New("malformed token")
	// ErrTokenOutOfRange is returned when a token is a number outside [0, 255].
	ErrTokenOutOfRange = errors.New("token out of range")
	// ErrWrongTokenCount is returned when the input does not split into exactly four tokens.
	ErrWrongTokenCount = errors.New("wrong token count")
)

// Address is a validated four-token address such as 192.168.0.1.
type Address [TokenCount]uint8

// Pool is an ordered collection of addresses. Duplicates are allowed.
type Pool []Address

// ParseError describes why an input could not be tokenized.
// Err is always one of the package sentinels.
type ParseError struct {
	Input string
	// Token is the offending token; empty for ErrWrongTokenCount.
	Token string
	// Index of the offending token, or the number of tokens found for ErrWrongTokenCount.
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrWrongTokenCount) {
		return fmt.Sprintf("address %q: %v: got %d, want %d", e.Input, e.Err, e.Index, TokenCount)
	}
	return fmt.Sprintf("address %q: %v %q at position %d", e.Input, e.Err, e.Token, e.Index)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Split returns the substrings of s between every occurrence of delim.
// It always returns at least one element.
func Split(s string, delim byte) []string {
	return strings.Split(s, string(delim))
}

// Tokenize splits s on delim and validates the result as an Address.
// Signs are not digits, so "-5" and "+5" fail with ErrMalformedToken.
func Tokenize(s string, delim byte) (Address, error) {
	tokens := Split(s, delim)
	if len(tokens) != TokenCount {
		return Address{}, &ParseError{Input: s, Index: len(tokens), Err: ErrWrongTokenCount}
	}

	var a Address
	for i, tok := range tokens {
		v, err := parseToken(tok)
		if err != nil {
			return Address{}, &ParseError{Input: s, Token: tok, Index: i, Err: err}
		}
		a[i] = v
	}
	return a, nil
}

// Parse tokenizes a dot-delimited address.
func Parse(s string) (Address, error) {
	return Tokenize(s, '.')
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func parseToken(tok string) (uint8, error) {
	if tok == "" {
		return 0, ErrMalformedToken
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, ErrMalformedToken
		}
	}
	// Only digits are left, so the only possible failure is overflow.
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil || v > 255 {
		return 0, ErrTokenOutOfRange
	}
	return uint8(v), nil
}

// String renders the address as dot-joined plain decimal tokens.
func (a Address) String() string {
	var b strings.Builder
	b.Grow(15)
	for i, tok := range a {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(tok)))
	}
	return b.String()
}
