package valueobjects

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCPFRequired = errors.New("cpf is required")
	ErrCPFInvalid  = errors.New("invalid cpf")
)

// CPF is the client identity number, kept in its canonical digits-only form.
//
// Any CPF that exists was validated by NewCPF: the zero value is never handed
// out by this package.
type CPF struct {
	digits string
}

// NewCPF strips formatting punctuation and validates the resulting digit
// string (length, repeated digits and both mod-11 check digits).
func NewCPF(raw string) (CPF, error) {
	if strings.TrimSpace(raw) == "" {
		return CPF{}, ErrCPFRequired
	}

	digits := cleanCPF(raw)
	if !validCPF(digits) {
		return CPF{}, ErrCPFInvalid
	}
	return CPF{digits: digits}, nil
}

func cleanCPF(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func validCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}

	allEqual := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	if checkDigit(cpf, 9, 10) != int(cpf[9]-'0') {
		return false
	}
	return checkDigit(cpf, 10, 11) == int(cpf[10]-'0')
}

// checkDigit computes a CPF verification digit over cpf[0:n] with weights
// descending from firstWeight. remainder < 2 maps to 0, else 11-remainder.
func checkDigit(cpf string, n, firstWeight int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(cpf[i]-'0') * (firstWeight - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

// String returns the canonical digits-only form.
func (c CPF) String() string {
	return c.digits
}

// Formatted renders the CPF as ###.###.###-##.
func (c CPF) Formatted() string {
	return fmt.Sprintf("%s.%s.%s-%s", c.digits[0:3], c.digits[3:6], c.digits[6:9], c.digits[9:11])
}

func (c CPF) Equals(other CPF) bool {
	return c.digits == other.digits
}
