// Package certificate generates certificate codes and verifies them
// against the stored result.
package certificate

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// Prefix starts every certificate code.
	Prefix = "AIQ-"

	// Alphabet is the character set of the random suffix.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	suffixLen = 8
	codeLen   = len(Prefix) + suffixLen
)

var wellFormed = regexp.MustCompile(`^AIQ-[A-Z0-9]{8}$`)

// Generator produces certificate codes. Codes are not cryptographically
// random and uniqueness is not checked.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from src, or from the global
// source when src is nil.
func NewGenerator(src rand.Source) *Generator {
	g := &Generator{}
	if src != nil {
		g.rng = rand.New(src)
	}
	return g
}

// Code returns a new code of the form AIQ-XXXXXXXX.
func (g *Generator) Code() string {
	var b strings.Builder
	b.Grow(codeLen)
	b.WriteString(Prefix)
	for range suffixLen {
		b.WriteByte(Alphabet[g.intN(len(Alphabet))])
	}
	return b.String()
}

func (g *Generator) intN(n int) int {
	if g == nil || g.rng == nil {
		return rand.IntN(n)
	}
	return g.rng.IntN(n)
}

// HasShape reports whether code starts with the prefix and is exactly
// eleven characters long. This is the check verification applies.
func HasShape(code string) bool {
	return strings.HasPrefix(code, Prefix) && utf8.RuneCountInString(code) == codeLen
}

// IsWellFormed reports whether code matches the generated layout exactly.
func IsWellFormed(code string) bool {
	return wellFormed.MatchString(code)
}

// Normalize trims surrounding whitespace and uppercases code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
