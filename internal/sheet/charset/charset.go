// Package charset draws password-sheet characters from a restricted alphabet.
//
// The alphabet is split into three categories, lowercase, uppercase and
// digits, each with visually ambiguous glyphs (l, 1, I, O, 0, o) removed.
// A Sampler first picks a category by weight and then a character within it,
// reading all randomness from a cryptographically secure source.
package charset

import (
	"fmt"
	"io"
	"strings"

	apperrors "github.com/louisbranch/password-sheet/internal/platform/errors"
	"github.com/louisbranch/password-sheet/internal/random"
)

// Category identifies one partition of the alphabet.
type Category int

// Categories in selection order.
const (
	Lowercase Category = iota
	Uppercase
	Digit
)

// Categories lists every category in the order the weight walk visits them.
var Categories = [...]Category{Lowercase, Uppercase, Digit}

const (
	lowercase = "abcdefghijkmnpqrstuvwxyz"
	uppercase = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digits    = "23456789"

	// Ambiguous lists glyphs excluded from every category.
	Ambiguous = "l1IO0o"
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digit:
		return "digit"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Characters returns the characters available in the category.
func (c Category) Characters() string {
	switch c {
	case Lowercase:
		return lowercase
	case Uppercase:
		return uppercase
	case Digit:
		return digits
	default:
		return ""
	}
}

// Alphabet returns the union of every category.
func Alphabet() string {
	return lowercase + uppercase + digits
}

// CategoryOf reports the category containing ch.
func CategoryOf(ch byte) (Category, bool) {
	for _, c := range Categories {
		if strings.IndexByte(c.Characters(), ch) >= 0 {
			return c, true
		}
	}
	return 0, false
}

// Weights holds the relative selection weight per category.
type Weights struct {
	Lowercase int
	Uppercase int
	Digit     int
}

// DefaultWeights balances letters and digits at 40:40:20.
func DefaultWeights() Weights {
	return Weights{Lowercase: 40, Uppercase: 40, Digit: 20}
}

// For returns the weight assigned to c.
func (w Weights) For(c Category) int {
	switch c {
	case Lowercase:
		return w.Lowercase
	case Uppercase:
		return w.Uppercase
	case Digit:
		return w.Digit
	default:
		return 0
	}
}

// Total returns the sum of all weights.
func (w Weights) Total() int {
	return w.Lowercase + w.Uppercase + w.Digit
}

// Validate checks the weights are non-negative with a positive total.
func (w Weights) Validate() error {
	for _, c := range Categories {
		if w.For(c) < 0 {
			return apperrors.WithMetadata(apperrors.CodeSheetWeightsInvalid,
				fmt.Sprintf("%s weight must not be negative", c),
				map[string]string{"category": c.String()})
		}
	}
	if w.Total() <= 0 {
		return apperrors.New(apperrors.CodeSheetWeightsInvalid, "weights must sum to a positive total")
	}
	return nil
}

// Sampler produces single characters honoring category weights.
//
// A Sampler holds no mutable state; it is safe for concurrent use whenever
// its source is, which crypto/rand.Reader is.
type Sampler struct {
	weights Weights
	total   int
	source  io.Reader
}

// NewSampler builds a sampler over source. A nil source uses crypto/rand.
func NewSampler(weights Weights, source io.Reader) (*Sampler, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Sampler{
		weights: weights,
		total:   weights.Total(),
		source:  source,
	}, nil
}

// Next draws one character.
//
// A failing source is an environment failure and is returned as
// SHEET_ENTROPY_UNAVAILABLE; there is no fallback to a weaker generator.
func (s *Sampler) Next() (byte, error) {
	r, err := random.IntN(s.source, s.total)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeSheetEntropyUnavailable, "draw category", err)
	}

	chars := s.pick(r).Characters()
	i, err := random.IntN(s.source, len(chars))
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeSheetEntropyUnavailable, "draw character", err)
	}
	return chars[i], nil
}

// pick walks the cumulative weights and returns the first category whose
// running total exceeds r.
func (s *Sampler) pick(r int) Category {
	cumulative := 0
	for _, c := range Categories {
		cumulative += s.weights.For(c)
		if r < cumulative {
			return c
		}
	}
	// Unreachable while r < total.
	return Categories[len(Categories)-1]
}
