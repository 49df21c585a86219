// Package particle chooses allomorphic forms of Korean particles (조사) based
// on the phonology of the preceding word.
package particle

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"kosa/internal/hangul"
)

// Rule identifies the allomorphy rule a particle follows.
type Rule int

const (
	// RuleRegular picks the with-coda form after any closed syllable.
	RuleRegular Rule = iota
	// RuleDirectional also treats a ㄹ coda as open. Only 으로/로 does this.
	RuleDirectional
)

// Trailing annotations like "피카츄(Lv.25)" never take part in phonology.
var endingBracket = regexp.MustCompile(`\(.*?\)$`)

// Particle is one particle family with its two allomorphic forms and the
// dictionary notation shown when the word gives no coda information.
type Particle struct {
	WithCoda    string
	WithoutCoda string
	Default     string
	Rule        Rule
}

// New builds a regular particle, deriving the dictionary notation from the
// two forms, e.g. "은(는)".
func New(withCoda, withoutCoda string) Particle {
	return Particle{
		WithCoda:    withCoda,
		WithoutCoda: withoutCoda,
		Default:     fmt.Sprintf("%s(%s)", withCoda, withoutCoda),
	}
}

// NewWithDefault builds a regular particle with an explicit dictionary
// notation, for forms like "(이)여" that the derived pattern cannot express.
func NewWithDefault(withCoda, withoutCoda, def string) Particle {
	return Particle{WithCoda: withCoda, WithoutCoda: withoutCoda, Default: def}
}

// Forms lists every representational string of the particle. The registry
// indexes all of them.
func (p Particle) Forms() []string {
	return []string{p.Default, p.WithCoda, p.WithoutCoda}
}

// Select picks the allomorph that fits after word. Words whose final
// character is not a Hangul syllable get the dictionary notation.
func (p Particle) Select(word string) string {
	coda, known := finalCoda(StripAnnotation(word))
	if !known {
		return p.Default
	}
	return p.allomorph(coda)
}

func (p Particle) allomorph(coda rune) string {
	if coda == 0 {
		return p.WithoutCoda
	}
	if p.Rule == RuleDirectional && coda == 'ㄹ' {
		return p.WithoutCoda
	}
	return p.WithCoda
}

// StripAnnotation drops one trailing parenthesized group from word.
func StripAnnotation(word string) string {
	return endingBracket.ReplaceAllString(word, "")
}

// finalCoda reports the coda of word's last syllable. known is false when
// the final character is not a precomposed Hangul syllable, so no coda
// information exists at all.
func finalCoda(word string) (coda rune, known bool) {
	if word == "" {
		return 0, false
	}
	last, _ := utf8.DecodeLastRuneInString(word)
	coda, err := hangul.PickCoda(last)
	if err != nil {
		return 0, false
	}
	return coda, true
}
