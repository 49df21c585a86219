package kosa

import (
	"unicode/utf8"

	"kosa/internal/hangul"
)

// IsSyllable reports whether s is a single precomposed Hangul syllable.
func IsSyllable(s string) bool {
	r, ok := singleRune(s)
	return ok && hangul.IsSyllable(r)
}

// SplitPhonemes decomposes a single Hangul syllable into its onset, nucleus,
// and coda. An open syllable yields an empty coda.
func SplitPhonemes(s string) (onset, nucleus, coda string, err error) {
	r, ok := singleRune(s)
	if !ok {
		return "", "", "", hangul.InvalidInputError{Input: s}
	}
	o, n, c, err := hangul.Split(r)
	if err != nil {
		return "", "", "", err
	}
	if c != 0 {
		coda = string(c)
	}
	return string(o), string(n), coda, nil
}

// JoinPhonemes composes a Hangul syllable from phoneme symbols, the exact
// inverse of SplitPhonemes. Pass an empty coda for an open syllable.
func JoinPhonemes(onset, nucleus, coda string) (string, error) {
	o, ok := singleRune(onset)
	if !ok {
		return "", hangul.InvalidInputError{Input: onset}
	}
	n, ok := singleRune(nucleus)
	if !ok {
		return "", hangul.InvalidInputError{Input: nucleus}
	}
	var c rune
	if coda != "" {
		c, ok = singleRune(coda)
		if !ok {
			return "", hangul.InvalidInputError{Input: coda}
		}
	}
	r, err := hangul.Join(o, n, c)
	if err != nil {
		return "", err
	}
	return string(r), nil
}

// PickCoda returns the coda of a single Hangul syllable, empty when the
// syllable is open.
func PickCoda(s string) (string, error) {
	r, ok := singleRune(s)
	if !ok {
		return "", hangul.InvalidInputError{Input: s}
	}
	c, err := hangul.PickCoda(r)
	if err != nil {
		return "", err
	}
	if c == 0 {
		return "", nil
	}
	return string(c), nil
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError && size == 1 {
		return 0, false
	}
	return r, true
}
