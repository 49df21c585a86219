package particle

import (
	"strings"
	"unicode/utf8"

	"kosa/internal/hangul"
)

// DictionaryForm is the bare copula, used when the caller names no verb.
const DictionaryForm = "이다"

// Vowel fusion between the copula's 이 and an exposed verb vowel: 이어
// squeezes into 여 and 이에 into 예 after an open syllable, and the inverse
// lengthening applies after a consonant.
var (
	contractNucleus = map[rune]rune{'ㅓ': 'ㅕ', 'ㅔ': 'ㅖ'}
	expandNucleus   = invert(contractNucleus)
)

func invert(src map[rune]rune) map[rune]rune {
	dst := make(map[rune]rune, len(src))
	for k, v := range src {
		dst[v] = k
	}
	return dst
}

// codaClass separates a true open syllable from a final character that
// carries no coda information at all (Latin text, digits). Only the former
// triggers vowel fusion.
type codaClass int

const (
	codaAbsent codaClass = iota
	codaPresent
	codaUnknown
)

func classifyFinal(word string) codaClass {
	coda, known := finalCoda(word)
	if !known {
		return codaUnknown
	}
	if coda == 0 {
		return codaAbsent
	}
	return codaPresent
}

// Copula is the verbal particle 이다 ("to be"). Unlike plain particles it
// fuses with the verb that follows the word, so selection takes both.
type Copula struct{}

// Fuse returns verb inflected to follow word: the 이 prefix is added,
// dropped, or parenthesized by the word's final coda, and an exposed verb
// vowel contracts or lengthens to match.
func (Copula) Fuse(word, verb string) string {
	verb = normalizeVerb(verb)
	if verb == "" {
		verb = normalizeVerb(DictionaryForm)
	}
	class := classifyFinal(StripAnnotation(word))

	first, size := utf8.DecodeRuneInString(verb)
	if onset, nucleus, coda, err := hangul.Split(first); err == nil && onset == 'ㅇ' {
		switch {
		case nucleus == 'ㅣ' && class == codaPresent:
			// Verbs like 입니다 keep their own 이 after a consonant.
			return verb
		case class == codaAbsent:
			if fused, ok := contractNucleus[nucleus]; ok {
				head, _ := hangul.Join('ㅇ', fused, coda)
				verb = string(head) + verb[size:]
			}
		case class == codaPresent:
			if spread, ok := expandNucleus[nucleus]; ok {
				head, _ := hangul.Join('ㅇ', spread, coda)
				verb = string(head) + verb[size:]
			}
		}
	}

	switch class {
	case codaAbsent:
		return verb
	case codaPresent:
		return "이" + verb
	default:
		return "(이)" + verb
	}
}

// normalizeVerb drops one leading 이 or (이) so callers may pass either the
// bare verb or a copula-prefixed one.
func normalizeVerb(verb string) string {
	if rest, ok := strings.CutPrefix(verb, "(이)"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(verb, "이"); ok {
		return rest
	}
	return verb
}
