package hangul

import "fmt"

// Precomposed Hangul syllable block, "가" through "힣".
const (
	firstSyllable = 0xAC00
	lastSyllable  = 0xD7A3
)

// Phoneme tables. The lengths (19, 21, 28) are fixed constants of the Korean
// writing system; rune 0 in the coda table stands for an open syllable.
var (
	onsets = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	nuclei = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	codas  = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

const (
	onsetCount   = 19
	nucleusCount = 21
	codaCount    = 28
)

var (
	onsetIndex   = buildIndex(onsets)
	nucleusIndex = buildIndex(nuclei)
	codaIndex    = buildIndex(codas)
)

func buildIndex(list []rune) map[rune]int {
	idx := make(map[rune]int, len(list))
	for i, ch := range list {
		idx[ch] = i
	}
	return idx
}

// InvalidInputError reports an argument that is not a Hangul syllable or a
// known phoneme symbol.
type InvalidInputError struct {
	Input string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("not a Hangul syllable: %q", e.Input)
}

// IsSyllable reports whether r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= firstSyllable && r <= lastSyllable
}

// Split decomposes a Hangul syllable into its onset, nucleus, and coda
// phonemes. A coda of 0 means the syllable is open.
func Split(r rune) (onset, nucleus, coda rune, err error) {
	if !IsSyllable(r) {
		return 0, 0, 0, InvalidInputError{Input: string(r)}
	}
	offset := int(r) - firstSyllable
	onset = onsets[offset/(nucleusCount*codaCount)]
	nucleus = nuclei[(offset/codaCount)%nucleusCount]
	coda = codas[offset%codaCount]
	return onset, nucleus, coda, nil
}

// Join composes a Hangul syllable from its phonemes, the exact inverse of
// Split. Pass coda 0 for an open syllable.
func Join(onset, nucleus, coda rune) (rune, error) {
	oi, ok := onsetIndex[onset]
	if !ok {
		return 0, InvalidInputError{Input: string(onset)}
	}
	ni, ok := nucleusIndex[nucleus]
	if !ok {
		return 0, InvalidInputError{Input: string(nucleus)}
	}
	ci, ok := codaIndex[coda]
	if !ok {
		return 0, InvalidInputError{Input: string(coda)}
	}
	return rune(firstSyllable + (oi*nucleusCount+ni)*codaCount + ci), nil
}

// PickCoda returns only the coda phoneme of a Hangul syllable, 0 when the
// syllable is open.
func PickCoda(r rune) (rune, error) {
	_, _, coda, err := Split(r)
	return coda, err
}
