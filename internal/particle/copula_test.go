package particle

import "testing"

func TestFuseBareCopula(t *testing.T) {
	var ida Copula
	cases := []struct {
		word string
		verb string
		want string
	}{
		{"피카츄", "이다", "다"},
		{"사과", "이다", "다"},
		{"버터플", "이다", "이다"},
		{"반달곰", "이다", "이다"},
		{"민주공화국", "다", "이다"},
		{"Pikachu", "이다", "(이)다"},
	}
	for _, tc := range cases {
		if got := ida.Fuse(tc.word, tc.verb); got != tc.want {
			t.Fatalf("fuse(%q, %q) = %q, want %q", tc.word, tc.verb, got, tc.want)
		}
	}
}

func TestFuseNormalizesVerbPrefix(t *testing.T) {
	var ida Copula
	// 이다, (이)다, and 다 all mean the same verb.
	for _, verb := range []string{"이다", "(이)다", "다"} {
		if got := ida.Fuse("반달곰", verb); got != "이다" {
			t.Fatalf("fuse(반달곰, %q) = %q, want 이다", verb, got)
		}
		if got := ida.Fuse("피카츄", verb); got != "다" {
			t.Fatalf("fuse(피카츄, %q) = %q, want 다", verb, got)
		}
	}
}

func TestFuseEmptyVerbMeansDictionaryForm(t *testing.T) {
	var ida Copula
	if got := ida.Fuse("피카츄", ""); got != "다" {
		t.Fatalf("expected bare copula 다, got %q", got)
	}
	if got := ida.Fuse("반달곰", ""); got != "이다" {
		t.Fatalf("expected bare copula 이다, got %q", got)
	}
}

func TestFuseVowelContraction(t *testing.T) {
	var ida Copula
	cases := []struct {
		word string
		verb string
		want string
	}{
		// 이어/이에 squeeze into 여/예 after an open syllable.
		{"피카츄", "이에요", "예요"},
		{"사과", "이에요", "예요"},
		{"피카츄", "이어서", "여서"},
		// The inverse lengthening after a consonant.
		{"버터플", "예요", "이에요"},
		{"반달곰", "여서", "이어서"},
		// No coda information, no fusion either way.
		{"Pikachu", "이에요", "(이)에요"},
	}
	for _, tc := range cases {
		if got := ida.Fuse(tc.word, tc.verb); got != tc.want {
			t.Fatalf("fuse(%q, %q) = %q, want %q", tc.word, tc.verb, got, tc.want)
		}
	}
}

func TestFuseKeepsIVowelVerbsAfterConsonant(t *testing.T) {
	var ida Copula
	cases := []struct {
		word string
		verb string
		want string
	}{
		{"버터플", "입니다", "입니다"},
		{"반달곰", "있다", "있다"},
		{"피카츄", "입니다", "입니다"},
	}
	for _, tc := range cases {
		if got := ida.Fuse(tc.word, tc.verb); got != tc.want {
			t.Fatalf("fuse(%q, %q) = %q, want %q", tc.word, tc.verb, got, tc.want)
		}
	}
}

func TestFuseStripsWordAnnotation(t *testing.T) {
	var ida Copula
	if got := ida.Fuse("피카츄(Lv.25)", "이다"); got != "다" {
		t.Fatalf("expected annotation to be ignored, got %q", got)
	}
	if got := ida.Fuse("반달곰(아기)", "이다"); got != "이다" {
		t.Fatalf("expected annotation to be ignored, got %q", got)
	}
}

func TestFuseLeavesConsonantOnsetVerbsAlone(t *testing.T) {
	var ida Copula
	if got := ida.Fuse("피카츄", "까지다"); got != "까지다" {
		t.Fatalf("expected verb unchanged after open syllable, got %q", got)
	}
	if got := ida.Fuse("반달곰", "까지다"); got != "이까지다" {
		t.Fatalf("expected only the 이 prefix, got %q", got)
	}
}
