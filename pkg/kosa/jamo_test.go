package kosa

import "testing"

func TestIsSyllable(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"가", true},
		{"힣", true},
		{"츄", true},
		{"ㄱ", false},
		{"a", false},
		{"가나", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsSyllable(tc.in); got != tc.want {
			t.Fatalf("IsSyllable(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSplitPhonemes(t *testing.T) {
	onset, nucleus, coda, err := SplitPhonemes("한")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if onset != "ㅎ" || nucleus != "ㅏ" || coda != "ㄴ" {
		t.Fatalf("split 한 = (%q, %q, %q)", onset, nucleus, coda)
	}

	_, _, coda, err = SplitPhonemes("가")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coda != "" {
		t.Fatalf("expected empty coda for open syllable, got %q", coda)
	}
}

func TestSplitPhonemesRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "ab", "한글", "a", "ㅏ"} {
		if _, _, _, err := SplitPhonemes(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestJoinPhonemes(t *testing.T) {
	if got, err := JoinPhonemes("ㅎ", "ㅏ", "ㄴ"); err != nil || got != "한" {
		t.Fatalf("join = %q (err=%v), want 한", got, err)
	}
	if got, err := JoinPhonemes("ㄱ", "ㅏ", ""); err != nil || got != "가" {
		t.Fatalf("join = %q (err=%v), want 가", got, err)
	}
	if _, err := JoinPhonemes("ㅎ", "ㅎ", ""); err == nil {
		t.Fatalf("expected error for a consonant in the nucleus slot")
	}
}

func TestPickCodaString(t *testing.T) {
	if got, err := PickCoda("간"); err != nil || got != "ㄴ" {
		t.Fatalf("PickCoda(간) = %q (err=%v), want ㄴ", got, err)
	}
	if got, err := PickCoda("가"); err != nil || got != "" {
		t.Fatalf("PickCoda(가) = %q (err=%v), want empty", got, err)
	}
	if _, err := PickCoda("Pikachu"); err == nil {
		t.Fatalf("expected error for non-Hangul input")
	}
}
