package filter

import "strings"

// Leading consonants (choseong) of precomposed Hangul syllables, in
// codepoint order. Index i covers syllables 0xAC00+i*588 .. +587.
var choseongJamo = []rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

const (
	hangulBase = 0xAC00
	hangulLast = 0xD7A3
	// Number of syllables sharing one leading consonant (21 vowels x 28 finals)
	syllablesPerChoseong = 588
)

func isHangulSyllable(r rune) bool {
	return r >= hangulBase && r <= hangulLast
}

func isChoseongJamo(r rune) bool {
	for _, j := range choseongJamo {
		if r == j {
			return true
		}
	}
	return false
}

// IsChoseongQuery reports whether the query consists entirely of Hangul
// leading-consonant jamo (ignoring spaces). Such queries select the
// consonant-prefix matching path instead of plain substring matching.
func IsChoseongQuery(q string) bool {
	seen := false
	for _, r := range q {
		if r == ' ' {
			continue
		}
		if !isChoseongJamo(r) {
			return false
		}
		seen = true
	}
	return seen
}

// ChoseongOf reduces a string to the leading consonants of its Hangul
// syllables. Runes that already are choseong jamo pass through;
// everything else is dropped.
func ChoseongOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case isHangulSyllable(r):
			b.WriteRune(choseongJamo[(r-hangulBase)/syllablesPerChoseong])
		case isChoseongJamo(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchesChoseong reports whether the leading consonants of name
// contain the (choseong-only) query as a substring.
func MatchesChoseong(name, query string) bool {
	q := strings.ReplaceAll(query, " ", "")
	if q == "" {
		return false
	}
	return strings.Contains(ChoseongOf(name), q)
}
