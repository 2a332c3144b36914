package filter

import "testing"

func TestIsChoseongQuery(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"ㄱㄷ", true},
		{"ㄱ ㄷ", true},
		{"건담", false},
		{"ㄱd", false},
		{"rx78", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		if got := IsChoseongQuery(tt.query); got != tt.want {
			t.Errorf("IsChoseongQuery(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestChoseongOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"건담", "ㄱㄷ"},
		{"퍼스트 건담", "ㅍㅅㅌㄱㄷ"},
		{"RX-78 건담", "ㄱㄷ"},
		{"ㄱㄷ", "ㄱㄷ"},
		{"gundam", ""},
	}

	for _, tt := range tests {
		if got := ChoseongOf(tt.in); got != tt.want {
			t.Errorf("ChoseongOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchesChoseong(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"건담 리바이브", "ㄱㄷ", true},
		{"건담 리바이브", "ㄹㅂㅇㅂ", true},
		{"건담 리바이브", "ㅈㅋ", false},
		{"자쿠", "ㅈㅋ", true},
		{"자쿠", "", false},
	}

	for _, tt := range tests {
		if got := MatchesChoseong(tt.name, tt.query); got != tt.want {
			t.Errorf("MatchesChoseong(%q, %q) = %v, want %v", tt.name, tt.query, got, tt.want)
		}
	}
}
