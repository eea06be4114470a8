package club

import "testing"

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"  Beşiktaş J.K. ":       "Besiktas JK",
		"Fenerbahçe":             "Fenerbahce",
		"Arsenal F.C.":           "Arsenal",
		"AFC Bournemouth":        "AFC Bournemouth",
		"Bournemouth A.F.C.":     "Bournemouth",
		"Sevilla  CF":            "Sevilla",
		"Sporting S.C.":          "Sporting",
		"Nottingham Forest":      "Nottingham Forest",
		"Brighton & Hove fc":     "Brighton & Hove",
		"Queen's Park":           "Queens Park",
		"FC":                     "FC",
		"":                       "",
		"Göztepe   Spor  Kulübü": "Goztepe Spor Kulubu",
	}

	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Fatalf("NormalizeName(%q): got=%q want=%q", in, got, want)
		}
	}
}
