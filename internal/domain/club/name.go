package club

import (
	"regexp"
	"strings"

	"github.com/gosimple/unidecode"
)

var (
	namePunctuation = strings.NewReplacer(".", "", ",", "", "'", "")
	nameSpaces      = regexp.MustCompile(`\s+`)
	// Matched after punctuation is gone, so "F.C." arrives as "FC".
	corporateSuffix = regexp.MustCompile(`(?i)\s*\b(?:FC|AFC|CF|SC)$`)
)

// NormalizeName folds a club name to the form used as its identity when
// normalisation is enabled: diacritics removed, punctuation dropped, a
// trailing FC/AFC/CF/SC suffix stripped and whitespace collapsed.
// "Beşiktaş J.K." and "Besiktas JK" normalise to the same value.
func NormalizeName(name string) string {
	s := strings.TrimSpace(name)
	if s == "" {
		return ""
	}
	s = unidecode.Unidecode(s)
	s = namePunctuation.Replace(s)
	s = nameSpaces.ReplaceAllString(strings.TrimSpace(s), " ")
	if stripped := strings.TrimSpace(corporateSuffix.ReplaceAllString(s, "")); stripped != "" {
		s = stripped
	}
	return s
}
