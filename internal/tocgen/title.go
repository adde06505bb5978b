package tocgen

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilenameToTitle derives a human-readable page title from a file or folder
// stem: the stem is split on splitChar and each resulting word is
// title-cased, so "getting_started" becomes "Getting Started".
func FilenameToTitle(stem, splitChar string) string {
	caser := cases.Title(language.English)
	words := strings.Split(stem, splitChar)
	for i, word := range words {
		words[i] = caser.String(word)
	}
	return strings.Join(words, " ")
}
