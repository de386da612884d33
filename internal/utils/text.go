package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nameSeparators split a folder name into words.
const nameSeparators = "-_"

// HumanizeFolderName turns a folder name such as "snow-fall" into a label
// ("Snow Fall"): the name is split on separators and the first letter of
// every word is upper-cased. The rest of each word is kept as is.
func HumanizeFolderName(folder string) string {
	words := strings.FieldsFunc(folder, func(r rune) bool {
		return strings.ContainsRune(nameSeparators, r)
	})

	upper := cases.Upper(language.Und)
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + w[size:]
	}

	return strings.Join(words, " ")
}

// SanitizeDisplayText makes user-supplied text safe to print on a terminal:
// escape sequences are stripped and remaining control characters are
// dropped, so a name cannot move the cursor or repaint the screen.
func SanitizeDisplayText(s string) string {
	s = ansi.Strip(s)

	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
