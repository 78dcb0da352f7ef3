// Package arabic provides text normalization and approximate matching
// primitives for Arabic learner input.
package arabic

import (
	"strings"
	"unicode"
)

// Options controls normalization behavior.
type Options struct {
	// KeepAl disables stripping of the leading definite article "ال"
	// from each word. Stripping is on by default because learners
	// frequently drop or add the article without changing meaning.
	KeepAl bool
}

// letterFolds maps Arabic letter variants to a canonical form.
// Hamza carriers collapse to the bare letter so that spelling
// variations like أحمد/احمد compare equal.
var letterFolds = map[rune]rune{
	'أ': 'ا', // alef with hamza above
	'إ': 'ا', // alef with hamza below
	'آ': 'ا', // alef with madda
	'ٱ': 'ا', // alef wasla
	'ة': 'ه', // teh marbuta
	'ى': 'ي', // alef maksura
	'ؤ': 'و', // waw with hamza
	'ئ': 'ي', // yeh with hamza
}

// digitFolds maps Arabic-indic (٠-٩) and extended Arabic-indic (۰-۹)
// digits to their ASCII equivalents.
var digitFolds = map[rune]rune{
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
}

// Normalize canonicalizes s for comparison: digits are folded to ASCII,
// diacritics and tatweel are removed, letter variants are folded,
// punctuation becomes whitespace, runs of whitespace collapse to a
// single space, and the result is trimmed and lowercased. Unless
// opts.KeepAl is set, a leading "ال" is stripped from every word.
func Normalize(s string, opts Options) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case isDiacritic(r):
			// drop
		case r == 'ـ': // tatweel
			// drop
		default:
			if d, ok := digitFolds[r]; ok {
				r = d
			}
			if f, ok := letterFolds[r]; ok {
				r = f
			}
			if isPunct(r) {
				r = ' '
			}
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	if !opts.KeepAl {
		for i, w := range words {
			words[i] = StripAl(w)
		}
	}
	return strings.ToLower(strings.Join(words, " "))
}

// FoldDigits converts Arabic-indic and extended Arabic-indic digits in s
// to ASCII digits, leaving everything else untouched.
func FoldDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if d, ok := digitFolds[r]; ok {
			return d
		}
		return r
	}, s)
}

// StripAl removes a leading definite article "ال" from word. Words that
// are only the article, or too short to carry one, are returned as-is.
func StripAl(word string) string {
	runes := []rune(word)
	if len(runes) > 2 && runes[0] == 'ا' && runes[1] == 'ل' {
		return string(runes[2:])
	}
	return word
}

// isDiacritic reports whether r is an Arabic tashkeel mark.
func isDiacritic(r rune) bool {
	switch {
	case r >= 0x064B && r <= 0x065F: // fathatan..wavy hamza below
		return true
	case r == 0x0670: // superscript alef
		return true
	case r >= 0x06D6 && r <= 0x06ED: // Quranic annotation marks
		return true
	}
	return false
}

// isPunct reports whether r is punctuation or a symbol in either the
// Arabic or Latin ranges.
func isPunct(r rune) bool {
	switch r {
	case '،', '؛', '؟', '«', '»':
		return true
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
