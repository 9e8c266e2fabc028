package counter

import (
	"strings"
	"unicode"
)

type charClass int

const (
	classOther charClass = iota
	classKanji
	classHiragana
	classKatakana
)

func classify(r rune) charClass {
	switch {
	case unicode.Is(unicode.Han, r), r == '々', r == '〆', r == '〇':
		return classKanji
	case unicode.Is(unicode.Hiragana, r):
		return classHiragana
	case unicode.Is(unicode.Katakana, r), r == 'ー', r == 'ｰ':
		return classKatakana
	}
	return classOther
}

// isJapanese reports whether r belongs in a Japanese run: kanji, kana, and
// the CJK symbols and punctuation block.
func isJapanese(r rune) bool {
	if classify(r) != classOther {
		return true
	}
	return (r >= 0x3000 && r <= 0x303f) || (r >= 0xff61 && r <= 0xff65)
}

type scriptRun struct {
	text     string
	japanese bool
}

// splitRuns cuts text into maximal Latin and Japanese runs, left to right.
func splitRuns(text string) []scriptRun {
	var runs []scriptRun
	start := 0
	current := false

	for i, r := range text {
		japanese := isJapanese(r)
		if i == 0 {
			current = japanese
			continue
		}
		if japanese != current {
			runs = append(runs, scriptRun{text: text[start:i], japanese: current})
			start = i
			current = japanese
		}
	}
	if start < len(text) {
		runs = append(runs, scriptRun{text: text[start:], japanese: current})
	}

	return runs
}

// countLatinWords counts whitespace-delimited tokens that carry at least one
// letter or digit; pure punctuation fragments are ignored.
func countLatinWords(text string) int {
	words := 0
	for _, token := range strings.Fields(text) {
		if hasWordRune(token) {
			words++
		}
	}
	return words
}

func hasWordRune(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	}) >= 0
}
