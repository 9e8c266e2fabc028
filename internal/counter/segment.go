package counter

import (
	"fmt"
	"sort"
)

// Segmenter splits a Japanese run into words.
type Segmenter interface {
	Segment(run string) []string
}

// Segmenter names accepted by NewSegmenter.
const (
	SegmenterLexicon = "lexicon"
	SegmenterKagome  = "kagome"
)

// NewSegmenter returns the segmenter registered under name. An empty name
// selects the lexicon segmenter.
func NewSegmenter(name string) (Segmenter, error) {
	switch name {
	case "", SegmenterLexicon:
		return LexiconSegmenter{}, nil
	case SegmenterKagome:
		return NewKagomeSegmenter()
	default:
		return nil, fmt.Errorf("unknown segmenter: %s", name)
	}
}

// LexiconSegmenter is a small rule-based Japanese tokenizer. Katakana runs
// are loanwords and count as one word. Kanji compounds lose known prefix and
// suffix characters, and what remains splits into two-character words.
// Hiragana is matched against a lexicon of particles and auxiliaries by
// longest match; unmatched kana directly after kanji is okurigana and stays
// with its stem. Punctuation and symbols are dropped.
type LexiconSegmenter struct{}

// kanaLexicon lists function words, longest first after init.
var kanaLexicon = []string{
	"の", "は", "が", "を", "に", "へ", "と", "で", "も", "や", "か", "ね", "よ", "わ", "ぞ",
	"から", "まで", "より", "ので", "のに", "けど", "けれど", "ても", "でも", "だけ",
	"ほど", "など", "しか", "こそ", "って", "ばかり", "くらい", "ぐらい",
	"です", "でした", "でしょう", "ます", "ました", "ません", "ましょう",
	"だ", "だった", "ない", "なかった", "た", "て", "たい", "れる", "られる", "せる", "させる",
	"する", "した", "して", "します", "しない", "いる", "いた", "いない", "います",
	"ある", "あった", "あります", "なる", "なった", "なります",
	"こと", "もの", "ところ", "とき", "よう", "そう",
	"これ", "それ", "あれ", "どれ", "この", "その", "あの", "どの", "ここ", "そこ", "あそこ", "どこ",
	"そして", "しかし", "また", "および", "または",
}

func init() {
	sort.SliceStable(kanaLexicon, func(i, j int) bool {
		return len([]rune(kanaLexicon[i])) > len([]rune(kanaLexicon[j]))
	})
}

// Characters split off kanji compounds of three or more characters.
var (
	kanjiPrefixes = setOf("各", "全", "非", "不", "無", "未", "再", "超", "新", "旧", "第")
	kanjiSuffixes = setOf(
		"語", "人", "的", "性", "化", "者", "家", "式", "型", "用", "中", "後", "前", "界",
		"県", "市", "都", "府", "区", "町", "村", "国", "学", "法", "論", "部", "課", "率",
		"様", "氏", "達", "等", "内", "外", "間", "年", "月", "日", "時", "分",
	)
)

func setOf(items ...string) map[rune]bool {
	set := make(map[rune]bool, len(items))
	for _, item := range items {
		set[[]rune(item)[0]] = true
	}
	return set
}

// Segment implements Segmenter.
func (LexiconSegmenter) Segment(run string) []string {
	var words []string
	prev := classOther

	for _, chunk := range splitClasses(run) {
		switch chunk.class {
		case classKanji:
			words = append(words, splitKanji(chunk.runes)...)
		case classKatakana:
			words = append(words, string(chunk.runes))
		case classHiragana:
			okurigana, rest := segmentKana(chunk.runes)
			if prev == classKanji && okurigana != "" && len(words) > 0 {
				words[len(words)-1] += okurigana
			} else if okurigana != "" {
				words = append(words, okurigana)
			}
			words = append(words, rest...)
		}
		prev = chunk.class
	}

	return words
}

type classChunk struct {
	class charClass
	runes []rune
}

func splitClasses(run string) []classChunk {
	var chunks []classChunk
	for _, r := range run {
		class := classify(r)
		if n := len(chunks); n > 0 && chunks[n-1].class == class {
			chunks[n-1].runes = append(chunks[n-1].runes, r)
			continue
		}
		chunks = append(chunks, classChunk{class: class, runes: []rune{r}})
	}
	return chunks
}

func splitKanji(runes []rune) []string {
	if len(runes) <= 2 {
		return []string{string(runes)}
	}
	if kanjiPrefixes[runes[0]] {
		return append([]string{string(runes[0])}, splitKanji(runes[1:])...)
	}
	if last := runes[len(runes)-1]; kanjiSuffixes[last] {
		return append(splitKanji(runes[:len(runes)-1]), string(last))
	}

	var words []string
	for i := 0; i < len(runes); i += 2 {
		end := min(i+2, len(runes))
		words = append(words, string(runes[i:end]))
	}
	return words
}

// segmentKana splits a hiragana chunk into lexicon words. Unmatched kana
// before the first lexicon word is returned separately as okurigana; later
// unmatched stretches become words of their own.
func segmentKana(runes []rune) (string, []string) {
	var (
		okurigana string
		words     []string
		pending   []rune
		matched   bool
	)

	flush := func() {
		if len(pending) == 0 {
			return
		}
		if matched {
			words = append(words, string(pending))
		} else {
			okurigana = string(pending)
		}
		pending = nil
	}

	for i := 0; i < len(runes); {
		word := longestKanaMatch(runes[i:])
		if word == "" {
			pending = append(pending, runes[i])
			i++
			continue
		}
		flush()
		matched = true
		words = append(words, word)
		i += len([]rune(word))
	}
	flush()

	return okurigana, words
}

func longestKanaMatch(runes []rune) string {
	for _, w := range kanaLexicon {
		n := len([]rune(w))
		if n <= len(runes) && string(runes[:n]) == w {
			return w
		}
	}
	return ""
}
