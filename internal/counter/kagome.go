package counter

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// KagomeSegmenter segments Japanese with the kagome morphological analyzer
// and the UniDic dictionary, which splits text into short lexical units.
type KagomeSegmenter struct {
	tokenizer *tokenizer.Tokenizer
}

// NewKagomeSegmenter loads the UniDic dictionary and builds a tokenizer.
func NewKagomeSegmenter() (*KagomeSegmenter, error) {
	t, err := tokenizer.New(uni.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}
	return &KagomeSegmenter{tokenizer: t}, nil
}

// Segment implements Segmenter. Tokens without a letter or digit, such as
// punctuation, are not words.
func (s *KagomeSegmenter) Segment(run string) []string {
	var words []string
	for _, token := range s.tokenizer.Tokenize(run) {
		if token.Class == tokenizer.DUMMY || !hasWordRune(token.Surface) {
			continue
		}
		words = append(words, token.Surface)
	}
	return words
}
