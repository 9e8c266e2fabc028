// Package counter counts words and characters in text that may mix Latin and
// Japanese script.
//
// Characters are Unicode code points. Words are counted per script run:
// Latin runs by whitespace-delimited tokens that contain a letter or digit,
// Japanese runs by the words a Segmenter finds in them.
//
//	c := counter.Count("日本語のテスト")
//	// c.Words == 4, c.Chars == 7
package counter

import (
	"fmt"
	"unicode/utf8"
)

// Counts holds the result of counting a text.
type Counts struct {
	Words int `json:"words" yaml:"words"`
	Chars int `json:"chars" yaml:"chars"`
}

// Add returns the sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Words: c.Words + o.Words,
		Chars: c.Chars + o.Chars,
	}
}

func (c Counts) String() string {
	return fmt.Sprintf("%d words %d characters", c.Words, c.Chars)
}

// Counter counts words and characters using a configurable Japanese
// segmenter. A Counter holds no per-call state and may be reused.
type Counter struct {
	segmenter Segmenter
}

// Option configures a Counter.
type Option func(*Counter)

// WithSegmenter sets the segmenter used for Japanese runs.
func WithSegmenter(s Segmenter) Option {
	return func(c *Counter) {
		c.segmenter = s
	}
}

// New creates a Counter. Without options it uses the LexiconSegmenter.
func New(opts ...Option) *Counter {
	c := &Counter{
		segmenter: LexiconSegmenter{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Count counts the words and characters in text.
func (c *Counter) Count(text string) Counts {
	counts := Counts{
		Chars: utf8.RuneCountInString(text),
	}

	for _, r := range splitRuns(text) {
		if r.japanese {
			counts.Words += len(c.segmenter.Segment(r.text))
		} else {
			counts.Words += countLatinWords(r.text)
		}
	}

	return counts
}

// CountBytes decodes b with the named encoding (see Decode) and counts the
// result.
func (c *Counter) CountBytes(b []byte, encoding string) (Counts, error) {
	text, err := Decode(b, encoding)
	if err != nil {
		return Counts{}, err
	}
	return c.Count(text), nil
}

var defaultCounter = New()

// Count counts text with the default Counter.
func Count(text string) Counts {
	return defaultCounter.Count(text)
}

// CountBytes counts b with the default Counter.
func CountBytes(b []byte, encoding string) (Counts, error) {
	return defaultCounter.CountBytes(b, encoding)
}
