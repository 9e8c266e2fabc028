package counter

import (
	"encoding/base64"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeChunks(t *testing.T, s *Stream, chunks ...[]byte) {
	t.Helper()
	for _, chunk := range chunks {
		n, err := s.Write(chunk)
		require.NoError(t, err)
		require.Equal(t, len(chunk), n)
	}
	require.NoError(t, s.Close())
}

func TestStream(t *testing.T) {
	t.Run("counts string chunks in stream", func(t *testing.T) {
		s := NewStream("")
		_, err := io.WriteString(s, "Hello,")
		require.NoError(t, err)
		_, err = io.WriteString(s, " world!")
		require.NoError(t, err)
		require.NoError(t, s.Close())

		assert.Equal(t, 2, s.Words())
		assert.Equal(t, 13, s.Chars())
	})

	t.Run("counts byte chunks in stream", func(t *testing.T) {
		s := NewStream("")
		writeChunks(t, s, []byte("Hello,"), []byte(" world!"))
		assert.Equal(t, Counts{Words: 2, Chars: 13}, s.Counts())
	})

	t.Run("chunks may split characters", func(t *testing.T) {
		b := []byte("日本語のテスト")
		s := NewStream("")
		writeChunks(t, s, b[:4], b[4:11], b[11:])
		assert.Equal(t, Counts{Words: 4, Chars: 7}, s.Counts())
	})

	t.Run("decodes on close", func(t *testing.T) {
		b := []byte(base64.StdEncoding.EncodeToString([]byte("Hello, world!")))
		s := New().NewStream("base64")
		writeChunks(t, s, b[:5], b[5:])
		assert.Equal(t, Counts{Words: 2, Chars: 13}, s.Counts())
	})

	t.Run("counts are zero before close", func(t *testing.T) {
		s := NewStream("")
		_, err := s.Write([]byte("Hello"))
		require.NoError(t, err)
		assert.Equal(t, Counts{}, s.Counts())
	})

	t.Run("rejects writes after close", func(t *testing.T) {
		s := NewStream("")
		writeChunks(t, s, []byte("Hello"))
		_, err := s.Write([]byte("again"))
		assert.ErrorIs(t, err, ErrStreamClosed)
		assert.NoError(t, s.Close())
		assert.Equal(t, Counts{Words: 1, Chars: 5}, s.Counts())
	})

	t.Run("close reports decoding errors", func(t *testing.T) {
		s := NewStream("rot13")
		_, err := s.Write([]byte("Hello"))
		require.NoError(t, err)

		var decErr *DecodingError
		assert.ErrorAs(t, s.Close(), &decErr)
	})
}
