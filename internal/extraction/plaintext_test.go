package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextDecoder(t *testing.T) {
	decoder := &TextDecoder{}
	ctx := context.Background()

	t.Run("valid text passes through trimmed", func(t *testing.T) {
		input := "  John Smith\nSenior Engineer with ten years of experience\n"
		text, err := decoder.Decode(ctx, []byte(input))
		require.NoError(t, err)
		assert.Equal(t, strings.TrimSpace(input), text)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := decoder.Decode(ctx, nil)
		var emptyErr *EmptyDocumentError
		require.ErrorAs(t, err, &emptyErr)
		assert.Equal(t, FormatText, emptyErr.Format)
	})

	t.Run("whitespace-only payload", func(t *testing.T) {
		_, err := decoder.Decode(ctx, []byte("   \n\t  "))
		var emptyErr *EmptyDocumentError
		assert.ErrorAs(t, err, &emptyErr)
	})

	t.Run("invalid utf8 is rejected", func(t *testing.T) {
		_, err := decoder.Decode(ctx, []byte{0xff, 0xfe, 0x00, 0x01})
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Contains(t, decodeErr.Message, "UTF-8")
	})

	t.Run("very short content is rejected", func(t *testing.T) {
		_, err := decoder.Decode(ctx, []byte("too short"))
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Contains(t, decodeErr.Message, "little content")
	})

	t.Run("cancelled context is honored", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := decoder.Decode(cancelled, []byte("whatever"))
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
