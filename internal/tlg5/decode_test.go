package tlg5

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlgimage/tlg/internal/codecerr"
)

func buildMinimalFrame(channelCount byte, width, height, blockHeight uint32, planes [][]byte) []byte {
	var buf bytes.Buffer
	buf.Write(Magic)
	buf.WriteByte(channelCount)
	writeU32(&buf, width)
	writeU32(&buf, height)
	writeU32(&buf, blockHeight)

	blockCount := (height-1)/blockHeight + 1
	for i := uint32(0); i < blockCount; i++ {
		writeU32(&buf, 0) // block size index is opaque to the decoder
	}
	for _, plane := range planes {
		buf.WriteByte(1) // mark = 1: raw
		writeU32(&buf, uint32(len(plane)))
		buf.Write(plane)
	}
	return buf.Bytes()
}

func writeU32(buf *bytes.Buffer, v uint32) {
	buf.WriteByte(byte(v))
	buf.WriteByte(byte(v >> 8))
	buf.WriteByte(byte(v >> 16))
	buf.WriteByte(byte(v >> 24))
}

func TestDecodeMinimal3ChannelPixel(t *testing.T) {
	// Target pixel (B=0x10, G=0x20, R=0x30, A=0xFF). Since plane bytes are
	// pre-transform residuals (B -= G, R -= G before storage), the raw
	// plane bytes for a single first-row pixel equal the color-transformed
	// deltas directly (prev and top are both zero here).
	planes := [][]byte{
		{0xF0}, // B plane: 0x10 - 0x20 mod 256
		{0x20}, // G plane: unchanged
		{0x10}, // R plane: 0x30 - 0x20 mod 256
	}
	// Block height 1 so each raw plane is exactly width*block_height = 1 byte.
	input := buildMinimalFrame(3, 1, 1, 1, planes)

	w, h, bgra, err := Decode(input)
	require.NoError(t, err)
	assert.EqualValues(t, 1, w)
	assert.EqualValues(t, 1, h)
	assert.Equal(t, []byte{0x10, 0x20, 0x30, 0xFF}, bgra)
}

func TestDecodeInvalidMagic(t *testing.T) {
	input := append([]byte("TLG6.0\x00raw\x1A"), 0)
	if _, _, _, err := Decode(input); err != codecerr.ErrInvalidMagic {
		t.Fatalf("err = %v, want ErrInvalidMagic", err)
	}
}

func TestDecodeUnsupportedChannelCount(t *testing.T) {
	input := buildMinimalFrame(2, 1, 1, 16, [][]byte{{0}, {0}})
	if _, _, _, err := Decode(input); err != codecerr.ErrUnsupportedChannelCount {
		t.Fatalf("err = %v, want ErrUnsupportedChannelCount", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	width, height := uint32(5), uint32(37) // spans multiple default-sized blocks
	bgra := make([]byte, width*height*4)
	for i := range bgra {
		bgra[i] = byte(i*37 + 11)
	}

	encoded, err := Encode(width, height, bgra)
	require.NoError(t, err)

	gotW, gotH, gotBGRA, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, width, gotW)
	assert.Equal(t, height, gotH)
	assert.Equal(t, bgra, gotBGRA)
}

func TestEncodeRejectsWrongBufferSize(t *testing.T) {
	if _, err := Encode(2, 2, make([]byte, 3)); err != codecerr.ErrInvalidArgument {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestEncodeOutputLengthInvariant(t *testing.T) {
	width, height := uint32(3), uint32(3)
	bgra := make([]byte, width*height*4)
	encoded, err := Encode(width, height, bgra)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, _, decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if uint32(len(decoded)) != 4*width*height {
		t.Fatalf("len(decoded) = %d, want %d", len(decoded), 4*width*height)
	}
}
