package lzss

import "testing"

func TestDecompressLiterals(t *testing.T) {
	// control byte 0 (no flag bits set) followed by 8 literal 'A' tokens.
	input := []byte{0x00, 'A', 'A', 'A', 'A', 'A', 'A', 'A', 'A'}
	var dict [DictSize]byte
	dictPos := 0

	got := Decompress(input, 8, &dict, &dictPos)
	want := "AAAAAAAA"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if dictPos != 8 {
		t.Fatalf("dictPos = %d, want 8", dictPos)
	}
}

func TestDecompressBackReferenceWithExtendedLength(t *testing.T) {
	var dict [DictSize]byte
	dictPos := 0

	// Seed the dictionary with eight 'A's via literal tokens, then
	// back-reference them with length 18 (requiring the extension byte).
	lit := []byte{0x00, 'A', 'A', 'A', 'A', 'A', 'A', 'A', 'A'}
	first := Decompress(lit, 8, &dict, &dictPos)
	if string(first) != "AAAAAAAA" {
		t.Fatalf("literal stage: got %q", first)
	}

	// offset 0 (first 'A' written), length 18: x1 high nibble = 0xF (3+15=18,
	// the sentinel requiring the extra length byte), x1 low nibble = 0 (offset
	// bits 11..8), extra byte = 0.
	ref := []byte{0x01, 0x00, 0xF0, 0x00}
	got := Decompress(ref, 18, &dict, &dictPos)
	want := make([]byte, 18)
	for i := range want {
		want[i] = 'A'
	}
	if string(got) != string(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecompressShortInputZeroPads(t *testing.T) {
	var dict [DictSize]byte
	dictPos := 0
	got := Decompress([]byte{0x00, 'Z'}, 4, &dict, &dictPos)
	want := []byte{'Z', 0, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestDictPosWrapsAndRotates(t *testing.T) {
	var dict [DictSize]byte
	dictPos := 0

	// Fill the dictionary exactly once via literals, verifying dict_pos
	// wraps to 0 and the emitted bytes equal the dictionary content.
	input := make([]byte, 0, DictSize+DictSize/8+8)
	literalValue := byte(0x7A)
	for i := 0; i < DictSize; i++ {
		if i%8 == 0 {
			input = append(input, 0x00)
		}
		input = append(input, literalValue)
	}

	out := Decompress(input, DictSize, &dict, &dictPos)
	if dictPos != 0 {
		t.Fatalf("dictPos after filling ring once = %d, want 0", dictPos)
	}
	for i, b := range out {
		if b != literalValue {
			t.Fatalf("output[%d] = %#x, want %#x", i, b, literalValue)
		}
		if dict[i] != literalValue {
			t.Fatalf("dict[%d] = %#x, want %#x", i, dict[i], literalValue)
		}
	}
}

func TestCompressStubNeverBackReferences(t *testing.T) {
	var dict [DictSize]byte
	dictPos := 0
	input := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	out := Compress(input, &dict, &dictPos)

	// Round-trip through Decompress must reproduce the input exactly,
	// proving every control byte in the stub output is a zero (literal-only).
	var rdict [DictSize]byte
	rdictPos := 0
	back := Decompress(out, len(input), &rdict, &rdictPos)
	if string(back) != string(input) {
		t.Fatalf("round-trip = %v, want %v", back, input)
	}
}
