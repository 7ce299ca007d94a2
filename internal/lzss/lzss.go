// Package lzss implements the 4 KiB sliding-window LZSS variant used by
// the TLG codecs. Both TLG5 block planes and the TLG6 filter-type plane
// are LZSS streams sharing this engine; only the dictionary seed differs.
package lzss

// DictSize is the size of the ring dictionary shared by encoder and
// decoder. Offsets and the write head both wrap modulo DictSize.
const DictSize = 4096

const dictMask = DictSize - 1

// Decompress inflates input against dict, whose current write head is
// *dictPos, and returns exactly outputSize bytes. Running out of input
// before outputSize bytes are produced is not an error: the remainder of
// the output stays zero-filled, matching the reference decoder's
// tolerance for truncated streams. dict and dictPos are mutated in place
// so state persists across calls within one frame.
func Decompress(input []byte, outputSize int, dict *[DictSize]byte, dictPos *int) []byte {
	output := make([]byte, outputSize)
	ip, op := 0, 0
	flags := 0

	for ip < len(input) {
		flags >>= 1
		if flags&0x100 != 0x100 {
			if ip >= len(input) {
				return output
			}
			flags = int(input[ip]) | 0xFF00
			ip++
		}

		if flags&1 == 1 {
			if ip >= len(input) {
				return output
			}
			x0 := input[ip]
			ip++
			if ip >= len(input) {
				return output
			}
			x1 := input[ip]
			ip++

			lookbehindPos := int(x0) | (int(x1&0x0F) << 8)
			lookbehindSize := 3 + int((x1&0xF0)>>4)
			if lookbehindSize == 18 {
				if ip >= len(input) {
					return output
				}
				lookbehindSize += int(input[ip])
				ip++
			}

			for j := 0; j < lookbehindSize; j++ {
				c := dict[lookbehindPos]
				if op >= outputSize {
					return output
				}
				output[op] = c
				op++
				dict[*dictPos] = c
				*dictPos = (*dictPos + 1) & dictMask
				lookbehindPos = (lookbehindPos + 1) & dictMask
			}
		} else {
			if ip >= len(input) {
				return output
			}
			c := input[ip]
			ip++
			if op >= outputSize {
				return output
			}
			output[op] = c
			op++
			dict[*dictPos] = c
			*dictPos = (*dictPos + 1) & dictMask
		}
	}

	return output
}

// Compress is the stub compressor the format ships: it never back-
// references the dictionary, instead prefixing every run of up to 8
// literal bytes with a zero control byte. It exists so callers that
// genuinely want a compressed-mode block have something to call, but
// real encoders (the TLG5 encoder in internal/tlg5) always write raw
// blocks instead of trusting this output to be smaller than the input.
func Compress(input []byte, dict *[DictSize]byte, dictPos *int) []byte {
	output := make([]byte, 0, len(input)+len(input)/8+1)
	for i, c := range input {
		if i%8 == 0 {
			output = append(output, 0)
		}
		output = append(output, c)
		dict[*dictPos] = c
		*dictPos = (*dictPos + 1) & dictMask
	}
	return output
}
