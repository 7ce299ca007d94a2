package tlg6

const (
	wBlockSize  = 8
	hBlockSize  = 8
	golombNCount = 4

	leadingZeroTableBits = 12
	leadingZeroTableSize = 1 << leadingZeroTableBits
)

// leadingZeroTable[i] gives, for a 12-bit lookahead value i, the 1-based
// position of its lowest set bit (i.e. the unary run length plus its
// terminator), or 0 if no bit is set in the lookahead window at all —
// the caller must then fetch another 12 bits and keep counting.
var leadingZeroTable [leadingZeroTableSize]uint8

// golombCompressionTable is the fixed 4x9 matrix of per-context run
// lengths from which golombBitSizeTable is built. Reproduced verbatim
// from the reference: each row sums to 1024.
var golombCompressionTable = [golombNCount][9]int{
	{3, 7, 15, 27, 63, 108, 223, 448, 130},
	{3, 5, 13, 24, 51, 95, 192, 384, 257},
	{2, 5, 12, 21, 39, 86, 155, 320, 384},
	{2, 3, 9, 18, 33, 61, 129, 258, 511},
}

// golombBitSizeTable[a][n] is the Golomb parameter k selected when the
// running magnitude accumulator is a and the per-channel context is n.
var golombBitSizeTable [golombNCount * 2 * 128][golombNCount]uint8

func init() {
	for i := 0; i < leadingZeroTableSize; i++ {
		cnt := 0
		j := 1
		for j != leadingZeroTableSize && i&j == 0 {
			j <<= 1
			cnt++
		}
		cnt++
		if j == leadingZeroTableSize {
			cnt = 0
		}
		leadingZeroTable[i] = uint8(cnt)
	}

	for n := 0; n < golombNCount; n++ {
		a := 0
		for i := 0; i < 9; i++ {
			for j := 0; j < golombCompressionTable[n][i]; j++ {
				golombBitSizeTable[a][n] = uint8(i)
				a++
			}
		}
	}
}
