// Package pool recycles the scratch buffer TLG6 decoding stages each
// band's Golomb bit pool into, so that a frame with many (channel, band)
// pairs does not allocate a fresh buffer for every one of them. There is
// exactly one call site and one buffer shape (the bit-pool scratch,
// sized by the band's declared bit count plus the decoder's 4-byte
// lookahead padding), so unlike a general-purpose allocator this pool
// does not bucket by size class: it keeps the single largest buffer any
// caller has asked for and grows it on demand.
package pool

import "sync"

var scratch = sync.Pool{
	New: func() any {
		b := make([]byte, 0)
		return &b
	},
}

// Get returns a byte slice of exactly size bytes. If the buffer most
// recently returned to the pool is large enough, its backing array is
// reused; otherwise a fresh one is allocated. The caller must call Put
// when done with it.
func Get(size int) []byte {
	bp := scratch.Get().(*[]byte)
	b := *bp
	if cap(b) < size {
		b = make([]byte, size)
	} else {
		b = b[:size]
	}
	return b
}

// Put returns a buffer obtained from Get back to the pool for reuse by a
// later band or frame.
func Put(b []byte) {
	scratch.Put(&b)
}
