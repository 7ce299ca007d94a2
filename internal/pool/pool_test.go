package pool

import (
	"sync"
	"testing"
)

func TestGetExactLength(t *testing.T) {
	sizes := []int{0, 1, 17, 256, 4096, 65536}
	for _, size := range sizes {
		b := Get(size)
		if len(b) != size {
			t.Errorf("Get(%d): len = %d, want %d", size, len(b), size)
		}
		Put(b)
	}
}

func TestPutGetReusesBackingArray(t *testing.T) {
	const size = 4096
	b := Get(size)
	b[0] = 0xAB
	Put(b)

	b2 := Get(size)
	// sync.Pool may or may not hand back the same buffer, but when it
	// does the stale byte must still be reachable (Get never zeroes);
	// callers that care, like internal/tlg6's bit-pool staging, clear
	// the tail themselves after copying their payload in.
	if cap(b2) < size {
		t.Fatalf("Get(%d) after Put: cap = %d, want >= %d", size, cap(b2), size)
	}
	if &b2[0] == &b[0] && b2[0] != 0xAB {
		t.Fatalf("reused buffer was zeroed: b2[0] = %#x, want 0xab", b2[0])
	}
	Put(b2)
}

func TestGetGrowsPastSmallerBuffer(t *testing.T) {
	small := Get(16)
	Put(small)

	big := Get(65536)
	if len(big) != 65536 {
		t.Fatalf("Get(65536): len = %d, want 65536", len(big))
	}
	Put(big)
}

func TestPutNilSlice(t *testing.T) {
	Put(nil) // must not panic
	b := Get(256)
	if len(b) != 256 {
		t.Errorf("Get(256) after Put(nil): len = %d, want 256", len(b))
	}
	Put(b)
}

func TestConcurrency(t *testing.T) {
	const goroutines = 32
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				for _, size := range []int{128, 2048, 8192, 32768} {
					b := Get(size)
					if len(b) != size {
						t.Errorf("concurrent Get(%d): len = %d", size, len(b))
						return
					}
					for j := range b {
						b[j] = byte(j)
					}
					Put(b)
				}
			}
		}()
	}

	wg.Wait()
}

func BenchmarkGet(b *testing.B) {
	benchmarks := []struct {
		name string
		size int
	}{
		{"256B", 256},
		{"4K", 4096},
		{"64K", 65536},
	}
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				buf := Get(bm.size)
				Put(buf)
			}
		})
	}
}

func BenchmarkGetParallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf := Get(4096)
			Put(buf)
		}
	})
}
