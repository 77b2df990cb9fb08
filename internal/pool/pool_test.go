package pool

import (
	"runtime"
	"sync"
	"testing"
)

func TestGetUint32_Length(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"small", 10},
		{"4K", 4096},
		{"64K", 65536},
		{"1080p", 1920 * 1080},
		{"4M+1", Size4M + 1},
		{"over16M", Size16M + 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := GetUint32(tt.n)
			if len(s) != tt.n {
				t.Errorf("GetUint32(%d): len = %d, want %d", tt.n, len(s), tt.n)
			}
			PutUint32(s)
		})
	}
}

func TestGetInt8_Length(t *testing.T) {
	for _, n := range []int{0, 1, 4097, 1280 * 720} {
		s := GetInt8(n)
		if len(s) != n {
			t.Errorf("GetInt8(%d): len = %d, want %d", n, len(s), n)
		}
		PutInt8(s)
	}
}

func TestBucketIndex(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 0},
		{Size4K, 0},
		{Size4K + 1, 1},
		{Size64K, 1},
		{Size64K + 1, 2},
		{Size1M, 2},
		{Size1M + 1, 3},
		{Size4M, 3},
		{Size4M + 1, 4},
		{Size16M * 2, 4},
	}
	for _, tt := range tests {
		if got := bucketIndex(tt.n); got != tt.want {
			t.Errorf("bucketIndex(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPut_UndersizedCapacity(t *testing.T) {
	// A slice between two classes must land in the lower class so a later
	// Get from the higher class never sees a short buffer.
	PutUint32(make([]uint32, Size64K-1))
	for i := 0; i < 8; i++ {
		s := GetUint32(Size64K)
		if cap(s) < Size64K {
			t.Fatalf("GetUint32(%d): cap = %d", Size64K, cap(s))
		}
	}
	PutUint32(nil)
	PutInt8(make([]int8, 10))
}

func TestReuse(t *testing.T) {
	s := GetUint32(Size4K)
	s[0] = 0xdeadbeef
	PutUint32(s)
	runtime.GC()
	for i := 0; i < 10; i++ {
		buf := GetUint32(Size4K)
		if len(buf) != Size4K {
			t.Fatalf("cycle %d: len = %d", i, len(buf))
		}
		PutUint32(buf)
	}
}

func TestConcurrency(t *testing.T) {
	const goroutines = 16
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for _, n := range []int{100, 5000, 70000, 300000} {
				u := GetUint32(n)
				b := GetInt8(n)
				for j := range u {
					u[j] = uint32(j)
					b[j] = int8(j)
				}
				PutUint32(u)
				PutInt8(b)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkGetUint32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		PutUint32(GetUint32(1920 * 1080))
	}
}
