package intrabc

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// crcBitwise is the bit-serial definition of an MSB-first CRC.
func crcBitwise(bits uint, poly uint32, data []byte) uint32 {
	top := uint32(1) << (bits - 1)
	mask := uint32(1<<bits - 1)
	var r uint32
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			in := (b>>uint(i))&1 == 1
			fb := (r&top != 0) != in
			r = (r << 1) & mask
			if fb {
				r ^= poly
			}
		}
	}
	return r
}

func TestCRC_MatchesBitwise(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, poly := range []uint32{Poly1, Poly2} {
		c := NewCRC(24, poly)
		for n := 0; n < 40; n++ {
			data := make([]byte, n)
			rng.Read(data)
			if got, want := c.Sum(data), crcBitwise(24, poly, data); got != want {
				t.Fatalf("poly %#x len %d: Sum = %#06x, want %#06x", poly, n, got, want)
			}
		}
	}
}

func TestCRC_Distinct(t *testing.T) {
	p := []byte{1, 2, 3, 4}
	if crcs[0].Sum(p) == crcs[1].Sum(p) {
		t.Error("primary and secondary hashes agree")
	}
	if got := crcs[0].Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %d, want 0", got)
	}
}

func noisePlane(w, h int, seed int64) Plane {
	p := Plane{Pix: make([]byte, w*h), Stride: w, Width: w, Height: h}
	rand.New(rand.NewSource(seed)).Read(p.Pix)
	return p
}

func copyBlock(p Plane, sx, sy, dx, dy, size int) {
	for y := 0; y < size; y++ {
		copy(p.Pix[(dy+y)*p.Stride+dx:(dy+y)*p.Stride+dx+size], p.Pix[(sy+y)*p.Stride+sx:])
	}
}

func TestBuild_FindsDuplicate(t *testing.T) {
	p := noisePlane(40, 36, 7)
	copyBlock(p, 3, 5, 21, 17, 8)

	tab, err := Build(p, Options{MaxBlockSize: 16})
	if err != nil {
		t.Fatal(err)
	}
	key, h2, err := BlockHash(p.Pix[17*p.Stride+21:], p.Stride, 8)
	if err != nil {
		t.Fatal(err)
	}
	var got []Entry
	for _, e := range tab.Lookup(key) {
		if e.Hash2 == h2 {
			got = append(got, e)
		}
	}
	want := []Entry{{X: 3, Y: 5, Hash2: h2}, {X: 21, Y: 17, Hash2: h2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("matches (-want +got):\n%s", diff)
	}
	if !tab.HasExactMatch(key, h2) {
		t.Error("HasExactMatch = false")
	}
	if tab.HasExactMatch(key, h2^1) {
		t.Error("HasExactMatch accepted a wrong secondary hash")
	}
}

func TestBuild_BucketOrder(t *testing.T) {
	p := noisePlane(32, 32, 5)
	copyBlock(p, 20, 3, 4, 20, 8)

	tab, err := Build(p, Options{MaxBlockSize: 8})
	if err != nil {
		t.Fatal(err)
	}
	key, h2, err := BlockHash(p.Pix[3*p.Stride+20:], p.Stride, 8)
	if err != nil {
		t.Fatal(err)
	}
	var got []Entry
	for _, e := range tab.Lookup(key) {
		if e.Hash2 == h2 {
			got = append(got, e)
		}
	}
	// Left column first, even though it lies lower in the plane.
	want := []Entry{{X: 4, Y: 20, Hash2: h2}, {X: 20, Y: 3, Hash2: h2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bucket order (-want +got):\n%s", diff)
	}
}

func TestBlockHash_AgreesWithBuild(t *testing.T) {
	p := noisePlane(24, 24, 3)
	tab, err := Build(p, Options{MaxBlockSize: 8, Hash4x4: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range []int{4, 8} {
		for _, pos := range [][2]int{{0, 0}, {5, 9}, {24 - size, 24 - size}} {
			key, h2, err := BlockHash(p.Pix[pos[1]*p.Stride+pos[0]:], p.Stride, size)
			if err != nil {
				t.Fatal(err)
			}
			found := false
			for _, e := range tab.Lookup(key) {
				if e.X == pos[0] && e.Y == pos[1] && e.Hash2 == h2 {
					found = true
				}
			}
			if !found {
				t.Errorf("size %d at %v not found under its own hash", size, pos)
			}
		}
	}
}

func TestBuild_FlatBlocksOnlyAligned(t *testing.T) {
	p := Plane{Pix: make([]byte, 16*16), Stride: 16, Width: 16, Height: 16}

	tab, err := Build(p, Options{MaxBlockSize: 8, Hash4x4: true})
	if err != nil {
		t.Fatal(err)
	}
	// 4x4 on a 4-aligned grid plus 8x8 on an 8-aligned grid.
	if got := tab.Len(); got != 16+4 {
		t.Errorf("Len = %d, want 20", got)
	}
	key, _, _ := BlockHash(p.Pix, p.Stride, 8)
	for _, e := range tab.Lookup(key) {
		if e.X%8 != 0 || e.Y%8 != 0 {
			t.Errorf("flat 8x8 entered at unaligned (%d,%d)", e.X, e.Y)
		}
	}
}

func TestBuild_Skips4x4(t *testing.T) {
	p := noisePlane(16, 16, 11)
	tab, err := Build(p, Options{MaxBlockSize: 8})
	if err != nil {
		t.Fatal(err)
	}
	key, _, _ := BlockHash(p.Pix, p.Stride, 4)
	if n := len(tab.Lookup(key)); n != 0 {
		t.Errorf("4x4 entries = %d without Hash4x4", n)
	}
	// Every 8x8 position of a noise plane is entered.
	if got, want := tab.Len(), 9*9; got != want {
		t.Errorf("Len = %d, want %d", got, want)
	}
}

func TestBuild_Errors(t *testing.T) {
	good := noisePlane(8, 8, 1)
	tests := []struct {
		name  string
		plane Plane
		opts  Options
		want  error
	}{
		{"size 3", good, Options{MaxBlockSize: 3}, ErrBlockSize},
		{"size 2", good, Options{MaxBlockSize: 2}, ErrBlockSize},
		{"size 256", good, Options{MaxBlockSize: 256}, ErrBlockSize},
		{"tiny", Plane{Pix: []byte{1}, Stride: 1, Width: 1, Height: 1}, Options{MaxBlockSize: 4}, ErrPlane},
		{"short", Plane{Pix: make([]byte, 10), Stride: 8, Width: 8, Height: 8}, Options{MaxBlockSize: 4}, ErrPlane},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.plane, tt.opts); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	if got := Key(8, 0xABCDEF); got != 0xCDEF+2<<16 {
		t.Errorf("Key(8) = %#x", got)
	}
	if got := Key(128, 0x12345); got != 0x2345+6<<16 {
		t.Errorf("Key(128) = %#x", got)
	}
}

func TestSpeedFeatures(t *testing.T) {
	c := DefaultMeshConfig()

	sf := c.SpeedFeatures(false)
	want := SpeedFeatures{
		AllowExhaustiveSearches:  true,
		ExhaustiveSearchesThresh: 1 << 26,
		MaxExhaustivePct:         50,
		MeshPatterns:             [MaxMeshStep]MeshPattern{{64, 8}, {28, 4}, {15, 1}, {7, 1}},
	}
	if diff := cmp.Diff(want, sf); diff != "" {
		t.Errorf("inter (-want +got):\n%s", diff)
	}

	sf = c.SpeedFeatures(true)
	want.MaxExhaustivePct = 100
	want.MeshPatterns = [MaxMeshStep]MeshPattern{{256, 1}, {256, 1}, {0, 0}, {0, 0}}
	if diff := cmp.Diff(want, sf); diff != "" {
		t.Errorf("intra (-want +got):\n%s", diff)
	}

	c0 := *c
	c0.Speed = 0
	if got := c0.SpeedFeatures(false).ExhaustiveSearchesThresh; got != 1<<25 {
		t.Errorf("speed 0 threshold = %d, want %d", got, 1<<25)
	}
}

func BenchmarkBuild720p(b *testing.B) {
	p := noisePlane(1280, 720, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(p, Options{MaxBlockSize: 64}); err != nil {
			b.Fatal(err)
		}
	}
}
