package intrabc

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/deepteams/mdconfig/internal/pool"
)

// Errors returned by the hashers.
var (
	// ErrBlockSize rejects a block edge outside the hashed sizes.
	ErrBlockSize = errors.New("intrabc: hash block size must be a power of two in [4, 128]")
	// ErrPlane rejects a plane too small to hash or backed by a short buffer.
	ErrPlane = errors.New("intrabc: plane smaller than 2x2 or short buffer")
)

// Plane is an 8-bit luma plane.
type Plane struct {
	Pix    []byte
	Stride int
	Width  int
	Height int
}

func (p Plane) validate() error {
	if p.Width < 2 || p.Height < 2 || p.Stride < p.Width ||
		len(p.Pix) < (p.Height-1)*p.Stride+p.Width {
		return errors.Wrapf(ErrPlane, "%dx%d stride %d len %d", p.Width, p.Height, p.Stride, len(p.Pix))
	}
	return nil
}

// Same-value flags per block: rows constant, columns constant, and
// whether the block is entered into the table.
const (
	sameRow = iota
	sameCol
	sameAdd
	numSame
)

// scratch holds one generation of per-position hashes and flags, laid
// out with a row stride equal to the picture width.
type scratch struct {
	hash [2][]uint32
	same [numSame][]int8
}

func getScratch(n int) *scratch {
	s := &scratch{}
	for i := range s.hash {
		s.hash[i] = pool.GetUint32(n)
	}
	for i := range s.same {
		s.same[i] = pool.GetInt8(n)
	}
	return s
}

func (s *scratch) release() {
	for i := range s.hash {
		pool.PutUint32(s.hash[i])
	}
	for i := range s.same {
		pool.PutInt8(s.same[i])
	}
}

func b2i(b bool) int8 {
	if b {
		return 1
	}
	return 0
}

// hash2x2 fills dst with the hashes of every 2x2 block of src.
func hash2x2(src Plane, dst *scratch) {
	var p [4]byte
	xEnd := src.Width - 1
	yEnd := src.Height - 1
	pos := 0
	for y := 0; y < yEnd; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < xEnd; x++ {
			p[0], p[1] = row[x], row[x+1]
			p[2], p[3] = row[x+src.Stride], row[x+src.Stride+1]
			dst.same[sameRow][pos] = b2i(p[0] == p[1] && p[2] == p[3])
			dst.same[sameCol][pos] = b2i(p[0] == p[2] && p[1] == p[3])
			for k, c := range crcs {
				dst.hash[k][pos] = c.Sum(p[:])
			}
			pos++
		}
		pos++
	}
}

// combine builds size x size hashes from the four size/2 sub-block hashes
// in src.
func combine(width, height, size int, src, dst *scratch) {
	var buf [16]byte
	xEnd := width - size + 1
	yEnd := height - size + 1
	half := size >> 1
	quarter := size >> 2
	pos := 0
	for y := 0; y < yEnd; y++ {
		for x := 0; x < xEnd; x++ {
			for k, c := range crcs {
				h := src.hash[k]
				binary.LittleEndian.PutUint32(buf[0:], h[pos])
				binary.LittleEndian.PutUint32(buf[4:], h[pos+half])
				binary.LittleEndian.PutUint32(buf[8:], h[pos+half*width])
				binary.LittleEndian.PutUint32(buf[12:], h[pos+half*width+half])
				dst.hash[k][pos] = c.Sum(buf[:])
			}
			r := src.same[sameRow]
			dst.same[sameRow][pos] = b2i(r[pos] != 0 && r[pos+quarter] != 0 &&
				r[pos+half*width] != 0 && r[pos+half*width+quarter] != 0)
			c := src.same[sameCol]
			dst.same[sameCol][pos] = b2i(c[pos] != 0 && c[pos+half] != 0 &&
				c[pos+quarter*width] != 0 && c[pos+quarter*width+half] != 0)
			pos++
		}
		pos += size - 1
	}

	// Flat blocks are only added on the aligned grid.
	mask := size - 1
	pos = 0
	for y := 0; y < yEnd; y++ {
		for x := 0; x < xEnd; x++ {
			flat := dst.same[sameRow][pos] != 0 || dst.same[sameCol][pos] != 0
			aligned := x&mask == 0 && y&mask == 0
			dst.same[sameAdd][pos] = b2i(!flat || aligned)
			pos++
		}
		pos += size - 1
	}
}

// Options controls which blocks enter the table.
type Options struct {
	// MaxBlockSize is the largest hashed block edge, a power of two in [4, 128].
	MaxBlockSize int
	// Hash4x4 also enters 4x4 blocks.
	Hash4x4 bool
}

// Build hashes every block of src up to opts.MaxBlockSize and returns the
// populated table.
func Build(src Plane, opts Options) (*Table, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}
	if SizeIndex(opts.MaxBlockSize) < 1 {
		return nil, errors.Wrapf(ErrBlockSize, "got %d", opts.MaxBlockSize)
	}

	w, h := src.Width, src.Height
	bufs := [2]*scratch{getScratch(w * h), getScratch(w * h)}
	defer bufs[0].release()
	defer bufs[1].release()

	hash2x2(src, bufs[0])

	t := NewTable()
	srcIdx := 0
	for size := 4; size <= opts.MaxBlockSize; size <<= 1 {
		dstIdx := 1 - srcIdx
		if size > w || size > h {
			break
		}
		combine(w, h, size, bufs[srcIdx], bufs[dstIdx])
		if size != 4 || opts.Hash4x4 {
			t.addPlane(bufs[dstIdx], w, h, size)
		}
		srcIdx = dstIdx
	}
	return t, nil
}

// BlockHash computes the table key and secondary hash of the size x size
// block starting at pix, exactly as Build would for that position.
func BlockHash(pix []byte, stride, size int) (key, hash2 uint32, err error) {
	idx := SizeIndex(size)
	if idx < 1 {
		return 0, 0, errors.Wrapf(ErrBlockSize, "got %d", size)
	}
	if len(pix) < (size-1)*stride+size {
		return 0, 0, errors.Wrapf(ErrPlane, "block %d needs %d bytes, have %d", size, (size-1)*stride+size, len(pix))
	}

	n := size >> 1
	cur := [2][]uint32{make([]uint32, n*n), make([]uint32, n*n)}
	var p [4]byte
	for y := 0; y < size; y += 2 {
		for x := 0; x < size; x += 2 {
			o := y*stride + x
			p[0], p[1], p[2], p[3] = pix[o], pix[o+1], pix[o+stride], pix[o+stride+1]
			pos := (y>>1)*n + x>>1
			for k, c := range crcs {
				cur[k][pos] = c.Sum(p[:])
			}
		}
	}

	var buf [16]byte
	for ; n > 1; n >>= 1 {
		m := n >> 1
		next := [2][]uint32{make([]uint32, m*m), make([]uint32, m*m)}
		for y := 0; y < m; y++ {
			for x := 0; x < m; x++ {
				s := (y<<1)*n + x<<1
				for k, c := range crcs {
					binary.LittleEndian.PutUint32(buf[0:], cur[k][s])
					binary.LittleEndian.PutUint32(buf[4:], cur[k][s+1])
					binary.LittleEndian.PutUint32(buf[8:], cur[k][s+n])
					binary.LittleEndian.PutUint32(buf[12:], cur[k][s+n+1])
					next[k][y*m+x] = c.Sum(buf[:])
				}
			}
		}
		cur = next
	}
	return Key(size, cur[0][0]), cur[1][0], nil
}
