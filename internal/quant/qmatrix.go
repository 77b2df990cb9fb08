package quant

import "sync"

// NumQMLevels is the number of quantizer-matrix levels. The top level
// means "no matrix".
const NumQMLevels = 16

// QMTotalSize is the number of weights stored per level and plane type:
// the summed area of every transform size that is its own adjusted size.
const QMTotalSize = 3344

// TxSize enumerates transform sizes in bitstream order.
type TxSize uint8

const (
	Tx4x4 TxSize = iota
	Tx8x8
	Tx16x16
	Tx32x32
	Tx64x64
	Tx4x8
	Tx8x4
	Tx8x16
	Tx16x8
	Tx16x32
	Tx32x16
	Tx32x64
	Tx64x32
	Tx4x16
	Tx16x4
	Tx8x32
	Tx32x8
	Tx16x64
	Tx64x16
	TxSizesAll
)

var txWidth = [TxSizesAll]int{4, 8, 16, 32, 64, 4, 8, 8, 16, 16, 32, 32, 64, 4, 16, 8, 32, 16, 64}
var txHeight = [TxSizesAll]int{4, 8, 16, 32, 64, 8, 4, 16, 8, 32, 16, 64, 32, 16, 4, 32, 8, 64, 16}

// Width returns the transform width in pixels.
func (t TxSize) Width() int { return txWidth[t] }

// Height returns the transform height in pixels.
func (t TxSize) Height() int { return txHeight[t] }

// Area returns width*height.
func (t TxSize) Area() int { return txWidth[t] * txHeight[t] }

// AdjustedTxSize maps transform sizes with a 64-sample side onto the
// 32-sample size whose matrix they reuse.
func AdjustedTxSize(t TxSize) TxSize {
	switch t {
	case Tx64x64, Tx32x64, Tx64x32:
		return Tx32x32
	case Tx16x64:
		return Tx16x32
	case Tx64x16:
		return Tx32x16
	default:
		return t
	}
}

// MatrixSet indexes the shared weight tables by [level][plane][txSize].
// Entries of sizes that adjust to another size alias the adjusted entry.
type MatrixSet struct {
	Fwd [NumQMLevels][NumPlanes][TxSizesAll][]uint8
	Inv [NumQMLevels][NumPlanes][TxSizesAll][]uint8
}

var (
	weightsOnce sync.Once

	// [level][planeType][QMTotalSize]; planeType 0 is luma, 1 chroma.
	wtMatrix  [NumQMLevels - 1][2][QMTotalSize]uint8
	iwtMatrix [NumQMLevels - 1][2][QMTotalSize]uint8
)

// weightTables returns the shared forward and inverse weight tables. They
// are expanded from qmInvBase once and must not be modified. Forward
// weights are the rounded reciprocals 1024/inverse.
func weightTables() (*[NumQMLevels - 1][2][QMTotalSize]uint8, *[NumQMLevels - 1][2][QMTotalSize]uint8) {
	weightsOnce.Do(generateWeights)
	return &wtMatrix, &iwtMatrix
}

// Compact layout of qmInvBase.
const (
	qmTriSize  = 32 * 33 / 2
	qmBaseSize = qmTriSize + 16*32
)

func generateWeights() {
	for lvl := 0; lvl < NumQMLevels-1; lvl++ {
		for pt := 0; pt < 2; pt++ {
			b := &qmInvBase[lvl][pt]
			cur := 0
			for t := TxSize(0); t < TxSizesAll; t++ {
				if AdjustedTxSize(t) != t {
					continue
				}
				w, h := t.Width(), t.Height()
				for r := 0; r < h; r++ {
					for c := 0; c < w; c++ {
						iw := invWeightAt(b, w, h, r, c)
						iwtMatrix[lvl][pt][cur] = iw
						wtMatrix[lvl][pt][cur] = uint8((1024 + int(iw)/2) / int(iw))
						cur++
					}
				}
			}
		}
	}
}

// invWeightAt samples the inverse weight at row r, column c of a w x h
// matrix. Squares come from the 32x32 matrix, tall rectangles from the
// 16x32 one, and wide rectangles are transposed tall ones.
func invWeightAt(b *[qmBaseSize]uint8, w, h, r, c int) uint8 {
	if w == h {
		step, off := 32/w, 0
		switch w {
		case 4:
			off = 3
		case 8:
			off = 1
		}
		r, c = r*step+off, c*step+off
		if c > r {
			r, c = c, r
		}
		return b[r*(r+1)/2+c]
	}
	if w > h {
		w, h, r, c = h, w, c, r
	}
	oy, ox := 0, 0
	switch {
	case w == 4 && h == 8:
		oy, ox = 1, 1
	case w == 4 && h == 16:
		ox = 1
	}
	return b[qmTriSize+(r*(32/h)+oy)*16+c*(16/w)+ox]
}

// InitMatrixSet points every (level, plane, size) entry of set into the
// shared weight tables. The top level is left nil.
func InitMatrixSet(set *MatrixSet) {
	wt, iwt := weightTables()
	for q := 0; q < NumQMLevels; q++ {
		for c := 0; c < NumPlanes; c++ {
			pt := 0
			if c >= 1 {
				pt = 1
			}
			cur := 0
			for t := TxSize(0); t < TxSizesAll; t++ {
				adj := AdjustedTxSize(t)
				switch {
				case q == NumQMLevels-1:
					set.Fwd[q][c][t] = nil
					set.Inv[q][c][t] = nil
				case t != adj:
					// adj always precedes t in enumeration order.
					set.Fwd[q][c][t] = set.Fwd[q][c][adj]
					set.Inv[q][c][t] = set.Inv[q][c][adj]
				default:
					size := t.Area()
					if cur+size > QMTotalSize {
						panic("quant: quantizer matrix layout exceeds QMTotalSize")
					}
					set.Fwd[q][c][t] = wt[q][pt][cur : cur+size : cur+size]
					set.Inv[q][c][t] = iwt[q][pt][cur : cur+size : cur+size]
					cur += size
				}
			}
		}
	}
}

// QMLevel maps qindex in [0,255] linearly onto [first,last].
func QMLevel(qindex, first, last int) int {
	return first + (qindex*(last+1-first))/QIndexRange
}

// QMLevels returns the per-plane matrix levels. When using is false all
// planes use the "no matrix" level.
func QMLevels(using bool, baseQIndex, deltaUAC, deltaVAC, minLevel, maxLevel int) [NumPlanes]int {
	if !using {
		return [NumPlanes]int{NumQMLevels - 1, NumQMLevels - 1, NumQMLevels - 1}
	}
	return [NumPlanes]int{
		QMLevel(clampQIndex(baseQIndex), minLevel, maxLevel),
		QMLevel(clampQIndex(baseQIndex+deltaUAC), minLevel, maxLevel),
		QMLevel(clampQIndex(baseQIndex+deltaVAC), minLevel, maxLevel),
	}
}
