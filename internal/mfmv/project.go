package mfmv

import (
	"github.com/deepteams/mdconfig/internal/av1"
	"github.com/deepteams/mdconfig/internal/refpool"
)

const (
	// MaxFrameDistance bounds the frame distances a projection may span.
	MaxFrameDistance = 31

	maxOffsetWidth  = 64
	maxOffsetHeight = 0
	miSizeLog2      = 2

	mvUpp = 1 << 14
	mvLow = -(1 << 14)

	stackSize = 3
)

// Direction selects how a start frame's motion is mirrored onto the
// current picture.
type Direction int

const (
	// Future start frames lie after the current picture.
	Future Direction = 0
	// Past start frames lie before it; distances and offsets are negated.
	Past Direction = 2
)

// divMult[d] = 16384/d.
var divMult [32]int32

func init() {
	for d := 1; d < len(divMult); d++ {
		divMult[d] = int32(16384 / d)
	}
}

// Frame is the view of the current picture the projector works on.
type Frame struct {
	MiRows        int
	MiCols        int
	OrderHint     int
	OrderHintInfo OrderHintInfo

	// Refs is indexed by av1.RefFrame; a nil entry is an absent reference.
	Refs [av1.TotalRefsPerFrame]*refpool.Descriptor

	UseRefFrameMVs bool
}

func roundPow2Signed(v int64, n uint) int64 {
	if v < 0 {
		return -((-v + (1 << (n - 1))) >> n)
	}
	return (v + (1 << (n - 1))) >> n
}

func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// projectMV scales mv by num/den frame distances.
func projectMV(mv av1.MV, num, den int) av1.MV {
	if den > MaxFrameDistance {
		den = MaxFrameDistance
	}
	if num > 0 {
		num = min(num, MaxFrameDistance)
	} else {
		num = max(num, -MaxFrameDistance)
	}
	scale := int64(num) * int64(divMult[den])
	row := roundPow2Signed(int64(mv.Row)*scale, 14)
	col := roundPow2Signed(int64(mv.Col)*scale, 14)
	return av1.MV{
		Row: int16(clampInt64(row, mvLow+1, mvUpp-1)),
		Col: int16(clampInt64(col, mvLow+1, mvUpp-1)),
	}
}

// blockPosition moves (blkRow, blkCol) by mv and reports whether the
// destination lies in the picture and within the neighborhood window of
// the source 8x8 group.
func blockPosition(miRows, miCols, blkRow, blkCol int, mv av1.MV, signBias int) (int, int, bool) {
	baseRow := (blkRow >> 3) << 3
	baseCol := (blkCol >> 3) << 3

	rowOffset := int(mv.Row) >> (4 + miSizeLog2)
	if mv.Row < 0 {
		rowOffset = -(-int(mv.Row) >> (4 + miSizeLog2))
	}
	colOffset := int(mv.Col) >> (4 + miSizeLog2)
	if mv.Col < 0 {
		colOffset = -(-int(mv.Col) >> (4 + miSizeLog2))
	}

	row, col := blkRow+rowOffset, blkCol+colOffset
	if signBias == 1 {
		row, col = blkRow-rowOffset, blkCol-colOffset
	}

	if row < 0 || row >= miRows>>1 || col < 0 || col >= miCols>>1 {
		return 0, 0, false
	}
	if row < baseRow-(maxOffsetHeight>>3) ||
		row >= baseRow+8+(maxOffsetHeight>>3) ||
		col < baseCol-(maxOffsetWidth>>3) ||
		col >= baseCol+8+(maxOffsetWidth>>3) {
		return 0, 0, false
	}
	return row, col, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ProjectReferenceFrame projects the motion stored in the start reference
// onto f. It returns false, leaving f untouched, when the start frame is
// absent, intra-only, or was coded at a different grid size.
func ProjectReferenceFrame(f *Field, cur *Frame, start av1.RefFrame, dir Direction) bool {
	buf := cur.Refs[start]
	if buf == nil {
		return false
	}
	if buf.FrameType.IsIntraOnly() {
		return false
	}
	if buf.MiRows != cur.MiRows || buf.MiCols != cur.MiCols {
		return false
	}
	rows, cols := buf.MVGrid()
	if len(buf.MVs) < rows*cols || f.Rows < rows || f.Cols < cols {
		return false
	}

	oh := cur.OrderHintInfo
	startHint := int(buf.OrderHint)
	startToCur := RelativeDistance(oh, startHint, cur.OrderHint)

	var refOffset [av1.TotalRefsPerFrame]int
	for rf := av1.LastFrame; rf <= av1.AltrefFrame; rf++ {
		refOffset[rf] = RelativeDistance(oh, startHint, int(buf.RefOrderHints[rf-av1.LastFrame]))
	}

	if dir == Past {
		startToCur = -startToCur
	}
	signBias := int(dir) >> 1

	for blkRow := 0; blkRow < rows; blkRow++ {
		for blkCol := 0; blkCol < cols; blkCol++ {
			ref := &buf.MVs[blkRow*cols+blkCol]
			if ref.RefFrame <= av1.IntraFrame || ref.RefFrame > av1.AltrefFrame {
				continue
			}
			off := refOffset[ref.RefFrame]
			if off <= 0 || absInt(off) > MaxFrameDistance || absInt(startToCur) > MaxFrameDistance {
				continue
			}
			projected := projectMV(ref.MV, startToCur, off)
			r, c, ok := blockPosition(cur.MiRows, cur.MiCols, blkRow, blkCol, projected, signBias)
			if !ok {
				continue
			}
			f.Cells[r*f.Cols+c] = Cell{MV: ref.MV, RefFrameOffset: int8(off)}
		}
	}
	return true
}
