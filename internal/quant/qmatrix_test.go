package quant

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQMTotalSize(t *testing.T) {
	total := 0
	for tx := TxSize(0); tx < TxSizesAll; tx++ {
		if AdjustedTxSize(tx) == tx {
			total += tx.Area()
		}
	}
	if total != QMTotalSize {
		t.Errorf("summed adjusted area = %d, want %d", total, QMTotalSize)
	}
}

func TestInitMatrixSet_TopLevelNil(t *testing.T) {
	var set MatrixSet
	InitMatrixSet(&set)
	top := NumQMLevels - 1
	for c := 0; c < NumPlanes; c++ {
		for tx := TxSize(0); tx < TxSizesAll; tx++ {
			if set.Fwd[top][c][tx] != nil || set.Inv[top][c][tx] != nil {
				t.Errorf("level %d plane %d tx %d: want nil matrices", top, c, tx)
			}
		}
	}
}

func TestInitMatrixSet_Aliasing(t *testing.T) {
	var set MatrixSet
	InitMatrixSet(&set)
	for q := 0; q < NumQMLevels-1; q++ {
		for c := 0; c < NumPlanes; c++ {
			for tx := TxSize(0); tx < TxSizesAll; tx++ {
				fwd := set.Fwd[q][c][tx]
				if len(fwd) == 0 {
					t.Fatalf("level %d plane %d tx %d: empty matrix", q, c, tx)
				}
				adj := AdjustedTxSize(tx)
				if adj == tx {
					if len(fwd) != tx.Area() {
						t.Errorf("level %d plane %d tx %d: len = %d, want %d", q, c, tx, len(fwd), tx.Area())
					}
					continue
				}
				if &fwd[0] != &set.Fwd[q][c][adj][0] {
					t.Errorf("level %d plane %d tx %d: forward matrix is not aliased to tx %d", q, c, tx, adj)
				}
				if &set.Inv[q][c][tx][0] != &set.Inv[q][c][adj][0] {
					t.Errorf("level %d plane %d tx %d: inverse matrix is not aliased to tx %d", q, c, tx, adj)
				}
			}
		}
	}
}

func TestInitMatrixSet_SharedAcrossSets(t *testing.T) {
	var a, b MatrixSet
	InitMatrixSet(&a)
	InitMatrixSet(&b)
	if &a.Fwd[3][0][Tx8x8][0] != &b.Fwd[3][0][Tx8x8][0] {
		t.Error("two sets do not share the same weight table")
	}
	// Chroma planes share the chroma table.
	if &a.Fwd[3][1][Tx8x8][0] != &a.Fwd[3][2][Tx8x8][0] {
		t.Error("U and V planes do not share the chroma table")
	}
	if &a.Fwd[3][0][Tx8x8][0] == &a.Fwd[3][1][Tx8x8][0] {
		t.Error("luma and chroma share a table")
	}
}

func TestWeights_ForwardIsRoundedReciprocal(t *testing.T) {
	wt, iwt := weightTables()
	for q := range wt {
		for pt := range wt[q] {
			for i, iw := range iwt[q][pt] {
				if want := uint8((1024 + int(iw)/2) / int(iw)); wt[q][pt][i] != want {
					t.Fatalf("level %d type %d idx %d: weight %d, want %d", q, pt, i, wt[q][pt][i], want)
				}
			}
		}
	}
}

func TestWeights_KnownEntries(t *testing.T) {
	var set MatrixSet
	InitMatrixSet(&set)

	if diff := cmp.Diff([]uint8{32, 43, 73, 97, 43, 67, 94, 110, 73, 94, 137, 150, 97, 110, 150, 200}, set.Inv[0][PlaneY][Tx4x4]); diff != "" {
		t.Errorf("level 0 luma 4x4 inverse (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{32, 24, 14, 11, 24, 15, 11, 9, 14, 11, 7, 7, 11, 9, 7, 5}, set.Fwd[0][PlaneY][Tx4x4]); diff != "" {
		t.Errorf("level 0 luma 4x4 forward (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{35, 46, 57, 66, 46, 60, 69, 71, 57, 69, 90, 90, 66, 71, 90, 109}, set.Inv[0][PlaneU][Tx4x4]); diff != "" {
		t.Errorf("level 0 chroma 4x4 inverse (-want +got):\n%s", diff)
	}

	tests := []struct {
		level, plane int
		tx           TxSize
		r, c         int
		inv, fwd     uint8
	}{
		{0, PlaneY, Tx32x32, 31, 31, 242, 4},
		{0, PlaneY, Tx64x64, 31, 31, 242, 4},
		{0, PlaneV, Tx8x4, 3, 7, 105, 10},
		{5, PlaneY, Tx32x16, 15, 31, 149, 7},
		{5, PlaneY, Tx16x32, 31, 15, 149, 7},
		{10, PlaneU, Tx4x16, 15, 3, 56, 18},
		{3, PlaneY, Tx32x8, 2, 20, 66, 16},
		{14, PlaneV, Tx16x16, 8, 8, 31, 33},
	}
	for _, tt := range tests {
		w := AdjustedTxSize(tt.tx).Width()
		i := tt.r*w + tt.c
		if got := set.Inv[tt.level][tt.plane][tt.tx][i]; got != tt.inv {
			t.Errorf("level %d plane %d tx %d (%d,%d): inverse %d, want %d", tt.level, tt.plane, tt.tx, tt.r, tt.c, got, tt.inv)
		}
		if got := set.Fwd[tt.level][tt.plane][tt.tx][i]; got != tt.fwd {
			t.Errorf("level %d plane %d tx %d (%d,%d): forward %d, want %d", tt.level, tt.plane, tt.tx, tt.r, tt.c, got, tt.fwd)
		}
	}
}

func TestWeights_TableSums(t *testing.T) {
	wt, iwt := weightTables()
	var fwd, inv int
	for q := range wt {
		for pt := range wt[q] {
			for i := range wt[q][pt] {
				fwd += int(wt[q][pt][i])
				inv += int(iwt[q][pt][i])
			}
		}
	}
	if fwd != 2215203 || inv != 5467931 {
		t.Errorf("weight sums = %d/%d, want 2215203/5467931", fwd, inv)
	}
}

func TestQMLevel_Boundaries(t *testing.T) {
	tests := []struct {
		qindex, first, last, want int
	}{
		{0, 5, 9, 5},
		{255, 5, 9, 9},
		{0, 0, 15, 0},
		{255, 0, 15, 15},
		{128, 0, 15, 8},
		{255, 8, 8, 8},
		{0, 8, 8, 8},
	}
	for _, tt := range tests {
		if got := QMLevel(tt.qindex, tt.first, tt.last); got != tt.want {
			t.Errorf("QMLevel(%d, %d, %d) = %d, want %d", tt.qindex, tt.first, tt.last, got, tt.want)
		}
	}
	for qi := 0; qi < QIndexRange; qi++ {
		if l := QMLevel(qi, 3, 11); l < 3 || l > 11 {
			t.Fatalf("QMLevel(%d, 3, 11) = %d out of range", qi, l)
		}
	}
}

func TestQMLevels(t *testing.T) {
	got := QMLevels(true, 100, 20, -150, 4, 10)
	want := [NumPlanes]int{
		QMLevel(100, 4, 10),
		QMLevel(120, 4, 10),
		QMLevel(0, 4, 10),
	}
	if got != want {
		t.Errorf("QMLevels = %v, want %v", got, want)
	}
	off := QMLevels(false, 100, 0, 0, 4, 10)
	for p, l := range off {
		if l != NumQMLevels-1 {
			t.Errorf("plane %d: level = %d without matrices, want %d", p, l, NumQMLevels-1)
		}
	}
}
