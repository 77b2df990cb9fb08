package quant

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuild_LanesReplicateAC(t *testing.T) {
	for _, bd := range []int{8, 10, 12} {
		q, d := Build(bd, DeltaQ{YDC: -3, UDC: 4, UAC: -2, VDC: 7, VAC: 5})
		for p := 0; p < NumPlanes; p++ {
			pq := &q.Planes[p]
			for qi := 0; qi < QIndexRange; qi++ {
				for i := 2; i < SIMDWidth; i++ {
					if pq.Quant[qi][i] != pq.Quant[qi][1] ||
						pq.QuantShift[qi][i] != pq.QuantShift[qi][1] ||
						pq.QuantFP[qi][i] != pq.QuantFP[qi][1] ||
						pq.RoundFP[qi][i] != pq.RoundFP[qi][1] ||
						pq.Zbin[qi][i] != pq.Zbin[qi][1] ||
						pq.Round[qi][i] != pq.Round[qi][1] {
						t.Fatalf("bd=%d plane=%d q=%d lane %d diverges from lane 1", bd, p, qi, i)
					}
					if d.Planes[p][qi][i] != d.Planes[p][qi][1] {
						t.Fatalf("bd=%d plane=%d q=%d dequant lane %d = %d, want %d",
							bd, p, qi, i, d.Planes[p][qi][i], d.Planes[p][qi][1])
					}
				}
			}
		}
	}
}

func TestBuild_DequantMatchesStep(t *testing.T) {
	dq := DeltaQ{YDC: 2, UDC: -1, UAC: 3, VDC: 0, VAC: -4}
	q, d := Build(8, dq)
	acDelta := [NumPlanes]int{0, dq.UAC, dq.VAC}
	dcDelta := [NumPlanes]int{dq.YDC, dq.UDC, dq.VDC}
	for p := 0; p < NumPlanes; p++ {
		for qi := 0; qi < QIndexRange; qi++ {
			ac := int(d.Planes[p][qi][1])
			if want := ACStep(qi, acDelta[p], 8); ac != want {
				t.Fatalf("plane %d q=%d: dequant AC = %d, want %d", p, qi, ac, want)
			}
			if want := DCStep(qi, dcDelta[p], 8); int(d.Planes[p][qi][0]) != want {
				t.Fatalf("plane %d q=%d: dequant DC = %d, want %d", p, qi, d.Planes[p][qi][0], want)
			}
			// Inversion round trip: the dequant value rebuilds the stored pair.
			wq, ws := invert(ac)
			if q.Planes[p].Quant[qi][1] != wq || q.Planes[p].QuantShift[qi][1] != ws {
				t.Fatalf("plane %d q=%d: quant/shift = %d/%d, want %d/%d",
					p, qi, q.Planes[p].Quant[qi][1], q.Planes[p].QuantShift[qi][1], wq, ws)
			}
		}
	}
}

func TestBuild_RoundingAtZero(t *testing.T) {
	q, d := Build(8, DeltaQ{})
	step := int(d.Planes[PlaneY][0][1])
	if got, want := int(q.Planes[PlaneY].Round[0][1]), (64*step)>>7; got != want {
		t.Errorf("Round[0] = %d, want %d", got, want)
	}
	if got, want := int(q.Planes[PlaneY].Zbin[0][1]), roundPow2(64*step, 7); got != want {
		t.Errorf("Zbin[0] = %d, want %d", got, want)
	}
	step = int(d.Planes[PlaneY][10][1])
	if got, want := int(q.Planes[PlaneY].Round[10][1]), (48*step)>>7; got != want {
		t.Errorf("Round[10] = %d, want %d", got, want)
	}
	if got, want := int(q.Planes[PlaneY].Zbin[10][1]), roundPow2(84*step, 7); got != want {
		t.Errorf("Zbin[10] = %d, want %d", got, want)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	dq := DeltaQ{UDC: 1, UAC: 1, VDC: -1, VAC: -1}
	q1, d1 := Build(10, dq)
	q2, d2 := Build(10, dq)
	if diff := cmp.Diff(q1, q2); diff != "" {
		t.Errorf("Quants differ between builds (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(d1, d2); diff != "" {
		t.Errorf("Dequants differ between builds (-first +second):\n%s", diff)
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		d         int
		wantQuant int16
		wantShift int16
	}{
		{4, 1, 1 << 14},
		{8, 1, 1 << 13},
		{5, -13107, 1 << 14},
		{1024, 1, 1 << 6},
	}
	for _, tt := range tests {
		q, s := invert(tt.d)
		if q != tt.wantQuant || s != tt.wantShift {
			t.Errorf("invert(%d) = (%d, %d), want (%d, %d)", tt.d, q, s, tt.wantQuant, tt.wantShift)
		}
	}
}

func TestStepTables(t *testing.T) {
	for _, bd := range []int{8, 10, 12} {
		prevDC, prevAC := 0, 0
		for qi := 0; qi < QIndexRange; qi++ {
			dc, ac := DCStep(qi, 0, bd), ACStep(qi, 0, bd)
			if dc < prevDC || ac < prevAC {
				t.Fatalf("bd=%d q=%d: steps not monotonic (dc %d<%d or ac %d<%d)", bd, qi, dc, prevDC, ac, prevAC)
			}
			prevDC, prevAC = dc, ac
		}
	}
	if got, want := ACStep(300, 0, 8), ACStep(255, 0, 8); got != want {
		t.Errorf("ACStep clamps above range: got %d, want %d", got, want)
	}
	if got, want := DCStep(3, -10, 8), DCStep(0, 0, 8); got != want {
		t.Errorf("DCStep clamps below range: got %d, want %d", got, want)
	}
}

func TestStepTables_KnownEntries(t *testing.T) {
	tests := []struct {
		qindex, bitDepth int
		dc, ac           int
	}{
		{0, 8, 4, 4},
		{1, 8, 8, 8},
		{2, 8, 8, 9},
		{100, 8, 93, 112},
		{255, 8, 1336, 1828},
		{1, 10, 9, 9},
		{100, 10, 369, 441},
		{255, 10, 5347, 7312},
		{1, 12, 12, 13},
		{100, 12, 1469, 1758},
		{255, 12, 21387, 29247},
	}
	for _, tt := range tests {
		if got := DCStep(tt.qindex, 0, tt.bitDepth); got != tt.dc {
			t.Errorf("DCStep(%d) at %d-bit = %d, want %d", tt.qindex, tt.bitDepth, got, tt.dc)
		}
		if got := ACStep(tt.qindex, 0, tt.bitDepth); got != tt.ac {
			t.Errorf("ACStep(%d) at %d-bit = %d, want %d", tt.qindex, tt.bitDepth, got, tt.ac)
		}
	}

	sums := [3][2]int{{63571, 98156}, {252518, 390034}, {1007813, 1557517}}
	for i, bd := range []int{8, 10, 12} {
		var dc, ac int
		for qi := 0; qi < QIndexRange; qi++ {
			dc += DCStep(qi, 0, bd)
			ac += ACStep(qi, 0, bd)
		}
		if dc != sums[i][0] || ac != sums[i][1] {
			t.Errorf("%d-bit table sums = %d/%d, want %d/%d", bd, dc, ac, sums[i][0], sums[i][1])
		}
	}
}

func BenchmarkBuild(b *testing.B) {
	q := new(Quants)
	d := new(Dequants)
	dq := DeltaQ{UDC: 2, UAC: 2, VDC: 2, VAC: 2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildInto(8, dq, q, d)
	}
}
