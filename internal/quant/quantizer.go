// Package quant builds the per-picture quantizer, dequantizer and
// quantizer-matrix tables.
package quant

// SIMDWidth is the number of lanes per qindex row. Lane 0 is DC, lane 1 is
// AC, lanes 2..7 replicate lane 1 so vector kernels can load a full row.
const SIMDWidth = 8

// Plane indices.
const (
	PlaneY = iota
	PlaneU
	PlaneV
	NumPlanes
)

// PlaneQuant holds the quantization factors of one plane.
type PlaneQuant struct {
	Quant      [QIndexRange][SIMDWidth]int16
	QuantShift [QIndexRange][SIMDWidth]int16
	QuantFP    [QIndexRange][SIMDWidth]int16
	RoundFP    [QIndexRange][SIMDWidth]int16
	Zbin       [QIndexRange][SIMDWidth]int16
	Round      [QIndexRange][SIMDWidth]int16
}

// Quants holds the quantization tables of all three planes.
type Quants struct {
	Planes [NumPlanes]PlaneQuant
}

// Dequants holds the dequantization steps, [plane][qindex][lane].
type Dequants struct {
	Planes [NumPlanes][QIndexRange][SIMDWidth]int16
}

// DeltaQ carries the per-plane quantizer offsets of a picture. Luma AC
// has no offset.
type DeltaQ struct {
	YDC int
	UDC int
	UAC int
	VDC int
	VAC int
}

// Build allocates and fills the quantizer tables for the given bit depth.
func Build(bitDepth int, dq DeltaQ) (*Quants, *Dequants) {
	q := new(Quants)
	d := new(Dequants)
	BuildInto(bitDepth, dq, q, d)
	return q, d
}

// BuildInto fills q and d for every qindex. It is total over its inputs.
func BuildInto(bitDepth int, dq DeltaQ, q *Quants, d *Dequants) {
	dcDelta := [NumPlanes]int{dq.YDC, dq.UDC, dq.VDC}
	acDelta := [NumPlanes]int{0, dq.UAC, dq.VAC}

	for qi := 0; qi < QIndexRange; qi++ {
		zbinF := zbinFactor(qi, bitDepth)
		roundF := 48
		if qi == 0 {
			roundF = 64
		}
		const roundFPF = 64

		for p := 0; p < NumPlanes; p++ {
			pq := &q.Planes[p]
			for i := 0; i < 2; i++ {
				var step int
				if i == 0 {
					step = DCStep(qi, dcDelta[p], bitDepth)
				} else {
					step = ACStep(qi, acDelta[p], bitDepth)
				}
				pq.Quant[qi][i], pq.QuantShift[qi][i] = invert(step)
				pq.QuantFP[qi][i] = int16((1 << 16) / step)
				pq.RoundFP[qi][i] = int16((roundFPF * step) >> 7)
				pq.Zbin[qi][i] = int16(roundPow2(zbinF*step, 7))
				pq.Round[qi][i] = int16((roundF * step) >> 7)
				d.Planes[p][qi][i] = int16(step)
			}
			for i := 2; i < SIMDWidth; i++ {
				pq.Quant[qi][i] = pq.Quant[qi][1]
				pq.QuantShift[qi][i] = pq.QuantShift[qi][1]
				pq.QuantFP[qi][i] = pq.QuantFP[qi][1]
				pq.RoundFP[qi][i] = pq.RoundFP[qi][1]
				pq.Zbin[qi][i] = pq.Zbin[qi][1]
				pq.Round[qi][i] = pq.Round[qi][1]
				d.Planes[p][qi][i] = d.Planes[p][qi][1]
			}
		}
	}
}

// invert turns a quantizer step d into a multiply-shift pair so that
// x/d ~= ((x*(quant+65536))>>16)*shift>>16.
func invert(d int) (quant, shift int16) {
	t := uint32(d)
	l := 0
	for t > 1 {
		t >>= 1
		l++
	}
	m := 1 + (1<<(16+l))/d
	return int16(m - (1 << 16)), int16(1 << (16 - l))
}

func zbinFactor(qindex, bitDepth int) int {
	if qindex == 0 {
		return 64
	}
	th := 148 << (2 * depthIndex(bitDepth))
	if DCStep(qindex, 0, bitDepth) < th {
		return 84
	}
	return 80
}

func roundPow2(v, n int) int {
	return (v + (1 << (n - 1))) >> n
}
