package signal

// Thresholds on total 8x8 ME distortion divided by the picture QP.
const (
	coeffLowTh  = 30000
	coeffHighTh = 125000
)

// PredictCoeffLevel classifies a picture from its per-64x64 sums of 8x8
// motion estimation distortion.
func PredictCoeffLevel(me8x8 []uint64, qp uint8) CoeffLevel {
	if qp == 0 {
		qp = 1
	}
	var tot uint64
	for _, d := range me8x8 {
		tot += d
	}
	tot /= uint64(qp)
	switch {
	case tot < coeffLowTh:
		return CoeffLow
	case tot > coeffHighTh:
		return CoeffHigh
	}
	return CoeffNormal
}

// AvgMEDist is the mean 64x64 ME distortion divided by the picture QP.
func AvgMEDist(me64 []uint64, qp uint8) uint64 {
	if len(me64) == 0 {
		return 0
	}
	if qp == 0 {
		qp = 1
	}
	var tot uint64
	for _, d := range me64 {
		tot += d
	}
	return tot / uint64(len(me64)) / uint64(qp)
}
