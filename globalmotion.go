package mdconfig

import "github.com/deepteams/mdconfig/internal/av1"

// WarpType is the global motion model class.
type WarpType uint8

const (
	Identity WarpType = iota
	Translation
	RotZoom
	Affine
)

const (
	warpedModelPrecBits = 16

	// Translation terms are bounded by the bitstream's 12-bit absolute
	// range at 6-bit precision, expressed in model precision.
	gmTransMax          = 1 << 12
	gmTransDecodeFactor = 1 << (warpedModelPrecBits - 6)
	gmTransLimit        = gmTransMax * gmTransDecodeFactor
)

// WarpedMotionParams is one global motion model.
type WarpedMotionParams struct {
	Type WarpType
	Mat  [8]int32

	Alpha, Beta, Gamma, Delta int16

	Invalid bool
}

// IdentityWarp returns the no-motion model.
func IdentityWarp() WarpedMotionParams {
	return WarpedMotionParams{
		Type: Identity,
		Mat:  [8]int32{0, 0, 1 << warpedModelPrecBits, 0, 0, 1 << warpedModelPrecBits, 0, 0},
	}
}

// GMDownsample is the resolution global motion was estimated at.
type GMDownsample uint8

const (
	GMFull GMDownsample = iota
	// GMDown searched at half resolution.
	GMDown
	// GMDown16 searched at quarter resolution in each dimension.
	GMDown16
)

func clampTrans(v int32) int32 {
	return min(max(v, -gmTransLimit), gmTransLimit)
}

// globalMotionField resets every slot to identity and then installs the
// estimated model of each reference flagged as using global motion, with
// its translation rescaled to full resolution.
func globalMotionField(p *Picture) [av1.TotalRefsPerFrame]WarpedMotionParams {
	var gm [av1.TotalRefsPerFrame]WarpedMotionParams
	for i := range gm {
		gm[i] = IdentityWarp()
	}
	for rf := av1.LastFrame; rf <= av1.AltrefFrame; rf++ {
		l, r := rf.ListIndex(), rf.ListRefIndex()
		if !p.IsGlobalMotion[l][r] {
			continue
		}
		m := p.GlobalMotionEstimate[l][r]
		var scale int32
		switch p.GMDownsample {
		case GMDown16:
			scale = 4
		case GMDown:
			scale = 2
		}
		if scale != 0 {
			m.Mat[0] = clampTrans(m.Mat[0] * scale)
			m.Mat[1] = clampTrans(m.Mat[1] * scale)
		}
		gm[rf] = m
	}
	return gm
}
