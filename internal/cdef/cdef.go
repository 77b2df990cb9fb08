// Package cdef picks the per-picture CDEF filter strength search setup
// from the strengths chosen by the picture's references.
package cdef

import (
	"github.com/deepteams/mdconfig/internal/av1"
	"github.com/deepteams/mdconfig/internal/refpool"
)

// TotalStrengths is the number of combined primary/secondary strengths.
const TotalStrengths = 64

// MaxFirstPass bounds the first-pass candidate list.
const MaxFirstPass = 8

// Controls configures the strength search of one picture.
type Controls struct {
	UseSkipDetector bool
	UseReferenceFS  bool
	SearchBestRefFS bool

	// PredY and PredUV are the strengths used directly when the search
	// is skipped.
	PredY  int8
	PredUV int8

	FirstPassFSNum         int
	DefaultSecondPassFSNum int
	// Candidate strengths; -1 disables a chroma slot.
	DefaultFirstPassFS   [MaxFirstPass]int8
	DefaultFirstPassFSUV [MaxFirstPass]int8
}

// Input is what Select needs to know about the picture.
type Input struct {
	Slice    av1.SliceType
	Level    uint8
	Controls Controls

	// RefSkipPercentage is the share of skipped area in the references.
	RefSkipPercentage uint8
	// SharpnessCDEF turns CDEF off on noisy pictures.
	SharpnessCDEF bool
	NoiseLevel    bool

	// L0 and L1 are the first reference of each list. L1 is only read
	// for B slices.
	L0 *refpool.Descriptor
	L1 *refpool.Descriptor
}

func clampStrength(v int) int8 {
	return int8(min(TotalStrengths-1, max(0, v)))
}

// firstStrengths returns the first luma and chroma strengths recorded by
// d. ok is false when d is absent or has nothing recorded for a plane.
func firstStrengths(d *refpool.Descriptor) (y, uv int8, ok bool) {
	if d == nil || len(d.CDEFStrengths[0]) == 0 || len(d.CDEFStrengths[1]) == 0 {
		return 0, 0, false
	}
	return int8(d.CDEFStrengths[0][0]), int8(d.CDEFStrengths[1][0]), true
}

// Select returns the adjusted controls and the CDEF level for the picture.
// A reference without recorded strengths adds no first-pass candidate.
func Select(in *Input) (Controls, uint8) {
	c := in.Controls
	level := in.Level

	if (in.RefSkipPercentage > 75 && c.UseSkipDetector) || (in.SharpnessCDEF && in.NoiseLevel) {
		return c, 0
	}
	if in.Slice == av1.ISlice {
		return c, level
	}

	switch {
	case c.UseReferenceFS:
		lo, hi := TotalStrengths-1, 0
		refs := []*refpool.Descriptor{in.L0}
		if in.Slice == av1.BSlice {
			refs = append(refs, in.L1)
		}
		for _, r := range refs {
			if r == nil {
				continue
			}
			for _, s := range r.CDEFStrengths[0] {
				lo = min(lo, int(s))
				hi = max(hi, int(s))
			}
		}
		c.PredY = clampStrength((lo + hi) / 2)
		c.PredUV = 0
		c.FirstPassFSNum = 0
		c.DefaultSecondPassFSNum = 0
		if c.PredY == 0 && c.PredUV == 0 {
			level = 0
		}

	case c.SearchBestRefFS:
		c.FirstPassFSNum = 1
		c.DefaultSecondPassFSNum = 0

		y0, uv0, ok0 := firstStrengths(in.L0)
		if ok0 && y0 != c.DefaultFirstPassFS[0] {
			c.DefaultFirstPassFS[1] = y0
			c.FirstPassFSNum++
		}

		if in.Slice == av1.BSlice {
			y1, uv1, ok1 := firstStrengths(in.L1)
			switch {
			case !ok1:
			case y1 != c.DefaultFirstPassFS[0] && y1 != c.DefaultFirstPassFS[c.FirstPassFSNum-1]:
				c.DefaultFirstPassFS[c.FirstPassFSNum] = y1
				c.FirstPassFSNum++
				if ok0 && uv0 == c.DefaultFirstPassFSUV[0] && uv1 == c.DefaultFirstPassFSUV[0] {
					c.DefaultFirstPassFSUV[0] = -1
					c.DefaultFirstPassFSUV[1] = -1
				}
			case c.FirstPassFSNum == 2 && y0 == y1:
				// Both lists agree: take their filter and skip the search.
				c.UseReferenceFS = true
				c.PredY = y0
				c.PredUV = clampStrength((int(uv0) + int(uv1)) / 2)
				c.FirstPassFSNum = 0
				c.DefaultSecondPassFSNum = 0
			}
		} else if ok0 && uv0 == c.DefaultFirstPassFSUV[0] {
			c.DefaultFirstPassFSUV[0] = -1
			c.DefaultFirstPassFSUV[1] = -1
		}

		if c.FirstPassFSNum == 1 {
			level = 0
		}
	}
	return c, level
}
