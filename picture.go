package mdconfig

import (
	"github.com/deepteams/mdconfig/internal/av1"
	"github.com/deepteams/mdconfig/internal/cdef"
	"github.com/deepteams/mdconfig/internal/intrabc"
	"github.com/deepteams/mdconfig/internal/mfmv"
	"github.com/deepteams/mdconfig/internal/quant"
	"github.com/deepteams/mdconfig/internal/refpool"
	"github.com/deepteams/mdconfig/internal/signal"
)

// Picture is one encode unit. The fields above the output block are
// filled upstream; the stage writes the outputs exactly once.
type Picture struct {
	Number uint64

	Slice         av1.SliceType
	FrameType     av1.FrameType
	TemporalLayer uint8
	IsReference   bool

	// BaseQIndex is the frame qindex, PictureQP the 0-63 picture QP.
	BaseQIndex   uint8
	PictureQP    uint8
	DeltaQ       quant.DeltaQ
	UsingQMatrix bool

	OrderHint uint32
	// Refs holds the reference handles as [list][index]. Zero handles
	// are absent references.
	Refs [2][4]refpool.Handle

	// AlignedWidth and AlignedHeight are the luma dimensions rounded up
	// to a multiple of 8.
	AlignedWidth  int
	AlignedHeight int

	TileGroupCols int
	TileGroupRows int

	ScreenContent     bool
	NoiseLevel        bool
	TransitionPresent bool

	ErrorResilient      bool
	SuperresEnabled     bool
	SegmentationEnabled bool
	AllowIntraBC        bool
	HBDMD               uint8

	RefIntraPercentage uint8
	RefSkipPercentage  uint8
	RefListCountTry    [2]uint8

	// MEDist8x8 holds, per 64x64 block, the summed 8x8 motion estimation
	// distortion. MEDist64 holds the 64x64 distortion itself.
	MEDist8x8 []uint64
	MEDist64  []uint64

	// Luma is the source plane hashed for intra block copy.
	Luma intrabc.Plane

	GlobalMotionEstimate [2][4]WarpedMotionParams
	IsGlobalMotion       [2][4]bool
	GMDownsample         GMDownsample

	// CDEFLevel and CDEFControls enter as the preset defaults and are
	// refined from the references.
	CDEFLevel    uint8
	CDEFControls cdef.Controls

	EnableRestoration bool

	// Reconstructed is this picture's own descriptor, published by a
	// later stage once encoding completes.
	Reconstructed *refpool.Descriptor

	// Outputs.
	Quants       *quant.Quants
	Dequants     *quant.Dequants
	QM           *quant.MatrixSet
	QMLevel      [quant.NumPlanes]int
	MotionField  *mfmv.Field
	RefFrameSide [av1.TotalRefsPerFrame]int8
	CoeffLevel   signal.CoeffLevel
	CDF          signal.CDFControl

	SpeedFeatures intrabc.SpeedFeatures
	HashTable     *intrabc.Table
	GlobalMotion  [av1.TotalRefsPerFrame]WarpedMotionParams
	SGRefFrameEP  [2]int

	levels     signal.Levels
	configured bool

	// CDEF inputs as first handed over, restored before a recode.
	cdefLevelIn    uint8
	cdefControlsIn cdef.Controls
}

// Levels returns the feature levels. ok is false until the stage has
// configured the picture.
func (p *Picture) Levels() (lv signal.Levels, ok bool) {
	return p.levels, p.configured
}

// MiRows and MiCols are the mode-info grid in 4x4 units.
func (p *Picture) MiRows() int { return p.AlignedHeight >> 2 }
func (p *Picture) MiCols() int { return p.AlignedWidth >> 2 }

// validate checks the upstream fields. Only a superres recode may
// configure a picture a second time.
func (p *Picture) validate(recode bool) error {
	if p.configured && !recode {
		return wrapPicture(p, "already configured")
	}
	if p.AlignedWidth <= 0 || p.AlignedHeight <= 0 || p.AlignedWidth%8 != 0 || p.AlignedHeight%8 != 0 {
		return wrapPicture(p, "aligned size %dx%d", p.AlignedWidth, p.AlignedHeight)
	}
	if p.TileGroupCols < 1 || p.TileGroupRows < 1 {
		return wrapPicture(p, "tile groups %dx%d", p.TileGroupCols, p.TileGroupRows)
	}
	if p.Slice > av1.ISlice {
		return wrapPicture(p, "slice type %d", p.Slice)
	}
	if p.FrameType.IsIntraOnly() && p.Slice != av1.ISlice {
		return wrapPicture(p, "%v slice in intra-only frame", p.Slice)
	}
	return nil
}
