package signal

import "github.com/deepteams/mdconfig/internal/av1"

// MaxHierarchicalLevels is the deepest supported prediction structure.
const MaxHierarchicalLevels = 5

// Inputs is everything the derivation reads about a picture and its
// sequence.
type Inputs struct {
	Mode EncMode
	// RTC selects the low-delay real-time thresholds.
	RTC bool

	Slice              av1.SliceType
	FrameType          av1.FrameType
	TemporalLayer      uint8
	HierarchicalLevels uint8
	IsReference        bool
	Resolution         ResolutionClass
	Coeff              CoeffLevel
	QIndex             uint8

	BitDepth       int
	HBDMD          uint8
	SuperblockSize int

	FastDecode          bool
	ScreenContent       bool
	TransitionPresent   bool
	ErrorResilient      bool
	SuperresEnabled     bool
	ResizeEnabled       bool
	SegmentationEnabled bool

	MFMVEnabled        bool
	FilterIntraEnabled bool
	CompoundEnabled    bool
	InterIntraEnabled  bool
	StatGenPass        bool
	MiddlePass         bool

	AvgMEDist          uint64
	RefIntraPercentage uint8
	RefSkipPercentage  uint8
	RefListCountTry    [2]uint8

	Overrides Overrides
}

func (in *Inputs) base() bool   { return in.TemporalLayer == 0 }
func (in *Inputs) islice() bool { return in.Slice == av1.ISlice }

// fastDecodeHigh is the fast decode tuning applied above 360p.
func (in *Inputs) fastDecodeHigh() bool {
	return in.FastDecode && in.Resolution > Res360p
}

// frameDisablesWarp reports frame-level conditions under which warped
// motion can never be signalled.
func (in *Inputs) frameDisablesWarp() bool {
	return in.FrameType.IsIntraOnly() || in.ErrorResilient || in.SuperresEnabled || in.ResizeEnabled
}

func pick(cond bool, a, b uint8) uint8 {
	if cond {
		return a
	}
	return b
}

// byBase picks a for base layer pictures and b otherwise.
func byBase(in *Inputs, a, b uint8) uint8 { return pick(in.base(), a, b) }

// byCoeff picks by coefficient level. CoeffInvalid counts as normal.
func byCoeff(in *Inputs, low, normal, high uint8) uint8 {
	switch in.Coeff {
	case CoeffLow:
		return low
	case CoeffHigh:
		return high
	}
	return normal
}
