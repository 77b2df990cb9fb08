// Package av1 holds the small value types shared by the configuration
// stage: slice and frame types, reference frame names and motion vectors.
package av1

// SliceType is the prediction type of a picture.
type SliceType uint8

const (
	BSlice SliceType = iota
	PSlice
	ISlice
)

func (s SliceType) String() string {
	switch s {
	case ISlice:
		return "I"
	case PSlice:
		return "P"
	case BSlice:
		return "B"
	default:
		return "invalid"
	}
}

// FrameType is the bitstream frame type.
type FrameType uint8

const (
	KeyFrame FrameType = iota
	InterFrame
	IntraOnlyFrame
	SwitchFrame
)

// IsIntraOnly reports whether a frame of this type carries no motion.
func (f FrameType) IsIntraOnly() bool {
	return f == KeyFrame || f == IntraOnlyFrame
}

// RefFrame names a reference slot of the current picture.
type RefFrame int8

const (
	NoneFrame    RefFrame = -1
	IntraFrame   RefFrame = 0
	LastFrame    RefFrame = 1
	Last2Frame   RefFrame = 2
	Last3Frame   RefFrame = 3
	GoldenFrame  RefFrame = 4
	BwdrefFrame  RefFrame = 5
	Altref2Frame RefFrame = 6
	AltrefFrame  RefFrame = 7

	// InterRefsPerFrame is the number of inter reference slots.
	InterRefsPerFrame = 7
	// TotalRefsPerFrame counts intra plus the inter slots.
	TotalRefsPerFrame = 8
)

// ListIndex returns the reference list (0 or 1) a slot belongs to.
func (r RefFrame) ListIndex() int {
	if r >= BwdrefFrame {
		return 1
	}
	return 0
}

// ListRefIndex returns the position of the slot within its list.
func (r RefFrame) ListRefIndex() int {
	if r >= BwdrefFrame {
		return int(r - BwdrefFrame)
	}
	return int(r - LastFrame)
}

// MV is a motion vector in 1/8 pel units.
type MV struct {
	Row int16
	Col int16
}

// InvalidMV marks an empty motion field cell.
var InvalidMV = MV{Row: -32768, Col: -32768}

// IsInvalid reports whether mv is the invalid sentinel.
func (mv MV) IsInvalid() bool { return mv == InvalidMV }

// MVRef is one stored motion vector of a reference picture together with
// the slot it pointed at. RefFrame <= IntraFrame means no motion.
type MVRef struct {
	MV       MV
	RefFrame RefFrame
}
