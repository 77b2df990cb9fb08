package signal

// Feature names one per-picture mode decision knob.
type Feature uint8

// Features are resolved in declaration order; a knob may read any feature
// declared before it.
const (
	UseRefFrameMVs Feature = iota
	CDFUpdateLevel
	FilterIntraLevel
	PartitionContexts
	AllowHighPrecisionMV
	WarpedMotionLevel
	AllowWarpedMotion
	OBMCLevel
	MotionModeSwitchable
	ApproxInterRate
	SkipIntra
	CandReductionLevel
	TxtLevel
	TxShortcutLevel
	InterpolationSearchLevel
	ChromaLevel
	CFLLevel
	NewNearestNearInjection
	Unipred3x3Injection
	Bipred3x3Injection
	InterCompoundMode
	DistBasedRefPruning
	SpatialSSEFullLoopLevel
	NSQLevel
	InterIntraLevel
	TxsLevel
	TxMode
	NICLevel
	MDSQMVSearchLevel
	MDNSQMVSearchLevel
	MDPMELevel
	MDS0Level
	Disallow4x4
	BypassEncDec
	LPD0Level
	SkipPD0
	DisallowBelow16x16
	DepthRemovalLevel
	BlockBasedDepthRefinementLevel
	DepthEarlyExitTh
	LPD1Level
	DetectHighFreqLevel

	NumFeatures = int(DetectHighFreqLevel) + 1
)

var featureNames = [NumFeatures]string{
	"UseRefFrameMVs",
	"CDFUpdateLevel",
	"FilterIntraLevel",
	"PartitionContexts",
	"AllowHighPrecisionMV",
	"WarpedMotionLevel",
	"AllowWarpedMotion",
	"OBMCLevel",
	"MotionModeSwitchable",
	"ApproxInterRate",
	"SkipIntra",
	"CandReductionLevel",
	"TxtLevel",
	"TxShortcutLevel",
	"InterpolationSearchLevel",
	"ChromaLevel",
	"CFLLevel",
	"NewNearestNearInjection",
	"Unipred3x3Injection",
	"Bipred3x3Injection",
	"InterCompoundMode",
	"DistBasedRefPruning",
	"SpatialSSEFullLoopLevel",
	"NSQLevel",
	"InterIntraLevel",
	"TxsLevel",
	"TxMode",
	"NICLevel",
	"MDSQMVSearchLevel",
	"MDNSQMVSearchLevel",
	"MDPMELevel",
	"MDS0Level",
	"Disallow4x4",
	"BypassEncDec",
	"LPD0Level",
	"SkipPD0",
	"DisallowBelow16x16",
	"DepthRemovalLevel",
	"BlockBasedDepthRefinementLevel",
	"DepthEarlyExitTh",
	"LPD1Level",
	"DetectHighFreqLevel",
}

func (f Feature) String() string {
	if int(f) < NumFeatures {
		return featureNames[f]
	}
	return "Feature(invalid)"
}

// ParseFeature looks a feature up by its String name.
func ParseFeature(name string) (Feature, bool) {
	for i, n := range featureNames {
		if n == name {
			return Feature(i), true
		}
	}
	return 0, false
}

// Levels is the full feature level set of one picture.
type Levels [NumFeatures]uint8

// Get returns the level of f.
func (l *Levels) Get(f Feature) uint8 { return l[f] }

// Bool reports whether f is enabled.
func (l *Levels) Bool(f Feature) bool { return l[f] != 0 }

// Overrides are sequence-level values that replace the speed ladder
// default of a feature. Dependent constraints still apply afterwards.
type Overrides map[Feature]uint8

// Named values of some features.
const (
	// PartitionContextsFull is the number of partition CDF contexts when
	// all of them are updated.
	PartitionContextsFull = 20
	// PartitionContextsReduced keeps only the 8x8 contexts.
	PartitionContextsReduced = 4

	TxModeLargest = 1
	TxModeSelect  = 2

	// HighPrecisionMVQThresh is the qindex below which 1/8-pel motion
	// vectors are allowed.
	HighPrecisionMVQThresh = 128
)
