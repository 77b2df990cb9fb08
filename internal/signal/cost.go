package signal

// costOrder lists the reachable levels of each feature from the most to
// the least expensive.
var costOrder = [NumFeatures][]uint8{
	UseRefFrameMVs:                 {1, 0},
	CDFUpdateLevel:                 {1, 2, 3, 0},
	FilterIntraLevel:               {1, 0},
	PartitionContexts:              {PartitionContextsFull, PartitionContextsReduced},
	AllowHighPrecisionMV:           {1, 0},
	WarpedMotionLevel:              {1, 2, 0},
	AllowWarpedMotion:              {1, 0},
	OBMCLevel:                      {1, 2, 3, 0},
	MotionModeSwitchable:           {1, 0},
	ApproxInterRate:                {0, 1},
	SkipIntra:                      {0, 1},
	CandReductionLevel:             {0, 1, 2, 3, 7},
	TxtLevel:                       {1, 2, 3, 4, 5, 7, 8, 10, 0},
	TxShortcutLevel:                {0, 1, 4},
	InterpolationSearchLevel:       {2, 4, 0},
	ChromaLevel:                    {1, 2, 3, 5},
	CFLLevel:                       {1, 2, 0},
	NewNearestNearInjection:        {1, 0},
	Unipred3x3Injection:            {1, 0},
	Bipred3x3Injection:             {1, 2, 0},
	InterCompoundMode:              {1, 3, 4, 0},
	DistBasedRefPruning:            {0, 1, 2, 3, 5, 6},
	SpatialSSEFullLoopLevel:        {1, 0},
	NSQLevel:                       {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 0},
	InterIntraLevel:                {1, 0},
	TxsLevel:                       {1, 2, 3, 5, 0},
	TxMode:                         {TxModeSelect, TxModeLargest},
	NICLevel:                       {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	MDSQMVSearchLevel:              {1, 0},
	MDNSQMVSearchLevel:             {2, 4},
	MDPMELevel:                     {1, 2, 3, 5, 6},
	MDS0Level:                      {2, 4},
	Disallow4x4:                    {0, 1},
	BypassEncDec:                   {0, 1},
	LPD0Level:                      {0, 1, 2, 3, 4, 5, 6, 7},
	SkipPD0:                        {0, 1},
	DisallowBelow16x16:             {0, 1},
	DepthRemovalLevel:              {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
	BlockBasedDepthRefinementLevel: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	DepthEarlyExitTh:               {0, 90},
	LPD1Level:                      {0, 1, 2, 3, 4, 5, 6},
	DetectHighFreqLevel:            {1, 2, 0},
}

// CostRank returns the position of level in the cost order of f, where 0
// is the most expensive. It returns -1 for a level f never takes.
func CostRank(f Feature, level uint8) int {
	if int(f) >= NumFeatures {
		return -1
	}
	for i, v := range costOrder[f] {
		if v == level {
			return i
		}
	}
	return -1
}
