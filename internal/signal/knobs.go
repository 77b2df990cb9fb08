package signal

// interpSkipTh is the reference skip percentage above which non-base
// pictures drop the interpolation filter search, per resolution class.
var interpSkipTh = [NumResolutions]uint8{100, 100, 85, 50, 30, 30, 30}

var knobs = [NumFeatures]knob{
	UseRefFrameMVs: {
		gate: func(in *Inputs) (uint8, bool) {
			if in.islice() || !in.MFMVEnabled || in.ErrorResilient {
				return forced(0)
			}
			return open()
		},
		ladder: []rung{
			at(M9, func(in *Inputs, _ *Levels) uint8 {
				if !in.FastDecode {
					return 1
				}
				return pick(in.AvgMEDist < 50 || in.Resolution <= Res360p, 1, 0)
			}),
			at(M13, func(in *Inputs, _ *Levels) uint8 {
				if !in.FastDecode {
					return pick(in.AvgMEDist < 200 || in.Resolution <= Res360p, 1, 0)
				}
				return pick(in.Resolution <= Res360p, 1, 0)
			}),
		},
		// Intra and error resilient pictures never carry reference MVs.
		post: func(in *Inputs, _ *Levels, v uint8) uint8 {
			if in.islice() || in.ErrorResilient {
				return 0
			}
			return v
		},
	},
	CDFUpdateLevel: {
		ladder: []rung{
			at(M2, lvl(1)),
			at(M5, func(in *Inputs, _ *Levels) uint8 { return byBase(in, 1, 3) }),
			at(M10, func(in *Inputs, _ *Levels) uint8 { return pick(in.islice(), 1, 0) }),
			at(M13, lvl(0)),
		},
	},
	FilterIntraLevel: {
		gate: func(in *Inputs) (uint8, bool) {
			if !in.FilterIntraEnabled {
				return forced(0)
			}
			return open()
		},
		ladder: []rung{at(M4, lvl(1)), at(M13, lvl(0))},
	},
	PartitionContexts: {
		gate: func(in *Inputs) (uint8, bool) {
			if in.fastDecodeHigh() {
				return forced(PartitionContextsReduced)
			}
			return open()
		},
		ladder: []rung{at(M5, lvl(PartitionContextsFull)), at(M13, lvl(PartitionContextsReduced))},
	},
	AllowHighPrecisionMV: {
		ladder: []rung{
			at(M13, func(in *Inputs, _ *Levels) uint8 {
				return pick(in.QIndex < HighPrecisionMVQThresh && in.Resolution <= Res480p, 1, 0)
			}),
		},
	},
	WarpedMotionLevel: {
		gate: func(in *Inputs) (uint8, bool) {
			if in.frameDisablesWarp() {
				return forced(0)
			}
			return open()
		},
		ladder: []rung{
			at(M3, func(in *Inputs, _ *Levels) uint8 {
				if in.fastDecodeHigh() {
					return byBase(in, 1, 0)
				}
				return 1
			}),
			at(M6, func(in *Inputs, _ *Levels) uint8 {
				if in.fastDecodeHigh() || in.HierarchicalLevels <= 3 {
					return byBase(in, 1, 0)
				}
				return pick(in.TemporalLayer <= 1, 1, 0)
			}),
			at(M7, func(in *Inputs, _ *Levels) uint8 {
				if in.fastDecodeHigh() || in.HierarchicalLevels <= 4 {
					return byBase(in, 1, 0)
				}
				return pick(in.TemporalLayer <= 1, 1, 0)
			}),
			at(M10, func(in *Inputs, _ *Levels) uint8 {
				if in.Resolution <= Res720p {
					return byBase(in, 1, 0)
				}
				return byBase(in, 2, 0)
			}),
			at(M13, func(in *Inputs, _ *Levels) uint8 { return byBase(in, 2, 0) }),
		},
		post: func(in *Inputs, _ *Levels, v uint8) uint8 {
			if in.HierarchicalLevels <= 2 && in.Mode > M7 {
				return 0
			}
			return v
		},
	},
	AllowWarpedMotion: {
		ladder: []rung{
			at(M13, func(_ *Inputs, lv *Levels) uint8 { return pick(lv[WarpedMotionLevel] != 0, 1, 0) }),
		},
		post: func(in *Inputs, _ *Levels, v uint8) uint8 {
			if in.frameDisablesWarp() {
				return 0
			}
			return v
		},
	},
	OBMCLevel: {
		ladder: []rung{
			at(M2, lvl(1)),
			at(M3, func(in *Inputs, _ *Levels) uint8 { return pick(in.fastDecodeHigh(), 1, 2) }),
			at(M4, func(in *Inputs, _ *Levels) uint8 { return pick(in.fastDecodeHigh(), 3, 2) }),
			at(M5, func(in *Inputs, _ *Levels) uint8 {
				if in.fastDecodeHigh() {
					return pick(in.IsReference, 3, 0)
				}
				return 2
			}),
			at(M6, func(in *Inputs, _ *Levels) uint8 {
				if in.fastDecodeHigh() {
					return pick(in.IsReference, 3, 0)
				}
				return 3
			}),
			at(M13, lvl(0)),
		},
	},
	MotionModeSwitchable: {
		ladder: []rung{
			at(M13, func(_ *Inputs, lv *Levels) uint8 {
				return pick(lv[AllowWarpedMotion] != 0 || lv[OBMCLevel] != 0, 1, 0)
			}),
		},
	},
	ApproxInterRate: {
		ladder: []rung{at(M11, lvl(0)), at(M13, lvl(1))},
	},
	SkipIntra: {
		gate: func(in *Inputs) (uint8, bool) {
			if in.islice() || in.TransitionPresent {
				return forced(0)
			}
			return open()
		},
		ladder: []rung{
			atRTC(M8, M9, lvl(0)),
			at(M13, func(in *Inputs, _ *Levels) uint8 {
				return pick(in.IsReference || in.RefIntraPercentage > 50, 0, 1)
			}),
		},
	},
	CandReductionLevel: {
		gate: func(in *Inputs) (uint8, bool) {
			if in.islice() {
				return forced(0)
			}
			return open()
		},
		ladder: []rung{
			at(M3, lvl(0)),
			at(M5, lvl(1)),
			at(M6, func(in *Inputs, _ *Levels) uint8 { return pick(in.Coeff == CoeffLow, 1, 2) }),
			at(M9, func(in *Inputs, _ *Levels) uint8 { return pick(in.Coeff == CoeffLow, 1, 3) }),
			at(M13, lvl(3)),
		},
		post: func(in *Inputs, _ *Levels, v uint8) uint8 {
			if in.StatGenPass {
				return 7
			}
			return v
		},
	},
	TxtLevel: {
		ladder: []rung{
			at(MR, lvl(1)),
			at(M1, lvl(2)),
			at(M2, lvl(3)),
			at(M6, func(in *Inputs, _ *Levels) uint8 { return byCoeff(in, 4, byBase(in, 4, 5), 7) }),
			at(M11, func(in *Inputs, _ *Levels) uint8 {
				return byCoeff(in, byBase(in, 4, 5), 7, byBase(in, 8, 10))
			}),
			atRTC(M12, M13, func(in *Inputs, _ *Levels) uint8 {
				v := byBase(in, 8, 10)
				lowIntra := in.RefIntraPercentage < 85 && !in.ScreenContent
				switch in.Coeff {
				case CoeffLow:
					return v
				case CoeffHigh:
					return pick(lowIntra, 0, v)
				}
				return pick(lowIntra && !in.base(), 0, v)
			}),
			at(M13, func(in *Inputs, _ *Levels) uint8 {
				return pick(in.RefIntraPercentage < 85 && !in.ScreenContent, 0, byBase(in, 8, 10))
			}),
		},
	},
	TxShortcutLevel: {
		ladder: []rung{
			at(M4, lvl(0)),
			at(M5, func(in *Inputs, _ *Levels) uint8 { return byBase(in, 0, 1) }),
			at(M10, func(in *Inputs, _ *Levels) uint8 { return pick(in.islice(), 0, 1) }),
			at(M13, func(in *Inputs, _ *Levels) uint8 { return pick(in.islice(), 0, 4) }),
		},
	},
	InterpolationSearchLevel: {
		ladder: []rung{
			at(MR, lvl(2)),
			at(M6, lvl(4)),
			at(M13, func(in *Inputs, _ *Levels) uint8 {
				return pick(!in.base() && in.RefSkipPercentage > interpSkipTh[in.Resolution], 0, 4)
			}),
		},
	},
	ChromaLevel: {
		ladder: []rung{at(MRS, lvl(1)), at(M2, lvl(2)), at(M6, lvl(3)), at(M13, lvl(5))},
	},
	CFLLevel: {
		ladder: []rung{
			at(M4, lvl(1)),
			at(M6, func(in *Inputs, _ *Levels) uint8 {
				if in.ScreenContent {
					return 1
				}
				return byBase(in, 2, 0)
			}),
			at(M9, func(in *Inputs, _ *Levels) uint8 { return byBase(in, 2, 0) }),
			at(M11, func(in *Inputs, _ *Levels) uint8 {
				if !in.ScreenContent && in.HierarchicalLevels <= 3 {
					return pick(in.islice(), 2, 0)
				}
				return byBase(in, 2, 0)
			}),
			at(M12, func(in *Inputs, _ *Levels) uint8 {
				if in.ScreenContent {
					return byBase(in, 2, 0)
				}
				return pick(in.islice(), 2, 0)
			}),
			at(M13, func(in *Inputs, _ *Levels) uint8 {
				if in.ScreenContent {
					return byBase(in, 2, 0)
				}
				return 0
			}),
		},
	},
	NewNearestNearInjection: {ladder: []rung{at(M0, lvl(1)), at(M13, lvl(0))}},
	Unipred3x3Injection:     {ladder: []rung{at(M0, lvl(1)), at(M13, lvl(0))}},
	Bipred3x3Injection:      {ladder: []rung{at(M0, lvl(1)), at(M2, lvl(2)), at(M13, lvl(0))}},
	InterCompoundMode: {
		gate: func(in *Inputs) (uint8, bool) {
			if !in.CompoundEnabled {
				return forced(0)
			}
			return open()
		},
		ladder: []rung{at(MR, lvl(1)), at(M1, lvl(3)), at(M3, lvl(4)), at(M13, lvl(0))},
	},
	DistBasedRefPruning: {
		gate: func(in *Inputs) (uint8, bool) {
			if in.RefListCountTry[0] <= 1 && in.RefListCountTry[1] <= 1 {
				return forced(0)
			}
			return open()
		},
		ladder: []rung{
			at(MR, lvl(1)),
			at(M0, func(in *Inputs, _ *Levels) uint8 { return byBase(in, 1, 2) }),
			at(M4, func(in *Inputs, _ *Levels) uint8 { return byBase(in, 2, 5) }),
			at(M5, func(in *Inputs, _ *Levels) uint8 { return byBase(in, 2, 6) }),
			at(M13, func(in *Inputs, _ *Levels) uint8 {
				if in.Coeff == CoeffLow {
					return byBase(in, 2, 6)
				}
				return byBase(in, 3, 6)
			}),
		},
	},
	SpatialSSEFullLoopLevel: {
		ladder: []rung{
			at(M11, lvl(1)),
			at(M13, func(in *Inputs, _ *Levels) uint8 { return pick(in.ScreenContent, 1, 0) }),
		},
	},
	NSQLevel: {
		ladder: []rung{
			at(MRS, lvl(1)),
			at(MR, lvl(2)),
			at(M1, func(in *Inputs, _ *Levels) uint8 { return byBase(in, 3, 4) }),
			at(M2, func(in *Inputs, _ *Levels) uint8 { return byBase(in, 4, 5) }),
			at(M3, func(in *Inputs, _ *Levels) uint8 { return byBase(in, 5, 6) }),
			at(M4, func(in *Inputs, _ *Levels) uint8 {
				return byCoeff(in, byBase(in, 5, 6), byBase(in, 6, 7), 8)
			}),
			at(M5, func(in *Inputs, _ *Levels) uint8 {
				return byCoeff(in, byBase(in, 6, 7), byBase(in, 7, 8), byBase(in, 9, 10))
			}),
			at(M13, lvl(0)),
		},
	},
	InterIntraLevel: {
		gate: func(in *Inputs) (uint8, bool) {
			if in.islice() || !in.InterIntraEnabled {
				return forced(0)
			}
			return open()
		},
		ladder: []rung{
			at(M1, lvl(1)),
			at(M2, func(in *Inputs, _ *Levels) uint8 { return pick(in.TransitionPresent || in.base(), 1, 0) }),
			at(M11, func(in *Inputs, _ *Levels) uint8 { return pick(in.TransitionPresent, 1, 0) }),
			at(M13, lvl(0)),
		},
	},
	TxsLevel: {
		ladder: []rung{
			at(MRS, lvl(1)),
			at(MR, lvl(2)),
			at(M2, func(in *Inputs, _ *Levels) uint8 { return byBase(in, 2, 3) }),
			at(M7, func(in *Inputs, _ *Levels) uint8 { return byBase(in, 2, 0) }),
			atRTC(M9, M10, func(in *Inputs, _ *Levels) uint8 { return pick(in.islice(), 3, 0) }),
			at(M10, func(in *Inputs, _ *Levels) uint8 {
				if in.HierarchicalLevels <= 3 {
					return pick(in.islice(), 5, 0)
				}
				return pick(in.islice(), 3, 0)
			}),
			at(M13, func(in *Inputs, _ *Levels) uint8 { return pick(in.islice(), 5, 0) }),
		},
	},
	TxMode: {
		ladder: []rung{
			at(M13, func(_ *Inputs, lv *Levels) uint8 { return pick(lv[TxsLevel] != 0, TxModeSelect, TxModeLargest) }),
		},
	},
	NICLevel: {
		ladder: []rung{
			at(MRS, lvl(0)),
			at(MR, lvl(1)),
			at(M1, lvl(3)),
			at(M2, lvl(4)),
			at(M4, lvl(6)),
			at(M5, lvl(7)),
			at(M7, lvl(9)),
			at(M9, lvl(12)),
			at(M10, lvl(13)),
			at(M11, func(in *Inputs, _ *Levels) uint8 {
				if in.RTC {
					return byBase(in, 13, 14)
				}
				return byBase(in, 14, 15)
			}),
			at(M13, lvl(15)),
		},
	},
	MDSQMVSearchLevel:  {ladder: []rung{at(M0, lvl(1)), at(M13, lvl(0))}},
	MDNSQMVSearchLevel: {ladder: []rung{at(MRS, lvl(2)), at(M13, lvl(4))}},
	MDPMELevel: {
		ladder: []rung{
			at(MR, lvl(1)),
			at(M3, lvl(2)),
			at(M5, func(in *Inputs, _ *Levels) uint8 { return pick(in.HierarchicalLevels <= 3, 6, 3) }),
			at(M7, lvl(5)),
			at(M13, lvl(6)),
		},
	},
	MDS0Level: {
		ladder: []rung{
			atRTC(M9, M10, lvl(2)),
			at(M11, func(in *Inputs, _ *Levels) uint8 {
				if in.HierarchicalLevels <= 3 {
					return pick(in.islice(), 2, 4)
				}
				return 2
			}),
			at(M13, func(in *Inputs, _ *Levels) uint8 { return pick(in.islice(), 2, 4) }),
		},
	},
	Disallow4x4: {
		ladder: []rung{
			at(M0, lvl(0)),
			at(M5, func(in *Inputs, _ *Levels) uint8 { return pick(in.islice(), 0, 1) }),
			at(M13, lvl(1)),
		},
	},
	BypassEncDec: {
		gate: func(in *Inputs) (uint8, bool) {
			if in.RTC && in.base() {
				return forced(0)
			}
			return open()
		},
		ladder: []rung{
			at(M7, lvl(0)),
			at(M13, func(in *Inputs, _ *Levels) uint8 { return pick(in.BitDepth == 8 && in.HBDMD == 0, 1, 0) }),
		},
		post: func(in *Inputs, lv *Levels, v uint8) uint8 {
			if v == 0 {
				return 0
			}
			cdf := CDFControls(lv[CDFUpdateLevel], in.islice())
			if in.BitDepth == 8 && lv[NSQLevel] == 0 && (!cdf.UpdateCoef || in.islice()) && !in.SegmentationEnabled {
				return v
			}
			return 0
		},
	},
	LPD0Level: {
		ladder: []rung{
			at(M2, lvl(0)),
			at(M5, lvl(1)),
			at(M9, func(in *Inputs, _ *Levels) uint8 {
				return byCoeff(in, 1, 2, pick(in.lpdBase(), 2, 4))
			}),
			at(M10, func(in *Inputs, _ *Levels) uint8 {
				tb := in.lpdBase()
				return byCoeff(in, 2, pick(tb, 2, 4), pick(tb, 5, 6))
			}),
			at(M11, func(in *Inputs, _ *Levels) uint8 {
				tb := in.lpdBase()
				if in.RTC {
					return byCoeff(in, 2, pick(tb, 4, 6), pick(tb, 5, 7))
				}
				return byCoeff(in, pick(tb, 2, 4), pick(tb, 5, 6), pick(tb, 5, 7))
			}),
			at(M13, func(in *Inputs, _ *Levels) uint8 {
				tb := in.lpdBase()
				if in.RTC {
					if in.Mode <= M12 {
						return byCoeff(in, 4, pick(tb, 4, 6), pick(tb, 5, 7))
					}
					return pick(in.islice(), 4, 7)
				}
				return byCoeff(in, pick(tb, 5, 6), pick(tb, 5, 7), 7)
			}),
		},
	},
	SkipPD0: {
		gate: func(in *Inputs) (uint8, bool) {
			if in.ScreenContent || in.MiddlePass {
				return forced(0)
			}
			return open()
		},
		ladder: []rung{at(M13, lvl(0))},
	},
	DisallowBelow16x16: {
		gate: func(in *Inputs) (uint8, bool) {
			if in.ScreenContent || in.islice() {
				return forced(0)
			}
			return open()
		},
		ladder: []rung{
			atRTC(M10, M9, lvl(0)),
			at(M12, func(in *Inputs, _ *Levels) uint8 {
				return pick(in.Resolution >= Res1080p && !in.IsReference, 1, 0)
			}),
			at(M13, func(in *Inputs, _ *Levels) uint8 {
				return pick(!in.IsReference || in.Resolution >= Res720p, 1, 0)
			}),
		},
	},
	DepthRemovalLevel: {
		gate: func(in *Inputs) (uint8, bool) {
			if in.SuperblockSize != 64 || in.islice() || in.TransitionPresent {
				return forced(0)
			}
			return open()
		},
		ladder: []rung{at(M13, depthRemoval)},
	},
	BlockBasedDepthRefinementLevel: {
		ladder: []rung{at(M13, blockBasedDepthRefinement)},
		post: func(in *Inputs, _ *Levels, v uint8) uint8 {
			if in.HierarchicalLevels == 5 && v > 0 {
				return v - 1
			}
			return v
		},
	},
	DepthEarlyExitTh: {ladder: []rung{at(M1, lvl(0)), at(M13, lvl(90))}},
	LPD1Level: {
		ladder: []rung{at(M13, lpd1)},
		post: func(in *Inputs, lv *Levels, v uint8) uint8 {
			if v != 0 && !(in.HBDMD == 0 && lv[NSQLevel] == 0 && lv[Disallow4x4] == 1 && in.SuperblockSize == 64) {
				return 0
			}
			return v
		},
	},
	DetectHighFreqLevel: {
		gate: func(in *Inputs) (uint8, bool) {
			if in.islice() || in.SuperblockSize == 128 {
				return forced(0)
			}
			if in.ScreenContent {
				return forced(1)
			}
			return open()
		},
		ladder: []rung{atRTC(M12, M13, lvl(2)), at(M13, lvl(0))},
	},
}

// lpdBase is true for pictures that anchor their neighbourhood: base
// layer pictures and scene transitions.
func (in *Inputs) lpdBase() bool { return in.base() || in.TransitionPresent }

// depthRemoval branches on content class first, since screen content and
// fast decode tunings use their own mode thresholds.
func depthRemoval(in *Inputs, _ *Levels) uint8 {
	m, r := in.Mode, in.Resolution
	if in.ScreenContent {
		switch {
		case m <= M8:
			return 0
		case m <= M10:
			return byBase(in, 0, 6)
		case m <= M12:
			return byBase(in, 4, 6)
		}
		return byBase(in, 5, 14)
	}
	byRes := func(r360a, r360b uint8) uint8 {
		switch {
		case r <= Res360p:
			return byBase(in, r360a, r360b)
		case r <= Res480p:
			return byBase(in, 2, 5)
		case r <= Res720p:
			return byBase(in, 2, 6)
		case r <= Res1080p:
			return byBase(in, 3, 8)
		}
		return byBase(in, 9, 14)
	}
	if !in.FastDecode {
		switch {
		case m <= M1:
			return 0
		case m <= M7:
			return pick(r <= Res480p, 1, 2)
		case m <= M8:
			if in.Coeff == CoeffLow {
				return pick(r <= Res480p, 1, 2)
			}
			if r <= Res480p {
				return 1
			}
			return byBase(in, 2, 6)
		case m <= M9:
			if in.Coeff == CoeffLow {
				return pick(r <= Res480p, 1, 2)
			}
			switch {
			case r <= Res360p:
				return byBase(in, 2, 3)
			case r <= Res480p:
				return byBase(in, 2, 5)
			}
			return byBase(in, 2, 6)
		case m <= M11:
			return byRes(2, 3)
		}
		switch {
		case r <= Res360p:
			return byBase(in, 2, 3)
		case r <= Res480p:
			return byBase(in, 9, 11)
		}
		return byBase(in, 9, 14)
	}
	switch {
	case m <= M2:
		return 0
	case m <= M5:
		return pick(r <= Res480p, 1, 2)
	case m <= M7:
		return pick(r <= Res1080p, 1, 2)
	case m <= M8:
		switch {
		case r <= Res360p:
			return byBase(in, 2, 3)
		case r <= Res480p:
			return byBase(in, 2, 5)
		}
		return byBase(in, 2, 6)
	case m <= M11:
		return byRes(2, 4)
	}
	switch {
	case r <= Res360p:
		return 7
	case r <= Res480p:
		return byBase(in, 9, 11)
	}
	return byBase(in, 9, 14)
}

func blockBasedDepthRefinement(in *Inputs, _ *Levels) uint8 {
	m := in.Mode
	if in.ScreenContent {
		switch {
		case m <= M6:
			return 0
		case m <= M9:
			return byBase(in, 0, 5)
		case m <= M10:
			return pick(in.islice(), 1, 5)
		}
		return pick(in.islice(), 7, 12)
	}
	low := in.Coeff == CoeffLow
	switch {
	case m <= M2:
		return 0
	case m <= M5:
		return pick(low, byBase(in, 0, 2), byBase(in, 0, 4))
	case in.RTC && m > M8:
		return pick(low, byBase(in, 2, 6), byBase(in, 7, 10))
	}
	return pick(low, byBase(in, 1, 4), byBase(in, 2, 5))
}

// lpd1 thresholds move one preset later under real-time tuning from M11.
func lpd1(in *Inputs, _ *Levels) uint8 {
	m := in.Mode
	if in.ScreenContent {
		switch {
		case m <= M7:
			return 0
		case m <= M9:
			return pick(in.IsReference, 0, 1)
		case m <= M10:
			return pick(in.IsReference, 0, 2)
		case m <= M11:
			return byBase(in, 0, 2)
		}
		return byBase(in, 0, 4)
	}
	switch {
	case m <= M7:
		return 0
	case m <= M9:
		return byCoeff(in, 0, pick(in.IsReference, 0, 1), byBase(in, 0, 2))
	case m <= M10:
		return byCoeff(in, pick(in.IsReference, 0, 1), byBase(in, 0, 2), byBase(in, 0, 3))
	case m <= M11 || (in.RTC && m <= M12):
		if in.RTC && in.Coeff == CoeffLow {
			return pick(in.IsReference, 0, 2)
		}
		return byCoeff(in, byBase(in, 0, 2), byBase(in, 0, 3), byBase(in, 0, 4))
	case m <= M12 || (in.RTC && m <= M13):
		return byCoeff(in, byBase(in, 0, 3), byBase(in, 0, 4), byBase(in, 0, 5))
	}
	if in.Resolution <= Res1080p && in.BitDepth == 8 {
		return byBase(in, 0, 6)
	}
	return byBase(in, 0, 5)
}

