package signal

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/deepteams/mdconfig/internal/av1"
)

func intraInputs(mode EncMode) *Inputs {
	return &Inputs{
		Mode:               mode,
		Slice:              av1.ISlice,
		FrameType:          av1.KeyFrame,
		HierarchicalLevels: 5,
		IsReference:        true,
		Resolution:         Res1080p,
		Coeff:              CoeffInvalid,
		QIndex:             100,
		BitDepth:           8,
		SuperblockSize:     128,
		MFMVEnabled:        true,
		FilterIntraEnabled: true,
		CompoundEnabled:    true,
		InterIntraEnabled:  true,
	}
}

func levelsOf(m map[Feature]uint8) Levels {
	var lv Levels
	for f, v := range m {
		lv[f] = v
	}
	return lv
}

func TestDerive_SlowestIntraDefaults(t *testing.T) {
	want := levelsOf(map[Feature]uint8{
		CDFUpdateLevel:           1,
		FilterIntraLevel:         1,
		PartitionContexts:        PartitionContextsFull,
		OBMCLevel:                1,
		MotionModeSwitchable:     1,
		TxtLevel:                 1,
		InterpolationSearchLevel: 2,
		ChromaLevel:              1,
		CFLLevel:                 1,
		NewNearestNearInjection:  1,
		Unipred3x3Injection:      1,
		Bipred3x3Injection:       1,
		InterCompoundMode:        1,
		SpatialSSEFullLoopLevel:  1,
		NSQLevel:                 1,
		TxsLevel:                 1,
		TxMode:                   TxModeSelect,
		MDSQMVSearchLevel:        1,
		MDNSQMVSearchLevel:       2,
		MDPMELevel:               1,
		MDS0Level:                2,
	})
	got := Derive(intraInputs(MRS))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Derive(I, MRS) mismatch (-want +got):\n%s", diff)
	}
}

func TestDerive_Pictures(t *testing.T) {
	tests := []struct {
		name string
		in   func() *Inputs
		want map[Feature]uint8
	}{
		{
			name: "I_M13",
			in:   func() *Inputs { return intraInputs(M13) },
			want: map[Feature]uint8{
				PartitionContexts:        PartitionContextsReduced,
				ApproxInterRate:          1,
				InterpolationSearchLevel: 4,
				ChromaLevel:              5,
				TxsLevel:                 5,
				TxMode:                   TxModeSelect,
				NICLevel:                 15,
				MDNSQMVSearchLevel:       4,
				MDPMELevel:               6,
				MDS0Level:                2,
				Disallow4x4:              1,
				BypassEncDec:             1,
				LPD0Level:                5,
				DepthEarlyExitTh:         90,

				BlockBasedDepthRefinementLevel: 1,
			},
		},
		{
			name: "B_M8_high",
			in: func() *Inputs {
				in := intraInputs(M8)
				in.Slice, in.FrameType = av1.BSlice, av1.InterFrame
				in.TemporalLayer, in.HierarchicalLevels, in.IsReference = 2, 3, false
				in.Coeff = CoeffHigh
				in.SuperblockSize = 64
				in.RefIntraPercentage, in.RefSkipPercentage = 10, 40
				in.AvgMEDist = 120
				in.RefListCountTry = [2]uint8{2, 2}
				return in
			},
			want: map[Feature]uint8{
				UseRefFrameMVs:                 1,
				PartitionContexts:              PartitionContextsReduced,
				CandReductionLevel:             3,
				TxtLevel:                       10,
				TxShortcutLevel:                1,
				ChromaLevel:                    5,
				DistBasedRefPruning:            6,
				SpatialSSEFullLoopLevel:        1,
				TxMode:                         TxModeLargest,
				NICLevel:                       12,
				MDNSQMVSearchLevel:             4,
				MDPMELevel:                     6,
				MDS0Level:                      2,
				Disallow4x4:                    1,
				BypassEncDec:                   1,
				LPD0Level:                      4,
				DepthRemovalLevel:              6,
				BlockBasedDepthRefinementLevel: 5,
				DepthEarlyExitTh:               90,
				LPD1Level:                      2,
				DetectHighFreqLevel:            2,
			},
		},
		{
			name: "P_M10_rtc_low",
			in: func() *Inputs {
				in := intraInputs(M10)
				in.RTC = true
				in.Slice, in.FrameType = av1.PSlice, av1.InterFrame
				in.HierarchicalLevels = 3
				in.Resolution = Res720p
				in.Coeff = CoeffLow
				in.SuperblockSize = 64
				in.RefListCountTry = [2]uint8{2, 2}
				return in
			},
			want: map[Feature]uint8{
				UseRefFrameMVs:                 1,
				PartitionContexts:              PartitionContextsReduced,
				WarpedMotionLevel:              1,
				AllowWarpedMotion:              1,
				MotionModeSwitchable:           1,
				CandReductionLevel:             3,
				TxtLevel:                       4,
				TxShortcutLevel:                1,
				InterpolationSearchLevel:       4,
				ChromaLevel:                    5,
				DistBasedRefPruning:            2,
				SpatialSSEFullLoopLevel:        1,
				TxMode:                         TxModeLargest,
				NICLevel:                       13,
				MDNSQMVSearchLevel:             4,
				MDPMELevel:                     6,
				MDS0Level:                      2,
				Disallow4x4:                    1,
				LPD0Level:                      2,
				DepthRemovalLevel:              2,
				BlockBasedDepthRefinementLevel: 2,
				DepthEarlyExitTh:               90,
				DetectHighFreqLevel:            2,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.in())
			if diff := cmp.Diff(levelsOf(tt.want), got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type gridCase struct {
	in    Inputs
	label string
}

// monotonicGrid enumerates realistic picture contexts: intra pictures sit
// on the base layer, base layer pictures are references and 10-bit mode
// decision implies a 10-bit source.
func monotonicGrid() []gridCase {
	var out []gridCase
	slices := []av1.SliceType{av1.ISlice, av1.PSlice, av1.BSlice}
	bools := []bool{false, true}
	for _, sl := range slices {
		for _, layer := range []uint8{0, 1, 3} {
			for _, ref := range bools {
				for res := range ResolutionClass(NumResolutions) {
					for _, hier := range []uint8{2, 3, 5} {
						for _, coeff := range []CoeffLevel{CoeffLow, CoeffNormal, CoeffHigh} {
							for _, fast := range bools {
								for _, rtc := range bools {
									for _, ri := range []uint8{0, 90} {
										for _, sc := range bools {
											for _, sb := range []int{64, 128} {
												for _, bd := range []int{8, 10} {
													for _, hbd := range []uint8{0, 1} {
														if sl == av1.ISlice && (layer != 0 || !ref || coeff != CoeffLow) {
															continue
														}
														if layer >= hier || (layer == 0 && !ref) || (bd == 8 && hbd == 1) {
															continue
														}
														in := Inputs{
															RTC:                rtc,
															Slice:              sl,
															FrameType:          av1.InterFrame,
															TemporalLayer:      layer,
															HierarchicalLevels: hier,
															IsReference:        ref,
															Resolution:         res,
															Coeff:              coeff,
															QIndex:             60,
															BitDepth:           bd,
															HBDMD:              hbd,
															SuperblockSize:     sb,
															FastDecode:         fast,
															ScreenContent:      sc,
															MFMVEnabled:        true,
															FilterIntraEnabled: true,
															CompoundEnabled:    true,
															InterIntraEnabled:  true,
															AvgMEDist:          10,
															RefIntraPercentage: ri,
															RefSkipPercentage:  90,
															RefListCountTry:    [2]uint8{2, 2},
														}
														if sl == av1.ISlice {
															in.FrameType = av1.KeyFrame
															in.Coeff = CoeffInvalid
														}
														out = append(out, gridCase{in, fmt.Sprintf(
															"%v L%d ref=%t %v hier=%d coeff=%v fast=%t rtc=%t ri=%d sc=%t sb=%d bd=%d hbd=%d",
															sl, layer, ref, res, hier, in.Coeff, fast, rtc, ri, sc, sb, bd, hbd)})
													}
												}
											}
										}
									}
								}
							}
						}
					}
				}
			}
		}
	}
	return out
}

// Two steps are known to trade one tool for another rather than drop
// cost: prediction ME narrows at M6 with shallow hierarchies, and fast
// decode depth removal restarts its resolution split at M6.
func exempt(f Feature, in *Inputs) bool {
	switch {
	case f == MDPMELevel && in.Mode == M6 && in.HierarchicalLevels <= 3:
		return true
	case f == DepthRemovalLevel && in.Mode == M6 && in.FastDecode:
		return true
	}
	return false
}

func TestDerive_Monotonic(t *testing.T) {
	grid := monotonicGrid()
	if testing.Short() {
		grid = grid[:len(grid)/8]
	}
	failures := 0
	for i := range grid {
		in := &grid[i].in
		var prev Levels
		for m := MinEncMode; m <= MaxEncMode; m++ {
			in.Mode = m
			lv := Derive(in)
			for f := range Feature(NumFeatures) {
				r := CostRank(f, lv[f])
				if r < 0 {
					t.Fatalf("%s %v: %v level %d has no cost rank", grid[i].label, m, f, lv[f])
				}
				if m == MinEncMode || exempt(f, in) {
					continue
				}
				if r < CostRank(f, prev[f]) {
					failures++
					if failures <= 10 {
						t.Errorf("%s: %v goes from %d at %v to %d at %v", grid[i].label, f, prev[f], m-1, lv[f], m)
					}
				}
			}
			prev = lv
		}
	}
}

func TestDerive_KnownNonMonotonicSteps(t *testing.T) {
	in := intraInputs(M5)
	in.Slice, in.FrameType = av1.BSlice, av1.InterFrame
	in.HierarchicalLevels = 3
	in.SuperblockSize = 64
	in.RefListCountTry = [2]uint8{2, 2}

	if got := Derive(in)[MDPMELevel]; got != 6 {
		t.Errorf("PME at M5 hier 3 = %d, want 6", got)
	}
	in.Mode = M6
	if got := Derive(in)[MDPMELevel]; got != 5 {
		t.Errorf("PME at M6 hier 3 = %d, want 5", got)
	}

	in.FastDecode = true
	in.Resolution = Res720p
	in.Mode = M5
	if got := Derive(in)[DepthRemovalLevel]; got != 2 {
		t.Errorf("fast decode depth removal at M5 = %d, want 2", got)
	}
	in.Mode = M6
	if got := Derive(in)[DepthRemovalLevel]; got != 1 {
		t.Errorf("fast decode depth removal at M6 = %d, want 1", got)
	}
}

func TestDerive_RealTimeThresholds(t *testing.T) {
	inter := func(mode EncMode, sl av1.SliceType) *Inputs {
		in := intraInputs(mode)
		in.Slice, in.FrameType = sl, av1.InterFrame
		in.TemporalLayer, in.HierarchicalLevels, in.IsReference = 1, 3, false
		in.SuperblockSize = 64
		in.Coeff = CoeffNormal
		in.RefListCountTry = [2]uint8{2, 2}
		return in
	}
	tests := []struct {
		name    string
		in      *Inputs
		f       Feature
		want    uint8
		wantRTC uint8
	}{
		{"skip_intra_M9", inter(M9, av1.PSlice), SkipIntra, 1, 0},
		{"mds0_M10", inter(M10, av1.BSlice), MDS0Level, 4, 2},
		{"high_freq_M13", inter(M13, av1.BSlice), DetectHighFreqLevel, 0, 2},
		{"below16x16_M10", inter(M10, av1.BSlice), DisallowBelow16x16, 0, 1},
		{"nic_M11", inter(M11, av1.BSlice), NICLevel, 15, 14},
		{"lpd1_M12", inter(M12, av1.BSlice), LPD1Level, 4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.RTC = false
			if got := Derive(tt.in)[tt.f]; got != tt.want {
				t.Errorf("%v = %d, want %d", tt.f, got, tt.want)
			}
			tt.in.RTC = true
			if got := Derive(tt.in)[tt.f]; got != tt.wantRTC {
				t.Errorf("rtc %v = %d, want %d", tt.f, got, tt.wantRTC)
			}
		})
	}

	intra := intraInputs(M10)
	intra.HierarchicalLevels = 3
	if got := Derive(intra)[TxsLevel]; got != 5 {
		t.Errorf("TxsLevel I M10 hier 3 = %d, want 5", got)
	}
	intra.RTC = true
	if got := Derive(intra)[TxsLevel]; got != 3 {
		t.Errorf("rtc TxsLevel I M10 hier 3 = %d, want 3", got)
	}
}

func TestDerive_Overrides(t *testing.T) {
	in := intraInputs(M13)
	in.Overrides = Overrides{TxtLevel: 3, OBMCLevel: 2}
	lv := Derive(in)
	if lv[TxtLevel] != 3 {
		t.Errorf("TxtLevel = %d, want override 3", lv[TxtLevel])
	}
	if lv[OBMCLevel] != 2 || lv[MotionModeSwitchable] != 1 {
		t.Errorf("OBMC %d switchable %d, want 2 and 1", lv[OBMCLevel], lv[MotionModeSwitchable])
	}

	in = intraInputs(MRS)
	in.Overrides = Overrides{OBMCLevel: 0}
	if lv := Derive(in); lv[MotionModeSwitchable] != 0 {
		t.Errorf("switchable = %d after disabling OBMC, want 0", lv[MotionModeSwitchable])
	}

	// Dependent constraints still hold over an override.
	in = intraInputs(MRS)
	in.Overrides = Overrides{BypassEncDec: 1, LPD1Level: 3}
	lv = Derive(in)
	if lv[BypassEncDec] != 0 {
		t.Errorf("bypass = %d with NSQ %d, want 0", lv[BypassEncDec], lv[NSQLevel])
	}
	if lv[LPD1Level] != 0 {
		t.Errorf("lpd1 = %d with 128 superblocks, want 0", lv[LPD1Level])
	}

	// Gates are overridable too.
	in = intraInputs(MRS)
	in.MFMVEnabled = false
	in.Slice, in.FrameType = av1.PSlice, av1.InterFrame
	in.Overrides = Overrides{UseRefFrameMVs: 1}
	if lv := Derive(in); lv[UseRefFrameMVs] != 1 {
		t.Errorf("UseRefFrameMVs = %d, want override 1", lv[UseRefFrameMVs])
	}

	// The override cannot turn reference MVs on where the frame forbids them.
	for name, set := range map[string]func(*Inputs){
		"error_resilient": func(in *Inputs) { in.ErrorResilient = true },
		"intra":           func(in *Inputs) { in.Slice, in.FrameType = av1.ISlice, av1.KeyFrame },
	} {
		c := *in
		c.MFMVEnabled = true
		set(&c)
		if lv := Derive(&c); lv[UseRefFrameMVs] != 0 {
			t.Errorf("%s: UseRefFrameMVs = %d, want 0", name, lv[UseRefFrameMVs])
		}
	}
}

func TestDerive_DependentKnobs(t *testing.T) {
	in := intraInputs(M8)
	in.Slice, in.FrameType = av1.BSlice, av1.InterFrame
	in.TemporalLayer, in.HierarchicalLevels, in.IsReference = 1, 5, false
	in.SuperblockSize = 64
	in.Coeff = CoeffNormal
	in.RefListCountTry = [2]uint8{2, 2}

	lv := Derive(in)
	if lv[BypassEncDec] != 1 {
		t.Fatalf("bypass = %d, want 1", lv[BypassEncDec])
	}
	if lv[LPD1Level] != 1 {
		t.Fatalf("lpd1 = %d, want 1", lv[LPD1Level])
	}

	in.BitDepth = 10
	if got := Derive(in)[BypassEncDec]; got != 0 {
		t.Errorf("10-bit bypass = %d, want 0", got)
	}
	in.BitDepth = 8
	in.SegmentationEnabled = true
	if got := Derive(in)[BypassEncDec]; got != 0 {
		t.Errorf("segmented bypass = %d, want 0", got)
	}
	in.SegmentationEnabled = false
	in.Overrides = Overrides{CDFUpdateLevel: 2}
	if got := Derive(in)[BypassEncDec]; got != 0 {
		t.Errorf("bypass with coefficient cdf updates = %d, want 0", got)
	}
	in.Overrides = Overrides{CDFUpdateLevel: 3}
	if got := Derive(in)[BypassEncDec]; got != 1 {
		t.Errorf("bypass with se-only cdf updates = %d, want 1", got)
	}
	in.Overrides = nil

	in.HBDMD = 1
	in.BitDepth = 10
	if got := Derive(in)[LPD1Level]; got != 0 {
		t.Errorf("lpd1 with high bit depth md = %d, want 0", got)
	}
	in.HBDMD = 0
	in.BitDepth = 8
	in.Overrides = Overrides{Disallow4x4: 0}
	if got := Derive(in)[LPD1Level]; got != 0 {
		t.Errorf("lpd1 with 4x4 allowed = %d, want 0", got)
	}
}

func TestDerive_WarpedMotionGates(t *testing.T) {
	in := intraInputs(M0)
	in.Slice, in.FrameType = av1.PSlice, av1.InterFrame
	in.RefListCountTry = [2]uint8{2, 1}
	if lv := Derive(in); lv[WarpedMotionLevel] != 1 || lv[AllowWarpedMotion] != 1 {
		t.Fatalf("warp %d allow %d, want 1 and 1", lv[WarpedMotionLevel], lv[AllowWarpedMotion])
	}
	for name, set := range map[string]func(*Inputs){
		"error_resilient": func(in *Inputs) { in.ErrorResilient = true },
		"superres":        func(in *Inputs) { in.SuperresEnabled = true },
		"resize":          func(in *Inputs) { in.ResizeEnabled = true },
		"intra_only":      func(in *Inputs) { in.FrameType = av1.IntraOnlyFrame },
	} {
		c := *in
		set(&c)
		c.Overrides = Overrides{WarpedMotionLevel: 1}
		if lv := Derive(&c); lv[AllowWarpedMotion] != 0 {
			t.Errorf("%s: AllowWarpedMotion = %d, want 0", name, lv[AllowWarpedMotion])
		}
	}
}

func TestDerive_PanicsPastLastPreset(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Derive did not panic for an unknown preset")
		}
	}()
	in := intraInputs(MaxEncMode + 1)
	in.Slice, in.FrameType = av1.PSlice, av1.InterFrame
	Derive(in)
}

func TestDeriveFirstPass(t *testing.T) {
	in := intraInputs(MRS)
	in.SuperblockSize = 64
	lv := DeriveFirstPass(in)
	for f := range Feature(NumFeatures) {
		if r := CostRank(f, lv[f]); r < 0 {
			t.Errorf("%v = %d is not a known level", f, lv[f])
		}
	}
	checks := map[Feature]uint8{
		CDFUpdateLevel:     0,
		NSQLevel:           0,
		NICLevel:           15,
		TxMode:             TxModeLargest,
		CandReductionLevel: 7,
		BypassEncDec:       1,
		LPD1Level:          6,
		DepthEarlyExitTh:   90,
	}
	for f, want := range checks {
		if lv[f] != want {
			t.Errorf("first pass %v = %d, want %d", f, lv[f], want)
		}
	}

	in.BitDepth, in.HBDMD = 10, 1
	lv = DeriveFirstPass(in)
	if lv[BypassEncDec] != 0 || lv[LPD1Level] != 0 {
		t.Errorf("10-bit first pass bypass %d lpd1 %d, want 0 and 0", lv[BypassEncDec], lv[LPD1Level])
	}

	in.Overrides = Overrides{NICLevel: 0}
	if lv := DeriveFirstPass(in); lv[NICLevel] != 15 {
		t.Errorf("first pass honoured override: NIC %d", lv[NICLevel])
	}
}

func TestCDFControls(t *testing.T) {
	tests := []struct {
		level  uint8
		islice bool
		want   CDFControl
	}{
		{0, false, CDFControl{}},
		{1, false, CDFControl{Enabled: true, UpdateMV: true, UpdateSE: true, UpdateCoef: true}},
		{1, true, CDFControl{Enabled: true, UpdateSE: true, UpdateCoef: true}},
		{2, false, CDFControl{Enabled: true, UpdateSE: true, UpdateCoef: true}},
		{3, false, CDFControl{Enabled: true, UpdateSE: true}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, CDFControls(tt.level, tt.islice)); diff != "" {
			t.Errorf("CDFControls(%d, %t) (-want +got):\n%s", tt.level, tt.islice, diff)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("CDFControls(4) did not panic")
		}
	}()
	CDFControls(4, false)
}

func TestPredictCoeffLevel(t *testing.T) {
	tests := []struct {
		me   []uint64
		qp   uint8
		want CoeffLevel
	}{
		{nil, 30, CoeffLow},
		{[]uint64{29999}, 1, CoeffLow},
		{[]uint64{15000, 15000}, 1, CoeffNormal},
		{[]uint64{125000}, 1, CoeffNormal},
		{[]uint64{125001}, 1, CoeffHigh},
		{[]uint64{3_000_000, 1_000_000}, 40, CoeffNormal},
		{[]uint64{3_000_000, 3_000_000}, 40, CoeffHigh},
		{[]uint64{100}, 0, CoeffLow},
	}
	for _, tt := range tests {
		if got := PredictCoeffLevel(tt.me, tt.qp); got != tt.want {
			t.Errorf("PredictCoeffLevel(%v, %d) = %v, want %v", tt.me, tt.qp, got, tt.want)
		}
	}

	if got := AvgMEDist([]uint64{1000, 3000}, 10); got != 200 {
		t.Errorf("AvgMEDist = %d, want 200", got)
	}
	if got := AvgMEDist(nil, 10); got != 0 {
		t.Errorf("AvgMEDist(nil) = %d, want 0", got)
	}
}

func TestCostRank(t *testing.T) {
	if got := CostRank(TxtLevel, 1); got != 0 {
		t.Errorf("CostRank(TxtLevel, 1) = %d, want 0", got)
	}
	if got := CostRank(TxtLevel, 0); got != 8 {
		t.Errorf("CostRank(TxtLevel, 0) = %d, want 8", got)
	}
	if got := CostRank(TxtLevel, 6); got != -1 {
		t.Errorf("CostRank(TxtLevel, 6) = %d, want -1", got)
	}
	if got := CostRank(Feature(NumFeatures), 0); got != -1 {
		t.Errorf("CostRank(invalid) = %d, want -1", got)
	}
}

func TestParse(t *testing.T) {
	for s, want := range map[string]EncMode{"MRS": MRS, "mr": MR, "M0": M0, "13": M13, " m7 ": M7} {
		got, err := ParseEncMode(s)
		if err != nil || got != want {
			t.Errorf("ParseEncMode(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	for _, s := range []string{"M14", "-1", "fast", ""} {
		if _, err := ParseEncMode(s); err == nil {
			t.Errorf("ParseEncMode(%q) succeeded", s)
		}
	}
	if r, err := ParseResolution("4K"); err != nil || r != Res4K {
		t.Errorf("ParseResolution(4K) = %v, %v", r, err)
	}
	if _, err := ParseResolution("2k"); err == nil {
		t.Error("ParseResolution(2k) succeeded")
	}
	if f, ok := ParseFeature("LPD1Level"); !ok || f != LPD1Level {
		t.Errorf("ParseFeature(LPD1Level) = %v, %t", f, ok)
	}
	for f := range Feature(NumFeatures) {
		if g, ok := ParseFeature(f.String()); !ok || g != f {
			t.Errorf("round trip of %v gave %v", f, g)
		}
	}
}

func BenchmarkDerive(b *testing.B) {
	in := intraInputs(M8)
	in.Slice, in.FrameType = av1.BSlice, av1.InterFrame
	in.TemporalLayer = 2
	in.RefListCountTry = [2]uint8{2, 2}
	for b.Loop() {
		Derive(in)
	}
}
