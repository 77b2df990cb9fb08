package mdconfig

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/deepteams/mdconfig/internal/av1"
	"github.com/deepteams/mdconfig/internal/cdef"
	"github.com/deepteams/mdconfig/internal/intrabc"
	"github.com/deepteams/mdconfig/internal/mfmv"
	"github.com/deepteams/mdconfig/internal/quant"
	"github.com/deepteams/mdconfig/internal/refpool"
	"github.com/deepteams/mdconfig/internal/signal"
)

type harness struct {
	st   *Stage
	refs *refpool.Pool
	in   chan *RateControlResult
	outs []chan *EncDecTask
}

func newHarness(t *testing.T, cfg *SequenceConfig, nOut, capacity int) *harness {
	t.Helper()
	h := &harness{refs: refpool.New(), in: make(chan *RateControlResult, capacity)}
	var outs []chan<- *EncDecTask
	for range nOut {
		ch := make(chan *EncDecTask, capacity)
		h.outs = append(h.outs, ch)
		outs = append(outs, ch)
	}
	st, err := NewStage(cfg, h.refs, h.in, outs, nil)
	if err != nil {
		t.Fatalf("NewStage: %v", err)
	}
	h.st = st
	return h
}

// drain empties every output without blocking.
func (h *harness) drain() []*EncDecTask {
	var tasks []*EncDecTask
	for _, ch := range h.outs {
		for n := len(ch); n > 0; n-- {
			tasks = append(tasks, <-ch)
		}
	}
	return tasks
}

func intraPicture(n uint64) *Picture {
	return &Picture{
		Number:        n,
		Slice:         av1.ISlice,
		FrameType:     av1.KeyFrame,
		IsReference:   true,
		BaseQIndex:    100,
		PictureQP:     25,
		AlignedWidth:  64,
		AlignedHeight: 64,
		TileGroupCols: 2,
		TileGroupRows: 3,
	}
}

func levelsOf(m map[signal.Feature]uint8) signal.Levels {
	var lv signal.Levels
	for f, v := range m {
		lv[f] = v
	}
	return lv
}

func TestProcess_IntraSlowestTier(t *testing.T) {
	h := newHarness(t, DefaultSequenceConfig(signal.MRS), 2, 8)
	released := 0
	pic := intraPicture(1)
	if _, ok := pic.Levels(); ok {
		t.Fatal("levels reported before configuration")
	}

	err := h.st.Process(context.Background(), &RateControlResult{Picture: pic, Release: func() { released++ }})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := levelsOf(map[signal.Feature]uint8{
		signal.CDFUpdateLevel:           1,
		signal.FilterIntraLevel:         1,
		signal.PartitionContexts:        signal.PartitionContextsFull,
		signal.OBMCLevel:                1,
		signal.MotionModeSwitchable:     1,
		signal.TxtLevel:                 1,
		signal.InterpolationSearchLevel: 2,
		signal.ChromaLevel:              1,
		signal.CFLLevel:                 1,
		signal.NewNearestNearInjection:  1,
		signal.Unipred3x3Injection:      1,
		signal.Bipred3x3Injection:       1,
		signal.InterCompoundMode:        1,
		signal.SpatialSSEFullLoopLevel:  1,
		signal.NSQLevel:                 1,
		signal.TxsLevel:                 1,
		signal.TxMode:                   signal.TxModeSelect,
		signal.MDSQMVSearchLevel:        1,
		signal.MDNSQMVSearchLevel:       2,
		signal.MDPMELevel:               1,
		signal.MDS0Level:                2,
	})
	got, ok := pic.Levels()
	if !ok {
		t.Fatal("picture not marked configured")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}

	for i, ch := range h.outs {
		if n := len(ch); n != 3 {
			t.Errorf("output %d holds %d tasks, want 3", i, n)
		}
	}
	tasks := h.drain()
	if len(tasks) != 6 {
		t.Fatalf("tasks = %d, want 6", len(tasks))
	}
	seen := map[int]bool{}
	for _, task := range tasks {
		if task.Picture != pic || task.InputType != MDCInput {
			t.Errorf("task %+v has wrong picture or type", task)
		}
		seen[task.TileGroupIndex] = true
	}
	if len(seen) != 6 {
		t.Errorf("tile group indices %v, want 0..5", seen)
	}
	if released != 1 {
		t.Errorf("released %d times, want 1", released)
	}

	if pic.CoeffLevel != signal.CoeffInvalid {
		t.Errorf("intra coeff level = %v, want invalid", pic.CoeffLevel)
	}
	if pic.MotionField != nil {
		t.Error("intra picture has a motion field")
	}
	if pic.SGRefFrameEP != [2]int{-1, -1} {
		t.Errorf("SGRefFrameEP = %v, want [-1 -1]", pic.SGRefFrameEP)
	}
	if pic.Quants == nil || pic.Dequants == nil || pic.QM == nil {
		t.Fatal("quantizer tables not built")
	}
	if want := [quant.NumPlanes]int{15, 15, 15}; pic.QMLevel != want {
		t.Errorf("QMLevel = %v, want %v", pic.QMLevel, want)
	}
	for rf, gm := range pic.GlobalMotion {
		if gm != IdentityWarp() {
			t.Errorf("global motion of slot %d = %+v, want identity", rf, gm)
		}
	}
	if !pic.CDF.UpdateCoef || pic.CDF.UpdateMV {
		t.Errorf("CDF = %+v, want coefficient updates without mv", pic.CDF)
	}
}

func TestProcess_RoundRobin(t *testing.T) {
	h := newHarness(t, DefaultSequenceConfig(signal.M8), 3, 8)
	pic := intraPicture(1)
	pic.TileGroupCols, pic.TileGroupRows = 3, 2
	if err := h.st.Process(context.Background(), &RateControlResult{Picture: pic}); err != nil {
		t.Fatal(err)
	}
	for i, ch := range h.outs {
		if n := len(ch); n != 2 {
			t.Errorf("output %d got %d tasks, want 2", i, n)
		}
	}
}

func TestProcess_SuperresRecode(t *testing.T) {
	h := newHarness(t, DefaultSequenceConfig(signal.M4), 2, 8)
	pic := intraPicture(1)
	pic.TileGroupCols, pic.TileGroupRows = 4, 4
	if err := h.st.Process(context.Background(), &RateControlResult{Picture: pic, SuperresRecode: true}); err != nil {
		t.Fatal(err)
	}
	tasks := h.drain()
	if len(tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(tasks))
	}
	if tasks[0].InputType != SuperresInput || tasks[0].TileGroupIndex != 0 {
		t.Errorf("task = %+v, want superres tile group 0", tasks[0])
	}
}

func TestProcess_RecodeConfiguredPicture(t *testing.T) {
	h := newHarness(t, DefaultSequenceConfig(signal.M4), 1, 8)

	l0 := refDescriptor(4, nil)
	l0.CDEFStrengths = [2][]uint8{{9}, {4}}
	l1 := refDescriptor(8, nil)
	l1.CDEFStrengths = [2][]uint8{{9}, {2}}

	pic := intraPicture(5)
	pic.Slice, pic.FrameType = av1.BSlice, av1.InterFrame
	pic.OrderHint = 6
	pic.TileGroupCols, pic.TileGroupRows = 2, 2
	pic.Refs[0][0] = publish(t, h.refs, l0)
	pic.Refs[1][0] = publish(t, h.refs, l1)
	pic.CDEFLevel = 4
	pic.CDEFControls = cdef.Controls{SearchBestRefFS: true}
	pic.CDEFControls.DefaultFirstPassFS[0] = 5

	ctx := context.Background()
	if err := h.st.Process(ctx, &RateControlResult{Picture: pic}); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	first := pic.CDEFControls
	if !first.UseReferenceFS || first.PredUV != 3 {
		t.Fatalf("first pass controls = %+v, want reference filter with chroma 3", first)
	}
	if got := len(h.drain()); got != 4 {
		t.Fatalf("first pass tasks = %d, want 4", got)
	}

	released := 0
	err := h.st.Process(ctx, &RateControlResult{Picture: pic, SuperresRecode: true, Release: func() { released++ }})
	if err != nil {
		t.Fatalf("recode: %v", err)
	}
	tasks := h.drain()
	if len(tasks) != 1 || tasks[0].InputType != SuperresInput {
		t.Fatalf("recode tasks = %+v, want one superres task", tasks)
	}
	if released != 1 {
		t.Errorf("recode released %d times, want 1", released)
	}
	if diff := cmp.Diff(first, pic.CDEFControls); diff != "" {
		t.Errorf("recode refined the refined controls (-first +recode):\n%s", diff)
	}
	if pic.CDEFLevel != 4 {
		t.Errorf("recode cdef level = %d, want 4", pic.CDEFLevel)
	}
	if _, ok := pic.Levels(); !ok {
		t.Error("picture not configured after recode")
	}

	if err := h.st.Process(ctx, &RateControlResult{Picture: pic}); !errors.Is(err, ErrInvalidPicture) {
		t.Errorf("plain reconfiguration: err = %v, want ErrInvalidPicture", err)
	}
}

// refDescriptor returns a 64x64 descriptor at order hint oh whose own
// references all sit at oh-2.
func refDescriptor(oh uint32, mvs map[[2]int]av1.MVRef) *refpool.Descriptor {
	d := &refpool.Descriptor{OrderHint: oh, FrameType: av1.InterFrame, MiRows: 16, MiCols: 16}
	rows, cols := d.MVGrid()
	d.MVs = make([]av1.MVRef, rows*cols)
	for pos, mv := range mvs {
		d.MVs[pos[0]*cols+pos[1]] = mv
	}
	for i := range d.RefOrderHints {
		d.RefOrderHints[i] = oh - 2
	}
	return d
}

func publish(t *testing.T, p *refpool.Pool, d *refpool.Descriptor) refpool.Handle {
	t.Helper()
	h, err := p.Publish(d)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	return h
}

func TestProcess_InterPicture(t *testing.T) {
	cfg := DefaultSequenceConfig(signal.M0)
	h := newHarness(t, cfg, 1, 8)

	last := refDescriptor(4, map[[2]int]av1.MVRef{
		{2, 2}: {MV: av1.MV{Row: 64, Col: 128}, RefFrame: av1.LastFrame},
	})
	last.CDEFStrengths = [2][]uint8{{10, 20}, {1}}
	last.SGFrameEP = 3
	bwd := refDescriptor(8, nil)
	bwd.CDEFStrengths = [2][]uint8{{30}, {2}}
	bwd.SGFrameEP = 5

	pic := &Picture{
		Number:          7,
		Slice:           av1.BSlice,
		FrameType:       av1.InterFrame,
		TemporalLayer:   1,
		BaseQIndex:      120,
		PictureQP:       40,
		OrderHint:       6,
		AlignedWidth:    64,
		AlignedHeight:   64,
		TileGroupCols:   1,
		TileGroupRows:   1,
		RefListCountTry: [2]uint8{1, 1},
		MEDist8x8:       []uint64{600_000, 400_000},
		MEDist64:        []uint64{4000, 4000},
		CDEFLevel:       4,
		CDEFControls:    cdef.Controls{UseReferenceFS: true},
	}
	pic.Refs[0][0] = publish(t, h.refs, last)
	pic.Refs[1][0] = publish(t, h.refs, bwd)

	if err := h.st.Process(context.Background(), &RateControlResult{Picture: pic}); err != nil {
		t.Fatalf("Process: %v", err)
	}
	lv, _ := pic.Levels()
	if lv[signal.UseRefFrameMVs] != 1 {
		t.Fatalf("UseRefFrameMVs = %d, want 1", lv[signal.UseRefFrameMVs])
	}
	if pic.CoeffLevel != signal.CoeffLow {
		t.Errorf("coeff level = %v, want low", pic.CoeffLevel)
	}
	if pic.MotionField == nil || pic.MotionField.Valid() != 1 {
		t.Fatalf("motion field %+v, want one projected cell", pic.MotionField)
	}
	if got := pic.MotionField.At(1, 0).MV; got != (av1.MV{Row: 64, Col: 128}) {
		t.Errorf("projected mv = %v", got)
	}
	if pic.RefFrameSide[av1.BwdrefFrame] != mfmv.SideFuture || pic.RefFrameSide[av1.LastFrame] != mfmv.SidePast {
		t.Errorf("sides = %v", pic.RefFrameSide)
	}
	if pic.SGRefFrameEP != [2]int{3, 5} {
		t.Errorf("SGRefFrameEP = %v, want [3 5]", pic.SGRefFrameEP)
	}
	if pic.CDEFControls.PredY != 20 || pic.CDEFLevel != 4 {
		t.Errorf("cdef predY %d level %d, want 20 and 4", pic.CDEFControls.PredY, pic.CDEFLevel)
	}
}

func TestProcess_SidesWithoutProjection(t *testing.T) {
	cfg := DefaultSequenceConfig(signal.M0)
	cfg.EnableMFMV = false
	h := newHarness(t, cfg, 1, 8)

	pic := intraPicture(2)
	pic.Slice, pic.FrameType = av1.BSlice, av1.InterFrame
	pic.OrderHint = 6
	pic.Refs[0][0] = publish(t, h.refs, refDescriptor(4, nil))
	pic.Refs[1][0] = publish(t, h.refs, refDescriptor(8, nil))
	if err := h.st.Process(context.Background(), &RateControlResult{Picture: pic}); err != nil {
		t.Fatal(err)
	}
	if pic.MotionField != nil {
		t.Error("motion field projected with MFMV disabled")
	}
	if pic.RefFrameSide[av1.BwdrefFrame] != mfmv.SideFuture {
		t.Errorf("sides = %v, want BWDREF in the future", pic.RefFrameSide)
	}
}

func TestProcess_StaleReference(t *testing.T) {
	h := newHarness(t, DefaultSequenceConfig(signal.M6), 1, 8)
	handle := publish(t, h.refs, refDescriptor(4, nil))
	if err := h.refs.Release(handle); err != nil {
		t.Fatal(err)
	}

	pic := intraPicture(3)
	pic.Slice, pic.FrameType = av1.PSlice, av1.InterFrame
	pic.Refs[0][0] = handle
	released := false
	err := h.st.Process(context.Background(), &RateControlResult{Picture: pic, Release: func() { released = true }})
	if !errors.Is(err, refpool.ErrStaleHandle) {
		t.Fatalf("err = %v, want ErrStaleHandle", err)
	}
	if !released {
		t.Error("input not released on failure")
	}
	if len(h.drain()) != 0 {
		t.Error("tasks dispatched for a failed picture")
	}
}

func TestProcess_InvalidPicture(t *testing.T) {
	h := newHarness(t, DefaultSequenceConfig(signal.M6), 1, 8)
	ctx := context.Background()

	if err := h.st.Process(ctx, &RateControlResult{}); !errors.Is(err, ErrInvalidPicture) {
		t.Errorf("nil picture: err = %v", err)
	}

	odd := intraPicture(1)
	odd.AlignedWidth = 60
	if err := h.st.Process(ctx, &RateControlResult{Picture: odd}); !errors.Is(err, ErrInvalidPicture) {
		t.Errorf("unaligned width: err = %v", err)
	}

	noTiles := intraPicture(2)
	noTiles.TileGroupRows = 0
	if err := h.st.Process(ctx, &RateControlResult{Picture: noTiles}); !errors.Is(err, ErrInvalidPicture) {
		t.Errorf("no tile groups: err = %v", err)
	}

	pic := intraPicture(3)
	if err := h.st.Process(ctx, &RateControlResult{Picture: pic}); err != nil {
		t.Fatal(err)
	}
	if err := h.st.Process(ctx, &RateControlResult{Picture: pic}); !errors.Is(err, ErrInvalidPicture) {
		t.Errorf("second configuration: err = %v", err)
	}
}

func noisePlane(w, h int, seed uint64) intrabc.Plane {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	pix := make([]byte, w*h)
	for i := range pix {
		pix[i] = byte(rng.IntN(256))
	}
	return intrabc.Plane{Pix: pix, Stride: w, Width: w, Height: h}
}

func TestProcess_IntraBC(t *testing.T) {
	cfg := DefaultSequenceConfig(signal.M2)
	cfg.IntraBC = intrabc.Options{MaxBlockSize: 16}
	h := newHarness(t, cfg, 1, 8)

	pic := intraPicture(1)
	pic.AllowIntraBC = true
	pic.Luma = noisePlane(64, 64, 1)
	// Copy the 16x16 block at (0,0) to (32,40).
	for y := range 16 {
		copy(pic.Luma.Pix[(40+y)*64+32:(40+y)*64+48], pic.Luma.Pix[y*64:y*64+16])
	}
	if err := h.st.Process(context.Background(), &RateControlResult{Picture: pic}); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if pic.HashTable == nil {
		t.Fatal("no hash table")
	}
	key, hash2, err := intrabc.BlockHash(pic.Luma.Pix[40*64+32:], 64, 16)
	if err != nil {
		t.Fatal(err)
	}
	var hits int
	for _, e := range pic.HashTable.Lookup(key) {
		if e.Hash2 == hash2 {
			hits++
		}
	}
	if hits < 2 {
		t.Errorf("copied block found %d times, want at least 2", hits)
	}
	if !pic.SpeedFeatures.AllowExhaustiveSearches || pic.SpeedFeatures.MaxExhaustivePct != 100 {
		t.Errorf("speed features = %+v, want intra block copy tables", pic.SpeedFeatures)
	}

	bad := intraPicture(2)
	bad.AllowIntraBC = true
	bad.Luma = noisePlane(32, 32, 2)
	if err := h.st.Process(context.Background(), &RateControlResult{Picture: bad}); !errors.Is(err, ErrInvalidPicture) {
		t.Errorf("mismatched luma: err = %v", err)
	}
}

func TestProcess_NoiseGates(t *testing.T) {
	cfg := DefaultSequenceConfig(signal.M5)
	cfg.SharpnessCDEF, cfg.SharpnessRestoration = true, true
	h := newHarness(t, cfg, 1, 16)

	pic := intraPicture(1)
	pic.NoiseLevel = true
	pic.CDEFLevel = 3
	pic.EnableRestoration = true
	if err := h.st.Process(context.Background(), &RateControlResult{Picture: pic}); err != nil {
		t.Fatal(err)
	}
	if pic.CDEFLevel != 0 || pic.EnableRestoration {
		t.Errorf("noisy picture: cdef %d restoration %t, want 0 and false", pic.CDEFLevel, pic.EnableRestoration)
	}

	clean := intraPicture(2)
	clean.CDEFLevel = 3
	clean.EnableRestoration = true
	if err := h.st.Process(context.Background(), &RateControlResult{Picture: clean}); err != nil {
		t.Fatal(err)
	}
	if clean.CDEFLevel != 3 || !clean.EnableRestoration {
		t.Errorf("clean picture: cdef %d restoration %t, want 3 and true", clean.CDEFLevel, clean.EnableRestoration)
	}
}

func TestProcess_OwnDescriptorResize(t *testing.T) {
	cfg := DefaultSequenceConfig(signal.M6)
	cfg.ResizeEnabled = true
	h := newHarness(t, cfg, 1, 8)
	last := publish(t, h.refs, refDescriptor(4, nil))

	own := &refpool.Descriptor{MiRows: 40, MiCols: 40}
	pic := intraPicture(1)
	pic.Slice, pic.FrameType = av1.PSlice, av1.InterFrame
	pic.AlignedWidth, pic.AlignedHeight = 96, 48
	pic.OrderHint = 6
	pic.Refs[0][0] = last
	pic.Reconstructed = own
	if err := h.st.Process(context.Background(), &RateControlResult{Picture: pic}); err != nil {
		t.Fatal(err)
	}
	if own.MiRows != 12 || own.MiCols != 24 {
		t.Errorf("own descriptor grid = %dx%d, want 12x24", own.MiRows, own.MiCols)
	}
}

func TestProcess_FirstPass(t *testing.T) {
	cfg := DefaultSequenceConfig(signal.M3)
	cfg.Pass = FirstPass
	h := newHarness(t, cfg, 1, 8)
	pic := intraPicture(1)
	pic.Slice, pic.FrameType = av1.PSlice, av1.InterFrame
	pic.MEDist8x8 = []uint64{1 << 30}
	if err := h.st.Process(context.Background(), &RateControlResult{Picture: pic}); err != nil {
		t.Fatal(err)
	}
	lv, _ := pic.Levels()
	if lv[signal.NICLevel] != 15 || lv[signal.NSQLevel] != 0 {
		t.Errorf("first pass NIC %d NSQ %d, want 15 and 0", lv[signal.NICLevel], lv[signal.NSQLevel])
	}
	if pic.CoeffLevel != signal.CoeffInvalid {
		t.Errorf("first pass predicted coeff level %v", pic.CoeffLevel)
	}
}

func TestRunWorkers(t *testing.T) {
	const pictures = 24
	h := newHarness(t, DefaultSequenceConfig(signal.M7), 2, pictures*6)
	var released atomic.Int32
	pics := make([]*Picture, pictures)
	for i := range pics {
		pics[i] = intraPicture(uint64(i))
		h.in <- &RateControlResult{Picture: pics[i], Release: func() { released.Add(1) }}
	}
	close(h.in)

	if err := h.st.RunWorkers(context.Background(), 4); err != nil {
		t.Fatalf("RunWorkers: %v", err)
	}
	if got := len(h.drain()); got != pictures*6 {
		t.Errorf("tasks = %d, want %d", got, pictures*6)
	}
	if got := released.Load(); got != pictures {
		t.Errorf("released = %d, want %d", got, pictures)
	}
	for _, p := range pics {
		if _, ok := p.Levels(); !ok {
			t.Errorf("picture %d not configured", p.Number)
		}
	}
}

func TestRunWorkers_StopsOnError(t *testing.T) {
	h := newHarness(t, DefaultSequenceConfig(signal.M7), 1, 16)
	bad := intraPicture(1)
	bad.TileGroupCols = 0
	h.in <- &RateControlResult{Picture: bad}

	err := h.st.RunWorkers(context.Background(), 2)
	if !errors.Is(err, ErrInvalidPicture) {
		t.Fatalf("err = %v, want ErrInvalidPicture", err)
	}
}

func TestRun_CancelWhileIdle(t *testing.T) {
	h := newHarness(t, DefaultSequenceConfig(signal.M7), 1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := h.st.Run(ctx); err != nil {
		t.Errorf("Run = %v, want nil", err)
	}
}

func TestNewStage_Invalid(t *testing.T) {
	in := make(chan *RateControlResult)
	out := []chan<- *EncDecTask{make(chan *EncDecTask)}
	refs := refpool.New()

	bad := DefaultSequenceConfig(signal.M4)
	bad.BitDepth = 9
	qm := DefaultSequenceConfig(signal.M4)
	qm.MinQMLevel, qm.MaxQMLevel = 10, 4
	mode := DefaultSequenceConfig(signal.MaxEncMode + 1)

	tests := []struct {
		name string
		cfg  *SequenceConfig
		out  []chan<- *EncDecTask
	}{
		{"nil_config", nil, out},
		{"bit_depth", bad, out},
		{"qm_levels", qm, out},
		{"preset", mode, out},
		{"no_outputs", DefaultSequenceConfig(signal.M4), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewStage(tt.cfg, refs, in, tt.out, nil); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGlobalMotionField(t *testing.T) {
	pic := &Picture{GMDownsample: GMDown16}
	est := IdentityWarp()
	est.Type = Translation
	est.Mat[0], est.Mat[1] = 1000, -3_000_000
	pic.GlobalMotionEstimate[1][0] = est
	pic.IsGlobalMotion[1][0] = true
	pic.GlobalMotionEstimate[0][1] = est

	gm := globalMotionField(pic)
	want := est
	want.Mat[0], want.Mat[1] = 4000, -gmTransLimit
	if diff := cmp.Diff(want, gm[av1.BwdrefFrame]); diff != "" {
		t.Errorf("bwdref model (-want +got):\n%s", diff)
	}
	if gm[av1.Last2Frame] != IdentityWarp() {
		t.Errorf("unflagged slot = %+v, want identity", gm[av1.Last2Frame])
	}

	pic.GMDownsample = GMDown
	if got := globalMotionField(pic)[av1.BwdrefFrame].Mat[0]; got != 2000 {
		t.Errorf("half resolution translation = %d, want 2000", got)
	}
	pic.GMDownsample = GMFull
	if got := globalMotionField(pic)[av1.BwdrefFrame].Mat[1]; got != -3_000_000 {
		t.Errorf("full resolution translation = %d, want -3000000", got)
	}
}

func TestSGRefFrameEP(t *testing.T) {
	var refs [av1.TotalRefsPerFrame]*refpool.Descriptor
	refs[av1.LastFrame] = &refpool.Descriptor{SGFrameEP: 7}
	refs[av1.BwdrefFrame] = &refpool.Descriptor{SGFrameEP: 9}
	tests := []struct {
		slice av1.SliceType
		want  [2]int
	}{
		{av1.ISlice, [2]int{-1, -1}},
		{av1.PSlice, [2]int{7, 0}},
		{av1.BSlice, [2]int{7, 9}},
	}
	for _, tt := range tests {
		if got := sgRefFrameEP(tt.slice, refs); got != tt.want {
			t.Errorf("%v: got %v, want %v", tt.slice, got, tt.want)
		}
	}
}

func BenchmarkProcessIntra(b *testing.B) {
	refs := refpool.New()
	out := make(chan *EncDecTask, 8)
	st, err := NewStage(DefaultSequenceConfig(signal.M6), refs, make(chan *RateControlResult), []chan<- *EncDecTask{out}, nil)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		pic := intraPicture(1)
		pic.TileGroupCols, pic.TileGroupRows = 1, 1
		if err := st.Process(context.Background(), &RateControlResult{Picture: pic}); err != nil {
			b.Fatal(err)
		}
		<-out
	}
}
