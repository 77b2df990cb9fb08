package mdconfig

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/deepteams/mdconfig/internal/av1"
	"github.com/deepteams/mdconfig/internal/cdef"
	"github.com/deepteams/mdconfig/internal/intrabc"
	"github.com/deepteams/mdconfig/internal/mfmv"
	"github.com/deepteams/mdconfig/internal/quant"
	"github.com/deepteams/mdconfig/internal/refpool"
	"github.com/deepteams/mdconfig/internal/signal"
)

// Stage configures pictures for mode decision and fans their tile groups
// out to the encode stage. All methods are safe for concurrent use; any
// number of workers may run the same Stage.
type Stage struct {
	cfg  *SequenceConfig
	refs *refpool.Pool
	in   <-chan *RateControlResult
	out  []chan<- *EncDecTask
	next atomic.Uint64

	log     *slog.Logger
	mesh    *intrabc.MeshConfig
	workers int
}

// NewStage validates cfg and returns a stage reading from in and writing
// round-robin to out. opts may be nil.
func NewStage(cfg *SequenceConfig, refs *refpool.Pool, in <-chan *RateControlResult, out []chan<- *EncDecTask, opts *Options) (*Stage, error) {
	if cfg == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "nil sequence config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if refs == nil || in == nil || len(out) == 0 {
		return nil, errors.Wrap(ErrInvalidConfig, "stage needs a reference pool, an input and at least one output")
	}
	return &Stage{
		cfg:     cfg,
		refs:    refs,
		in:      in,
		out:     out,
		log:     opts.logger(),
		mesh:    opts.mesh(),
		workers: opts.workers(),
	}, nil
}

// Run is one worker's loop. It returns nil once the input is closed or ctx
// is done while idle. A processing error stops the worker and is returned;
// it is fatal to the encode.
func (s *Stage) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case rc, ok := <-s.in:
			if !ok {
				return nil
			}
			if err := s.Process(ctx, rc); err != nil {
				s.log.Warn("worker stopped", "error", err)
				return err
			}
		}
	}
}

// RunWorkers runs n workers (Options.Workers when n <= 0) until the
// input closes or one of them fails.
func (s *Stage) RunWorkers(ctx context.Context, n int) error {
	if n <= 0 {
		n = s.workers
	}
	g, gctx := errgroup.WithContext(ctx)
	for range n {
		g.Go(func() error { return s.Run(gctx) })
	}
	return g.Wait()
}

// Process configures one picture, dispatches its tasks and releases rc.
func (s *Stage) Process(ctx context.Context, rc *RateControlResult) error {
	if rc == nil || rc.Picture == nil {
		return errors.Wrap(ErrInvalidPicture, "nil picture")
	}
	if rc.Release != nil {
		defer rc.Release()
	}
	pic := rc.Picture
	if err := s.configure(pic, rc.SuperresRecode); err != nil {
		return err
	}

	tasks := pic.TileGroupCols * pic.TileGroupRows
	typ := MDCInput
	if rc.SuperresRecode {
		// The recode is handled by a single task.
		tasks, typ = 1, SuperresInput
	}
	s.log.Debug("picture configured",
		"picture", pic.Number,
		"slice", pic.Slice.String(),
		"qindex", pic.BaseQIndex,
		"coeff_lvl", pic.CoeffLevel.String(),
		"tasks", tasks,
		"superres_recode", rc.SuperresRecode)

	for i := range tasks {
		t := &EncDecTask{Picture: pic, InputType: typ, TileGroupIndex: i}
		ch := s.out[(s.next.Add(1)-1)%uint64(len(s.out))]
		select {
		case ch <- t:
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "picture %d: dispatching tile group %d", pic.Number, i)
		}
	}
	return nil
}

func wrapPicture(p *Picture, format string, args ...any) error {
	return errors.Wrapf(ErrInvalidPicture, "picture %d: "+format, append([]any{p.Number}, args...)...)
}

// references resolves the handles of every inter slot.
func (s *Stage) references(p *Picture) ([av1.TotalRefsPerFrame]*refpool.Descriptor, error) {
	var refs [av1.TotalRefsPerFrame]*refpool.Descriptor
	if p.Slice == av1.ISlice {
		return refs, nil
	}
	for rf := av1.LastFrame; rf <= av1.AltrefFrame; rf++ {
		d, err := s.refs.Get(p.Refs[rf.ListIndex()][rf.ListRefIndex()])
		if err != nil {
			return refs, errors.Wrapf(err, "picture %d: %s reference", p.Number, refName(rf))
		}
		refs[rf] = d
	}
	return refs, nil
}

func refName(rf av1.RefFrame) string {
	return [...]string{"intra", "last", "last2", "last3", "golden", "bwdref", "altref2", "altref"}[rf]
}

// signalInputs gathers what the feature derivation reads.
func (s *Stage) signalInputs(p *Picture) *signal.Inputs {
	c := s.cfg
	return &signal.Inputs{
		Mode:                c.EncMode,
		RTC:                 c.RTC,
		Slice:               p.Slice,
		FrameType:           p.FrameType,
		TemporalLayer:       p.TemporalLayer,
		HierarchicalLevels:  c.HierarchicalLevels,
		IsReference:         p.IsReference,
		Resolution:          c.Resolution,
		Coeff:               p.CoeffLevel,
		QIndex:              p.BaseQIndex,
		BitDepth:            c.BitDepth,
		HBDMD:               p.HBDMD,
		SuperblockSize:      c.SuperblockSize,
		FastDecode:          c.FastDecode,
		ScreenContent:       p.ScreenContent,
		TransitionPresent:   p.TransitionPresent,
		ErrorResilient:      p.ErrorResilient,
		SuperresEnabled:     p.SuperresEnabled,
		ResizeEnabled:       c.ResizeEnabled,
		SegmentationEnabled: p.SegmentationEnabled,
		MFMVEnabled:         c.EnableMFMV,
		FilterIntraEnabled:  c.EnableFilterIntra,
		CompoundEnabled:     c.EnableCompound,
		InterIntraEnabled:   c.EnableInterIntra,
		StatGenPass:         c.StatGenPass,
		MiddlePass:          c.Pass == MiddlePass,
		AvgMEDist:           signal.AvgMEDist(p.MEDist64, p.PictureQP),
		RefIntraPercentage:  p.RefIntraPercentage,
		RefSkipPercentage:   p.RefSkipPercentage,
		RefListCountTry:     p.RefListCountTry,
		Overrides:           c.Overrides,
	}
}

// configure runs the per-picture steps in dependency order: the motion
// field and quantizer index are settled before CDEF reads them. A recode
// re-derives every output from the original CDEF inputs.
func (s *Stage) configure(p *Picture, recode bool) error {
	if err := p.validate(recode); err != nil {
		return err
	}
	if p.configured {
		p.CDEFLevel, p.CDEFControls = p.cdefLevelIn, p.cdefControlsIn
	} else {
		p.cdefLevelIn, p.cdefControlsIn = p.CDEFLevel, p.CDEFControls
	}
	c := s.cfg
	islice := p.Slice == av1.ISlice

	p.CoeffLevel = signal.CoeffInvalid
	if c.Pass != FirstPass && !islice && !p.ScreenContent {
		p.CoeffLevel = signal.PredictCoeffLevel(p.MEDist8x8, p.PictureQP)
	}

	// Other pictures project this one's motion at the coded size.
	if (p.SuperresEnabled || c.ResizeEnabled) && !islice && p.IsReference && p.Reconstructed != nil {
		p.Reconstructed.MiRows = p.MiRows()
		p.Reconstructed.MiCols = p.MiCols()
	}

	in := s.signalInputs(p)
	if c.Pass == FirstPass {
		p.levels = signal.DeriveFirstPass(in)
	} else {
		p.levels = signal.Derive(in)
	}
	p.CDF = signal.CDFControls(p.levels[signal.CDFUpdateLevel], islice)

	refs, err := s.references(p)
	if err != nil {
		return err
	}
	if !islice {
		f := &mfmv.Frame{
			MiRows:         p.MiRows(),
			MiCols:         p.MiCols(),
			OrderHint:      int(p.OrderHint),
			OrderHintInfo:  mfmv.OrderHintInfo{Enable: c.OrderHintBits > 0, Bits: c.OrderHintBits},
			Refs:           refs,
			UseRefFrameMVs: c.EnableMFMV && p.levels[signal.UseRefFrameMVs] != 0,
		}
		p.MotionField, p.RefFrameSide = mfmv.Setup(f)
	}

	p.SGRefFrameEP = sgRefFrameEP(p.Slice, refs)
	p.GlobalMotion = globalMotionField(p)

	p.QM = new(quant.MatrixSet)
	quant.InitMatrixSet(p.QM)
	p.QMLevel = quant.QMLevels(p.UsingQMatrix, int(p.BaseQIndex), p.DeltaQ.UAC, p.DeltaQ.VAC, c.MinQMLevel, c.MaxQMLevel)
	p.Quants, p.Dequants = quant.Build(c.BitDepth, p.DeltaQ)

	if p.AllowIntraBC {
		p.SpeedFeatures = s.mesh.SpeedFeatures(islice)
		if p.Luma.Width != p.AlignedWidth || p.Luma.Height != p.AlignedHeight {
			return wrapPicture(p, "luma plane %dx%d, want %dx%d", p.Luma.Width, p.Luma.Height, p.AlignedWidth, p.AlignedHeight)
		}
		p.HashTable, err = intrabc.Build(p.Luma, c.IntraBC)
		if err != nil {
			return errors.Wrapf(err, "picture %d: block hash", p.Number)
		}
	}

	p.CDEFControls, p.CDEFLevel = cdef.Select(&cdef.Input{
		Slice:             p.Slice,
		Level:             p.CDEFLevel,
		Controls:          p.CDEFControls,
		RefSkipPercentage: p.RefSkipPercentage,
		SharpnessCDEF:     c.SharpnessCDEF,
		NoiseLevel:        p.NoiseLevel,
		L0:                refs[av1.LastFrame],
		L1:                refs[av1.BwdrefFrame],
	})

	if c.SharpnessRestoration && p.NoiseLevel {
		p.EnableRestoration = false
	}
	p.configured = true
	return nil
}

// sgRefFrameEP picks the self-guided parameter sets the restoration
// search starts from. -1 searches every set.
func sgRefFrameEP(slice av1.SliceType, refs [av1.TotalRefsPerFrame]*refpool.Descriptor) [2]int {
	ep := func(d *refpool.Descriptor) int {
		if d == nil {
			return 0
		}
		return d.SGFrameEP
	}
	switch slice {
	case av1.BSlice:
		return [2]int{ep(refs[av1.LastFrame]), ep(refs[av1.BwdrefFrame])}
	case av1.PSlice:
		return [2]int{ep(refs[av1.LastFrame]), 0}
	}
	return [2]int{-1, -1}
}
