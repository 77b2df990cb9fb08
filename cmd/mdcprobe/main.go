// Command mdcprobe inspects the mode-decision configuration of pictures.
//
// Usage:
//
//	mdcprobe levels [options]            Feature levels of one picture
//	mdcprobe ladder [options] <feature>  One feature across every preset
//	mdcprobe run [options]               Push a synthetic sequence through the stage
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/deepteams/mdconfig"
	"github.com/deepteams/mdconfig/internal/av1"
	"github.com/deepteams/mdconfig/internal/refpool"
	"github.com/deepteams/mdconfig/internal/signal"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "mdcprobe: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)
		return errors.New("missing command")
	}
	switch args[0] {
	case "levels":
		return runLevels(args[1:], stdout, stderr)
	case "ladder":
		return runLadder(args[1:], stdout, stderr)
	case "run":
		return runSequence(args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return errors.Errorf("unknown command %q", args[0])
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  mdcprobe levels [options]            Print the feature levels of one picture
  mdcprobe ladder [options] <feature>  Print one feature at every preset
  mdcprobe run [options]               Configure a synthetic sequence

Run "mdcprobe <command> -h" for command-specific options.
`)
}

// pictureFlags describes one picture and the sequence around it.
type pictureFlags struct {
	preset    string
	slice     string
	layer     uint
	hier      uint
	res       string
	coeff     string
	q         uint
	sb        int
	bitDepth  int
	hbd       uint
	rtc       bool
	fast      bool
	sc        bool
	nonRef    bool
	firstPass bool
	overrides signal.Overrides
}

func (p *pictureFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.preset, "preset", "M8", "speed preset: MRS, MR, M0-M13")
	fs.StringVar(&p.slice, "slice", "B", "slice type: I, P or B")
	fs.UintVar(&p.layer, "layer", 1, "temporal layer")
	fs.UintVar(&p.hier, "hier", 5, "hierarchical levels")
	fs.StringVar(&p.res, "res", "1080p", "resolution class: 240p 360p 480p 720p 1080p 4k 8k")
	fs.StringVar(&p.coeff, "coeff", "normal", "coefficient level: low, normal, high")
	fs.UintVar(&p.q, "q", 120, "base qindex 0-255")
	fs.IntVar(&p.sb, "sb", 64, "superblock size: 64 or 128")
	fs.IntVar(&p.bitDepth, "bd", 8, "bit depth: 8, 10 or 12")
	fs.UintVar(&p.hbd, "hbd", 0, "high bit depth mode decision: 0, 1 or 2")
	fs.BoolVar(&p.rtc, "rtc", false, "real-time tuning")
	fs.BoolVar(&p.fast, "fast", false, "fast decode")
	fs.BoolVar(&p.sc, "sc", false, "screen content")
	fs.BoolVar(&p.nonRef, "nonref", false, "picture is not a reference")
	fs.BoolVar(&p.firstPass, "firstpass", false, "derive first-pass levels")
	p.overrides = signal.Overrides{}
	fs.Func("o", "override `feature=level` (repeatable)", func(s string) error {
		name, val, ok := strings.Cut(s, "=")
		if !ok {
			return errors.Errorf("override %q: want feature=level", s)
		}
		f, ok := signal.ParseFeature(name)
		if !ok {
			return errors.Errorf("unknown feature %q", name)
		}
		v, err := strconv.ParseUint(val, 10, 8)
		if err != nil {
			return errors.Wrapf(err, "override %s", name)
		}
		p.overrides[f] = uint8(v)
		return nil
	})
}

func parseSlice(s string) (av1.SliceType, error) {
	switch strings.ToUpper(s) {
	case "I":
		return av1.ISlice, nil
	case "P":
		return av1.PSlice, nil
	case "B":
		return av1.BSlice, nil
	}
	return 0, errors.Errorf("unknown slice type %q", s)
}

// inputs turns the flags into derivation inputs.
func (p *pictureFlags) inputs() (*signal.Inputs, error) {
	mode, err := signal.ParseEncMode(p.preset)
	if err != nil {
		return nil, err
	}
	slice, err := parseSlice(p.slice)
	if err != nil {
		return nil, err
	}
	res, err := signal.ParseResolution(p.res)
	if err != nil {
		return nil, err
	}
	coeff, err := signal.ParseCoeffLevel(p.coeff)
	if err != nil {
		return nil, err
	}
	if p.q > 255 || p.hbd > 2 || p.hier > signal.MaxHierarchicalLevels {
		return nil, errors.Errorf("q %d, hbd %d or hier %d out of range", p.q, p.hbd, p.hier)
	}
	if p.sb != 64 && p.sb != 128 {
		return nil, errors.Errorf("superblock size %d", p.sb)
	}
	if p.bitDepth != 8 && p.bitDepth != 10 && p.bitDepth != 12 {
		return nil, errors.Errorf("bit depth %d", p.bitDepth)
	}

	in := &signal.Inputs{
		Mode:               mode,
		RTC:                p.rtc,
		Slice:              slice,
		FrameType:          av1.InterFrame,
		TemporalLayer:      uint8(p.layer),
		HierarchicalLevels: uint8(p.hier),
		IsReference:        !p.nonRef,
		Resolution:         res,
		Coeff:              coeff,
		QIndex:             uint8(p.q),
		BitDepth:           p.bitDepth,
		HBDMD:              uint8(p.hbd),
		SuperblockSize:     p.sb,
		FastDecode:         p.fast,
		ScreenContent:      p.sc,
		MFMVEnabled:        true,
		FilterIntraEnabled: true,
		CompoundEnabled:    true,
		InterIntraEnabled:  true,
		RefListCountTry:    [2]uint8{2, 2},
		Overrides:          p.overrides,
	}
	if slice == av1.ISlice {
		in.FrameType = av1.KeyFrame
		in.TemporalLayer = 0
		in.Coeff = signal.CoeffInvalid
	}
	return in, nil
}

func (p *pictureFlags) derive(in *signal.Inputs) signal.Levels {
	if p.firstPass {
		return signal.DeriveFirstPass(in)
	}
	return signal.Derive(in)
}

func runLevels(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("levels", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var pf pictureFlags
	pf.register(fs)
	all := fs.Bool("all", false, "also print features at level 0")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, err := pf.inputs()
	if err != nil {
		return errors.Wrap(err, "levels")
	}
	lv := pf.derive(in)

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s %s layer %d %s q%d\n", in.Mode, in.Slice, in.TemporalLayer, in.Resolution, in.QIndex)
	for f := range signal.Feature(signal.NumFeatures) {
		if lv[f] == 0 && !*all {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\n", f, lv[f])
	}
	return tw.Flush()
}

func runLadder(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ladder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var pf pictureFlags
	pf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("ladder: want exactly one feature name")
	}
	f, ok := signal.ParseFeature(fs.Arg(0))
	if !ok {
		return errors.Errorf("ladder: unknown feature %q", fs.Arg(0))
	}
	in, err := pf.inputs()
	if err != nil {
		return errors.Wrap(err, "ladder")
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "preset\t%s\tcost\n", f)
	for m := signal.MinEncMode; m <= signal.MaxEncMode; m++ {
		in.Mode = m
		lv := pf.derive(in)
		fmt.Fprintf(tw, "%s\t%d\t%d\n", m, lv[f], signal.CostRank(f, lv[f]))
	}
	return tw.Flush()
}

// runSequence configures a key frame followed by low-delay P pictures
// that all predict from it.
func runSequence(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	preset := fs.String("preset", "M8", "speed preset")
	frames := fs.Int("n", 8, "number of pictures")
	workers := fs.Int("workers", 2, "configuration workers")
	width := fs.Int("w", 352, "aligned width")
	height := fs.Int("h", 288, "aligned height")
	tiles := fs.Int("tiles", 2, "tile groups per row and column")
	verbose := fs.Bool("v", false, "log every configured picture")
	if err := fs.Parse(args); err != nil {
		return err
	}
	mode, err := signal.ParseEncMode(*preset)
	if err != nil {
		return errors.Wrap(err, "run")
	}
	if *frames < 1 || *tiles < 1 {
		return errors.Errorf("run: need at least one picture and one tile group, got %d and %d", *frames, *tiles)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := mdconfig.DefaultSequenceConfig(mode)
	refs := refpool.New()
	perPicture := *tiles * *tiles
	in := make(chan *mdconfig.RateControlResult, *frames)
	out := make(chan *mdconfig.EncDecTask, *frames*perPicture)
	st, err := mdconfig.NewStage(cfg, refs, in, []chan<- *mdconfig.EncDecTask{out}, &mdconfig.Options{Logger: log, Workers: *workers})
	if err != nil {
		return errors.Wrap(err, "run")
	}

	key := &refpool.Descriptor{FrameType: av1.KeyFrame, MiRows: *height >> 2, MiCols: *width >> 2}
	rows, cols := key.MVGrid()
	key.MVs = make([]av1.MVRef, rows*cols)
	key.CDEFStrengths = [2][]uint8{{8}, {0}}
	keyHandle, err := refs.Publish(key)
	if err != nil {
		return errors.Wrap(err, "run")
	}

	pics := make([]*mdconfig.Picture, *frames)
	for i := range pics {
		p := &mdconfig.Picture{
			Number:        uint64(i),
			Slice:         av1.PSlice,
			FrameType:     av1.InterFrame,
			IsReference:   true,
			BaseQIndex:    120,
			PictureQP:     30,
			OrderHint:     uint32(i),
			AlignedWidth:  *width,
			AlignedHeight: *height,
			TileGroupCols: *tiles,
			TileGroupRows: *tiles,
		}
		if i == 0 {
			p.Slice, p.FrameType = av1.ISlice, av1.KeyFrame
		} else {
			if err := refs.Retain(keyHandle); err != nil {
				return errors.Wrap(err, "run")
			}
			p.Refs[0][0] = keyHandle
		}
		pics[i] = p
		release := func() {}
		if i > 0 {
			release = func() { _ = refs.Release(keyHandle) }
		}
		in <- &mdconfig.RateControlResult{Picture: p, Release: release}
	}
	close(in)

	if err := st.RunWorkers(context.Background(), 0); err != nil {
		return errors.Wrap(err, "run")
	}
	close(out)
	tasks := 0
	for range out {
		tasks++
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "picture\tslice\tcoeff\tqm\tmfmv")
	for _, p := range pics {
		lv, _ := p.Levels()
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", p.Number, p.Slice, p.CoeffLevel, p.QMLevel[0], lv[signal.UseRefFrameMVs])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "tasks: %d\n", tasks)
	return refs.Release(keyHandle)
}
