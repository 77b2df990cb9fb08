package mdconfig

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/deepteams/mdconfig/internal/intrabc"
	"github.com/deepteams/mdconfig/internal/quant"
	"github.com/deepteams/mdconfig/internal/signal"
)

// Pass identifies the encoding pass of a multi-pass encode.
type Pass int

const (
	SinglePass Pass = iota
	FirstPass
	MiddlePass
	LastPass
)

// SequenceConfig holds the sequence-level settings shared by every
// picture. It is read-only once a Stage has been created from it.
type SequenceConfig struct {
	// EncMode is the speed preset, MRS (slowest) to M13 (fastest).
	EncMode signal.EncMode

	// RTC selects the low-delay real-time tuning.
	RTC bool

	Pass Pass
	// StatGenPass marks a rate control statistics generation run.
	StatGenPass bool

	BitDepth           int
	SuperblockSize     int
	HierarchicalLevels uint8
	Resolution         signal.ResolutionClass

	// OrderHintBits is the width of the order hint counter. Zero disables
	// order hints and with them motion field projection.
	OrderHintBits int

	EnableMFMV        bool
	EnableFilterIntra bool
	EnableCompound    bool
	EnableInterIntra  bool
	FastDecode        bool
	ResizeEnabled     bool

	// Quantizer matrix level range.
	MinQMLevel int
	MaxQMLevel int

	// SharpnessCDEF and SharpnessRestoration turn the respective loop
	// filter off on pictures flagged as noisy.
	SharpnessCDEF        bool
	SharpnessRestoration bool

	// IntraBC controls the block hash built for intra block copy.
	IntraBC intrabc.Options

	// Overrides replace speed ladder defaults for the listed features.
	Overrides signal.Overrides
}

// DefaultSequenceConfig returns an 8-bit, five-level hierarchical
// configuration at the given preset.
func DefaultSequenceConfig(mode signal.EncMode) *SequenceConfig {
	return &SequenceConfig{
		EncMode:            mode,
		BitDepth:           8,
		SuperblockSize:     64,
		HierarchicalLevels: 5,
		Resolution:         signal.Res1080p,
		OrderHintBits:      7,
		EnableMFMV:         true,
		EnableFilterIntra:  true,
		EnableCompound:     true,
		EnableInterIntra:   true,
		MinQMLevel:         8,
		MaxQMLevel:         15,
		IntraBC:            intrabc.Options{MaxBlockSize: 64},
	}
}

// Validate reports the first out-of-range setting.
func (c *SequenceConfig) Validate() error {
	if c.EncMode < signal.MinEncMode || c.EncMode > signal.MaxEncMode {
		return errors.Wrapf(ErrInvalidConfig, "EncMode %d (must be %d..%d)", c.EncMode, signal.MinEncMode, signal.MaxEncMode)
	}
	if c.Pass < SinglePass || c.Pass > LastPass {
		return errors.Wrapf(ErrInvalidConfig, "Pass %d", c.Pass)
	}
	if c.BitDepth != 8 && c.BitDepth != 10 && c.BitDepth != 12 {
		return errors.Wrapf(ErrInvalidConfig, "BitDepth %d (must be 8, 10 or 12)", c.BitDepth)
	}
	if c.SuperblockSize != 64 && c.SuperblockSize != 128 {
		return errors.Wrapf(ErrInvalidConfig, "SuperblockSize %d (must be 64 or 128)", c.SuperblockSize)
	}
	if c.HierarchicalLevels > signal.MaxHierarchicalLevels {
		return errors.Wrapf(ErrInvalidConfig, "HierarchicalLevels %d (must be 0-%d)", c.HierarchicalLevels, signal.MaxHierarchicalLevels)
	}
	if int(c.Resolution) >= signal.NumResolutions {
		return errors.Wrapf(ErrInvalidConfig, "Resolution %d", c.Resolution)
	}
	if c.OrderHintBits < 0 || c.OrderHintBits > 8 {
		return errors.Wrapf(ErrInvalidConfig, "OrderHintBits %d (must be 0-8)", c.OrderHintBits)
	}
	if c.MinQMLevel < 0 || c.MaxQMLevel >= quant.NumQMLevels || c.MinQMLevel > c.MaxQMLevel {
		return errors.Wrapf(ErrInvalidConfig, "QM levels %d/%d (must be 0-%d, min <= max)", c.MinQMLevel, c.MaxQMLevel, quant.NumQMLevels-1)
	}
	if intrabc.SizeIndex(c.IntraBC.MaxBlockSize) < 1 {
		return errors.Wrapf(ErrInvalidConfig, "IntraBC.MaxBlockSize %d", c.IntraBC.MaxBlockSize)
	}
	for f := range c.Overrides {
		if int(f) >= signal.NumFeatures {
			return errors.Wrapf(ErrInvalidConfig, "override of unknown feature %d", f)
		}
	}
	return nil
}

// Options wires a Stage into its environment.
type Options struct {
	// Logger receives per-picture debug records. Nil discards them.
	Logger *slog.Logger

	// Workers is the worker count RunWorkers uses when given n <= 0.
	Workers int

	// Mesh holds the exhaustive search tables. Nil uses the defaults.
	Mesh *intrabc.MeshConfig
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o *Options) workers() int {
	if o == nil || o.Workers <= 0 {
		return 1
	}
	return o.Workers
}

func (o *Options) mesh() *intrabc.MeshConfig {
	if o == nil || o.Mesh == nil {
		return intrabc.DefaultMeshConfig()
	}
	return o.Mesh
}
