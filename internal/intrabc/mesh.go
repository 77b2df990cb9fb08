package intrabc

const (
	// MaxMeshSpeed is the fastest mesh search speed.
	MaxMeshSpeed = 5
	// MaxMeshStep is the number of refinement steps of a mesh search.
	MaxMeshStep = 4

	exhaustiveThresh = 1 << 25
)

// MeshPattern is one step of an exhaustive mesh search.
type MeshPattern struct {
	Range    int
	Interval int
}

// MeshConfig holds the mesh search tables per speed. It is immutable
// after construction and shared by every worker.
type MeshConfig struct {
	GoodQualityPatterns [MaxMeshSpeed + 1][MaxMeshStep]MeshPattern
	GoodQualityMaxPct   [MaxMeshSpeed + 1]uint8
	IntraBCPatterns     [MaxMeshSpeed + 1][MaxMeshStep]MeshPattern
	IntraBCMaxPct       [MaxMeshSpeed + 1]uint8

	// Speed selects the row of each table.
	Speed int
}

// DefaultMeshConfig returns the standard tables at speed 1.
func DefaultMeshConfig() *MeshConfig {
	return &MeshConfig{
		GoodQualityPatterns: [MaxMeshSpeed + 1][MaxMeshStep]MeshPattern{
			{{64, 8}, {28, 4}, {15, 1}, {7, 1}},
			{{64, 8}, {28, 4}, {15, 1}, {7, 1}},
			{{64, 8}, {14, 2}, {7, 1}, {7, 1}},
			{{64, 16}, {24, 8}, {12, 4}, {7, 1}},
			{{64, 16}, {24, 8}, {12, 4}, {7, 1}},
			{{64, 16}, {24, 8}, {12, 4}, {7, 1}},
		},
		GoodQualityMaxPct: [MaxMeshSpeed + 1]uint8{50, 50, 25, 15, 5, 1},
		IntraBCPatterns: [MaxMeshSpeed + 1][MaxMeshStep]MeshPattern{
			{{256, 1}, {256, 1}, {0, 0}, {0, 0}},
			{{256, 1}, {256, 1}, {0, 0}, {0, 0}},
			{{64, 1}, {64, 1}, {0, 0}, {0, 0}},
			{{64, 1}, {64, 1}, {0, 0}, {0, 0}},
			{{64, 4}, {16, 1}, {0, 0}, {0, 0}},
			{{64, 4}, {16, 1}, {0, 0}, {0, 0}},
		},
		IntraBCMaxPct: [MaxMeshSpeed + 1]uint8{100, 100, 100, 25, 25, 10},
		Speed:         1,
	}
}

// SpeedFeatures are the per-picture exhaustive search settings.
type SpeedFeatures struct {
	AllowExhaustiveSearches  bool
	ExhaustiveSearchesThresh int
	MaxExhaustivePct         int
	MeshPatterns             [MaxMeshStep]MeshPattern
}

// SpeedFeatures returns the search settings for a picture. Intra-only
// pictures use the intra block copy tables.
func (c *MeshConfig) SpeedFeatures(intraOnly bool) SpeedFeatures {
	speed := min(max(c.Speed, 0), MaxMeshSpeed)
	sf := SpeedFeatures{
		AllowExhaustiveSearches:  true,
		ExhaustiveSearchesThresh: exhaustiveThresh,
		MaxExhaustivePct:         int(c.GoodQualityMaxPct[speed]),
		MeshPatterns:             c.GoodQualityPatterns[speed],
	}
	if speed > 0 {
		sf.ExhaustiveSearchesThresh <<= 1
	}
	if intraOnly {
		sf.MeshPatterns = c.IntraBCPatterns[speed]
		sf.MaxExhaustivePct = int(c.IntraBCMaxPct[speed])
	}
	return sf
}
