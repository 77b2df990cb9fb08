package mdconfig

// RateControlResult is the stage input: a picture whose qindex has been
// chosen by rate control.
type RateControlResult struct {
	Picture *Picture
	// SuperresRecode asks for a single task re-encoding the picture at a
	// new super-resolution scale.
	SuperresRecode bool
	// Release returns the result to its producer. It may be nil.
	Release func()
}

// InputType tells the next stage how a task was produced.
type InputType uint8

const (
	MDCInput InputType = iota
	SuperresInput
)

func (t InputType) String() string {
	if t == SuperresInput {
		return "superres"
	}
	return "mdc"
}

// EncDecTask is one unit of work for the encode stage.
type EncDecTask struct {
	Picture        *Picture
	InputType      InputType
	TileGroupIndex int
}
