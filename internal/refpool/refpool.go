// Package refpool holds published reference descriptors. A descriptor is
// reachable only through a generation-checked Handle and is dropped when
// its last holder releases it, so a handle that outlives its descriptor
// fails on lookup instead of reading recycled memory.
package refpool

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/deepteams/mdconfig/internal/av1"
)

// Errors returned by the pool.
var (
	// ErrStaleHandle is returned for a handle whose slot was released or reused.
	ErrStaleHandle = errors.New("refpool: stale or released handle")
	// ErrNilDescriptor is returned when Publish is given no descriptor.
	ErrNilDescriptor = errors.New("refpool: nil descriptor")
)

// Descriptor is the read-only view of an encoded reference picture.
// It must not be modified after Publish.
type Descriptor struct {
	OrderHint uint32
	FrameType av1.FrameType

	// Mode-info grid size (4x4 units).
	MiRows int
	MiCols int

	// MVs is the stored motion at half mi resolution, row-major with
	// (MiCols+1)>>1 columns.
	MVs []av1.MVRef

	// RefOrderHints[i] is the order hint of slot LastFrame+i as seen by
	// this picture when it was encoded.
	RefOrderHints [av1.InterRefsPerFrame]uint32

	// CDEFStrengths[0] holds the luma strengths chosen per filter block
	// group, CDEFStrengths[1] the chroma ones.
	CDEFStrengths [2][]uint8

	// SGFrameEP is the self-guided filter parameter set chosen for the frame.
	SGFrameEP int
}

// MVGrid returns the dimensions of the stored motion grid.
func (d *Descriptor) MVGrid() (rows, cols int) {
	return (d.MiRows + 1) >> 1, (d.MiCols + 1) >> 1
}

// Handle references a published descriptor. The zero Handle refers to
// nothing.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the empty handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

type slot struct {
	gen  uint32
	refs int32
	desc *Descriptor
}

// Pool is an arena of descriptors. Lookups take a read lock on the slot
// table only; the descriptors themselves are shared without locking.
type Pool struct {
	mu    sync.RWMutex
	slots []slot
	free  []uint32
	live  int
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{}
}

// Publish stores d with a reference count of one and returns its handle.
func (p *Pool) Publish(d *Descriptor) (Handle, error) {
	if d == nil {
		return Handle{}, errors.WithStack(ErrNilDescriptor)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	var idx uint32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = uint32(len(p.slots))
		p.slots = append(p.slots, slot{gen: 1})
	}
	s := &p.slots[idx]
	s.refs = 1
	s.desc = d
	p.live++
	return Handle{index: idx, gen: s.gen}, nil
}

// lookup returns the live slot of h. Caller holds p.mu.
func (p *Pool) lookup(h Handle) (*slot, error) {
	if h.IsZero() || int(h.index) >= len(p.slots) {
		return nil, errors.Wrapf(ErrStaleHandle, "index %d generation %d", h.index, h.gen)
	}
	s := &p.slots[h.index]
	if s.gen != h.gen || s.refs == 0 {
		return nil, errors.Wrapf(ErrStaleHandle, "index %d generation %d (current %d)", h.index, h.gen, s.gen)
	}
	return s, nil
}

// Retain adds a holder to the descriptor behind h.
func (p *Pool) Retain(h Handle) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, err := p.lookup(h)
	if err != nil {
		return err
	}
	s.refs++
	return nil
}

// Release drops one holder. The last release frees the slot and bumps its
// generation, invalidating every outstanding copy of h.
func (p *Pool) Release(h Handle) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, err := p.lookup(h)
	if err != nil {
		return err
	}
	s.refs--
	if s.refs > 0 {
		return nil
	}
	s.desc = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	p.free = append(p.free, h.index)
	p.live--
	return nil
}

// Get returns the descriptor behind h. The zero handle yields (nil, nil):
// an absent reference is not an error.
func (p *Pool) Get(h Handle) (*Descriptor, error) {
	if h.IsZero() {
		return nil, nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	s, err := p.lookup(h)
	if err != nil {
		return nil, err
	}
	return s.desc, nil
}

// Live returns the number of descriptors still held.
func (p *Pool) Live() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.live
}
