package refpool

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
)

func TestPublishGet(t *testing.T) {
	p := New()
	d := &Descriptor{OrderHint: 7, MiRows: 16, MiCols: 32}
	h, err := p.Publish(d)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	got, err := p.Get(h)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != d {
		t.Errorf("Get returned %p, want %p", got, d)
	}
	if p.Live() != 1 {
		t.Errorf("Live = %d, want 1", p.Live())
	}
}

func TestGet_ZeroHandle(t *testing.T) {
	p := New()
	d, err := p.Get(Handle{})
	if err != nil || d != nil {
		t.Errorf("Get(zero) = (%v, %v), want (nil, nil)", d, err)
	}
}

func TestPublish_Nil(t *testing.T) {
	p := New()
	if _, err := p.Publish(nil); !errors.Is(err, ErrNilDescriptor) {
		t.Errorf("Publish(nil) error = %v, want ErrNilDescriptor", err)
	}
}

func TestRelease_InvalidatesHandle(t *testing.T) {
	p := New()
	h, _ := p.Publish(&Descriptor{})
	if err := p.Retain(h); err != nil {
		t.Fatalf("Retain: %v", err)
	}
	if err := p.Release(h); err != nil {
		t.Fatalf("Release 1: %v", err)
	}
	if _, err := p.Get(h); err != nil {
		t.Fatalf("Get after first release: %v", err)
	}
	if err := p.Release(h); err != nil {
		t.Fatalf("Release 2: %v", err)
	}
	if _, err := p.Get(h); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Get after last release error = %v, want ErrStaleHandle", err)
	}
	if err := p.Release(h); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("double Release error = %v, want ErrStaleHandle", err)
	}
	if p.Live() != 0 {
		t.Errorf("Live = %d, want 0", p.Live())
	}
}

func TestSlotReuse_GenerationCheck(t *testing.T) {
	p := New()
	old, _ := p.Publish(&Descriptor{OrderHint: 1})
	_ = p.Release(old)
	fresh, _ := p.Publish(&Descriptor{OrderHint: 2})
	if fresh.index != old.index {
		t.Fatalf("slot not reused: old %d fresh %d", old.index, fresh.index)
	}
	if _, err := p.Get(old); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("stale handle lookup error = %v, want ErrStaleHandle", err)
	}
	d, err := p.Get(fresh)
	if err != nil || d.OrderHint != 2 {
		t.Errorf("Get(fresh) = (%+v, %v), want order hint 2", d, err)
	}
}

func TestMVGrid(t *testing.T) {
	d := &Descriptor{MiRows: 17, MiCols: 30}
	r, c := d.MVGrid()
	if r != 9 || c != 15 {
		t.Errorf("MVGrid = (%d, %d), want (9, 15)", r, c)
	}
}

func TestConcurrentReaders(t *testing.T) {
	p := New()
	h, _ := p.Publish(&Descriptor{OrderHint: 3})
	const readers = 16
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if err := p.Retain(h); err != nil {
					t.Errorf("Retain: %v", err)
					return
				}
				d, err := p.Get(h)
				if err != nil || d.OrderHint != 3 {
					t.Errorf("Get = (%v, %v)", d, err)
					return
				}
				if err := p.Release(h); err != nil {
					t.Errorf("Release: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if p.Live() != 1 {
		t.Errorf("Live = %d, want 1", p.Live())
	}
}
