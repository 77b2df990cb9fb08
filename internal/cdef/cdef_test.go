package cdef

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/deepteams/mdconfig/internal/av1"
	"github.com/deepteams/mdconfig/internal/refpool"
)

func ref(y, uv []uint8) *refpool.Descriptor {
	return &refpool.Descriptor{CDEFStrengths: [2][]uint8{y, uv}}
}

func TestSelect_Disabled(t *testing.T) {
	base := Input{Slice: av1.PSlice, Level: 4, L0: ref([]uint8{9}, []uint8{3})}

	skip := base
	skip.RefSkipPercentage = 80
	skip.Controls.UseSkipDetector = true
	if _, lvl := Select(&skip); lvl != 0 {
		t.Errorf("skip detector: level = %d, want 0", lvl)
	}

	skip.Controls.UseSkipDetector = false
	if _, lvl := Select(&skip); lvl != 4 {
		t.Errorf("skip without detector: level = %d, want 4", lvl)
	}

	noisy := base
	noisy.SharpnessCDEF = true
	noisy.NoiseLevel = true
	if _, lvl := Select(&noisy); lvl != 0 {
		t.Errorf("noisy: level = %d, want 0", lvl)
	}
}

func TestSelect_IntraUntouched(t *testing.T) {
	in := Input{Slice: av1.ISlice, Level: 5, Controls: Controls{UseReferenceFS: true, PredY: 3}}
	c, lvl := Select(&in)
	if lvl != 5 || c != in.Controls {
		t.Errorf("I slice changed: level %d, controls %+v", lvl, c)
	}
}

func TestSelect_ReferenceMidpoint(t *testing.T) {
	tests := []struct {
		name      string
		slice     av1.SliceType
		l0, l1    []uint8
		wantY     int8
		wantLevel uint8
	}{
		{"P", av1.PSlice, []uint8{10, 30, 20}, nil, 20, 3},
		{"B widens", av1.BSlice, []uint8{4, 60}, []uint8{2}, 31, 3},
		{"P ignores L1", av1.PSlice, []uint8{8}, []uint8{60}, 8, 3},
		{"zero turns off", av1.BSlice, []uint8{0}, []uint8{0}, 0, 0},
		{"no strengths", av1.PSlice, nil, nil, 31, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{
				Slice:    tt.slice,
				Level:    3,
				Controls: Controls{UseReferenceFS: true, FirstPassFSNum: 4, DefaultSecondPassFSNum: 2},
				L0:       ref(tt.l0, nil),
				L1:       ref(tt.l1, nil),
			}
			c, lvl := Select(&in)
			if c.PredY != tt.wantY || c.PredUV != 0 || lvl != tt.wantLevel {
				t.Errorf("PredY=%d PredUV=%d level=%d, want %d 0 %d", c.PredY, c.PredUV, lvl, tt.wantY, tt.wantLevel)
			}
			if c.FirstPassFSNum != 0 || c.DefaultSecondPassFSNum != 0 {
				t.Errorf("search not skipped: %+v", c)
			}
		})
	}
}

func TestSelect_SearchBestRef(t *testing.T) {
	tests := []struct {
		name      string
		slice     av1.SliceType
		l0, l1    *refpool.Descriptor
		want      Controls
		wantLevel uint8
	}{
		{
			name:  "P adds L0 and drops default chroma",
			slice: av1.PSlice,
			l0:    ref([]uint8{5}, []uint8{7}),
			want: Controls{
				SearchBestRefFS:      true,
				FirstPassFSNum:       2,
				DefaultFirstPassFS:   [MaxFirstPass]int8{0, 5},
				DefaultFirstPassFSUV: [MaxFirstPass]int8{-1, -1},
			},
			wantLevel: 2,
		},
		{
			name:  "P same as default turns off",
			slice: av1.PSlice,
			l0:    ref([]uint8{0}, []uint8{1}),
			want: Controls{
				SearchBestRefFS:      true,
				FirstPassFSNum:       1,
				DefaultFirstPassFSUV: [MaxFirstPass]int8{7},
			},
			wantLevel: 0,
		},
		{
			name:  "B lists agree",
			slice: av1.BSlice,
			l0:    ref([]uint8{5}, []uint8{10}),
			l1:    ref([]uint8{5}, []uint8{20}),
			want: Controls{
				SearchBestRefFS:      true,
				UseReferenceFS:       true,
				PredY:                5,
				PredUV:               15,
				DefaultFirstPassFS:   [MaxFirstPass]int8{0, 5},
				DefaultFirstPassFSUV: [MaxFirstPass]int8{7},
			},
			wantLevel: 2,
		},
		{
			name:  "B distinct",
			slice: av1.BSlice,
			l0:    ref([]uint8{5}, []uint8{7}),
			l1:    ref([]uint8{9}, []uint8{7}),
			want: Controls{
				SearchBestRefFS:      true,
				FirstPassFSNum:       3,
				DefaultFirstPassFS:   [MaxFirstPass]int8{0, 5, 9},
				DefaultFirstPassFSUV: [MaxFirstPass]int8{-1, -1},
			},
			wantLevel: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{
				Slice: tt.slice,
				Level: 2,
				Controls: Controls{
					SearchBestRefFS:        true,
					DefaultSecondPassFSNum: 3,
					DefaultFirstPassFSUV:   [MaxFirstPass]int8{7},
				},
				L0: tt.l0,
				L1: tt.l1,
			}
			c, lvl := Select(&in)
			if diff := cmp.Diff(tt.want, c); diff != "" {
				t.Errorf("controls (-want +got):\n%s", diff)
			}
			if lvl != tt.wantLevel {
				t.Errorf("level = %d, want %d", lvl, tt.wantLevel)
			}
		})
	}
}

func TestSelect_MissingStrengths(t *testing.T) {
	tests := []struct {
		name      string
		slice     av1.SliceType
		l0, l1    *refpool.Descriptor
		want      Controls
		wantLevel uint8
	}{
		{
			name:  "P without L0",
			slice: av1.PSlice,
			want: Controls{
				SearchBestRefFS:      true,
				FirstPassFSNum:       1,
				DefaultFirstPassFSUV: [MaxFirstPass]int8{7},
			},
			wantLevel: 0,
		},
		{
			name:  "B with empty L1",
			slice: av1.BSlice,
			l0:    ref([]uint8{3}, []uint8{7}),
			l1:    ref(nil, nil),
			want: Controls{
				SearchBestRefFS:      true,
				FirstPassFSNum:       2,
				DefaultFirstPassFS:   [MaxFirstPass]int8{0, 3},
				DefaultFirstPassFSUV: [MaxFirstPass]int8{7},
			},
			wantLevel: 1,
		},
		{
			name:  "B with L1 only",
			slice: av1.BSlice,
			l1:    ref([]uint8{6}, []uint8{7}),
			want: Controls{
				SearchBestRefFS:      true,
				FirstPassFSNum:       2,
				DefaultFirstPassFS:   [MaxFirstPass]int8{0, 6},
				DefaultFirstPassFSUV: [MaxFirstPass]int8{7},
			},
			wantLevel: 1,
		},
		{
			name:  "B without chroma",
			slice: av1.BSlice,
			l0:    ref([]uint8{3}, nil),
			l1:    ref([]uint8{3}, nil),
			want: Controls{
				SearchBestRefFS:      true,
				FirstPassFSNum:       1,
				DefaultFirstPassFSUV: [MaxFirstPass]int8{7},
			},
			wantLevel: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{
				Slice: tt.slice,
				Level: 1,
				Controls: Controls{
					SearchBestRefFS:        true,
					DefaultSecondPassFSNum: 3,
					DefaultFirstPassFSUV:   [MaxFirstPass]int8{7},
				},
				L0: tt.l0,
				L1: tt.l1,
			}
			c, lvl := Select(&in)
			if diff := cmp.Diff(tt.want, c); diff != "" {
				t.Errorf("controls (-want +got):\n%s", diff)
			}
			if lvl != tt.wantLevel {
				t.Errorf("level = %d, want %d", lvl, tt.wantLevel)
			}
		})
	}
}
