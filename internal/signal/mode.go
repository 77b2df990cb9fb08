// Package signal derives the per-picture feature levels consumed by mode
// decision. Each feature is resolved from an ordered ladder of encoder
// speed thresholds, refined by slice type, temporal layer, resolution and
// content statistics, and finally subject to sequence overrides.
package signal

import (
	"fmt"
	"strconv"
	"strings"
)

// EncMode is the encoder speed preset. Lower is slower and better.
type EncMode int8

const (
	MRS EncMode = iota - 2
	MR
	M0
	M1
	M2
	M3
	M4
	M5
	M6
	M7
	M8
	M9
	M10
	M11
	M12
	M13

	MinEncMode = MRS
	MaxEncMode = M13
)

func (m EncMode) String() string {
	switch m {
	case MRS:
		return "MRS"
	case MR:
		return "MR"
	}
	return "M" + strconv.Itoa(int(m))
}

// ParseEncMode accepts "MRS", "MR", "M<n>" or a bare preset number.
func ParseEncMode(s string) (EncMode, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	switch u {
	case "MRS":
		return MRS, nil
	case "MR":
		return MR, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(u, "M"))
	if err != nil || n < int(M0) || n > int(MaxEncMode) {
		return 0, fmt.Errorf("signal: unknown preset %q", s)
	}
	return EncMode(n), nil
}

// ResolutionClass buckets the input picture size.
type ResolutionClass uint8

const (
	Res240p ResolutionClass = iota
	Res360p
	Res480p
	Res720p
	Res1080p
	Res4K
	Res8K

	NumResolutions = int(Res8K) + 1
)

var resolutionNames = [NumResolutions]string{"240p", "360p", "480p", "720p", "1080p", "4k", "8k"}

func (r ResolutionClass) String() string {
	if int(r) < NumResolutions {
		return resolutionNames[r]
	}
	return "invalid"
}

// ParseResolution parses a class name such as "1080p" or "4k".
func ParseResolution(s string) (ResolutionClass, error) {
	l := strings.ToLower(strings.TrimSpace(s))
	for i, n := range resolutionNames {
		if n == l {
			return ResolutionClass(i), nil
		}
	}
	return 0, fmt.Errorf("signal: unknown resolution %q", s)
}

// CoeffLevel is the predicted residual energy bucket of a picture.
type CoeffLevel uint8

const (
	CoeffLow CoeffLevel = iota
	CoeffNormal
	CoeffHigh
	// CoeffInvalid marks pictures that are not classified (intra, screen
	// content, first pass). Ladders treat it like CoeffNormal.
	CoeffInvalid
)

func (c CoeffLevel) String() string {
	switch c {
	case CoeffLow:
		return "low"
	case CoeffNormal:
		return "normal"
	case CoeffHigh:
		return "high"
	default:
		return "invalid"
	}
}

// ParseCoeffLevel parses "low", "normal", "high" or "invalid".
func ParseCoeffLevel(s string) (CoeffLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return CoeffLow, nil
	case "normal":
		return CoeffNormal, nil
	case "high":
		return CoeffHigh, nil
	case "invalid", "":
		return CoeffInvalid, nil
	}
	return 0, fmt.Errorf("signal: unknown coefficient level %q", s)
}
