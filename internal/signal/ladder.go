package signal

import "fmt"

type levelFunc func(in *Inputs, lv *Levels) uint8

// rung applies level to every mode up to and including upTo, or rtcUpTo
// when real-time tuning is on.
type rung struct {
	upTo    EncMode
	rtcUpTo EncMode
	level   levelFunc
}

type knob struct {
	// gate forces a value when a hard precondition fails.
	gate   func(in *Inputs) (uint8, bool)
	ladder []rung
	// post enforces constraints against already resolved features.
	post func(in *Inputs, lv *Levels, v uint8) uint8
}

func at(upTo EncMode, fn levelFunc) rung {
	return rung{upTo: upTo, rtcUpTo: upTo, level: fn}
}

func atRTC(upTo, rtcUpTo EncMode, fn levelFunc) rung {
	return rung{upTo: upTo, rtcUpTo: rtcUpTo, level: fn}
}

func lvl(v uint8) levelFunc {
	return func(*Inputs, *Levels) uint8 { return v }
}

func forced(v uint8) (uint8, bool) { return v, true }

func open() (uint8, bool) { return 0, false }

// resolve computes feature f. lv holds every feature declared before f.
func resolve(f Feature, in *Inputs, lv *Levels) uint8 {
	k := &knobs[f]
	var (
		v  uint8
		ok bool
	)
	if k.gate != nil {
		v, ok = k.gate(in)
	}
	if !ok {
		for _, r := range k.ladder {
			th := r.upTo
			if in.RTC {
				th = r.rtcUpTo
			}
			if in.Mode <= th {
				v, ok = r.level(in, lv), true
				break
			}
		}
		if !ok {
			panic(fmt.Sprintf("signal: %v has no level for preset %v", f, in.Mode))
		}
	}
	if o, set := in.Overrides[f]; set {
		v = o
	}
	if k.post != nil {
		v = k.post(in, lv, v)
	}
	return v
}
