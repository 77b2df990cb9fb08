package signal

import "fmt"

// Derive resolves every feature of a picture.
func Derive(in *Inputs) Levels {
	var lv Levels
	for f := range Feature(NumFeatures) {
		lv[f] = resolve(f, in, &lv)
	}
	return lv
}

// DeriveFirstPass returns the fixed configuration of the statistics
// pass: the cheapest level of every feature, still subject to the
// dependent constraints. Overrides are ignored.
func DeriveFirstPass(in *Inputs) Levels {
	var lv Levels
	for f := range Feature(NumFeatures) {
		order := costOrder[f]
		v := order[len(order)-1]
		if post := knobs[f].post; post != nil {
			v = post(in, &lv, v)
		}
		lv[f] = v
	}
	return lv
}

// CDFControl selects which symbol adaptation happens during mode decision.
type CDFControl struct {
	Enabled    bool
	UpdateMV   bool
	UpdateSE   bool
	UpdateCoef bool
}

// CDFControls expands a CDFUpdateLevel. Motion vector CDFs are never
// updated in intra slices. Unknown levels panic.
func CDFControls(level uint8, islice bool) CDFControl {
	var c CDFControl
	switch level {
	case 0:
	case 1:
		c = CDFControl{UpdateMV: true, UpdateSE: true, UpdateCoef: true}
	case 2:
		c = CDFControl{UpdateSE: true, UpdateCoef: true}
	case 3:
		c = CDFControl{UpdateSE: true}
	default:
		panic(fmt.Sprintf("signal: invalid cdf update level %d", level))
	}
	if islice {
		c.UpdateMV = false
	}
	c.Enabled = c.UpdateMV || c.UpdateSE || c.UpdateCoef
	return c
}
