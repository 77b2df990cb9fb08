package mfmv

import "github.com/deepteams/mdconfig/internal/av1"

// Side of a reference relative to the current picture.
const (
	SidePast      int8 = 0
	SideFuture    int8 = 1
	SideCoLocated int8 = -1
)

// RefFrameSides classifies every reference slot as past, future or
// co-located. It is needed for motion vector sign handling whether or not
// the field is projected.
func RefFrameSides(cur *Frame) [av1.TotalRefsPerFrame]int8 {
	var side [av1.TotalRefsPerFrame]int8
	if !cur.OrderHintInfo.Enable {
		return side
	}
	for rf := av1.LastFrame; rf <= av1.AltrefFrame; rf++ {
		hint := refOrderHint(cur, rf)
		if RelativeDistance(cur.OrderHintInfo, hint, cur.OrderHint) > 0 {
			side[rf] = SideFuture
		} else if hint == cur.OrderHint {
			side[rf] = SideCoLocated
		}
	}
	return side
}

func refOrderHint(cur *Frame, rf av1.RefFrame) int {
	if buf := cur.Refs[rf]; buf != nil {
		return int(buf.OrderHint)
	}
	return 0
}

// Setup computes the reference sides and, when the picture uses reference
// frame motion, projects up to three references onto a fresh field in
// priority order. The field is nil when no projection is run.
func Setup(cur *Frame) (*Field, [av1.TotalRefsPerFrame]int8) {
	side := RefFrameSides(cur)
	oh := cur.OrderHintInfo
	if !oh.Enable || !cur.UseRefFrameMVs {
		return nil, side
	}

	f := NewField(cur.MiRows, cur.MiCols)
	inFuture := func(rf av1.RefFrame) bool {
		return RelativeDistance(oh, refOrderHint(cur, rf), cur.OrderHint) > 0
	}

	stamp := stackSize - 1
	if last := cur.Refs[av1.LastFrame]; last != nil {
		// LAST is an overlay of GOLDEN when its own ALTREF points at GOLDEN.
		altOfLast := int(last.RefOrderHints[av1.AltrefFrame-av1.LastFrame])
		if altOfLast != refOrderHint(cur, av1.GoldenFrame) {
			ProjectReferenceFrame(f, cur, av1.LastFrame, Past)
		}
		stamp--
	}
	if inFuture(av1.BwdrefFrame) && ProjectReferenceFrame(f, cur, av1.BwdrefFrame, Future) {
		stamp--
	}
	if inFuture(av1.Altref2Frame) && ProjectReferenceFrame(f, cur, av1.Altref2Frame, Future) {
		stamp--
	}
	if inFuture(av1.AltrefFrame) && stamp >= 0 && ProjectReferenceFrame(f, cur, av1.AltrefFrame, Future) {
		stamp--
	}
	if stamp >= 0 {
		ProjectReferenceFrame(f, cur, av1.Last2Frame, Past)
	}
	return f, side
}
