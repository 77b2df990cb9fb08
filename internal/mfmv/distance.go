// Package mfmv projects the stored motion of reference pictures onto the
// current picture's timeline, producing the temporal motion field used for
// motion vector prediction.
package mfmv

// OrderHintInfo describes the sequence's order hint signaling.
type OrderHintInfo struct {
	Enable bool
	Bits   int
}

// RelativeDistance returns the signed distance a-b between two order
// hints that wrap at 1<<oh.Bits. It is 0 when order hints are disabled.
func RelativeDistance(oh OrderHintInfo, a, b int) int {
	if !oh.Enable {
		return 0
	}
	if oh.Bits < 1 {
		panic("mfmv: order hint bits must be >= 1")
	}
	diff := a - b
	m := 1 << (oh.Bits - 1)
	return (diff & (m - 1)) - (diff & m)
}
