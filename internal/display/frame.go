// SPDX-License-Identifier: MIT
package display

// composeFrame copies the bank buffer selected by index into frame when the
// index is in range and the buffer's byte length exactly matches the frame's.
// Otherwise the frame is left untouched — the previous contents persist on
// screen. The skip is deliberately silent: this runs once per redraw and must
// never block or report.
func composeFrame(frame []byte, bank [][]byte, index int) bool {
	if index < 0 || index >= len(bank) {
		return false
	}
	src := bank[index]
	if len(src) != len(frame) {
		return false
	}
	copy(frame, src)
	return true
}
