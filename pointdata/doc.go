// Package pointdata converts cell-centered grid values into corner
// (point) value estimates for smooth visualization.
//
// Each cell gets four corner slots in fixed order: BottomLeft,
// BottomRight, TopRight, TopLeft. An interior corner value is the
// average of the 2×2 cell block straddling it, and that single average
// is written into the four corner slots of the four cells that meet
// there — one average, four writes. Along the borders the windows
// shrink to one-sided 2×1 / 1×2 pairs, and the four absolute corners
// of the field copy the corner cell value directly.
//
// The implementation works on a scratch buffer one cell larger in each
// dimension to keep the edge arithmetic uniform, then crops back to
// the NZ×NX extent.
//
// Complexity: O(NZ×NX) time and memory.
package pointdata
