// Package enhance repeatedly enhances a binary image laid on an infinite
// canvas, using a fixed 512-entry lookup table.
//
// What:
//
//   - Every output pixel reads the 3×3 block around it (top-left first,
//     row by row) as a 9-bit number and looks that index up in the Table.
//   - Each Step grows the known image by one pixel on every side.
//   - Pixels outside the known image share a single background colour,
//     decided by a DefaultRule picked once from Table[0] and Table[511]:
//     always dark, alternating every step, or dark once then lit forever.
//
// The whole simulation lives in a State value. Step is pure: it returns a
// new State and leaves the receiver untouched, so no process-wide buffers or
// counters are needed.
//
// Complexity:
//
//   - Step: O(W×H) time and memory for a W×H image.
//   - Run(n): O(n×(W+2n)×(H+2n)).
//
// Errors:
//
//   - ErrTableLength: table line is not exactly 512 characters.
//   - ErrBadPixel: a character other than '#' or '.'.
//   - ErrMissingSeparator: no blank line between table and image.
//   - ErrEmptyImage: image has no rows or no columns.
//   - ErrNonRectangular: image rows have differing lengths.
package enhance
