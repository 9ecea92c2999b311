// Package rendering paints carousel frames into images.
//
// RenderFrame reads a carousel's live offset and per-item projections and
// draws the viewport the way a browser would lay out the track: cards of
// ItemWidth spaced by Stride, each turned about its vertical axis by its
// RotateY under a shared perspective whose origin follows the current
// position. Cards are painted back to front by stacking value. Round mode
// clips the viewport to a circle and draws circular cards.
//
// Frames can be combined into a horizontal Strip and written with EncodePNG.
package rendering
