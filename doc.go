// Package gfx is a software image compositing engine.
//
// The package is built around three small contracts:
//
//   - [Color], a packed 32-bit RGBA value with saturating arithmetic
//     backed by precomputed lookup tables.
//   - [Blender], a pure function combining a destination and a source
//     color ([Assign], [AlphaBlend], [ColorKey], [Grayscale], ...).
//   - [Sampler], a pure function mapping normalized image coordinates
//     to a color ([Nearest], [Bilinear]).
//
// [Image] owns a pixel buffer and exposes the Fill and Line drawing
// primitives. [Blit] transfers a rectangle of one image into a rectangle
// of another, resampling, clipping and optionally flipping on the way;
// [BlitStream] does the same while reading source rows directly from a
// file through a [Stream] handle, without materializing the source image
// in memory. [Surface] is a non-owning view over a host-managed pixel
// buffer for presenting a finished frame.
//
// All operations are synchronous and perform no internal locking;
// concurrent mutation of a single Image requires external partitioning
// and synchronization by the caller.
package gfx
