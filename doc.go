// Package roundrect is a CPU rasterizer for rounded rectangles.
//
// # Overview
//
// roundrect paints rounded rectangular shapes directly into packed
// 32-bit ARGB pixel buffers. It provides two deliberately distinct
// rendering paths:
//
//   - A signed-distance-field (SDF) path that produces anti-aliased
//     output with a solid interior, a border ring, and half-pixel
//     transition bands. Used for shapes rendered once and uploaded
//     into a texture, such as notification popup backgrounds.
//   - A midpoint-circle path that produces hard-edged filled or
//     outlined rounded rectangles using only integer arithmetic.
//     Used for UI chrome redrawn every frame, where speed matters
//     more than edge quality.
//
// # Quick Start
//
//	import "github.com/gogpu/roundrect"
//
//	// Render a 240x64 toast background with 12px corners.
//	pixels := roundrect.ToastBackground(240, 64, 12)
//
//	// Or draw hard-edged shapes onto a canvas.
//	c := roundrect.NewCanvas(320, 240)
//	roundrect.FillRoundedRect(c, 10, 10, 100, 40, 8, roundrect.ARGB{A: 255, R: 80, G: 120, B: 200})
//
// # Pixel Format
//
// All output is packed ARGB8888: alpha in the most significant byte,
// then red, green, blue. Colors are non-premultiplied (straight alpha),
// so the output composites correctly under standard source-over
// blending, for example an SDL texture with SDL_BLENDMODE_BLEND.
//
// # Concurrency
//
// Rendering is a pure function of its inputs. Invocations hold no
// shared state and may run concurrently as long as each writes to a
// distinct canvas. RenderBackgroundParallel dispatches rows across a
// worker pool and produces output byte-identical to the sequential
// path.
package roundrect
