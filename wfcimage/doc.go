// Package wfcimage is the image-domain face of wavegrid: pixels in,
// pixels out. It converts an image.Image into a sample grid, learns the
// overlapping-pattern model, runs retried solver attempts, and
// materializes the result back into an image.
//
// What:
//
//   - ImagePatterns: the learned model over color.RGBA samples plus the
//     fallback ("empty") colour emitted for unresolved cells.
//   - ImageFromWave: full materialization — each committed cell becomes
//     its pattern's top-left pixel, undecided cells become the fallback.
//   - WeightedAverageColour: the partial-collapse inspection policy —
//     zero candidates → fallback; a single unweighted candidate → its
//     exact pixel; several unweighted candidates → fallback (averaging
//     without weights is not attempted); weighted candidates →
//     per-channel truncating weighted mean.
//   - ImageRetry adapters: Forever yields an image unconditionally,
//     NumTimes and ParNumTimes yield an image or a contradiction error.
//   - GenerateImage / GenerateImageWithRNG: the one-call pipeline.
//
// Why:
//
//   - Texture synthesis from a single example image, with edge wrap,
//     border pinning via forbid rules, and caller-selected retry cost.
//
// Errors:
//
//   - construction surfaces the overlapping package's malformed-input
//     errors; generation surfaces retry.ErrAttemptsExhausted (a
//     contradiction-class error) for bounded policies. Forever never
//     fails.
package wfcimage
