/*
Package sequence implements index-driven transformations over ordered slices.

SkipSample partitions a slice into sub-slices taken at increasing strides: the
k-th result holds every k-th element starting at offset k-1. LocalMaxima
selects the interior elements strictly greater than both neighbours.

All functions are pure. Inputs are never modified and results are freshly
allocated, so they are safe to call from multiple goroutines. A nil input
slice is treated as absent and rejected with utils.ErrInvalidArgument, while
an empty slice is valid and produces an empty result.
*/
package sequence
