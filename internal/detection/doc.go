// Package detection locates the structural elements of an audiogram chart:
// the plotted graph region and the per-ear data-point markers.
//
// Graph-region detection runs on the preprocessed grayscale buffer and
// always produces usable bounds, falling back to the full image extent for
// blank input. Marker detection runs on the original color image and
// isolates each ear's markers by hue window; it degrades to an empty
// result rather than failing.
//
// Both detectors share a flood-fill connected-component pass (contours.go)
// and are stateless, so they are safe for concurrent use on distinct
// images.
package detection
