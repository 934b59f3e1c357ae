// Package imaging provides the image loading and preprocessing stages of
// the audiogram extraction pipeline.
//
// The loader decodes PNG, JPEG, GIF and HEIC input and reports unreadable
// files as a fatal *InputError. The preprocessor produces the grayscale,
// contrast-normalized, deskewed buffer consumed by graph-region detection;
// marker detection bypasses it and reads the original color image.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with origin at the top-left corner:
// X increases rightward, Y increases downward.
//
// # Thread Safety
//
// All functions are stateless and safe to call concurrently on distinct
// images. None of them mutate their input.
package imaging
