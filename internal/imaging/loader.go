package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/gen2brain/heic"
)

// InputError reports an unreadable or undecodable input file. It is the
// fatal error class of the loading stage: the caller is expected to reject
// the file and request a re-upload rather than retry.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("cannot read image at %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Load reads and decodes a chart image from disk.
//
// Supported formats are PNG, JPEG, GIF and HEIC/HEIF (common for phone
// photos of a screen). The returned image is owned exclusively by the
// caller; Load keeps no reference to it.
//
// Any failure -- missing file, permission error, corrupt or unsupported
// data -- is returned as an *InputError carrying the offending path.
func Load(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}

	if isHEIC(data) {
		img, err := heic.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, &InputError{Path: path, Err: fmt.Errorf("decoding HEIC: %w", err)}
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &InputError{Path: path, Err: fmt.Errorf("decoding image: %w", err)}
	}
	return img, nil
}

// isHEIC reports whether the data carries an ISO-BMFF ftyp box with a
// HEIC/HEIF brand. Go's standard image package has no decoder for these,
// so they are routed to the dedicated decoder.
func isHEIC(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heif", "mif1", "msf1":
		return true
	}
	return false
}
