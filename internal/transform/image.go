package transform

import (
	"bytes"
	"fmt"

	"codeberg.org/savant/server/internal/format"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"

	// webp sources decode through the stdlib image registry
	_ "golang.org/x/image/webp"
)

// fixed encode quality for lossy outputs
const encodeQuality = 90

// re-encodes an image buffer into the target raster format at fixed
// quality, preserving dimensions
func ReencodeImage(buf []byte, target format.Format) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptInput, err)
	}

	var out bytes.Buffer

	switch target {
	case format.Jpg:
		err = imaging.Encode(&out, img, imaging.JPEG, imaging.JPEGQuality(encodeQuality))
	case format.Png:
		err = imaging.Encode(&out, img, imaging.PNG)
	case format.Gif:
		err = imaging.Encode(&out, img, imaging.GIF)
	case format.Webp:
		err = webp.Encode(&out, img, &webp.Options{Quality: encodeQuality})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, target)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", target, err)
	}

	return out.Bytes(), nil
}

// converts a single image to a one-page PDF sized to the image's native
// pixel dimensions
func ImageToPDF(buf []byte) ([]byte, error) {
	return ImagesToPDF([][]byte{buf})
}

// merges images into one PDF, one page per image in the given order,
// each page sized to its own image's dimensions; aborts on the first
// undecodable image, never producing a partial document
func ImagesToPDF(bufs [][]byte) ([]byte, error) {
	if len(bufs) == 0 {
		return nil, fmt.Errorf("%w: no images provided", ErrCorruptInput)
	}

	// page unit is points; pages are added per image at its pixel size,
	// so no document-level default size applies
	pdf := gofpdf.New("P", "pt", "A4", "")

	for i, buf := range bufs {
		img, err := imaging.Decode(bytes.NewReader(buf))
		if err != nil {
			return nil, fmt.Errorf("%w: image %d: %v", ErrCorruptInput, i+1, err)
		}

		bounds := img.Bounds()
		w := float64(bounds.Dx())
		h := float64(bounds.Dy())

		// embed as PNG so gif/webp sources work uniformly
		var png bytes.Buffer
		if err := imaging.Encode(&png, img, imaging.PNG); err != nil {
			return nil, fmt.Errorf("failed to re-encode image %d: %w", i+1, err)
		}

		name := fmt.Sprintf("page-image-%d", i+1)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}

		pdf.RegisterImageOptionsReader(name, opts, &png)
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
		pdf.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")
	}

	if pdf.Err() {
		return nil, fmt.Errorf("failed to build PDF: %w", pdf.Error())
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}

	return out.Bytes(), nil
}
