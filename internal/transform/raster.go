package transform

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"codeberg.org/savant/server/internal/format"
	"codeberg.org/savant/server/internal/tempdir"
	"github.com/gen2brain/go-fitz"
)

// rasterization resolution
const rasterDPI = 150

// rasterizes the first page of a PDF into the target raster format
func PDFToImage(buf []byte, target format.Format) ([]byte, error) {
	images, err := rasterize(buf, target, 1)
	if err != nil {
		return nil, err
	}

	return images[0], nil
}

// rasterizes every page of a PDF, one image per page in page order
func PDFToImages(buf []byte, target format.Format) ([][]byte, error) {
	return rasterize(buf, target, 0)
}

// renders up to maxPages pages (0 = all) at fixed DPI; the PDF is staged
// in a scoped temp directory that is removed on every exit path
func rasterize(buf []byte, target format.Format, maxPages int) ([][]byte, error) {
	if target != format.Jpg && target != format.Png {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, target)
	}

	var images [][]byte

	err := tempdir.With("savant-raster-*", func(dir string) error {
		inputPath := filepath.Join(dir, "input.pdf")
		if err := os.WriteFile(inputPath, buf, 0o600); err != nil {
			return fmt.Errorf("failed to stage PDF: %w", err)
		}

		doc, err := fitz.New(inputPath)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptPDF, err)
		}
		defer doc.Close() //nolint:errcheck // best-effort cleanup

		pages := doc.NumPage()
		if pages == 0 {
			return fmt.Errorf("%w: document has no pages", ErrCorruptPDF)
		}

		if maxPages > 0 && pages > maxPages {
			pages = maxPages
		}

		for n := 0; n < pages; n++ {
			img, err := doc.ImageDPI(n, rasterDPI)
			if err != nil {
				return fmt.Errorf("failed to render page %d: %w", n+1, err)
			}

			var out bytes.Buffer

			switch target {
			case format.Jpg:
				err = jpeg.Encode(&out, img, &jpeg.Options{Quality: encodeQuality})
			case format.Png:
				err = png.Encode(&out, img)
			}

			if err != nil {
				return fmt.Errorf("failed to encode page %d: %w", n+1, err)
			}

			images = append(images, out.Bytes())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return images, nil
}
