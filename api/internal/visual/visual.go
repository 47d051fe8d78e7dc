// Package visual analyzes puzzle images the text pipeline could not
// claim: dimensions, luminance, edge structure and a rough shape verdict,
// optionally enriched by a remote description.
package visual

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"strings"
)

// edgeThreshold is the luminance delta (0-255) between neighbors above
// which a pixel counts as part of an edge.
const edgeThreshold = 40

// Describer is an optional remote collaborator adding a scene-level
// description to the local measurements.
type Describer interface {
	DescribeImage(ctx context.Context, image []byte) (string, error)
}

type Analyzer struct {
	Describer Describer
}

// Analyze produces a descriptive report for an image artifact. The local
// measurements always succeed on a decodable image; the remote
// description is best-effort.
func (a *Analyzer) Analyze(ctx context.Context, artifact []byte) (string, error) {
	if len(artifact) == 0 {
		return "", errors.New("no image artifact to analyze")
	}
	img, format, err := image.Decode(bytes.NewReader(artifact))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	gray := grayscale(img)
	edges, minX, minY, maxX, maxY := edgeMap(gray, w, h)

	var report strings.Builder
	fmt.Fprintf(&report, "image: %dx%d %s\n", w, h, format)
	fmt.Fprintf(&report, "mean luminance: %d/255\n", meanLuminance(gray))
	density := float64(edges) / float64(w*h)
	fmt.Fprintf(&report, "edge density: %.1f%%\n", density*100)

	if edges > 0 {
		bw, bh := maxX-minX+1, maxY-minY+1
		fmt.Fprintf(&report, "edge bounding box: %dx%d at (%d,%d)\n", bw, bh, minX, minY)
		fmt.Fprintf(&report, "dominant region shape: %s\n", shapeGuess(bw, bh, density))
	} else {
		report.WriteString("no edge structure detected (uniform image)\n")
	}

	if a.Describer != nil {
		if desc, err := a.Describer.DescribeImage(ctx, artifact); err == nil && desc != "" {
			report.WriteString("\nremote analysis:\n")
			report.WriteString(desc)
		} else if err != nil {
			log.Printf("visual: remote description skipped: %v", err)
		}
	}
	return report.String(), nil
}

// grayscale flattens the image into row-major 0-255 luminance values.
func grayscale(img image.Image) []uint8 {
	b := img.Bounds()
	out := make([]uint8, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			// ITU-R BT.601 weights on 16-bit channels
			lum := (299*r + 587*g + 114*bl) / 1000
			out = append(out, uint8(lum>>8))
		}
	}
	return out
}

func meanLuminance(gray []uint8) int {
	if len(gray) == 0 {
		return 0
	}
	var sum int
	for _, v := range gray {
		sum += int(v)
	}
	return sum / len(gray)
}

// edgeMap counts pixels whose right or lower neighbor differs by more
// than edgeThreshold, returning the count and the edge bounding box.
func edgeMap(gray []uint8, w, h int) (count, minX, minY, maxX, maxY int) {
	minX, minY = w, h
	maxX, maxY = -1, -1
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			v := int(gray[y*w+x])
			dx := v - int(gray[y*w+x+1])
			dy := v - int(gray[(y+1)*w+x])
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			if dx > edgeThreshold || dy > edgeThreshold {
				count++
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	return count, minX, minY, maxX, maxY
}

// shapeGuess gives a coarse verdict about the dominant edge region.
func shapeGuess(w, h int, density float64) string {
	aspect := float64(w) / float64(h)
	switch {
	case density > 0.25:
		return "dense texture or text block"
	case aspect >= 0.95 && aspect <= 1.05:
		return "square-ish region"
	case aspect > 2 || aspect < 0.5:
		return "elongated region"
	default:
		return "rectangular region"
	}
}
