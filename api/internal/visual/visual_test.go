package visual

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squarePNG renders a black square on a white canvas.
func squarePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if x >= 10 && x < 30 && y >= 10 && y < 30 {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func uniformPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.RGBA{128, 128, 128, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAnalyzeSquare(t *testing.T) {
	a := &Analyzer{}
	out, err := a.Analyze(context.Background(), squarePNG(t))
	require.NoError(t, err)
	assert.Contains(t, out, "image: 40x40 png")
	assert.Contains(t, out, "edge bounding box")
	assert.Contains(t, out, "square-ish region")
}

func TestAnalyzeUniform(t *testing.T) {
	a := &Analyzer{}
	out, err := a.Analyze(context.Background(), uniformPNG(t))
	require.NoError(t, err)
	assert.Contains(t, out, "no edge structure detected")
}

func TestAnalyzeRejectsGarbage(t *testing.T) {
	a := &Analyzer{}
	_, err := a.Analyze(context.Background(), []byte("not an image"))
	assert.Error(t, err)

	_, err = a.Analyze(context.Background(), nil)
	assert.Error(t, err)
}

type stubDescriber struct {
	out string
	err error
}

func (s *stubDescriber) DescribeImage(ctx context.Context, image []byte) (string, error) {
	return s.out, s.err
}

func TestAnalyzeAppendsRemoteDescription(t *testing.T) {
	a := &Analyzer{Describer: &stubDescriber{out: "a black square on white"}}
	out, err := a.Analyze(context.Background(), squarePNG(t))
	require.NoError(t, err)
	assert.Contains(t, out, "remote analysis:")
	assert.Contains(t, out, "a black square on white")
}

func TestAnalyzeSurvivesRemoteFailure(t *testing.T) {
	a := &Analyzer{Describer: &stubDescriber{err: errors.New("backend down")}}
	out, err := a.Analyze(context.Background(), squarePNG(t))
	require.NoError(t, err)
	assert.NotContains(t, out, "remote analysis:")
	assert.Contains(t, out, "edge bounding box")
}
