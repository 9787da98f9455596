package palette

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/friendsincode/brandpage/internal/brand"
)

// solidBlocks builds an image with three colored regions of descending area
// over a white background.
func solidBlocks() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	fill := func(r image.Rectangle, c color.RGBA) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}
	fill(img.Bounds(), color.RGBA{255, 255, 255, 255})                 // background
	fill(image.Rect(0, 0, 100, 50), color.RGBA{16, 64, 224, 255})     // dominant blue
	fill(image.Rect(0, 50, 100, 75), color.RGBA{224, 32, 32, 255})    // red
	fill(image.Rect(0, 75, 100, 88), color.RGBA{32, 192, 96, 255})    // green
	return img
}

func TestFromImage_OrdersByFrequency(t *testing.T) {
	got := FromImage(solidBlocks())

	if !brand.ValidHex(got.Primary) || !brand.ValidHex(got.Secondary) || !brand.ValidHex(got.Accent) {
		t.Fatalf("palette entries must be valid hex: %+v", got)
	}

	// Bin centers quantize the channel values: the dominant blue block lands
	// in bin center #1848E8, the red in #E82828, the green in #28C868.
	if got.Primary != "#1848E8" {
		t.Fatalf("expected dominant blue bin as primary, got %q", got.Primary)
	}
	if got.Secondary != "#E82828" {
		t.Fatalf("expected red bin as secondary, got %q", got.Secondary)
	}
	if got.Accent != "#28C868" {
		t.Fatalf("expected green bin as accent, got %q", got.Accent)
	}
}

func TestFromImage_RejectsNearWhiteAndBlack(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x < 5 {
				img.SetRGBA(x, y, color.RGBA{250, 250, 250, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{5, 5, 5, 255})
			}
		}
	}

	got := FromImage(img)
	if got != Default() {
		t.Fatalf("white/black-only image should fall back to defaults, got %+v", got)
	}
}

func TestFromImage_Deterministic(t *testing.T) {
	img := solidBlocks()
	first := FromImage(img)
	for i := 0; i < 5; i++ {
		if got := FromImage(img); got != first {
			t.Fatalf("extraction not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestDecode_InvalidDataFallsBack(t *testing.T) {
	got, err := Decode([]byte("not an image"))
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if got != Default() {
		t.Fatalf("decode failure should return the default palette, got %+v", got)
	}
}

func TestDecode_PNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidBlocks()); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	got, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got == Default() {
		t.Fatalf("expected extracted palette, got defaults")
	}
}
