/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package palette derives a three-color brand palette from a logo image.
package palette

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"
	"sort"
	"time"

	// Register decoders for the logo formats we accept.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/friendsincode/brandpage/internal/brand"
)

const (
	// Sampling resolution. Large logos are scaled down first so extraction
	// cost is bounded and independent of input size.
	sampleSize = 64

	// Channel quantization: 4 bits per channel, 4096 bins.
	binShift = 4

	// Bins whose center is this close to white or black are decorative
	// background, not brand color.
	nearWhite = 232
	nearBlack = 24

	fetchTimeout = 10 * time.Second
)

// Default palette used when an image cannot be loaded, decoded, or yields
// no usable bins.
var defaultPalette = brand.Colors{
	Primary:   brand.DefaultPrimary,
	Secondary: brand.DefaultSecondary,
	Accent:    brand.DefaultAccent,
}

// Default returns the fixed fallback palette.
func Default() brand.Colors {
	return defaultPalette
}

// FromImage extracts a palette from an already decoded image. The result is
// deterministic for a given image.
func FromImage(img image.Image) brand.Colors {
	img = downsample(img)

	counts := make(map[uint32]int)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a < 0x8000 {
				continue // transparent background
			}
			r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
			counts[binKey(r8, g8, b8)]++
		}
	}

	type bin struct {
		key   uint32
		count int
	}
	usable := make([]bin, 0, len(counts))
	for key, count := range counts {
		r, g, b := binCenter(key)
		if int(r) >= nearWhite && int(g) >= nearWhite && int(b) >= nearWhite {
			continue
		}
		if int(r) <= nearBlack && int(g) <= nearBlack && int(b) <= nearBlack {
			continue
		}
		usable = append(usable, bin{key: key, count: count})
	}

	if len(usable) == 0 {
		return defaultPalette
	}

	// Descending frequency; key order breaks ties so extraction stays
	// deterministic across map iteration order.
	sort.Slice(usable, func(i, j int) bool {
		if usable[i].count != usable[j].count {
			return usable[i].count > usable[j].count
		}
		return usable[i].key < usable[j].key
	})

	out := defaultPalette
	if len(usable) > 0 {
		out.Primary = binHex(usable[0].key)
	}
	if len(usable) > 1 {
		out.Secondary = binHex(usable[1].key)
	}
	if len(usable) > 2 {
		out.Accent = binHex(usable[2].key)
	}
	return out
}

// Decode reads and extracts a palette from image data. Returns the default
// palette and an error when the data cannot be decoded; the error is for
// caller feedback only, the palette is always usable.
func Decode(data []byte) (brand.Colors, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return defaultPalette, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img), nil
}

// FromURL fetches a logo and extracts its palette. Failures degrade to the
// default palette with the error returned for surfacing.
func FromURL(ctx context.Context, client *http.Client, url string) (brand.Colors, error) {
	if client == nil {
		client = http.DefaultClient
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return defaultPalette, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return defaultPalette, fmt.Errorf("fetch logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return defaultPalette, fmt.Errorf("fetch logo: status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return defaultPalette, fmt.Errorf("decode logo: %w", err)
	}
	return FromImage(img), nil
}

func downsample(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= sampleSize && h <= sampleSize {
		return img
	}

	nw, nh := w, h
	if w >= h {
		nw = sampleSize
		nh = h * sampleSize / w
	} else {
		nh = sampleSize
		nw = w * sampleSize / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}

func binKey(r, g, b uint8) uint32 {
	return uint32(r>>binShift)<<8 | uint32(g>>binShift)<<4 | uint32(b>>binShift)
}

func binCenter(key uint32) (r, g, b uint8) {
	half := uint8(1 << (binShift - 1))
	r = uint8((key>>8)&0xF)<<binShift + half
	g = uint8((key>>4)&0xF)<<binShift + half
	b = uint8(key&0xF)<<binShift + half
	return r, g, b
}

func binHex(key uint32) string {
	r, g, b := binCenter(key)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
