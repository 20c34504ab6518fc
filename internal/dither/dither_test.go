package dither

import (
	"math/rand/v2"
	"testing"

	"github.com/BuKarData/inkframe/internal/bitmap"
)

func uniformBuffer(w, h int, v uint8) *bitmap.Buffer {
	b := bitmap.New(w, h)
	px := b.Pixels()
	for i := range px {
		px[i] = v
	}
	return b
}

func countBlack(b *bitmap.Buffer) int {
	n := 0
	for _, v := range b.Pixels() {
		if v == bitmap.Black {
			n++
		}
	}
	return n
}

func TestThresholdIdempotentOnBinary(t *testing.T) {
	src := bitmap.New(40, 40)
	for y := range 40 {
		for x := range 40 {
			src.SetPixel(x, y, rand.IntN(2) == 0)
		}
	}

	out := Threshold(src)
	for i, v := range out.Pixels() {
		if v != src.Pixels()[i] {
			t.Fatalf("threshold changed already-binary pixel %v: %v -> %v", i, src.Pixels()[i], v)
		}
	}
}

func TestOutputIsBinary(t *testing.T) {
	src := bitmap.New(64, 64)
	px := src.Pixels()
	for i := range px {
		px[i] = uint8(rand.IntN(256))
	}

	for _, info := range Catalog() {
		t.Run(info.ID, func(t *testing.T) {
			out := Apply(info.ID, src)
			for i, v := range out.Pixels() {
				if v != bitmap.Black && v != bitmap.White {
					t.Fatalf("pixel %v is %v, not binary", i, v)
				}
			}
		})
	}
}

func TestSourceNotMutated(t *testing.T) {
	src := uniformBuffer(32, 32, 128)
	Apply(FloydSteinberg, src)
	for i, v := range src.Pixels() {
		if v != 128 {
			t.Fatalf("source pixel %v mutated to %v", i, v)
		}
	}
}

func TestUnknownTokenFallsBackToThreshold(t *testing.T) {
	src := uniformBuffer(16, 16, 200)
	out := Apply("definitely-not-an-algorithm", src)
	for i, v := range out.Pixels() {
		if v != bitmap.White {
			t.Fatalf("pixel %v is %v, want white from threshold fallback", i, v)
		}
	}
}

func TestMidGrayDiffusionNearHalf(t *testing.T) {
	src := uniformBuffer(200, 200, 128)
	total := 200 * 200

	for _, id := range []string{FloydSteinberg, Sierra, Stucki, Ordered, Bayer} {
		t.Run(id, func(t *testing.T) {
			black := countBlack(Apply(id, src))
			ratio := float64(black) / float64(total)
			if ratio < 0.45 || ratio > 0.55 {
				t.Errorf("%s black ratio on mid-gray is %.3f, want ~0.5", id, ratio)
			}
		})
	}
}

func TestAtkinsonLighterThanFloydSteinberg(t *testing.T) {
	// Atkinson discards 2/8 of every residual. On a light midtone the
	// residuals are negative, so discarding them means less darkening and
	// systematically fewer black pixels than Floyd-Steinberg.
	src := uniformBuffer(120, 120, 180)

	fs := countBlack(Apply(FloydSteinberg, src))
	atk := countBlack(Apply(Atkinson, src))
	if atk >= fs {
		t.Errorf("atkinson (%v black) not lighter than floyd-steinberg (%v black)", atk, fs)
	}
}

func TestInkConservation(t *testing.T) {
	// Error diffusion redistributes rather than discards, so the black
	// pixel count must track the input darkness within a small tolerance.
	src := bitmap.New(100, 100)
	px := src.Pixels()
	for i := range px {
		px[i] = uint8(rand.IntN(256))
	}
	var darkness float64
	for _, v := range px {
		darkness += float64(255-v) / 255
	}

	for _, id := range []string{FloydSteinberg, Sierra, Stucki} {
		t.Run(id, func(t *testing.T) {
			black := float64(countBlack(Apply(id, src)))
			diff := black - darkness
			if diff < 0 {
				diff = -diff
			}
			if diff > float64(len(px))*0.02 {
				t.Errorf("%s black count %v vs expected ink %.0f", id, black, darkness)
			}
		})
	}
}

func TestOrderedDeterministicPerPixel(t *testing.T) {
	src := bitmap.New(32, 32)
	px := src.Pixels()
	for i := range px {
		px[i] = uint8(rand.IntN(256))
	}

	a, b := Apply(Ordered, src), Apply(Ordered, src)
	for i := range a.Pixels() {
		if a.Pixels()[i] != b.Pixels()[i] {
			t.Fatalf("ordered dithering not deterministic at pixel %v", i)
		}
	}
}

func TestCatalogMatchesRegistry(t *testing.T) {
	for _, info := range Catalog() {
		if _, ok := algorithms[info.ID]; !ok {
			t.Errorf("catalog lists %q but no algorithm is registered for it", info.ID)
		}
	}
	if len(Catalog()) != len(algorithms) {
		t.Errorf("catalog has %v entries, registry has %v", len(Catalog()), len(algorithms))
	}
}
