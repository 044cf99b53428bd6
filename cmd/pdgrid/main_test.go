package main

import (
	"testing"

	"github.com/gogpu/alphablend"
)

func TestParseModes(t *testing.T) {
	all, err := parseModes("")
	if err != nil || len(all) != len(alphablend.Modes()) {
		t.Fatalf("parseModes(\"\") = %v, %v", all, err)
	}
	got, err := parseModes("source-over,xor")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != alphablend.SourceOver || got[1] != alphablend.Xor {
		t.Errorf("parseModes = %v", got)
	}
	if _, err := parseModes("source-over,hue"); err == nil {
		t.Error("parseModes accepted an unknown mode")
	}
}

func TestRenderGrid(t *testing.T) {
	modes := []alphablend.Mode{alphablend.Source, alphablend.Destination, alphablend.Clear}
	img, err := renderGrid(modes, 32, 2, []alphablend.BufferOption{alphablend.WithFastPath()})
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", b)
	}

	// Pixel (15, 15) is inside both shapes in every tile.
	src := alphablend.FromColor[alphablend.U8](img.At(15, 15))
	dst := alphablend.FromColor[alphablend.U8](img.At(32+15, 15))
	cleared := alphablend.FromColor[alphablend.U8](img.At(15, 32+15))
	if src.R == 0 || src.B != 0 {
		t.Errorf("Source tile pixel = %+v, want red", src)
	}
	if dst.B == 0 || dst.R != 0 {
		t.Errorf("Destination tile pixel = %+v, want blue", dst)
	}
	if cleared != (alphablend.RGBA8{}) {
		t.Errorf("Clear tile pixel = %+v, want transparent", cleared)
	}
	if _, err := renderGrid(modes, 0, 2, nil); err == nil {
		t.Error("renderGrid accepted tile size 0")
	}
}
