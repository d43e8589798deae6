package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-imgconv/dsp/conv2d"
	"github.com/cwbudde/algo-imgconv/dsp/raster"
	"github.com/cwbudde/algo-imgconv/dsp/raster/imageio"
	"github.com/cwbudde/algo-imgconv/internal/testutil"
)

func TestBuildKernel(t *testing.T) {
	k, err := buildKernel(options{preset: "box", size: 5})
	if err != nil {
		t.Fatal(err)
	}
	if k.Height() != 5 || k.Width() != 5 {
		t.Fatalf("box kernel = %dx%d, want 5x5", k.Height(), k.Width())
	}

	k, err = buildKernel(options{preset: "box", matrix: "1 1; 1 1"})
	if err != nil {
		t.Fatal(err)
	}
	if k.Height() != 2 || k.Sum() != 4 {
		t.Fatalf("matrix should override preset, got %v", k)
	}

	if _, err := buildKernel(options{preset: "nope"}); !errors.Is(err, conv2d.ErrInvalidKernelSpec) {
		t.Fatalf("expected ErrInvalidKernelSpec, got %v", err)
	}
}

func TestPipelineOptions(t *testing.T) {
	cfg := conv2d.ApplyOptions(pipelineOptions(options{clamp: true, sequential: true})...)
	if cfg.Overflow != raster.OverflowClamp || cfg.Parallel {
		t.Fatalf("config = %+v", cfg)
	}

	cfg = conv2d.ApplyOptions(pipelineOptions(options{})...)
	if cfg != conv2d.DefaultConfig() {
		t.Fatalf("config = %+v, want defaults", cfg)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.bmp")

	src := testutil.UniformRaster(6, 5, [3]uint8{128, 128, 128})
	if err := imageio.WriteFile(in, src, imageio.Options{}); err != nil {
		t.Fatal(err)
	}

	if err := run(options{in: in, out: out}, conv2d.Sharpen()); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, _, err := imageio.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireRasterEqual(t, got, src)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	if err := run(options{in: filepath.Join(dir, "missing.png"), out: filepath.Join(dir, "x.png")}, conv2d.Identity()); err == nil {
		t.Fatal("expected error for missing input")
	}

	in := filepath.Join(dir, "tiny.png")
	if err := imageio.WriteFile(in, raster.New(2, 2), imageio.Options{}); err != nil {
		t.Fatal(err)
	}
	err := run(options{in: in, out: filepath.Join(dir, "y.png")}, conv2d.Sharpen())
	if !errors.Is(err, raster.ErrShape) {
		t.Fatalf("expected ErrShape, got %v", err)
	}
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	if err := printList(&buf); err != nil {
		t.Fatal(err)
	}
	got := strings.Fields(buf.String())
	if len(got) != len(conv2d.PresetNames()) || got[0] != "box" {
		t.Fatalf("printList = %q", buf.String())
	}
}

func TestPrintResponse(t *testing.T) {
	var buf bytes.Buffer
	if err := printResponse(&buf, conv2d.Identity(), 8); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1.000000") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}

	if err := printResponse(&buf, conv2d.Sharpen(), 2); !errors.Is(err, raster.ErrShape) {
		t.Fatalf("expected ErrShape, got %v", err)
	}
}
