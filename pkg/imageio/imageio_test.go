package imageio

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mhollis/tracepath/pkg/core"
	"github.com/mhollis/tracepath/pkg/renderer"
)

type testLogger struct{ messages []string }

func (l *testLogger) Printf(format string, args ...interface{}) {
	l.messages = append(l.messages, format)
}

func solidBuffer(width, height int, color core.Vec3) *renderer.Buffer {
	buf := renderer.NewBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Set(x, y, color)
		}
	}
	return buf
}

func TestWriteImageProducesReadableFile(t *testing.T) {
	buf := solidBuffer(8, 8, core.NewVec3(1, 0, 0))
	path := filepath.Join(t.TempDir(), "nested", "out.png")

	if err := WriteImage(buf, path); err != nil {
		t.Fatalf("WriteImage returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty PNG file")
	}
}

func TestWriteThumbnailShrinksWideImages(t *testing.T) {
	buf := solidBuffer(thumbnailMaxWidth*2, thumbnailMaxWidth, core.NewVec3(0, 1, 0))
	path := filepath.Join(t.TempDir(), "thumb.png")

	if err := WriteThumbnail(buf, path); err != nil {
		t.Fatalf("WriteThumbnail returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected thumbnail file to exist: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening thumbnail: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decoding thumbnail header: %v", err)
	}
	if cfg.Width != thumbnailMaxWidth {
		t.Errorf("thumbnail width = %d, want %d", cfg.Width, thumbnailMaxWidth)
	}
}

func TestToRGBAFillsOpaqueAlpha(t *testing.T) {
	buf := solidBuffer(2, 2, core.NewVec3(1, 1, 1))
	img := toRGBA(buf)

	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] != 255 {
			t.Fatalf("expected opaque alpha byte, got %d at offset %d", img.Pix[i+3], i)
		}
	}
}

type failingDenoiser struct{}

func (failingDenoiser) Denoise(color, albedo, normal *renderer.Buffer) (*renderer.Buffer, error) {
	return nil, errors.New("denoiser unavailable")
}

type identityDenoiser struct{ called bool }

func (d *identityDenoiser) Denoise(color, albedo, normal *renderer.Buffer) (*renderer.Buffer, error) {
	d.called = true
	return color, nil
}

func TestDenoiseFallsBackToRawBufferOnFailure(t *testing.T) {
	main := solidBuffer(4, 4, core.NewVec3(0.5, 0.5, 0.5))
	result := renderer.RenderResult{Main: main, Albedo: main, Normal: main}
	logger := &testLogger{}

	out := Denoise(result, failingDenoiser{}, logger)
	if out != main {
		t.Error("expected fallback to the raw color buffer on denoiser failure")
	}
	if len(logger.messages) == 0 {
		t.Error("expected the denoiser failure to be logged")
	}
}

func TestDenoiseNilDenoiserReturnsRawBuffer(t *testing.T) {
	main := solidBuffer(4, 4, core.NewVec3(0.2, 0.2, 0.2))
	result := renderer.RenderResult{Main: main, Albedo: main, Normal: main}

	out := Denoise(result, nil, &testLogger{})
	if out != main {
		t.Error("expected nil denoiser to pass through the raw buffer")
	}
}

func TestDenoiseUsesProvidedDenoiserResult(t *testing.T) {
	main := solidBuffer(4, 4, core.NewVec3(0.1, 0.1, 0.1))
	result := renderer.RenderResult{Main: main, Albedo: main, Normal: main}
	den := &identityDenoiser{}

	out := Denoise(result, den, &testLogger{})
	if !den.called {
		t.Error("expected the configured denoiser to be invoked")
	}
	if out != main {
		t.Error("expected the denoiser's returned buffer to be used")
	}
}

func TestPassthroughDenoiserReturnsColorUnchanged(t *testing.T) {
	main := solidBuffer(2, 2, core.NewVec3(0.3, 0.3, 0.3))
	out, err := PassthroughDenoiser{}.Denoise(main, main, main)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != main {
		t.Error("expected passthrough denoiser to return the color buffer unchanged")
	}
}
