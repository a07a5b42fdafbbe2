package renderer

import (
	"testing"

	"github.com/mhollis/tracepath/pkg/core"
)

// constWorldScene is a minimal Scene that always misses, returning a flat
// background everywhere, for exercising the worker pool's plumbing
// without needing a real geometry/material stack.
type constWorldScene struct {
	width, height int
	background    core.Vec3
	camera        *Camera
}

type missHittable struct{}

func (missHittable) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return core.HitRecord{}, false
}
func (missHittable) BoundingBox(t0, t1 float64) (core.AABB, bool) { return core.AABB{}, false }

func (s *constWorldScene) World() core.Hittable  { return missHittable{} }
func (s *constWorldScene) Background() core.Vec3 { return s.background }
func (s *constWorldScene) ImageWidth() int       { return s.width }
func (s *constWorldScene) ImageHeight() int      { return s.height }
func (s *constWorldScene) GetRay(u, v float64, sampler core.Sampler) core.Ray {
	return s.camera.GetRay(u, v, sampler)
}

func newTestScene(width, height int) *constWorldScene {
	cam := NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: float64(width) / float64(height),
		Aperture:    0,
		FocusDist:   1.0,
		TimeStart:   0,
		TimeEnd:     1,
	})
	return &constWorldScene{width: width, height: height, background: core.NewVec3(0.5, 0.7, 1.0), camera: cam}
}

func TestRenderMissEverywhereYieldsBackground(t *testing.T) {
	scene := newTestScene(4, 4)
	result := Render(scene, RenderConfig{SamplesPerPixel: 2, MaxDepth: 4, WorkerCount: 2})

	for _, c := range result.Main.Pixels {
		if c.Subtract(scene.background).Length() > 1e-6 {
			t.Fatalf("expected every pixel to equal the background color, got %v", c)
		}
	}
}

// panicHittable always panics on Hit, to exercise renderWorker's recovery.
type panicHittable struct{}

func (panicHittable) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	panic("simulated geometry failure")
}
func (panicHittable) BoundingBox(t0, t1 float64) (core.AABB, bool) { return core.AABB{}, false }

type panicScene struct {
	*constWorldScene
}

func (s *panicScene) World() core.Hittable { return panicHittable{} }

type recordingLogger struct{ messages []string }

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.messages = append(l.messages, format)
}

func TestRenderWorkerRecoversFromPanicAndZeroFillsBuffers(t *testing.T) {
	scene := &panicScene{newTestScene(4, 4)}
	logger := &recordingLogger{}
	sampler := core.NewSeededSampler(1)
	counter := NewProgressCounter(4)

	main, albedo, normal := renderWorker(scene, 4, 4, 2, 4, sampler, counter, logger)

	for _, buf := range []*Buffer{main, albedo, normal} {
		for _, c := range buf.Pixels {
			if !c.Equals(core.Vec3{}) {
				t.Errorf("expected zero-filled pixel after a panicking worker, got %v", c)
			}
		}
	}
	if len(logger.messages) == 0 {
		t.Error("expected the panic to be logged")
	}
}

func TestMergeAverageComputesArithmeticMean(t *testing.T) {
	a := NewBuffer(1, 1)
	a.Set(0, 0, core.NewVec3(1, 0, 0))
	b := NewBuffer(1, 1)
	b.Set(0, 0, core.NewVec3(3, 0, 0))

	merged := MergeAverage([]*Buffer{a, b})
	got := merged.At(0, 0)
	if !got.Equals(core.NewVec3(2, 0, 0)) {
		t.Errorf("merged pixel = %v, want (2,0,0)", got)
	}
}

func TestMergeAverageCommutative(t *testing.T) {
	a := NewBuffer(1, 1)
	a.Set(0, 0, core.NewVec3(1, 2, 3))
	b := NewBuffer(1, 1)
	b.Set(0, 0, core.NewVec3(4, 5, 6))
	c := NewBuffer(1, 1)
	c.Set(0, 0, core.NewVec3(7, 8, 9))

	forward := MergeAverage([]*Buffer{a, b, c}).At(0, 0)
	reversed := MergeAverage([]*Buffer{c, b, a}).At(0, 0)

	if !forward.Equals(reversed) {
		t.Errorf("merge should be order-independent: %v != %v", forward, reversed)
	}
}

func TestProgressCounterDoneOnlyWhenAllChannelsComplete(t *testing.T) {
	counter := NewProgressCounter(2)
	if counter.Done() {
		t.Fatal("fresh counter should not be done")
	}

	counter.IncrementMain()
	counter.IncrementMain()
	counter.IncrementAlbedo()
	counter.IncrementAlbedo()
	if counter.Done() {
		t.Fatal("counter should not be done until normal also completes")
	}

	counter.IncrementNormal()
	counter.IncrementNormal()
	if !counter.Done() {
		t.Fatal("counter should be done once all three channels reach total")
	}
}
