package renderer

import (
	"runtime"
	"sync"

	"github.com/mhollis/tracepath/pkg/core"
	"github.com/mhollis/tracepath/pkg/integrator"
)

// Scene is the read-only surface a render needs: a world to intersect, a
// background color for escaping rays, image dimensions, and a camera ray
// generator. pkg/scene.Scene implements this.
type Scene interface {
	World() core.Hittable
	Background() core.Vec3
	ImageWidth() int
	ImageHeight() int
	GetRay(s, t float64, sampler core.Sampler) core.Ray
}

// RenderConfig controls a render invocation.
type RenderConfig struct {
	SamplesPerPixel int
	MaxDepth        int
	WorkerCount     int // 0 selects max(1, runtime.NumCPU()-1)
	Logger          core.Logger
}

// RenderResult holds the three merged output buffers.
type RenderResult struct {
	Main, Albedo, Normal *Buffer
}

// Render partitions SamplesPerPixel across a fixed worker pool, has each
// worker render the full image into private main/albedo/normal buffers,
// then merges the per-worker buffers by componentwise arithmetic mean.
func Render(scene Scene, cfg RenderConfig) RenderResult {
	workerCount := cfg.WorkerCount
	if workerCount <= 0 {
		workerCount = max(1, runtime.NumCPU()-1)
	}

	samplesPerWorker := (cfg.SamplesPerPixel + workerCount - 1) / workerCount
	if samplesPerWorker < 1 {
		samplesPerWorker = 1
	}

	width, height := scene.ImageWidth(), scene.ImageHeight()
	counter := NewProgressCounter(int64(height) * int64(workerCount))

	if cfg.Logger != nil {
		go RunReporter(counter, cfg.Logger)
	}

	mainBufs := make([]*Buffer, workerCount)
	albedoBufs := make([]*Buffer, workerCount)
	normalBufs := make([]*Buffer, workerCount)

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			sampler := core.NewSeededSampler(int64(workerID) + 1)
			main, albedo, normal := renderWorker(scene, width, height, samplesPerWorker, cfg.MaxDepth, sampler, counter, cfg.Logger)
			mainBufs[workerID] = main
			albedoBufs[workerID] = albedo
			normalBufs[workerID] = normal
		}(w)
	}
	wg.Wait()

	return RenderResult{
		Main:   MergeAverage(mainBufs),
		Albedo: MergeAverage(albedoBufs),
		Normal: MergeAverage(normalBufs),
	}
}

// renderWorker renders the full image for one worker's share of samples,
// row by row in deterministic top-to-bottom, left-to-right order, and
// returns that worker's private main/albedo/normal buffers. A panic partway
// through is caught and logged rather than propagated: the buffers were
// zero-allocated up front, so any row not yet reached is already zero-filled
// and the merge across workers still completes.
func renderWorker(scene Scene, width, height, samples, maxDepth int, sampler core.Sampler, counter *ProgressCounter, logger core.Logger) (main, albedo, normal *Buffer) {
	main = NewBuffer(width, height)
	albedo = NewBuffer(width, height)
	normal = NewBuffer(width, height)

	defer func() {
		if r := recover(); r != nil && logger != nil {
			logger.Printf("render worker recovered from panic, remaining rows zero-filled: %v\n", r)
		}
	}()

	world := scene.World()
	background := scene.Background()

	invSamples := 1.0 / float64(samples)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var mainSum, albedoSum, normalSum core.Vec3

			for s := 0; s < samples; s++ {
				u := (float64(x) + sampler.Float64()) / float64(width-1)
				v := (float64(height-1-y) + sampler.Float64()) / float64(height-1)

				ray := scene.GetRay(u, v, sampler)
				mainSum = mainSum.Add(integrator.RayColor(ray, background, world, sampler, maxDepth))
				albedoSum = albedoSum.Add(integrator.AlbedoColor(ray, background, world))
				normalSum = normalSum.Add(integrator.NormalColor(ray, world))
			}

			main.Set(x, y, mainSum.Multiply(invSamples))
			albedo.Set(x, y, albedoSum.Multiply(invSamples))
			normal.Set(x, y, normalSum.Multiply(invSamples))
		}
		counter.IncrementMain()
		counter.IncrementAlbedo()
		counter.IncrementNormal()
	}

	return main, albedo, normal
}
