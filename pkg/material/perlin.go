package material

import (
	"math"
	"math/rand"

	"github.com/mhollis/tracepath/pkg/core"
)

const perlinPointCount = 256

// Perlin is a value-gradient noise generator: 256 random unit vectors
// indexed by three independent permutations of [0, 256), one per axis.
type Perlin struct {
	randVec [perlinPointCount]core.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin builds a generator seeded from the process-wide RNG. Scene
// setup is the only place a shared generator is used; workers never call
// into Perlin construction.
func NewPerlin() *Perlin {
	p := &Perlin{}
	sampler := core.NewSeededSampler(rand.Int63())
	for i := 0; i < perlinPointCount; i++ {
		p.randVec[i] = core.RandomUnitVector(sampler)
	}
	p.permX = perlinGeneratePerm()
	p.permY = perlinGeneratePerm()
	p.permZ = perlinGeneratePerm()
	return p
}

func perlinGeneratePerm() [perlinPointCount]int {
	var p [perlinPointCount]int
	for i := range p {
		p[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Noise evaluates value-gradient noise at p using Hermitian (smoothstep)
// fade between the eight surrounding lattice points.
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.randVec[idx]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	var accum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums Noise over `depth` octaves, halving amplitude and
// doubling frequency each step, and returns its absolute value.
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	var accum float64
	temp := point
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}
