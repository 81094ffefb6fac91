// Package opt implements the bounded global search used to find improved
// operating points. The minimizer is a differential evolution (best/1/bin)
// over box bounds with a fixed iteration cap and a population-spread
// convergence test. Runs are deterministic for a given seed.
package opt

import (
	"math"
	"math/rand"
)

type Problem struct {
	Objective func(x []float64) float64
	Bounds    [][2]float64 // per-dimension [lo, hi]
	MaxIter   int          // generation cap; defaults to 100
	PopSize   int          // members; defaults to 15 per dimension
	Tol       float64      // relative convergence tolerance; defaults to 0.01
	Atol      float64      // absolute convergence tolerance; defaults to 0.01
}

type Solution struct {
	X         []float64
	F         float64
	Converged bool
}

type Metrics struct {
	Generations int
	Evaluations int
	BestCost    float64
}

const (
	defaultMaxIter   = 100
	defaultPopFactor = 15
	defaultTol       = 0.01
	crossoverProb    = 0.7
)

// Solve minimizes p.Objective inside p.Bounds. The population is initialized
// uniformly at random inside the bounds; each generation mutates against the
// current best with dithered weight in [0.5, 1.0) and recombines binomially.
// Convergence is declared when the population energy spread satisfies
// std <= atol + tol*|mean|, scanning stops at the generation cap either way,
// and the best member found is always returned.
func Solve(p Problem, seed int64) (Solution, Metrics) {
	rng := rand.New(rand.NewSource(seed))
	dims := len(p.Bounds)
	maxIter := p.MaxIter
	if maxIter <= 0 {
		maxIter = defaultMaxIter
	}
	popSize := p.PopSize
	if popSize <= 0 {
		popSize = defaultPopFactor * dims
	}
	if popSize < 4 {
		popSize = 4
	}
	tol := p.Tol
	if tol <= 0 {
		tol = defaultTol
	}
	atol := p.Atol
	if atol <= 0 {
		atol = defaultTol
	}

	m := Metrics{}

	pop := make([][]float64, popSize)
	energy := make([]float64, popSize)
	bestIdx := 0
	for i := range pop {
		pop[i] = make([]float64, dims)
		for d := 0; d < dims; d++ {
			lo, hi := p.Bounds[d][0], p.Bounds[d][1]
			pop[i][d] = lo + rng.Float64()*(hi-lo)
		}
		energy[i] = p.Objective(pop[i])
		m.Evaluations++
		if energy[i] < energy[bestIdx] {
			bestIdx = i
		}
	}

	converged := false
	trial := make([]float64, dims)
	for gen := 0; gen < maxIter; gen++ {
		m.Generations++
		f := 0.5 + 0.5*rng.Float64() // dithered mutation weight per generation
		for i := 0; i < popSize; i++ {
			r1, r2 := distinctPair(rng, popSize, i, bestIdx)
			jrand := rng.Intn(dims)
			for d := 0; d < dims; d++ {
				if d == jrand || rng.Float64() < crossoverProb {
					v := pop[bestIdx][d] + f*(pop[r1][d]-pop[r2][d])
					trial[d] = clamp(v, p.Bounds[d][0], p.Bounds[d][1])
				} else {
					trial[d] = pop[i][d]
				}
			}
			e := p.Objective(trial)
			m.Evaluations++
			if e <= energy[i] {
				copy(pop[i], trial)
				energy[i] = e
				if e < energy[bestIdx] {
					bestIdx = i
				}
			}
		}
		if spreadConverged(energy, tol, atol) {
			converged = true
			break
		}
	}

	best := make([]float64, dims)
	copy(best, pop[bestIdx])
	m.BestCost = energy[bestIdx]
	return Solution{X: best, F: energy[bestIdx], Converged: converged}, m
}

// distinctPair picks two population indices distinct from each other, from i,
// and from the current best.
func distinctPair(rng *rand.Rand, n, i, best int) (int, int) {
	r1 := rng.Intn(n)
	for r1 == i || r1 == best {
		r1 = rng.Intn(n)
	}
	r2 := rng.Intn(n)
	for r2 == i || r2 == best || r2 == r1 {
		r2 = rng.Intn(n)
	}
	return r1, r2
}

func spreadConverged(energy []float64, tol, atol float64) bool {
	mean := 0.0
	for _, e := range energy {
		if math.IsInf(e, 0) || math.IsNaN(e) {
			return false
		}
		mean += e
	}
	mean /= float64(len(energy))
	variance := 0.0
	for _, e := range energy {
		d := e - mean
		variance += d * d
	}
	std := math.Sqrt(variance / float64(len(energy)))
	return std <= atol+tol*math.Abs(mean)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
