// Package bernoulli turns a uniform random source into the biased binary
// draws that route balls through the board.
package bernoulli

import (
	"fmt"
	"math/rand"
	"time"
)

// Uniform yields values in [0,1). *rand.Rand satisfies it; tests script it.
type Uniform interface {
	Float64() float64
}

// Source draws independent Bernoulli(p) outcomes. The bias is validated once
// here, never per draw.
type Source struct {
	p   float64
	rnd Uniform
}

func New(p float64, rnd Uniform) (*Source, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("bernoulli: probability %.3f out of [0,1]", p)
	}
	if rnd == nil {
		// fallback, normally the caller passes a *rand.Rand it owns
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Source{p: p, rnd: rnd}, nil
}

// Draw reports true with probability p. Each call advances the underlying
// source; draws are independent across calls.
func (s *Source) Draw() bool {
	return s.rnd.Float64() < s.p
}

func (s *Source) P() float64 { return s.p }
