// Package kosa resolves Korean particle allomorphs: given a word and a
// particle spec it returns the surface form whose phonology matches the
// word's final syllable. It also exposes the underlying Hangul phoneme codec.
package kosa

import "kosa/internal/particle"

// Particle is re-exported for callers that assemble custom tables.
type Particle = particle.Particle

// Rule selects the allomorphy rule of a custom particle.
type Rule = particle.Rule

const (
	RuleRegular     = particle.RuleRegular
	RuleDirectional = particle.RuleDirectional
)

// NewParticle builds a regular particle with a derived dictionary notation.
func NewParticle(withCoda, withoutCoda string) Particle {
	return particle.New(withCoda, withoutCoda)
}

// NewParticleWithDefault builds a regular particle with an explicit
// dictionary notation.
func NewParticleWithDefault(withCoda, withoutCoda, def string) Particle {
	return particle.NewWithDefault(withCoda, withoutCoda, def)
}

// Resolver chooses particle allomorphs for words. Construct one with
// Default or NewResolver; a resolver is immutable and safe for concurrent
// use.
type Resolver struct {
	inner *particle.Resolver
}

// Default returns a resolver over the builtin particle table.
func Default() *Resolver {
	registry := particle.MustNewRegistry(particle.DefaultParticles()...)
	return &Resolver{inner: particle.NewResolver(registry)}
}

// NewResolver extends the builtin table with extra particles. Surface forms
// clashing with the builtin table are reported, not served.
func NewResolver(extra ...Particle) (*Resolver, error) {
	table := append(particle.DefaultParticles(), extra...)
	registry, err := particle.NewRegistry(table...)
	if err != nil {
		return nil, err
	}
	return &Resolver{inner: particle.NewResolver(registry)}, nil
}

// Resolve returns the particle surface form for word. spec may be a known
// surface form, empty for the bare copula, or any verb to fuse through the
// copula.
func (r *Resolver) Resolve(word, spec string) string {
	return r.inner.Resolve(word, spec)
}

// Attach returns word with its resolved particle appended.
func (r *Resolver) Attach(word, spec string) string {
	return r.inner.Attach(word, spec)
}
