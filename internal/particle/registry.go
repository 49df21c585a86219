package particle

import "fmt"

// DuplicateFormError reports two particles claiming the same surface form.
// The builtin table is a program constant, so hitting this during
// construction is a programming error, not a runtime condition.
type DuplicateFormError struct {
	Form string
}

func (e DuplicateFormError) Error() string {
	return fmt.Sprintf("particle form %q registered twice", e.Form)
}

// Registry maps every known surface form to its owning particle. It is
// immutable once built and safe to share across goroutines without locking.
type Registry struct {
	particles []Particle
	index     map[string]*Particle
}

// NewRegistry indexes every representational form of the given particles.
func NewRegistry(particles ...Particle) (*Registry, error) {
	r := &Registry{
		particles: append([]Particle(nil), particles...),
		index:     make(map[string]*Particle, len(particles)*3),
	}
	for i := range r.particles {
		p := &r.particles[i]
		for _, form := range p.Forms() {
			if _, ok := r.index[form]; ok {
				return nil, DuplicateFormError{Form: form}
			}
			r.index[form] = p
		}
	}
	return r, nil
}

// MustNewRegistry is NewRegistry for fixed startup tables; a duplicate form
// there means the process must not come up.
func MustNewRegistry(particles ...Particle) *Registry {
	r, err := NewRegistry(particles...)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultParticles returns the builtin particle table. The copula is not
// listed; it is the fallback for every spec the registry cannot resolve.
func DefaultParticles() []Particle {
	return []Particle{
		New("은", "는"),
		New("이", "가"),
		New("을", "를"),
		New("과", "와"),
		// Vocative particles.
		New("아", "야"),
		NewWithDefault("이여", "여", "(이)여"),
		NewWithDefault("이시여", "시여", "(이)시여"),
		// 으로 keeps its short form after a ㄹ coda.
		{WithCoda: "으로", WithoutCoda: "로", Default: "(으)로", Rule: RuleDirectional},
	}
}

// Resolve looks up the particle owning an exact surface form. No case or
// normalization folding is applied.
func (r *Registry) Resolve(form string) (*Particle, bool) {
	p, ok := r.index[form]
	return p, ok
}

// Particles returns a copy of the table the registry was built from.
func (r *Registry) Particles() []Particle {
	return append([]Particle(nil), r.particles...)
}
