package particle

import "golang.org/x/text/unicode/norm"

// Resolver is the entry point a templating host calls with an already
// isolated (word, spec) pair. It holds no mutable state; one resolver may
// serve any number of concurrent callers.
type Resolver struct {
	registry *Registry
	copula   Copula
}

func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve returns the particle surface form to append after word. spec is a
// known surface form, an empty string for the bare copula, or any other verb
// to fuse through the copula. An unknown spec is never an error.
func (r *Resolver) Resolve(word, spec string) string {
	word = norm.NFC.String(word)
	spec = norm.NFC.String(spec)
	if spec == "" {
		return r.copula.Fuse(word, DictionaryForm)
	}
	if p, ok := r.registry.Resolve(spec); ok {
		return p.Select(word)
	}
	return r.copula.Fuse(word, spec)
}

// Attach renders word with its resolved particle appended. The word itself
// is never modified.
func (r *Resolver) Attach(word, spec string) string {
	return word + r.Resolve(word, spec)
}
