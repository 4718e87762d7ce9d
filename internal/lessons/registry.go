package lessons

import (
	"sort"
	"strings"

	apperrors "github.com/Oureyelet/funclab/internal/errors"
	"github.com/Oureyelet/funclab/internal/metrics"
)

// Registry holds the available lessons in presentation order.
type Registry struct {
	lessons []Lesson
	byName  map[string]Lesson
}

// NewRegistry builds the catalog of built-in lessons. The metrics instance
// receives counters from instrumented lessons; pass nil to disable.
func NewRegistry(mx *metrics.Metrics) *Registry {
	r := &Registry{byName: make(map[string]Lesson)}
	r.register(
		NewRecursionLesson(mx),
		NewReferenceLesson(),
		NewReturnsLesson(),
		NewCapacityLesson(mx),
	)
	return r
}

func (r *Registry) register(lessons ...Lesson) {
	for _, l := range lessons {
		r.lessons = append(r.lessons, l)
		r.byName[l.Name()] = l
	}
}

// Get returns the lesson with the given name.
func (r *Registry) Get(name string) (Lesson, error) {
	if l, ok := r.byName[name]; ok {
		return l, nil
	}
	return nil, apperrors.NewConfigError(
		"unknown lesson %q (available: %s)", name, strings.Join(r.Names(), ", "))
}

// All returns every lesson in presentation order.
func (r *Registry) All() []Lesson {
	out := make([]Lesson, len(r.lessons))
	copy(out, r.lessons)
	return out
}

// Names returns the sorted lesson identifiers.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
