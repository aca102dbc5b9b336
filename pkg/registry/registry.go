// Package registry resolves transmission type tags to loaders and loads
// configuration records through them.
//
// The set of variants is known at compile time, so the registry is a plain
// map from tag to factory; there is no plugin discovery.
package registry

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/transmission/pkg/transmission"
	"github.com/mesh-intelligence/transmission/pkg/types"
)

// Registry errors.
var (
	ErrUnknownType     = errors.New("unknown transmission type")
	ErrDuplicateType   = errors.New("transmission type already registered")
	ErrInvalidDefault  = errors.New("default reduction must be finite")
	ErrDuplicateRecord = errors.New("duplicate transmission name")
)

// Factory builds a loader for one variant with the registry's options.
type Factory func(opts transmission.LoaderOptions) transmission.Loader

// Loaded pairs a configuration record with the transmission built from it.
type Loaded struct {
	Info         types.TransmissionInfo
	Transmission transmission.Transmission
}

// Registry maps type tags to loader factories. It is safe for concurrent
// Load calls once construction and registration are done.
type Registry struct {
	factories map[string]Factory
	opts      transmission.LoaderOptions
	log       *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry) error

// WithLogger sets the logger used to report load failures.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) error {
		if l != nil {
			r.log = l
		}
		return nil
	}
}

// WithDefaultReduction sets the reduction loaders apply when a record omits
// one. Zero keeps the identity default.
func WithDefaultReduction(v float64) Option {
	return func(r *Registry) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidDefault, v)
		}
		r.opts.DefaultReduction = v
		return nil
	}
}

// New returns a registry with the built-in variants registered.
func New(opts ...Option) (*Registry, error) {
	r := Empty()
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	builtins := map[string]Factory{
		transmission.TypeSimple: func(o transmission.LoaderOptions) transmission.Loader {
			return transmission.SimpleLoader{Options: o}
		},
		transmission.TypeDifferential: func(o transmission.LoaderOptions) transmission.Loader {
			return transmission.DifferentialLoader{Options: o}
		},
		transmission.TypeFourBarLinkage: func(o transmission.LoaderOptions) transmission.Loader {
			return transmission.FourBarLinkageLoader{Options: o}
		},
	}
	for tag, f := range builtins {
		if err := r.Register(tag, f); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Empty returns a registry with nothing registered and a no-op logger.
func Empty() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		log:       zap.NewNop(),
	}
}

// Register adds a factory under tag. Tags match exactly.
func (r *Registry) Register(tag string, f Factory) error {
	if _, ok := r.factories[tag]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateType, tag)
	}
	r.factories[tag] = f
	return nil
}

// Types returns the registered tags in sorted order.
func (r *Registry) Types() []string {
	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Lookup returns the loader registered under tag.
func (r *Registry) Lookup(tag string) (transmission.Loader, error) {
	f, ok := r.factories[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}
	return f(r.opts), nil
}

// Load validates info and builds its transmission. It does not log; use
// LoadAll for reporting across many records.
func (r *Registry) Load(info types.TransmissionInfo) (transmission.Transmission, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	loader, err := r.Lookup(info.Type)
	if err != nil {
		return nil, fmt.Errorf("transmission %q: %w", info.Name, err)
	}
	return loader.Load(info)
}

// LoadAll loads every record, skipping the ones that fail. Each failure is
// logged and the joined failures are returned alongside the successes.
// Records sharing a name are rejected after the first.
func (r *Registry) LoadAll(infos []types.TransmissionInfo) ([]Loaded, error) {
	var (
		loaded []Loaded
		errs   []error
		seen   = make(map[string]bool, len(infos))
	)
	for _, info := range infos {
		var (
			t   transmission.Transmission
			err error
		)
		if info.Name != "" && seen[info.Name] {
			err = fmt.Errorf("%w: %q", ErrDuplicateRecord, info.Name)
		} else {
			t, err = r.Load(info)
		}
		if err != nil {
			r.log.Warn("transmission rejected",
				zap.String("transmission", info.Name),
				zap.String("type", info.Type),
				zap.Error(err))
			errs = append(errs, err)
			continue
		}
		seen[info.Name] = true
		r.log.Debug("transmission loaded",
			zap.String("transmission", info.Name),
			zap.String("type", info.Type),
			zap.Int("joints", t.NumJoints()),
			zap.Int("actuators", t.NumActuators()))
		loaded = append(loaded, Loaded{Info: info, Transmission: t})
	}
	if len(errs) > 0 {
		r.log.Error("some transmissions failed to load",
			zap.Int("failed", len(errs)),
			zap.Int("loaded", len(loaded)))
	}
	return loaded, errors.Join(errs...)
}
