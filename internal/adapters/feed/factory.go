package feed

import (
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory builds feed sources from configuration. It implements ports.SourceFactory.
type Factory struct {
	logger ports.Logger
	newS3  func(domain.SourceConfig) S3API
}

var _ ports.SourceFactory = (*Factory)(nil)

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithS3ClientFunc overrides how S3 clients are created.
func WithS3ClientFunc(fn func(domain.SourceConfig) S3API) FactoryOption {
	return func(f *Factory) {
		f.newS3 = fn
	}
}

// NewFactory creates a Factory.
func NewFactory(logger ports.Logger, opts ...FactoryOption) *Factory {
	f := &Factory{
		logger: logger,
		newS3: func(cfg domain.SourceConfig) S3API {
			return NewS3Client(cfg)
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Build returns one source per configuration, in order.
func (f *Factory) Build(configs []domain.SourceConfig) ([]ports.Source, error) {
	sources := make([]ports.Source, 0, len(configs))
	for _, cfg := range configs {
		var backend Backend
		switch cfg.Type {
		case domain.SourceTypeDir:
			backend = NewDirBackend(cfg.Path)
		case domain.SourceTypeS3:
			backend = NewS3Backend(f.newS3(cfg), cfg.Bucket, cfg.Prefix)
		default:
			err := zerr.With(zerr.Wrap(domain.ErrUnknownSourceType, "failed to build source"), "source", cfg.Name)
			return nil, zerr.With(err, "type", string(cfg.Type))
		}
		sources = append(sources, NewSource(cfg.Name, backend, f.logger))
	}
	return sources, nil
}
