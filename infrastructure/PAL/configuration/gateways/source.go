package gateways

import (
	"context"
	"gwswitch/domain/gateway"
	"gwswitch/domain/switching"
)

// FileSource loads the candidate list from the resolved file on every call.
type FileSource struct {
	resolver Resolver
}

func NewFileSource(resolver Resolver) *FileSource {
	return &FileSource{
		resolver: resolver,
	}
}

func (s *FileSource) Load(ctx context.Context) (gateway.Store, error) {
	if err := ctx.Err(); err != nil {
		return gateway.Store{}, err
	}
	path, err := s.resolver.Resolve()
	if err != nil {
		return gateway.Store{}, &switching.ConfigUnreadableError{Path: path, Err: err}
	}
	lines, err := newReader(path).readLines()
	if err != nil {
		return gateway.Store{}, err
	}
	return gateway.Parse(lines), nil
}
