// Package lifecycle exposes notebook changes as a lifecycle.Source so they can
// be consumed alongside other event sources of a supervised process.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notebook/pkg/core"
)

// Watcher is the part of core.Repository a Source needs.
type Watcher interface {
	Watch(ctx context.Context) (<-chan core.Event, error)
}

type repositorySource struct {
	repo Watcher
	out  chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits a core.Event each time the
// repository reloads after an external change.
func NewSource(repo Watcher) lifecycle.Source {
	return &repositorySource{
		repo: repo,
		out:  make(chan lifecycle.Event),
	}
}

func (s *repositorySource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start subscribes to the repository. Events stop, and the channel closes,
// when ctx is done or the repository stops watching.
func (s *repositorySource) Start(ctx context.Context) error {
	changes, err := s.repo.Watch(ctx)
	if err != nil {
		close(s.out)
		return err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-changes:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
