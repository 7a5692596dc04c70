package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lraycheva/core-sub003/internal/events"
	"github.com/lraycheva/core-sub003/internal/layoutstore"
	"github.com/lraycheva/core-sub003/internal/log"
	"github.com/lraycheva/core-sub003/internal/presentation"
	"github.com/lraycheva/core-sub003/internal/tracing"
	"github.com/lraycheva/core-sub003/internal/workspaces"
)

var errEventsDropped = errors.New("event stream dropped events")

// session is one command's worth of runtime: a publisher, the manager
// raising into it and, when asked for, the layout store.
type session struct {
	publisher *events.Publisher
	manager   *workspaces.Manager
	store     *layoutstore.SQLiteStore
	provider  *tracing.Provider

	streamDone chan struct{}
	streamErr  error
}

func openSession(withStore bool) (*session, error) {
	provider, err := tracing.NewProvider(cfg.TracingConfig())
	if err != nil {
		return nil, fmt.Errorf("starting tracing: %w", err)
	}

	s := &session{
		publisher: events.NewPublisher(cfg.Events.BufferSize, events.WithBlockingDelivery()),
		provider:  provider,
	}
	opts := []workspaces.Option{
		workspaces.WithTracer(provider.Tracer()),
		workspaces.WithHelloTTL(cfg.Cache.ElementTTL),
	}
	if withStore {
		store, err := layoutstore.Open(cfg.StorePath())
		if err != nil {
			_ = provider.Shutdown(context.Background())
			return nil, err
		}
		s.store = store
		opts = append(opts, workspaces.WithStore(layoutstore.NewCachedStore(store, cfg.Cache.LayoutTTL)))
	}
	s.manager = workspaces.New(s.publisher, opts...)
	return s, nil
}

// stream prints every published event to w until the session is closed.
// The publisher blocks on this subscriber, so nothing raised is skipped.
func (s *session) stream(w io.Writer, raw bool) {
	f := presentation.NewFormatter(w)
	if raw {
		f.WithoutTags()
	}
	sub := s.publisher.Subscribe(context.Background())
	s.streamDone = make(chan struct{})
	go func() {
		defer close(s.streamDone)
		for ev := range sub {
			if err := f.FormatEvent(ev.Payload); err != nil && s.streamErr == nil {
				s.streamErr = err
			}
		}
	}()
}

// Close stops the publisher, waits for the stream to drain and releases the
// store and trace provider.
func (s *session) Close(ctx context.Context) error {
	s.publisher.Close()
	var errs []error
	if s.streamDone != nil {
		<-s.streamDone
		errs = append(errs, s.streamErr)
		s.streamDone = nil
	}
	if dropped := s.publisher.Dropped(); dropped > 0 {
		log.Warn(log.CatCLI, "Event stream fell behind", "dropped", dropped)
		errs = append(errs, fmt.Errorf("%w: %d events", errEventsDropped, dropped))
	}
	if s.store != nil {
		errs = append(errs, s.store.Close())
		s.store = nil
	}
	errs = append(errs, s.provider.Shutdown(ctx))
	return errors.Join(errs...)
}
