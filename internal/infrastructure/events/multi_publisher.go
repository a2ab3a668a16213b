package events

import (
	"context"
	"errors"

	"sales_service/internal/domain/entities"
	"sales_service/internal/usecase/interfaces"
)

// MultiEventPublisher fans an event out to every sink. A failing sink does not
// stop the others; their errors are joined.
type MultiEventPublisher struct {
	sinks []interfaces.ISaleEventPublisher
}

var _ interfaces.ISaleEventPublisher = (*MultiEventPublisher)(nil)

func NewMultiEventPublisher(sinks ...interfaces.ISaleEventPublisher) *MultiEventPublisher {
	out := make([]interfaces.ISaleEventPublisher, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return &MultiEventPublisher{sinks: out}
}

func (p *MultiEventPublisher) Publish(ctx context.Context, evt entities.SaleEvent) error {
	var errs []error
	for _, s := range p.sinks {
		if err := s.Publish(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
