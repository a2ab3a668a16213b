package events

import (
	"context"
	"fmt"

	"sales_service/internal/domain/entities"
	"sales_service/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsEventPublisher counts sale events and the amount removed from sales
// by item cancellations.
type MetricsEventPublisher struct {
	events          *prometheus.CounterVec
	cancelledAmount prometheus.Counter
}

var _ interfaces.ISaleEventPublisher = (*MetricsEventPublisher)(nil)

func NewMetricsEventPublisher(reg prometheus.Registerer) (*MetricsEventPublisher, error) {
	p := &MetricsEventPublisher{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sales_domain_events_total",
			Help: "Sale lifecycle events emitted, by event type.",
		}, []string{"event"}),
		cancelledAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sales_cancelled_amount_total",
			Help: "Sum of the totals of cancelled sale items.",
		}),
	}
	for _, c := range []prometheus.Collector{p.events, p.cancelledAmount} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register sales metrics: %w", err)
		}
	}
	return p, nil
}

func (p *MetricsEventPublisher) Publish(_ context.Context, evt entities.SaleEvent) error {
	p.events.WithLabelValues(evt.Type.String()).Inc()
	if evt.Type == entities.ItemCancelled && evt.Changed && evt.Item != nil {
		amount, _ := evt.Item.TotalAmount().Float64()
		p.cancelledAmount.Add(amount)
	}
	return nil
}
