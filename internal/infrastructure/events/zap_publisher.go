package events

import (
	"context"

	"sales_service/internal/domain/entities"
	"sales_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ZapEventPublisher writes one structured log line per sale event.
type ZapEventPublisher struct {
	logger *zap.Logger
}

var _ interfaces.ISaleEventPublisher = (*ZapEventPublisher)(nil)

func NewZapEventPublisher(logger *zap.Logger) *ZapEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapEventPublisher{logger: logger.Named("sale_events")}
}

func (p *ZapEventPublisher) Publish(_ context.Context, evt entities.SaleEvent) error {
	fields := []zap.Field{
		zap.String("event", evt.Type.String()),
		zap.String("sale_id", evt.SaleID.String()),
		zap.String("sale_number", evt.SaleNumber),
		zap.String("status", evt.Status.String()),
		zap.String("total_amount", evt.TotalAmount.StringFixed(2)),
		zap.Time("occurred_at", evt.OccurredAt),
	}
	if evt.Item != nil {
		fields = append(fields,
			zap.String("item_id", evt.Item.ID().String()),
			zap.String("product_description", evt.Item.ProductDescription()),
			zap.String("item_total_amount", evt.Item.TotalAmount().StringFixed(2)),
		)
	}
	p.logger.Info("sale event", fields...)
	return nil
}
