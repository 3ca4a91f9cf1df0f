package notify

import (
	"context"

	"go.uber.org/zap"
)

type DeliveryPoolI interface {
	Dispatch(ctx context.Context, d Delivery) error
	Close()
}

// Delivery is one notification's full send attempt, retries included. An
// error returned by Run means the attempt chain itself broke, not that the
// notifier said no.
type Delivery struct {
	NotificationID string
	Run            func() error
}

type DeliveryPool struct {
	deliveries chan Delivery
}

func NewDeliveryPool(size int) *DeliveryPool {
	dp := &DeliveryPool{deliveries: make(chan Delivery, size)}

	for i := 0; i < size; i++ {
		go dp.deliver()
	}
	return dp
}

func (dp *DeliveryPool) deliver() {
	for d := range dp.deliveries {
		if err := d.Run(); err != nil {
			zap.L().Error("Notification delivery failed",
				zap.String("notificationID", d.NotificationID),
				zap.Error(err),
			)
		}
	}
}

func (dp *DeliveryPool) Dispatch(ctx context.Context, d Delivery) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case dp.deliveries <- d:
		return nil
	}
}

func (dp *DeliveryPool) Close() {
	select {
	case <-dp.deliveries:
	default:
		close(dp.deliveries)
	}
}
