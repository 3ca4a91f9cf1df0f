package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nvera/credicuotas/internal/config"
	"github.com/nvera/credicuotas/internal/domain"
	"github.com/nvera/credicuotas/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var dispatchingNotifications sync.Map

type Repo interface {
	FindUnsent(ctx context.Context, limit uint32) ([]domain.Notification, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

type outboundEvent struct {
	ID        string          `json:"id"`
	Recipient int             `json:"recipient"`
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data"`
}

// Service drains the notification outbox and delivers events to the
// notification collaborator. Delivery is fire-and-forget with respect to the
// ledger: a failed delivery marks the row failed and is logged, nothing more.
type Service struct {
	url            string
	repo           Repo
	client         clients.HTTPClientI
	limit          uint32
	pool           DeliveryPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, repo Repo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.NotifierAddress,
		repo:           repo,
		client:         client,
		limit:          1000,
		pool:           NewDeliveryPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Notification dispatcher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping notification dispatcher")
			return
		case <-ticker.C:
			s.dispatchPending(ctx)
		}
	}
}

func (s *Service) dispatchPending(ctx context.Context) {
	notifications, err := s.repo.FindUnsent(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch unsent notifications", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, notification := range notifications {
		notification := notification

		if _, loaded := dispatchingNotifications.LoadOrStore(notification.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.pool.Dispatch(ctx, Delivery{
				NotificationID: notification.ID,
				Run: func() error {
					defer dispatchingNotifications.Delete(notification.ID)
					return s.handleNotification(ctx, notification)
				},
			})
			if err != nil {
				dispatchingNotifications.Delete(notification.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching notifications", zap.Error(err))
	}
}

func (s *Service) handleNotification(ctx context.Context, notification domain.Notification) error {
	body, err := json.Marshal(outboundEvent{
		ID:        notification.ID,
		Recipient: notification.RecipientID,
		Event:     notification.EventType,
		Data:      json.RawMessage(notification.Payload),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification %s: %w", notification.ID, err)
	}

	url := s.url + "/api/notifications"
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, _, respHeaders, err := s.client.Post(url, nil, body)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return s.giveUp(ctx, notification, fmt.Errorf("failed to deliver notification %s after %d retries: %w", notification.ID, maxRetries, err))
			}

			switch {
			case statusCode == http.StatusTooManyRequests:
				s.waitForRateLimit(notification, respHeaders, attempt)
				continue
			case statusCode >= 200 && statusCode < 300:
				return s.repo.MarkSent(ctx, notification.ID)
			default:
				zap.L().Warn("Unexpected status from notifier",
					zap.Int("status", statusCode),
					zap.String("notificationID", notification.ID),
					zap.Int("attempt", attempt),
				)
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return s.giveUp(ctx, notification, fmt.Errorf("notifier rejected notification %s with status %d", notification.ID, statusCode))
			}
		}
	}
	return nil
}

// giveUp marks the notification failed. Delivery failure never bubbles into
// the ledger: the mutation it reports already committed.
func (s *Service) giveUp(ctx context.Context, notification domain.Notification, cause error) error {
	zap.L().Error("Giving up on notification", zap.String("notificationID", notification.ID), zap.Error(cause))
	if err := s.repo.MarkFailed(ctx, notification.ID); err != nil {
		return fmt.Errorf("failed to mark notification %s failed: %w", notification.ID, err)
	}
	return nil
}

func (s *Service) waitForRateLimit(notification domain.Notification, respHeaders http.Header, attempt int) {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("notificationID", notification.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
}
