package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Samvel1-1/Electronics/internal/domain"
	"github.com/Samvel1-1/Electronics/internal/messaging"
	"github.com/Samvel1-1/Electronics/internal/repository"
	"github.com/Samvel1-1/Electronics/internal/storage"
)

type fakeNotifier struct {
	failSends     bool
	confirmations []string
	cancellations []struct {
		orderID string
		byAdmin bool
	}
}

func (f *fakeNotifier) SendPurchaseConfirmation(to string, order *domain.Order) error {
	if f.failSends {
		return &domain.NotificationError{Err: errors.New("relay unavailable")}
	}
	f.confirmations = append(f.confirmations, to)
	return nil
}

func (f *fakeNotifier) SendCancellation(to, orderID, total string, byAdmin bool) error {
	if f.failSends {
		return &domain.NotificationError{Err: errors.New("relay unavailable")}
	}
	f.cancellations = append(f.cancellations, struct {
		orderID string
		byAdmin bool
	}{orderID, byAdmin})
	return nil
}

type fakePublisher struct {
	events []messaging.OrderEventType
}

func (f *fakePublisher) PublishOrderEvent(eventType messaging.OrderEventType, order *domain.Order) error {
	f.events = append(f.events, eventType)
	return nil
}

func newTestService(t *testing.T, notifier Notifier) (*OrderService, *repository.OrderRepository) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo := repository.NewOrderRepository(store)
	return NewOrderService(repo, notifier, nil), repo
}

func TestPurchase_RequiresEmail(t *testing.T) {
	svc, _ := newTestService(t, &fakeNotifier{})
	_, err := svc.Purchase("", "Phone", nil, "3900")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestPurchase_PersistsThenNotifies(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, repo := newTestService(t, notifier)

	items := []domain.OrderItem{{Name: "Phone", Quantity: 2, UnitPrice: 5}}
	order, err := svc.Purchase("ann@example.com", "", items, "3900")
	require.NoError(t, err)
	require.Equal(t, domain.OrderActive, order.Status)
	require.Len(t, order.Items, 1)
	require.Equal(t, []string{"ann@example.com"}, notifier.confirmations)

	persisted, err := repo.Find(order.ID, "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, "3900", persisted.Total)
}

// A failed confirmation fails the purchase response even though the order
// was already durably persisted. Cancellation below behaves the opposite
// way; the asymmetry is intentional.
func TestPurchase_NotificationFailureIsFatalButOrderRemains(t *testing.T) {
	notifier := &fakeNotifier{failSends: true}
	svc, repo := newTestService(t, notifier)

	order, err := svc.Purchase("ann@example.com", "Phone", nil, "3900")
	require.Error(t, err)
	var notifErr *domain.NotificationError
	require.ErrorAs(t, err, &notifErr)

	persisted, findErr := repo.Find(order.ID, "ann@example.com")
	require.NoError(t, findErr)
	require.Equal(t, domain.OrderActive, persisted.Status)
}

func TestCancel_NotificationFailureIsSwallowed(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, repo := newTestService(t, notifier)

	order, err := svc.Purchase("ann@example.com", "Phone", nil, "3900")
	require.NoError(t, err)

	notifier.failSends = true
	cancelled, err := svc.Cancel(order.ID, "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.OrderCancelled, cancelled.Status)

	persisted, err := repo.Find(order.ID, "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.OrderCancelled, persisted.Status)
}

func TestCancel_OwnerMismatchIsNotFound(t *testing.T) {
	svc, _ := newTestService(t, &fakeNotifier{})
	order, err := svc.Purchase("ann@example.com", "Phone", nil, "3900")
	require.NoError(t, err)

	_, err = svc.Cancel(order.ID, "bob@example.com")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancel_SecondCancellationRejected(t *testing.T) {
	svc, _ := newTestService(t, &fakeNotifier{})
	order, err := svc.Purchase("ann@example.com", "Phone", nil, "3900")
	require.NoError(t, err)

	_, err = svc.Cancel(order.ID, "ann@example.com")
	require.NoError(t, err)

	_, err = svc.Cancel(order.ID, "ann@example.com")
	require.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestAdminCancel_SkipsOwnershipCheck(t *testing.T) {
	notifier := &fakeNotifier{}
	svc, _ := newTestService(t, notifier)
	order, err := svc.Purchase("ann@example.com", "Phone", nil, "3900")
	require.NoError(t, err)

	cancelled, err := svc.AdminCancel(order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderCancelled, cancelled.Status)

	require.Len(t, notifier.cancellations, 1)
	require.True(t, notifier.cancellations[0].byAdmin)
}

func TestPurchaseAndCancel_PublishEvents(t *testing.T) {
	notifier := &fakeNotifier{}
	publisher := &fakePublisher{}
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	svc := NewOrderService(repository.NewOrderRepository(store), notifier, publisher)

	order, err := svc.Purchase("ann@example.com", "Phone", nil, "3900")
	require.NoError(t, err)
	_, err = svc.Cancel(order.ID, "ann@example.com")
	require.NoError(t, err)

	require.Equal(t, []messaging.OrderEventType{
		messaging.OrderCreatedEvent,
		messaging.OrderCancelledEvent,
	}, publisher.events)
}
