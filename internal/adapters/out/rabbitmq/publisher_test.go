package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *mockChannel) PublishWithContext(
	ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

func declaredChannel(exchange string) *mockChannel {
	ch := &mockChannel{}
	ch.On("ExchangeDeclare", exchange, "topic", true, false, false, false, amqp091.Table(nil)).Return(nil).Once()
	return ch
}

func TestRoutingKey(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.Pending, "order.pending"},
		{order.Preparing, "order.preparing"},
		{order.OutForDelivery, "order.out_for_delivery"},
		{order.Delivered, "order.delivered"},
		{order.Cancelled, "order.cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RoutingKey(tt.status))
		})
	}
}

func TestNewPublisher_DeclaresDefaultExchange(t *testing.T) {
	ch := declaredChannel(DefaultExchange)

	p, err := NewPublisher(ch, "", nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultExchange, p.exchange)
	ch.AssertExpectations(t)
}

func TestNewPublisher_DeclareFailure(t *testing.T) {
	ch := &mockChannel{}
	ch.On("ExchangeDeclare", "events", "topic", true, false, false, false, amqp091.Table(nil)).
		Return(errors.New("access refused"))

	p, err := NewPublisher(ch, "events", nil)

	require.Error(t, err)
	assert.Nil(t, p)
	assert.Contains(t, err.Error(), "access refused")
}

func TestPublisher_Publish(t *testing.T) {
	// Given
	ch := declaredChannel("events")
	p, err := NewPublisher(ch, "events", nil)
	require.NoError(t, err)

	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	at := time.Date(2025, time.March, 14, 18, 30, 0, 0, time.UTC)
	placed := order.StatusChanged{OrderID: orderID, CustomerID: customerID, From: order.Unknown, To: order.Pending, At: at}
	dispatched := order.StatusChanged{
		OrderID: orderID, CustomerID: customerID, CourierID: &courierID,
		From: order.Pending, To: order.Preparing, At: at.Add(time.Minute),
	}

	var bodies [][]byte
	ch.On("PublishWithContext", mock.Anything, "events", "order.pending", false, false, mock.Anything).
		Run(func(args mock.Arguments) {
			msg := args.Get(5).(amqp091.Publishing)
			assert.Equal(t, "application/json", msg.ContentType)
			assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
			bodies = append(bodies, msg.Body)
		}).Return(nil).Once()
	ch.On("PublishWithContext", mock.Anything, "events", "order.preparing", false, false, mock.Anything).
		Run(func(args mock.Arguments) {
			bodies = append(bodies, args.Get(5).(amqp091.Publishing).Body)
		}).Return(nil).Once()

	// When
	err = p.Publish(context.Background(), placed, dispatched)

	// Then
	require.NoError(t, err)
	ch.AssertExpectations(t)
	require.Len(t, bodies, 2)

	var first, second Message
	require.NoError(t, json.Unmarshal(bodies[0], &first))
	require.NoError(t, json.Unmarshal(bodies[1], &second))
	assert.Equal(t, orderID.String(), first.OrderID)
	assert.Empty(t, first.From)
	assert.Nil(t, first.CourierID)
	assert.Equal(t, "Pending", first.To)
	assert.Equal(t, "Pending", second.From)
	assert.Equal(t, "Preparing", second.To)
	require.NotNil(t, second.CourierID)
	assert.Equal(t, courierID.String(), *second.CourierID)
	assert.True(t, at.Add(time.Minute).Equal(second.At))
}

func TestPublisher_Publish_StopsAtFirstFailure(t *testing.T) {
	ch := declaredChannel("events")
	p, err := NewPublisher(ch, "events", nil)
	require.NoError(t, err)

	ch.On("PublishWithContext", mock.Anything, "events", "order.delivered", false, false, mock.Anything).
		Return(amqp091.ErrClosed).Once()

	err = p.Publish(context.Background(),
		order.StatusChanged{OrderID: kernel.NewUUID(), CustomerID: kernel.NewUUID(), From: order.OutForDelivery, To: order.Delivered},
		order.StatusChanged{OrderID: kernel.NewUUID(), CustomerID: kernel.NewUUID(), From: order.Pending, To: order.Cancelled},
	)

	require.ErrorIs(t, err, amqp091.ErrClosed)
	ch.AssertNumberOfCalls(t, "PublishWithContext", 1)
}

func TestPublisher_Close(t *testing.T) {
	ch := declaredChannel(DefaultExchange)
	ch.On("Close").Return(nil).Once()
	p, err := NewPublisher(ch, "", nil)
	require.NoError(t, err)

	require.NoError(t, p.Close())
	ch.AssertExpectations(t)
}
