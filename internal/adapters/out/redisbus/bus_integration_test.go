package redisbus_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"foodorder/internal/adapters/out/redisbus"
	"foodorder/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// BusIntegrationTestSuite exercises the streams-backed bus against a real
// Redis container, in particular delivery of events published while no
// subscriber was running.
type BusIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	addr      string
	admin     *redis.Client
	logger    *slog.Logger
}

func (suite *BusIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379")
	suite.Require().NoError(err)

	suite.addr = fmt.Sprintf("%s:%s", host, port.Port())
	suite.admin = redis.NewClient(&redis.Options{Addr: suite.addr})
	suite.logger = slog.New(slog.NewTextHandler(testWriter{suite.T()}, nil))
}

func (suite *BusIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.admin.FlushAll(context.Background()).Err())
}

func (suite *BusIntegrationTestSuite) TearDownSuite() {
	_ = suite.admin.Close()
	suite.Require().NoError(suite.container.Terminate(context.Background()))
}

func (suite *BusIntegrationTestSuite) newBus() *redisbus.Bus {
	client := redis.NewClient(&redis.Options{Addr: suite.addr})
	return redisbus.NewBus(client, "testgroup", suite.logger)
}

func (suite *BusIntegrationTestSuite) receive(in <-chan ports.InboundMessage) ports.InboundMessage {
	select {
	case msg := <-in:
		return msg
	case <-time.After(10 * time.Second):
		suite.FailNow("timed out waiting for a message")
		return ports.InboundMessage{}
	}
}

func (suite *BusIntegrationTestSuite) TestPublishThenSubscribe_DeliversBacklog() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisher := suite.newBus()
	defer publisher.Close()

	suite.Require().NoError(publisher.Publish(ctx, "orders", "order.created", []byte(`{"n":1}`)))
	suite.Require().NoError(publisher.Publish(ctx, "orders", "order.cancelled", []byte(`{"n":2}`)))

	subscriber := suite.newBus()
	defer subscriber.Close()

	in, err := subscriber.Subscribe(ctx, "orders")
	suite.Require().NoError(err)

	first := suite.receive(in)
	suite.Equal("orders", first.Channel)
	suite.Equal("order.created", first.Key)
	suite.JSONEq(`{"n":1}`, string(first.Payload))

	second := suite.receive(in)
	suite.Equal("order.cancelled", second.Key)
	suite.JSONEq(`{"n":2}`, string(second.Payload))
}

func (suite *BusIntegrationTestSuite) TestResubscribe_SkipsAcknowledgedMessages() {
	ctx := context.Background()

	publisher := suite.newBus()
	defer publisher.Close()

	firstCtx, cancelFirst := context.WithCancel(ctx)
	first := suite.newBus()
	defer first.Close()

	in, err := first.Subscribe(firstCtx, "orders")
	suite.Require().NoError(err)

	suite.Require().NoError(publisher.Publish(ctx, "orders", "order.created", []byte(`{"n":1}`)))
	msg := suite.receive(in)
	suite.Equal("order.created", msg.Key)

	// Leave the loop a moment to acknowledge before tearing it down.
	time.Sleep(200 * time.Millisecond)
	cancelFirst()

	suite.Require().NoError(publisher.Publish(ctx, "orders", "order.cancelled", []byte(`{"n":2}`)))

	secondCtx, cancelSecond := context.WithCancel(ctx)
	defer cancelSecond()

	second := suite.newBus()
	defer second.Close()

	in, err = second.Subscribe(secondCtx, "orders")
	suite.Require().NoError(err)

	msg = suite.receive(in)
	suite.Equal("order.cancelled", msg.Key)
}

func (suite *BusIntegrationTestSuite) TestSubscribe_MultiplexesChannels() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := suite.newBus()
	defer bus.Close()

	in, err := bus.Subscribe(ctx, "orders", "restaurants")
	suite.Require().NoError(err)

	suite.Require().NoError(bus.Publish(ctx, "orders", "order.created", []byte(`{}`)))
	suite.Require().NoError(bus.Publish(ctx, "restaurants", "restaurant.deleted", []byte(`{}`)))

	channels := map[string]string{}
	for range 2 {
		msg := suite.receive(in)
		channels[msg.Channel] = msg.Key
	}

	suite.Equal("order.created", channels["orders"])
	suite.Equal("restaurant.deleted", channels["restaurants"])
}

func (suite *BusIntegrationTestSuite) TestDeadLetter_StoresRecord() {
	ctx := context.Background()

	bus := suite.newBus()
	defer bus.Close()

	msg := ports.InboundMessage{
		Channel: "orders",
		Key:     "order.created",
		Payload: []byte(`{"orderId":"abc"}`),
	}
	suite.Require().NoError(bus.DeadLetter(ctx, msg, errors.New("handler exhausted retries")))

	stored, err := suite.admin.LRange(ctx, "dead_letter:orders", 0, -1).Result()
	suite.Require().NoError(err)
	suite.Require().Len(stored, 1)

	var record struct {
		Channel  string          `json:"channel"`
		Key      string          `json:"key"`
		Payload  json.RawMessage `json:"payload"`
		Cause    string          `json:"cause"`
		FailedAt time.Time       `json:"failedAt"`
	}
	suite.Require().NoError(json.Unmarshal([]byte(stored[0]), &record))
	suite.Equal("orders", record.Channel)
	suite.Equal("order.created", record.Key)
	suite.JSONEq(`{"orderId":"abc"}`, string(record.Payload))
	suite.Equal("handler exhausted retries", record.Cause)
	suite.WithinDuration(time.Now().UTC(), record.FailedAt, time.Minute)
}

// testWriter routes bus logs into the test output.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestBusIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BusIntegrationTestSuite))
}
