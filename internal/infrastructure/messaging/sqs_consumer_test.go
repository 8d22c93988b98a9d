package messaging

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"seguradora_xpto/internal/domain/events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

const eventBody = `{
	"proposalId": "prop-1",
	"clientName": "Maria Souza",
	"identityNumber": "12345678909",
	"category": "Vida",
	"coverageAmount": 100000,
	"premiumAmount": 500,
	"approvedAt": "2024-01-10T12:00:00Z",
	"eventType": "PropostaAprovada",
	"eventTimestamp": "2024-01-10T12:00:00Z"
}`

// fakeSQS serves a fixed sequence of receive results, one per call, then
// empty batches. Deleted receipt handles are recorded.
type fakeSQS struct {
	mu       sync.Mutex
	batches  [][]types.Message
	errs     []error
	calls    int
	deleted  []string
	received chan struct{}
}

func newFakeSQS(batches [][]types.Message, errs []error) *fakeSQS {
	return &fakeSQS{batches: batches, errs: errs, received: make(chan struct{}, 64)}
}

func (f *fakeSQS) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.mu.Lock()
	call := f.calls
	f.calls++
	f.mu.Unlock()

	defer func() { f.received <- struct{}{} }()

	if call < len(f.errs) && f.errs[call] != nil {
		return nil, f.errs[call]
	}
	if call < len(f.batches) {
		return &sqs.ReceiveMessageOutput{Messages: f.batches[call]}, nil
	}
	return &sqs.ReceiveMessageOutput{}, nil
}

func (f *fakeSQS) DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, aws.ToString(params.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

func (f *fakeSQS) deletedHandles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func message(id, receipt, body string) types.Message {
	return types.Message{
		MessageId:     aws.String(id),
		ReceiptHandle: aws.String(receipt),
		Body:          aws.String(body),
	}
}

func runConsumer(t *testing.T, client *fakeSQS, handler PropostaAprovadaHandler, receives int) {
	t.Helper()

	consumer := NewSQSConsumer(client, "http://localhost:4566/000000000000/propostas-aprovadas")
	consumer.retryDelay = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		consumer.Run(ctx, handler)
		close(done)
	}()

	for i := 0; i < receives; i++ {
		select {
		case <-client.received:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for receive")
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}
}

func TestSQSConsumerRun(t *testing.T) {
	t.Run("should ack messages after the handler succeeds", func(t *testing.T) {
		client := newFakeSQS([][]types.Message{
			{message("msg-1", "rh-1", eventBody)},
		}, nil)

		var mu sync.Mutex
		var handled []string
		runConsumer(t, client, func(ctx context.Context, event events.PropostaAprovadaEvent) error {
			mu.Lock()
			defer mu.Unlock()
			handled = append(handled, event.ProposalID)
			return nil
		}, 2)

		mu.Lock()
		defer mu.Unlock()
		if len(handled) != 1 || handled[0] != "prop-1" {
			t.Fatalf("unexpected handled events: %v", handled)
		}
		if deleted := client.deletedHandles(); len(deleted) != 1 || deleted[0] != "rh-1" {
			t.Fatalf("unexpected deleted handles: %v", deleted)
		}
	})

	t.Run("should leave the message on the queue when the handler fails", func(t *testing.T) {
		client := newFakeSQS([][]types.Message{
			{message("msg-1", "rh-1", eventBody)},
		}, nil)

		runConsumer(t, client, func(ctx context.Context, event events.PropostaAprovadaEvent) error {
			return errors.New("persistence unavailable")
		}, 2)

		if deleted := client.deletedHandles(); len(deleted) != 0 {
			t.Fatalf("expected no deletes, got %v", deleted)
		}
	})

	t.Run("should unwrap the sns notification envelope", func(t *testing.T) {
		envelope := `{"Type":"Notification","Message":"{\"proposalId\":\"prop-2\",\"eventType\":\"PropostaAprovada\"}"}`
		client := newFakeSQS([][]types.Message{
			{message("msg-1", "rh-1", envelope)},
		}, nil)

		var mu sync.Mutex
		var handled []string
		runConsumer(t, client, func(ctx context.Context, event events.PropostaAprovadaEvent) error {
			mu.Lock()
			defer mu.Unlock()
			handled = append(handled, event.ProposalID)
			return nil
		}, 2)

		mu.Lock()
		defer mu.Unlock()
		if len(handled) != 1 || handled[0] != "prop-2" {
			t.Fatalf("unexpected handled events: %v", handled)
		}
	})

	t.Run("should skip unparseable messages without acking", func(t *testing.T) {
		client := newFakeSQS([][]types.Message{
			{message("msg-1", "rh-1", "not json")},
		}, nil)

		called := false
		runConsumer(t, client, func(ctx context.Context, event events.PropostaAprovadaEvent) error {
			called = true
			return nil
		}, 2)

		if called {
			t.Fatal("handler should not run for unparseable messages")
		}
		if deleted := client.deletedHandles(); len(deleted) != 0 {
			t.Fatalf("expected no deletes, got %v", deleted)
		}
	})

	t.Run("should keep polling after a receive failure", func(t *testing.T) {
		client := newFakeSQS([][]types.Message{
			nil,
			{message("msg-1", "rh-1", eventBody)},
		}, []error{errors.New("connection reset")})

		var mu sync.Mutex
		var handled []string
		runConsumer(t, client, func(ctx context.Context, event events.PropostaAprovadaEvent) error {
			mu.Lock()
			defer mu.Unlock()
			handled = append(handled, event.ProposalID)
			return nil
		}, 3)

		mu.Lock()
		defer mu.Unlock()
		if len(handled) != 1 || handled[0] != "prop-1" {
			t.Fatalf("unexpected handled events: %v", handled)
		}
	})
}
