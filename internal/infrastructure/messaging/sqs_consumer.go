package messaging

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"seguradora_xpto/internal/domain/events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

const (
	receiveWaitSeconds    = 20
	maxMessagesPerReceive = 10
	receiveRetryDelay     = 5 * time.Second
)

// SQSAPI is the subset of the SQS client used by the consumer.
type SQSAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// PropostaAprovadaHandler processes one approval event. Returning an error
// keeps the message on the queue for redelivery.
type PropostaAprovadaHandler func(ctx context.Context, event events.PropostaAprovadaEvent) error

// SQSConsumer long-polls an SQS queue for approval events.
//
// Delivery semantics are at-least-once: a message is deleted only after the
// handler succeeds, otherwise the queue's visibility timeout brings it back.
// The consumer never retries a failed message itself.
type SQSConsumer struct {
	client     SQSAPI
	queueURL   string
	retryDelay time.Duration
}

func NewSQSConsumer(client SQSAPI, queueURL string) *SQSConsumer {
	return &SQSConsumer{
		client:     client,
		queueURL:   queueURL,
		retryDelay: receiveRetryDelay,
	}
}

// Run blocks consuming the queue until ctx is cancelled. The batch being
// processed when cancellation arrives is drained before returning.
func (c *SQSConsumer) Run(ctx context.Context, handler PropostaAprovadaHandler) {
	log.Printf("[contratacao][sqs] consumer started queue=%s", c.queueURL)

	for ctx.Err() == nil {
		out, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:              aws.String(c.queueURL),
			MaxNumberOfMessages:   maxMessagesPerReceive,
			WaitTimeSeconds:       receiveWaitSeconds,
			MessageAttributeNames: []string{"All"},
		})
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Printf("[contratacao][sqs] receive failed queue=%s err=%v", c.queueURL, err)
			select {
			case <-ctx.Done():
			case <-time.After(c.retryDelay):
			}
			continue
		}

		for _, msg := range out.Messages {
			c.process(ctx, msg.Body, msg.ReceiptHandle, msg.MessageId, handler)
		}
	}

	log.Printf("[contratacao][sqs] consumer stopped queue=%s", c.queueURL)
}

func (c *SQSConsumer) process(ctx context.Context, body, receiptHandle, messageID *string, handler PropostaAprovadaHandler) {
	var event events.PropostaAprovadaEvent
	if err := json.Unmarshal([]byte(extractMessageBody(aws.ToString(body))), &event); err != nil {
		// Left on the queue; redelivery ends up in the DLQ if it never parses.
		log.Printf("[contratacao][sqs] message unmarshal failed message_id=%s err=%v", aws.ToString(messageID), err)
		return
	}

	if err := handler(ctx, event); err != nil {
		log.Printf("[contratacao][sqs] handler failed message_id=%s proposal_id=%s err=%v", aws.ToString(messageID), event.ProposalID, err)
		return
	}

	if _, err := c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: receiptHandle,
	}); err != nil {
		log.Printf("[contratacao][sqs] delete failed message_id=%s err=%v", aws.ToString(messageID), err)
		return
	}
	log.Printf("[contratacao][sqs] message processed message_id=%s proposal_id=%s", aws.ToString(messageID), event.ProposalID)
}

// extractMessageBody unwraps one layer of SNS notification envelope when the
// queue is subscribed to a topic without raw message delivery; direct SQS
// messages pass through unchanged.
func extractMessageBody(body string) string {
	var envelope struct {
		Message string `json:"Message"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return body
}
