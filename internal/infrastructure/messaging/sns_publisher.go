package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"seguradora_xpto/internal/domain/events"
	"seguradora_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

var ErrMissingTopicARN = errors.New("missing sns topic arn")

// SNSAPI is the subset of the SNS client used by the publisher.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPublisher publishes approval events to an SNS topic, tagging each
// message with a MessageType attribute so subscribers can filter by event.
type SNSPublisher struct {
	client   SNSAPI
	topicARN string
}

var _ interfaces.IMessagePublisher = (*SNSPublisher)(nil)

func NewSNSPublisher(client SNSAPI, topicARN string) (*SNSPublisher, error) {
	if topicARN == "" {
		return nil, ErrMissingTopicARN
	}
	return &SNSPublisher{client: client, topicARN: topicARN}, nil
}

func (p *SNSPublisher) PublishPropostaAprovada(ctx context.Context, event events.PropostaAprovadaEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	out, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"MessageType": {
				DataType:    aws.String("String"),
				StringValue: aws.String(events.PropostaAprovadaEventType),
			},
		},
	})
	if err != nil {
		log.Printf("[proposta][sns] publish failed topic=%s err=%v", p.topicARN, err)
		return err
	}

	log.Printf("[proposta][sns] publish success topic=%s message_id=%s", p.topicARN, aws.ToString(out.MessageId))
	return nil
}
