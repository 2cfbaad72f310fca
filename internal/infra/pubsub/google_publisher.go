package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"marketplace/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubQueue implements VerificationJobQueue using Google Cloud Pub/Sub
type googlePubSubQueue struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubQueue creates a queue publishing to an existing topic
func NewGooglePubSubQueue(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.VerificationJobQueue, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	return &googlePubSubQueue{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// EnqueueVerification publishes the job and waits for the server acknowledgement
func (q *googlePubSubQueue) EnqueueVerification(ctx context.Context, job *service.VerificationJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.WithStack(err)
	}

	result := q.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: jobAttributes(job),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to publish verification job")
	}

	q.logger.Info("[GooglePubSub] Verification job published",
		slog.String("document_id", job.DocumentID),
		slog.Int("attempt", job.Attempt),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (q *googlePubSubQueue) Close() error {
	if q.publisher != nil {
		q.publisher.Stop()
	}
	if q.client != nil {
		return errors.WithStack(q.client.Close())
	}

	return nil
}
