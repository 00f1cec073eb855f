package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledProducerPublishIsANoOp(t *testing.T) {
	producer := &queueProducer{disabled: true}

	assert.True(t, producer.Disabled())

	// Must return normally; degraded mode drops the message instead of
	// surfacing an error to the upload path.
	assert.NotPanics(t, func() {
		producer.Publish(context.Background(), TopicResumeUpload, []byte(`{"email":"a@b.c","role":"backend-engineer"}`))
	})

	assert.NoError(t, producer.Close())
}
