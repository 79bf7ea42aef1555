package workers_test

import (
	"testing"

	"github.com/nsqio/go-nsq"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hetarchief/aip-services/models/common"
	"github.com/hetarchief/aip-services/workers"
)

func testCreator(t *testing.T) *workers.AIPCreator {
	t.Helper()
	ctx := &common.Context{
		Config: &common.Config{
			AIPFolder:      t.TempDir(),
			SidecarVersion: "22.1",
		},
		Logger: logging.MustGetLogger("test"),
	}
	creator, err := workers.NewAIPCreator(ctx)
	require.Nil(t, err)
	return creator
}

func nsqMessage(body string) *nsq.Message {
	var id nsq.MessageID
	copy(id[:], "0123456789abcdef")
	return nsq.NewMessage(id, []byte(body))
}

func TestHandleMessageRejectsBadJSON(t *testing.T) {
	creator := testCreator(t)
	err := creator.HandleMessage(nsqMessage("this is not an envelope"))
	assert.NotNil(t, err)
}

func TestHandleMessageDropsNonSuccessfulEvents(t *testing.T) {
	creator := testCreator(t)
	message := nsqMessage(`{
		"id": "evt-1",
		"subject": "/sips/bag-1",
		"outcome": "fail",
		"correlation_id": "corr-1"
	}`)
	// Dropping means acknowledging: no error, no redelivery.
	assert.Nil(t, creator.HandleMessage(message))
}
