package network_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hetarchief/aip-services/network"
)

func TestNSQPublish(t *testing.T) {
	var gotTopic string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotTopic = r.URL.Query().Get("topic")
			gotBody, _ = io.ReadAll(r.Body)
			w.Write([]byte("OK"))
		}))
	defer server.Close()

	client := network.NewNSQClient(server.URL)
	err := client.Publish("aip-created", []byte(`{"pid":"qs123abc456"}`))
	require.Nil(t, err)
	assert.Equal(t, "aip-created", gotTopic)
	assert.Equal(t, `{"pid":"qs123abc456"}`, string(gotBody))
}

func TestNSQPublishError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		}))
	defer server.Close()

	client := network.NewNSQClient(server.URL)
	err := client.Publish("aip-created", []byte("{}"))
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "status code 500")
	assert.Contains(t, err.Error(), "boom")
}
