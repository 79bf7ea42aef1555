package network

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

type NSQClient struct {
	URL string
}

// Formally define this so we can generate mocks for testing.
type NSQClientInterface interface {
	Publish(topic string, data []byte) error
}

// NewNSQClient returns a new NSQ client that will connect to the NSQ
// server at the specified url, usually ending with :4151. This is the URL
// to which we post completion messages; consuming happens through go-nsq
// consumers, not through this client.
func NewNSQClient(url string) *NSQClient {
	return &NSQClient{URL: url}
}

// Publish posts data to NSQ under the given topic.
func (client *NSQClient) Publish(topic string, data []byte) error {
	url := fmt.Sprintf("%s/pub?topic=%s", client.URL, topic)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("nsqd returned an error when queuing data: %v", err)
	}
	if resp == nil {
		return fmt.Errorf("no response from nsqd at '%s'. Is it running?", url)
	}

	// nsqd sends a simple OK. We have to read the response body,
	// or the connection will hang open forever.
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != 200 {
		bodyText := "[no response body]"
		if len(body) > 0 {
			bodyText = string(body)
		}
		return fmt.Errorf("nsqd returned status code %d when attempting to queue data. "+
			"Response body: %s", resp.StatusCode, bodyText)
	}
	return nil
}
