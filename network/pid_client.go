package network

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PidClient talks to the persistent-identifier webservice. Every package
// gets exactly one freshly issued PID, which becomes its folder and zip
// name.
type PidClient struct {
	URL        string
	httpClient *http.Client
}

type PidClientInterface interface {
	GetPid() (string, error)
}

type pidRecord struct {
	ID string `json:"id"`
}

func NewPidClient(url string) *PidClient {
	return &PidClient{
		URL: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetPid retrieves a new PID from the PID webservice. The service answers
// with a JSON list of records; the first record's id is the issued PID.
func (client *PidClient) GetPid() (string, error) {
	resp, err := client.httpClient.Get(client.URL)
	if err != nil {
		return "", fmt.Errorf("error contacting pid service at %s: %v", client.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pid service at %s returned status %d", client.URL, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	records := make([]pidRecord, 0)
	if err = json.Unmarshal(body, &records); err != nil {
		return "", fmt.Errorf("cannot parse pid service response: %v", err)
	}
	if len(records) == 0 || records[0].ID == "" {
		return "", fmt.Errorf("pid service at %s returned no identifiers", client.URL)
	}
	return records[0].ID, nil
}
