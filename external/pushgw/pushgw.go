package pushgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	defaultURL = "https://pushgw.schoolhealth.example/v1/notifications"
)

var (
	errEmptyKey      = fmt.Errorf("empty api key")
	errRequestFailed = fmt.Errorf("push gateway request failed")
)

// NotificationRequest is the payload delivered to the push gateway. An
// empty Accounts slice broadcasts to every subscribed device.
type NotificationRequest struct {
	Accounts []string               `json:"accounts,omitempty"`
	Title    string                 `json:"title"`
	Body     string                 `json:"body"`
	Data     map[string]interface{} `json:"data,omitempty"`
	Channel  string                 `json:"channel"`
}

type Pusher interface {
	SendNotification(ctx context.Context, req *NotificationRequest) error
}

type PushGWClient struct {
	apiKey string
	url    string
	client *http.Client
}

func NewClient(client *http.Client, apiKey string, url string) *PushGWClient {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &PushGWClient{
		apiKey: apiKey,
		url:    u,
		client: client,
	}
}

func (p *PushGWClient) SendNotification(ctx context.Context, req *NotificationRequest) error {
	if p.apiKey == "" {
		return errEmptyKey
	}

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", errRequestFailed, resp.StatusCode)
	}

	return nil
}
