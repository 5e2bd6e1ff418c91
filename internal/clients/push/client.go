package push

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/hashicorp/go-retryablehttp"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
	"github.com/Surajsachintha/itams-haci-project/pkg/config"
	"github.com/Surajsachintha/itams-haci-project/pkg/transport"
)

const (
	defaultRetryWaitMin = time.Millisecond * 500
	defaultRetryWaitMax = time.Second * 5

	scopeMessaging     = "https://www.googleapis.com/auth/firebase.messaging"
	scopeCloudPlatform = "https://www.googleapis.com/auth/cloud-platform"
)

var ErrNotConfigured = errors.New("push gateway is not configured")

type messenger interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Client delivers notifications through the FCM HTTP v1 API.
type Client struct {
	m messenger
}

// NewClient authenticates with the service-account file from cfg. Without a file the client
// is unconfigured and Send returns ErrNotConfigured.
func NewClient(ctx context.Context, cfg config.PushConfig) (*Client, error) {
	if cfg.CredentialsFile == "" {
		return &Client{}, nil
	}

	creds := option.WithCredentialsFile(cfg.CredentialsFile)

	rt, err := htransport.NewTransport(ctx, retryTransport(cfg), creds, option.WithScopes(scopeMessaging, scopeCloudPlatform))
	if err != nil {
		return nil, fmt.Errorf("create push transport: %w", err)
	}

	var fbCfg *firebase.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbCfg, creds, option.WithHTTPClient(&http.Client{
		Transport: rt,
		Timeout:   cfg.Timeout,
	}))
	if err != nil {
		return nil, fmt.Errorf("create firebase app: %w", err)
	}

	m, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("create messaging client: %w", err)
	}

	return &Client{m: m}, nil
}

// retryTransport retries network failures only; a rejected message is final.
func retryTransport(cfg config.PushConfig) http.RoundTripper {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(http.DefaultTransport)

	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &retryablehttp.RoundTripper{Client: retryClient}
}

// Send returns the FCM message name.
func (c *Client) Send(ctx context.Context, msg entity.PushMessage) (string, error) {
	if c.m == nil {
		return "", ErrNotConfigured
	}

	id, err := c.m.Send(ctx, &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		if messaging.IsUnregistered(err) {
			return "", fmt.Errorf("push token is no longer registered: %w", err)
		}

		return "", fmt.Errorf("send push: %w", err)
	}

	return id, nil
}
