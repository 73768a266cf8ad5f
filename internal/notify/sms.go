// Package notify provides SMS delivery for entry notifications.
package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"weightlog/internal/domain"
)

// SMSGateway sends text messages through a Twilio-compatible REST gateway.
type SMSGateway struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	client     *http.Client
}

var _ domain.Notifier = (*SMSGateway)(nil)

// NewSMSGateway creates a gateway client. from is the sending phone number.
func NewSMSGateway(accountSID, authToken, from string) *SMSGateway {
	return &SMSGateway{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    "https://api.twilio.com/2010-04-01",
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify sends message to phoneNumber. A non-2xx gateway response is
// returned as an error for the caller to log.
func (g *SMSGateway) Notify(ctx context.Context, phoneNumber, message string) error {
	form := url.Values{}
	form.Set("From", g.from)
	form.Set("To", phoneNumber)
	form.Set("Body", message)

	endpoint := g.baseURL + "/Accounts/" + g.accountSID + "/Messages.json"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(g.accountSID, g.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return &gatewayError{status: res.StatusCode, body: string(body)}
	}
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}

type gatewayError struct {
	status int
	body   string
}

func (e *gatewayError) Error() string {
	return fmt.Sprintf("sms gateway: status %d", e.status)
}

// LogOnly writes notifications to the log instead of sending them. It is the
// default notifier when no gateway is configured.
type LogOnly struct{}

var _ domain.Notifier = LogOnly{}

// Notify logs the would-be message and reports success.
func (LogOnly) Notify(ctx context.Context, phoneNumber, message string) error {
	logrus.WithFields(logrus.Fields{
		"to":      phoneNumber,
		"message": message,
	}).Info("sms notification (log only)")
	return nil
}
