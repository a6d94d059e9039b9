package line

import (
	"fmt"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/sirupsen/logrus"
)

var _ output.OrderNotifier = (*OrderNotifier)(nil)

// pusher is the part of the LINE messaging API the notifier uses
type pusher interface {
	PushMessage(pushMessageRequest *messaging_api.PushMessageRequest, xLineRetryKey string) (*messaging_api.PushMessageResponse, error)
}

// OrderNotifier struct - Output adapter pushing order notifications to a LINE chat
type OrderNotifier struct {
	client pusher
	to     string
}

// NewOrderNotifier func - Creates a notifier that pushes to the given user, group or room id
func NewOrderNotifier(channelToken, to string) (*OrderNotifier, error) {
	if channelToken == "" || to == "" {
		return nil, domain.ErrNotifierUnavailable
	}
	client, err := messaging_api.NewMessagingApiAPI(channelToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE messaging API client: %w", err)
	}

	return &OrderNotifier{
		client: client,
		to:     to,
	}, nil
}

// NotifyOrderPlaced - Sends a text summary of the order
func (a *OrderNotifier) NotifyOrderPlaced(notification domain.OrderNotification) error {
	req := &messaging_api.PushMessageRequest{
		To: a.to,
		Messages: []messaging_api.MessageInterface{
			&messaging_api.TextMessage{
				Text: orderText(notification),
			},
		},
	}

	if _, err := a.client.PushMessage(req, ""); err != nil {
		return fmt.Errorf("failed to send push message: %w", err)
	}

	logrus.Infof("Successfully sent order notification %s to: %s", notification.OrderID, a.to)
	return nil
}

func orderText(n domain.OrderNotification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s\n", n.OrderID)
	fmt.Fprintf(&b, "Customer: %s (%s)\n", n.Name, n.UserID)
	fmt.Fprintf(&b, "Items: %d\n", n.ItemCount)
	fmt.Fprintf(&b, "Total: %s\n", n.Total.StringFixed(2))
	fmt.Fprintf(&b, "Ship to: %s", n.Address)
	return b.String()
}
