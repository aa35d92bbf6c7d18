package background

import (
	"context"

	"github.com/schoolhealth/monitor-api/external/pushgw"
)

// Background is a struct to maintain common clients
// and functions for all background workers
type Background struct {
	Pushgw pushgw.Pusher
}

// NotifyAccounts delivers a push notification to the given accounts on the
// alert channel.
func (b Background) NotifyAccounts(accountNumbers []string, title, body string, data map[string]interface{}) error {
	return b.Pushgw.SendNotification(context.Background(), &pushgw.NotificationRequest{
		Accounts: accountNumbers,
		Title:    title,
		Body:     body,
		Data:     data,
		Channel:  "important_alert",
	})
}

// Broadcast delivers a push notification to every subscribed device.
func (b Background) Broadcast(title, body string, data map[string]interface{}) error {
	return b.Pushgw.SendNotification(context.Background(), &pushgw.NotificationRequest{
		Title:   title,
		Body:    body,
		Data:    data,
		Channel: "important_alert",
	})
}
