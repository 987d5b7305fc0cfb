package ports

import "context"

// Notification event types.
const (
	NotificationWelcome             = "welcome"
	NotificationSubscriptionChanged = "subscription_changed"
	NotificationAdminFlagChanged    = "admin_flag_changed"
)

// AccountNotification is an async message about an account change.
type AccountNotification struct {
	Type         string
	UserID       string
	Username     string
	Email        string
	Subscription string
	IsAdmin      bool
}

// Notifier delivers a single account notification.
type Notifier interface {
	Send(ctx context.Context, n AccountNotification) error
}

// NotificationDispatcher accepts notifications for async delivery.
type NotificationDispatcher interface {
	Enqueue(n AccountNotification)
}
