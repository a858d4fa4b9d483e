package entity

import "fmt"

// NotificationCategory classifies a user-facing notification for display
type NotificationCategory string

// Notification categories
const (
	CategorySuccess NotificationCategory = "success"
	CategoryDanger  NotificationCategory = "danger"
	CategoryInfo    NotificationCategory = "info"
)

// Notification is a human-readable message emitted as a side channel of an
// operation. It is shown to the user on the next page view; consumers should
// not branch on it programmatically.
type Notification struct {
	Message  string
	Category NotificationCategory
}

// NewSuccessNotification creates a success notification
func NewSuccessNotification(format string, args ...any) Notification {
	return Notification{
		Message:  fmt.Sprintf(format, args...),
		Category: CategorySuccess,
	}
}

// NewDangerNotification creates a failure notification
func NewDangerNotification(format string, args ...any) Notification {
	return Notification{
		Message:  fmt.Sprintf(format, args...),
		Category: CategoryDanger,
	}
}

// NewInfoNotification creates an informational notification
func NewInfoNotification(format string, args ...any) Notification {
	return Notification{
		Message:  fmt.Sprintf(format, args...),
		Category: CategoryInfo,
	}
}
