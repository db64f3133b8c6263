package session

// UserData represents the user information stored in the session
type UserData struct {
	ID       string
	Email    string
	FullName string
	// Token is the API access token issued at login.
	Token string
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a one-shot toast shown on the next rendered page.
type Notification struct {
	Kind    NotificationKind
	Message string
}

func Success(msg string) Notification {
	return Notification{Kind: NotificationSuccess, Message: msg}
}

func Error(msg string) Notification {
	return Notification{Kind: NotificationError, Message: msg}
}
