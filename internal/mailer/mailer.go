package mailer

import "embed"

const (
	FromName                    = "Portfolio"
	maxRetires                  = 3
	ContactNotificationTemplate = "contact_notification.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) (int, error)
}
