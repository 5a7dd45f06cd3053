package notifications

import (
	"fmt"
	"log/slog"

	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/localization"
)

const (
	keyAssignmentSubject = "emails.assignment.subject"
	keyAssignmentBody    = "emails.assignment.body"
)

// AssignmentNotifier sends the notification email when an area of an
// assessment is assigned to a user. Sending is best effort, a failed email
// never fails the assignment itself.
type AssignmentNotifier struct {
	smtpClients *SmtpClients
	catalog     *localization.Catalog
}

// NewAssignmentNotifier returns a notifier; smtpClients may be nil, in
// which case notifications are skipped.
func NewAssignmentNotifier(smtpClients *SmtpClients, catalog *localization.Catalog) *AssignmentNotifier {
	return &AssignmentNotifier{
		smtpClients: smtpClients,
		catalog:     catalog,
	}
}

func (n *AssignmentNotifier) NotifyAssignmentCreated(lang string, recipientEmail string, recipientName string, areaName string) {
	if n.smtpClients == nil {
		slog.Debug("smtp not configured, skipping assignment notification", slog.String("recipient", recipientEmail))
		return
	}
	if !localization.IsSupportedLanguage(lang) {
		lang = localization.LANG_EN
	}

	subject := n.catalog.Resolve(lang, keyAssignmentSubject)
	body := fmt.Sprintf(n.catalog.Resolve(lang, keyAssignmentBody), recipientName, areaName)

	if err := n.smtpClients.SendMail([]string{recipientEmail}, subject, body); err != nil {
		slog.Error("could not send assignment notification", slog.String("recipient", recipientEmail), slog.String("error", err.Error()))
	}
}
