// Package email delivers transactional mail through an external provider.
// The only mail this service sends is the registration acknowledgement, so
// delivery failures never fail the operation that triggered them.
package email

import (
	"context"
	"fmt"
	"time"
)

// SendRequest contains the data needed to send an email via an external provider.
type SendRequest struct {
	To      []string // Recipient email addresses
	From    string   // Sender address (e.g. "ESU-RSI <noreply@esu-rsi.cd>")
	Subject string
	HTML    string // HTML body
	ReplyTo string // Reply-to address
}

// SendResult contains the response from the email provider.
type SendResult struct {
	MessageID string    // Provider's message ID for tracking
	SentAt    time.Time // When the send was accepted
}

// Sender is the interface for sending emails via an external provider.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}

// RegistrationAcknowledgement builds the confirmation mail sent to a
// professor after their record is accepted.
func RegistrationAcknowledgement(to, name, matricule string) SendRequest {
	return SendRequest{
		To:      []string{to},
		Subject: "ESU-RSI - Enregistrement reçu",
		HTML: fmt.Sprintf(
			`<p>Bonjour %s,</p>
<p>Votre dossier d'identification (matricule <strong>%s</strong>) a bien été
enregistré auprès du Répertoire du Personnel Académique.</p>
<p>Le service des ressources humaines vous contactera si des pièces
complémentaires sont nécessaires.</p>
<p>ESU-RSI</p>`,
			name, matricule),
	}
}
