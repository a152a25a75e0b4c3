package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
)

type resendService struct {
	client *resend.Client
	from   string
}

// NewResendService builds an EmailService backed by Resend.
func NewResendService(apiKey, from string) (EmailService, error) {
	if apiKey == "" {
		return nil, errors.New("RESEND_API_KEY is not configured")
	}
	return &resendService{
		client: resend.NewClient(apiKey),
		from:   from,
	}, nil
}

func (s *resendService) SendWelcome(ctx context.Context, to, storeName string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: fmt.Sprintf("Tu tienda %s está lista", storeName),
		Html:    welcomeHTML(storeName),
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

func welcomeHTML(storeName string) string {
	return fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 560px; margin: 0 auto;">
			<h2>¡Bienvenido a Miracle!</h2>
			<p>Tu tienda <strong>%s</strong> fue creada correctamente.</p>
			<p>Ya puedes iniciar sesión y empezar a cargar tus productos y campañas.</p>
		</div>`, storeName)
}
