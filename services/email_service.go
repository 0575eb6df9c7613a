package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"storefront/config"
)

type EmailSender interface {
	SendTemporaryPassword(toEmail, name, tempPassword string) error
}

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	return &EmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

func (s *EmailService) SendTemporaryPassword(toEmail, name, tempPassword string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Password Reset - Storefront")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Password Reset</h2>
        <p>Hello %s,</p>
        <p>You have requested to reset your password. Use the temporary password below to sign in, then change it from your profile:</p>

        <div style="background-color: #eef2ff; border: 2px dashed #4f46e5; padding: 20px; text-align: center; margin: 30px 0; border-radius: 8px;">
            <div style="font-size: 24px; font-weight: bold; color: #4f46e5; letter-spacing: 4px;">%s</div>
        </div>

        <p>If you did not request a password reset, please contact support immediately.</p>

        <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
            <p style="color: #666; font-size: 14px;">Best regards,<br>Storefront Team</p>
        </div>

        <div style="text-align: center; margin-top: 30px; color: #666; font-size: 12px;">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, name, tempPassword)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
