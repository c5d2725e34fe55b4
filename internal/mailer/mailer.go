// Package mailer sends transactional email over SMTP.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"pawbook/internal/pkg/config"
	"pawbook/internal/pkg/errs"
	"pawbook/internal/pkg/money"
	"pawbook/internal/usecase/queries"

	"gopkg.in/gomail.v2"
)

var ErrMailDelivery = errs.New("failed to deliver mail")

type Mailer struct {
	cfg    config.MailConfig
	dialer *gomail.Dialer
}

func New(cfg config.MailConfig) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// NotifySignIn tells the account owner someone signed in. A disabled mail
// configuration makes this a no-op.
func (m *Mailer) NotifySignIn(ctx context.Context, email, name string, at time.Time) error {
	if !m.cfg.Enabled {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.FromAddress, m.cfg.FromName)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "New sign-in to your account")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour account signed in at %s.\nIf this wasn't you, change your password now.\n",
		name, at.Format("15:04 on 02 Jan 2006")))

	return m.send(ctx, msg)
}

// SendInvoice mails the rendered document to the customer.
func (m *Mailer) SendInvoice(ctx context.Context, to string, inv *queries.InvoiceView, filename string, document []byte) error {
	if !m.cfg.Enabled {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.FromAddress, m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Invoice "+inv.Reference)
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nPlease find invoice %s attached, for %s, due by %s.\n\nThank you!\n",
		inv.CustomerName, inv.Reference, money.Format(inv.TotalPence), inv.DateDue.Format("02 Jan 2006")))
	msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(document))
		return err
	}))

	return m.send(ctx, msg)
}

func (m *Mailer) send(ctx context.Context, msg *gomail.Message) error {
	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return errs.Mark(err, ErrMailDelivery)
		}
		return nil
	}
}
