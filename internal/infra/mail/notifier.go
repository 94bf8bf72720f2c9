package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"vicqa-tradehub/internal/domain/order"
	"vicqa-tradehub/internal/pkg/config"
	"vicqa-tradehub/internal/pkg/errs"

	"gopkg.in/gomail.v2"
)

// AdminNotifier emails the marketplace operator when an order is paid. When
// SMTP is not configured (local development) it degrades to a log line so
// webhook handling never depends on a mail server.
type AdminNotifier struct {
	cfg config.MailConfig
}

func NewAdminNotifier(cfg config.MailConfig) *AdminNotifier {
	return &AdminNotifier{cfg: cfg}
}

func (n *AdminNotifier) configured() bool {
	return n.cfg.SMTPHost != "" && n.cfg.From != "" && n.cfg.AdminEmail != ""
}

func (n *AdminNotifier) NotifyOrderPaid(_ context.Context, o *order.Order) error {
	if !n.configured() {
		slog.Info("admin mail not configured, logging order instead",
			"reference", o.Reference(), "customer", o.Contact().Name(), "total", o.Total())
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.AdminEmail)
	m.SetHeader("Subject", fmt.Sprintf("New paid order %s (GHS %.2f)", o.Reference(), o.Total()))
	m.SetBody("text/plain", renderOrderSummary(o))

	d := gomail.NewDialer(n.cfg.SMTPHost, n.cfg.SMTPPort, n.cfg.SMTPUser, n.cfg.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		return errs.Wrap(err, "failed to send admin notification")
	}
	return nil
}

func renderOrderSummary(o *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s has been paid.\n\n", o.Reference())
	fmt.Fprintf(&b, "Customer: %s\n", o.Contact().Name())
	fmt.Fprintf(&b, "Email:    %s\n", o.Contact().Email().Value())
	fmt.Fprintf(&b, "Phone:    %s\n", o.Contact().Phone())
	fmt.Fprintf(&b, "Address:  %s\n\n", o.Address())

	b.WriteString("Items:\n")
	for _, line := range o.Lines() {
		fmt.Fprintf(&b, "  %dx %s @ GHS %.2f\n", line.Quantity, line.Name, line.Price)
	}

	fmt.Fprintf(&b, "\nSubtotal: GHS %.2f\n", o.Subtotal())
	fmt.Fprintf(&b, "Shipping: GHS %.2f\n", o.ShippingFee())
	if o.Discount() > 0 {
		fmt.Fprintf(&b, "Discount: -GHS %.2f (%s)\n", o.Discount(), o.CouponCode())
	}
	fmt.Fprintf(&b, "Total:    GHS %.2f\n", o.Total())
	return b.String()
}
