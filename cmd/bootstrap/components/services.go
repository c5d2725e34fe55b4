package components

import (
	"pawbook/internal/domain/invoice"
	"pawbook/internal/mailer"
	"pawbook/internal/pdf"
	"pawbook/internal/pkg/clock"
	"pawbook/internal/pkg/config"
	"pawbook/internal/usecase/commands"

	"go.uber.org/fx"
)

// ServicesModule wires the clock, the invoice generator, the PDF renderer
// and the mailer.
var ServicesModule = fx.Module("services",
	fx.Provide(
		clock.NewRealClock,
		NewInvoiceGenerator,
		pdf.NewRenderer,
		mailer.New,
		func(m *mailer.Mailer) commands.SignInNotifier { return m },
	),
)

func NewInvoiceGenerator(cfg config.Config, clk clock.Clock) *invoice.Generator {
	return invoice.NewGenerator(clk, cfg.Invoice.ReferencePrefix, cfg.Invoice.DueInDays)
}
