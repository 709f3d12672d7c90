package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
)

// DefaultOrganization organización inicial de la sesión de demo.
func DefaultOrganization() *entity.Organization {
	return &entity.Organization{
		ID:              "org_1",
		Name:            "Shift Performance Hub",
		StripeAccountID: "acct_12345",
		TaxRate:         decimal.NewFromFloat(8.25),
	}
}

// SeedDemo carga los datos de demostración: dos clientes, dos facturas (una
// pagada, una emitida), el pago Stripe de la primera y el contenido inicial
// del módulo de comunicaciones. Pensado para desarrollo; en producción el
// store arranca vacío salvo la organización.
func SeedDemo(s *Store) {
	now := time.Now()
	day := 24 * time.Hour

	s.mu.Lock()
	defer s.mu.Unlock()

	// ── Clientes ──────────────────────────────────────────────────────────────
	s.customers = append(s.customers,
		&entity.Customer{
			ID:        "cust_1",
			FirstName: "Alex",
			LastName:  "Russo",
			Email:     "alex@trackday.com",
			Phone:     "555-0123",
			Company:   "Track Enthusiasts LLC",
			Address:   "123 Raceway Dr",
			City:      "Austin",
			State:     "TX",
			Zip:       "78701",
			CreatedAt: now.Add(-30 * day),
		},
		&entity.Customer{
			ID:        "cust_2",
			FirstName: "Sarah",
			LastName:  "Chen",
			Email:     "sarah.c@driftking.io",
			Phone:     "555-9876",
			Company:   "Apex Drifting",
			Address:   "456 Tire Smoke Blvd",
			City:      "Los Angeles",
			State:     "CA",
			Zip:       "90001",
			CreatedAt: now.Add(-15 * day),
		},
	)

	// ── Facturas ──────────────────────────────────────────────────────────────
	// Los totales cumplen los invariantes con la tarifa 8.25% de la organización.
	issued1 := now.Add(-20 * day)
	paid1 := now.Add(-18 * day)
	seq1 := s.nextInvoiceNumber(s.org.ID)
	inv1 := &entity.Invoice{
		ID:             "inv_1",
		OrganizationID: s.org.ID,
		CustomerID:     "cust_1",
		InvoiceNumber:  fmt.Sprintf("INV-%d-%d", issued1.Year(), seq1),
		Status:         entity.StatusPaid,
		IssuedAt:       &issued1,
		DueAt:          now.Add(-10 * day),
		PaidAt:         &paid1,
		Subtotal:       decimal.NewFromInt(1200),
		TaxAmount:      decimal.NewFromInt(99),
		Total:          decimal.NewFromInt(1299),
		LineItems: []entity.LineItem{
			{
				ID:          "li_1",
				Description: "ECU Remapping - Stage 2",
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(800),
				Category:    entity.CategoryLabor,
				Total:       decimal.NewFromInt(800),
			},
			{
				ID:          "li_2",
				Description: "Performance Air Filter",
				Quantity:    decimal.NewFromInt(2),
				UnitPrice:   decimal.NewFromInt(200),
				Category:    entity.CategoryParts,
				Total:       decimal.NewFromInt(400),
			},
		},
		CreatedAt: issued1,
		UpdatedAt: paid1,
	}

	issued2 := now
	seq2 := s.nextInvoiceNumber(s.org.ID)
	inv2 := &entity.Invoice{
		ID:             "inv_2",
		OrganizationID: s.org.ID,
		CustomerID:     "cust_2",
		InvoiceNumber:  fmt.Sprintf("INV-%d-%d", issued2.Year(), seq2),
		Status:         entity.StatusIssued,
		IssuedAt:       &issued2,
		DueAt:          now.Add(30 * day),
		Subtotal:       decimal.NewFromInt(3500),
		TaxAmount:      decimal.NewFromFloat(288.75),
		Total:          decimal.NewFromFloat(3788.75),
		LineItems: []entity.LineItem{
			{
				ID:          "li_3",
				Description: "Coilovers Installation",
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(1500),
				Category:    entity.CategoryLabor,
				Total:       decimal.NewFromInt(1500),
			},
			{
				ID:          "li_4",
				Description: "KW V3 Coilover Kit",
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(2000),
				Category:    entity.CategoryParts,
				Total:       decimal.NewFromInt(2000),
			},
		},
		CreatedAt: issued2,
		UpdatedAt: issued2,
	}
	s.invoices = append(s.invoices, inv1, inv2)

	// ── Transacciones ─────────────────────────────────────────────────────────
	s.transactions = append(s.transactions, &entity.Transaction{
		ID:             "tx_1",
		OrganizationID: s.org.ID,
		InvoiceID:      inv1.ID,
		Type:           entity.TxPayment,
		Amount:         inv1.Total,
		Source:         entity.SourceStripe,
		Description:    "Payment for " + inv1.InvoiceNumber,
		TransactedAt:   paid1,
	})

	// ── Comunicaciones ────────────────────────────────────────────────────────
	s.templates = append(s.templates,
		&entity.CommunicationTemplate{
			ID:             "tpl_1",
			OrganizationID: s.org.ID,
			Name:           "Oil Change Reminder",
			Type:           entity.CommEmail,
			Category:       entity.CommReminder,
			Subject:        "Time for your oil change",
			Body:           "Time for your high-performance synthetic oil change...",
			Variables:      []string{"{customerName}"},
			IsActive:       true,
			CreatedAt:      now.Add(-60 * day),
		},
		&entity.CommunicationTemplate{
			ID:             "tpl_2",
			OrganizationID: s.org.ID,
			Name:           "Track Season Special",
			Type:           entity.CommEmail,
			Category:       entity.CommMarketing,
			Subject:        "Track season is here",
			Body:           "Get 20% off all safety inspections this week...",
			Variables:      []string{"{customerName}", "{shopName}"},
			IsActive:       true,
			CreatedAt:      now.Add(-45 * day),
		},
		&entity.CommunicationTemplate{
			ID:             "tpl_3",
			OrganizationID: s.org.ID,
			Name:           "Appointment Confirmed",
			Type:           entity.CommSMS,
			Category:       entity.CommTransactional,
			Body:           "Confirmed: See you at the hub tomorrow at {time}!",
			Variables:      []string{"{time}"},
			IsActive:       true,
			CreatedAt:      now.Add(-40 * day),
		},
	)

	nextService := now.Add(45 * day)
	s.reminders = append(s.reminders,
		&entity.ServiceReminder{
			ID:             "rem_1",
			OrganizationID: s.org.ID,
			ServiceType:    "Synthetic Oil Change",
			IntervalMonths: 6,
			ReminderDays:   7,
			IsActive:       true,
		},
		&entity.ServiceReminder{
			ID:              "rem_2",
			OrganizationID:  s.org.ID,
			CustomerID:      "cust_1",
			ServiceType:     "Turbo Inspection",
			IntervalMonths:  12,
			ReminderDays:    14,
			NextServiceDate: &nextService,
			IsActive:        true,
		},
	)

	sentAt := now.Add(-25 * day)
	scheduledAt := now.Add(14 * day)
	s.campaigns = append(s.campaigns,
		&entity.Campaign{
			ID:             "camp_1",
			OrganizationID: s.org.ID,
			Name:           "Summer Performance Tune",
			Type:           entity.CommEmail,
			Status:         entity.CampaignSent,
			Body:           "Beat the heat with a summer performance tune...",
			SentAt:         &sentAt,
			RecipientCount: 145,
			Stats:          &entity.CampaignStats{Delivered: 144, Opened: 82, Clicked: 12},
		},
		&entity.Campaign{
			ID:             "camp_2",
			OrganizationID: s.org.ID,
			Name:           "Turbo Kit Pre-Order",
			Type:           entity.CommSMS,
			Status:         entity.CampaignScheduled,
			Body:           "Reserve your turbo kit before the next batch sells out...",
			ScheduledAt:    &scheduledAt,
			RecipientCount: 52,
		},
		&entity.Campaign{
			ID:             "camp_3",
			OrganizationID: s.org.ID,
			Name:           "Track Day Safety Check",
			Type:           entity.CommEmail,
			Status:         entity.CampaignDraft,
			Body:           "Book your pre-track-day safety inspection...",
		},
	)
}
