package stub

import (
	"fmt"
	"time"

	"partner-dashboard/internal/models"
)

// Fixture data is generated relative to now so date-range presets behave
// sensibly during development: recent entries land in the short windows,
// older ones only in the long windows.

func wireTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func fixturePartner(now time.Time) models.Partner {
	return models.Partner{
		ID:        1,
		Name:      "Acme Power Resellers",
		Email:     "partner@example.com",
		Phone:     "+2348012345678",
		Role:      "partner",
		IsActive:  1,
		CreatedAt: wireTime(now.AddDate(-1, -2, 0)),
		UpdatedAt: wireTime(now),
		Wallet:    models.Wallet{Balance: "1845200.50"},
	}
}

func fixtureNotifications(now time.Time) []models.Notification {
	titles := []struct {
		title, message, typ string
	}{
		{"High value transaction flagged", "A ₦950,000.00 token purchase needs review.", "alert"},
		{"Wallet reconciliation completed", "Settlement batch 18 processed successfully.", "success"},
		{"Support ticket escalated", "Meter synchronization delay moved to Level 2.", "warning"},
		{"Low wallet balance", "Your wallet balance dropped below ₦100,000.00.", "alert"},
		{"New tariff published", "Band A tariff rates were updated.", "info"},
		{"API key rotated", "Your live API key was regenerated.", "info"},
		{"Scheduled maintenance", "Vending will pause on Sunday 02:00-04:00.", "info"},
		{"Payment received", "₦500,000.00 wallet top-up confirmed.", "success"},
		{"Failed vend retried", "Transaction NES-2207 was retried successfully.", "success"},
		{"New feature: sandbox keys", "Test integrations against the sandbox environment.", "info"},
		{"Monthly statement ready", "Your July statement is available for download.", "info"},
		{"Password changed", "Your account password was updated.", "warning"},
	}
	out := make([]models.Notification, 0, len(titles))
	for i, n := range titles {
		out = append(out, models.Notification{
			ID:        i + 1,
			PartnerID: 1,
			Title:     n.title,
			Message:   n.message,
			Type:      n.typ,
			IsGeneral: i%4 == 0,
			Read:      i >= 5, // first five unread
			CreatedAt: wireTime(now.Add(-time.Duration(i*7) * time.Hour)),
			UpdatedAt: wireTime(now.Add(-time.Duration(i*7) * time.Hour)),
		})
	}
	return out
}

func fixtureWalletTransactions(now time.Time) []models.WalletTransaction {
	statuses := []string{"successful", "successful", "pending", "successful", "failed"}
	out := make([]models.WalletTransaction, 0, 25)
	balance := 1845200.50
	for i := 0; i < 25; i++ {
		amount := 25000.0 + float64(i)*1750
		txType := "debit"
		desc := "Token vend settlement"
		next := balance - amount
		if i%4 == 0 {
			txType = "credit"
			desc = "Wallet top-up"
			next = balance + amount
		}
		// spread over ~10 months, newest first
		at := now.Add(-time.Duration(i*i) * 13 * time.Hour)
		out = append(out, models.WalletTransaction{
			ID:          500 - i,
			Type:        txType,
			Description: desc,
			PartnerID:   1,
			Email:       "partner@example.com",
			Amount:      fmt.Sprintf("%.2f", amount),
			PrevBalance: fmt.Sprintf("%.2f", balance),
			CurrBalance: fmt.Sprintf("%.2f", next),
			Confirmed:   statuses[i%len(statuses)] == "successful",
			Reference:   fmt.Sprintf("WLT-%05d", 500-i),
			Genus:       "wallet",
			Status:      statuses[i%len(statuses)],
			CreatedAt:   wireTime(at),
			UpdatedAt:   wireTime(at),
		})
		balance = next
	}
	return out
}

func fixtureConsumerTransactions(now time.Time) []models.ConsumerTransaction {
	statuses := []string{"successful", "pending", "successful", "failed", "successful"}
	customers := []string{"Samuel Jackson", "Adaeze Obi", "Musa Bello", "Grace Eze", "Tunde Bakare"}
	out := make([]models.ConsumerTransaction, 0, 18)
	for i := 0; i < 18; i++ {
		amount := 5000.0 + float64(i)*900
		at := now.Add(-time.Duration(i*i) * 19 * time.Hour)
		out = append(out, models.ConsumerTransaction{
			ID:                   900 - i,
			TransactionID:        12000 + i,
			TransactionReference: fmt.Sprintf("NES-%05d", 900-i),
			Status:               statuses[i%len(statuses)],
			AccountNumber:        fmt.Sprintf("02-18-%04d", 1200+i),
			MeterNumber:          fmt.Sprintf("5415%07d", 2300000+i),
			PaymentType:          "wallet",
			Customer:             customers[i%len(customers)],
			AccountType:          "prepaid",
			Tariff:               "Band A",
			Feeder:               "Rayfield 11kV",
			Amount:               fmt.Sprintf("%.2f", amount),
			DebtReconciliation:   "0.00",
			ChargedAmount:        fmt.Sprintf("%.2f", amount*0.97),
			VAT:                  fmt.Sprintf("%.2f", amount*0.075),
			TransactionCharge:    100,
			KWH:                  fmt.Sprintf("%.1f", amount/65),
			Token:                fmt.Sprintf("1234-5678-%04d-%04d-0987", 1000+i, 2000+i),
			Date:                 wireTime(at),
			PartnerID:            1,
			PartnerReference:     fmt.Sprintf("ACME-%05d", 7000+i),
			CreatedAt:            wireTime(at),
			UpdatedAt:            wireTime(at),
		})
	}
	return out
}

func fixtureAnalytics(now time.Time) models.DashboardAnalytics {
	labels := make([]string, 0, 12)
	tokens := make([]float64, 0, 12)
	revenue := make([]float64, 0, 12)
	for i := 11; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		labels = append(labels, month.Format("Jan"))
		tokens = append(tokens, 820+float64((11-i)*47))
		revenue = append(revenue, 1250000+float64((11-i)*83500))
	}
	return models.DashboardAnalytics{
		Highlights: models.Highlights{
			VendedTokens:           models.Highlight{Value: 1342, Change: 12.4},
			Revenue:                models.Highlight{Value: 2168500, Change: 8.1},
			SuccessfulTransactions: models.Highlight{Value: 1289, Change: 10.7},
			FailedTransactions:     models.Highlight{Value: 53, Change: -3.2},
		},
		Trend: models.Trend{Labels: labels, VendedTokens: tokens, Revenue: revenue},
		RecentTransactions: []models.RecentTransaction{
			{ID: 900, Reference: "NES-00900", Name: "Samuel Jackson", Tokens: 76.9, Amount: 5000, AccountNumber: "02-18-1200", MeterNumber: "54152300000", Status: "successful", CreatedAt: wireTime(now.Add(-time.Hour))},
			{ID: 899, Reference: "NES-00899", Name: "Adaeze Obi", Tokens: 90.8, Amount: 5900, AccountNumber: "02-18-1201", MeterNumber: "54152300001", Status: "pending", CreatedAt: wireTime(now.Add(-19 * time.Hour))},
			{ID: 898, Reference: "NES-00898", Name: "Musa Bello", Tokens: 104.6, Amount: 6800, AccountNumber: "02-18-1202", MeterNumber: "54152300002", Status: "successful", CreatedAt: wireTime(now.Add(-76 * time.Hour))},
		},
	}
}
