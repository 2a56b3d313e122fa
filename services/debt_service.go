// services/debt_service.go
package services

import (
	"time"

	"github.com/maverick001/EasyVocab/config"
	"github.com/maverick001/EasyVocab/models"
)

// DebtEntry is one day of the debt breakdown. Debt is quota minus the
// distinct words reviewed that day; negative means surplus.
type DebtEntry struct {
	Date string `json:"date"`
	Debt int    `json:"debt"`
}

// Breakdown entries returned to the UI. Total debt still covers the whole
// history.
const debtBreakdownDays = 20

// ComputeDebt walks every ledger day from the earliest recorded activity
// through the day before asOf and sums quota - actual. Days with no record
// count as zero activity. Surplus days carry across the whole history and
// the final total is clamped at zero, so surplus can cancel outstanding
// debt but never bank beyond it. Today is excluded from the sum (its tally
// is still in progress) except that a surplus already beyond the quota
// reduces the total immediately.
func ComputeDebt(asOf time.Time) (int, []DebtEntry, error) {
	quota := config.DailyQuota

	var logs []models.DailyStudyLog
	if err := config.DB.Find(&logs).Error; err != nil {
		return 0, nil, err
	}
	if len(logs) == 0 {
		return 0, []DebtEntry{}, nil
	}

	counts := make(map[string]int, len(logs))
	earliest := logs[0].Date
	for _, l := range logs {
		counts[l.Date] = l.ReviewCount
		if l.Date < earliest {
			earliest = l.Date
		}
	}

	today := asOf.In(config.LedgerTZ)
	todayStr := today.Format("2006-01-02")

	start, err := time.ParseInLocation("2006-01-02", earliest, config.LedgerTZ)
	if err != nil {
		return 0, nil, err
	}

	total := 0
	for d := start; d.Format("2006-01-02") < todayStr; d = d.AddDate(0, 0, 1) {
		total += quota - counts[d.Format("2006-01-02")]
	}

	// Today only contributes once it has already passed the quota.
	if todayCount := counts[todayStr]; todayCount > quota {
		total -= todayCount - quota
	}
	if total < 0 {
		total = 0
	}

	// Breakdown runs newest-first starting from yesterday.
	breakdown := []DebtEntry{}
	for i := 1; i <= debtBreakdownDays; i++ {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		if day < earliest {
			break
		}
		breakdown = append(breakdown, DebtEntry{Date: day, Debt: quota - counts[day]})
	}

	return total, breakdown, nil
}
