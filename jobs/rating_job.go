package jobs

import (
	"context"
	"log"
)

// ReconcileRatings rebuilds every tutor's materialized rating from the
// approved reviews. The per-decision recompute keeps them correct already;
// this sweep repairs any drift.
func ReconcileRatings() {
	log.Println("Running job: ReconcileRatings...")

	count, err := svc.Moderation.ReconcileRatings(context.Background())
	if err != nil {
		log.Printf("🔥 Rating reconciliation failed after %d tutor(s): %v", count, err)
		return
	}
	log.Printf("Reconciled ratings for %d tutor(s).", count)
}
