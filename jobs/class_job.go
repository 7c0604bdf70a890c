package jobs

import (
	"context"
	"log"
	"time"
)

// CompleteEndedClasses flips open classes whose end date has passed to
// COMPLETED.
func CompleteEndedClasses() {
	log.Println("Running job: CompleteEndedClasses...")

	count, err := svc.Classes.CompleteEnded(context.Background(), time.Now())
	if err != nil {
		log.Printf("🔥 Class completion sweep failed after %d class(es): %v", count, err)
		return
	}
	if count > 0 {
		log.Printf("Marked %d class(es) as completed.", count)
	}
}
