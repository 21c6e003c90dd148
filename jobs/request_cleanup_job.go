// File: /jobs/request_cleanup_job.go
package jobs

import (
	"log"
	"time"

	"gorm.io/gorm"

	"friendlink-api/repositories"
)

// RequestCleanupJob periodically prunes rejected friend requests older
// than the retention window. Accepted requests are kept as the audit
// trail of the friendship; pending ones are live state.
type RequestCleanupJob struct {
	friendRepo *repositories.FriendRepository
	retainFor  time.Duration
	ticker     *time.Ticker
	done       chan bool
}

func NewRequestCleanupJob(db *gorm.DB, interval, retainFor time.Duration) *RequestCleanupJob {
	return &RequestCleanupJob{
		friendRepo: repositories.NewFriendRepository(db),
		retainFor:  retainFor,
		ticker:     time.NewTicker(interval),
		done:       make(chan bool),
	}
}

// Start begins the cleanup job.
func (j *RequestCleanupJob) Start() {
	log.Println("Friend request cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				log.Println("Friend request cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job.
func (j *RequestCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *RequestCleanupJob) cleanup() {
	cutoff := time.Now().Add(-j.retainFor)

	removed, err := j.friendRepo.DeleteRejectedBefore(cutoff)
	if err != nil {
		log.Printf("Error during friend request cleanup: %v", err)
		return
	}

	if removed > 0 {
		log.Printf("Friend request cleanup removed %d rejected requests", removed)
	}
}
