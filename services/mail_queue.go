package services

import (
	"log"
	"sync"
	"time"

	"fuel-distribution-api/config"
)

// Customer-facing email is decoupled from the request lifecycle: jobs go
// onto a buffered queue drained by one worker, with bounded retry. A full
// queue falls back to a direct goroutine send so the request path never
// blocks.

const (
	mailQueueCapacity = 64
	mailMaxAttempts   = 3
)

type mailJob struct {
	to      []string
	subject string
	html    string
}

var (
	mailQueue       = make(chan mailJob, mailQueueCapacity)
	mailWorkerStart sync.Once

	// Swappable in tests.
	queueSendMail = func(to []string, subject, html string) error {
		return config.SendMail(to, nil, subject, html)
	}
	mailRetryBaseDelay = time.Second
)

// StartMailWorker launches the background delivery worker. Safe to call more
// than once.
func StartMailWorker() {
	mailWorkerStart.Do(func() {
		go func() {
			for job := range mailQueue {
				deliverWithRetry(job)
			}
		}()
	})
}

// EnqueueMail queues one message for background delivery.
func EnqueueMail(to []string, subject, html string) {
	StartMailWorker()
	job := mailJob{to: to, subject: subject, html: html}
	select {
	case mailQueue <- job:
	default:
		go deliverWithRetry(job)
	}
}

func deliverWithRetry(job mailJob) {
	delay := mailRetryBaseDelay
	for attempt := 1; attempt <= mailMaxAttempts; attempt++ {
		err := queueSendMail(job.to, job.subject, job.html)
		if err == nil {
			return
		}
		log.Printf("Email to %v (%q) failed on attempt %d/%d: %v",
			job.to, job.subject, attempt, mailMaxAttempts, err)
		if attempt < mailMaxAttempts {
			time.Sleep(delay)
			delay *= 2
		}
	}
	log.Printf("Giving up on email to %v (%q) after %d attempts",
		job.to, job.subject, mailMaxAttempts)
}
