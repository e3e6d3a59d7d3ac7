// Package reaper deletes bot messages some time after they were sent.
//
// Handlers only ever enqueue through Schedule. Run owns the queue: a min-heap
// ordered by due time that is swept once per interval.
package reaper

import (
	"container/heap"
	"context"
	"time"

	"github.com/dmitrijs2005/folderkeeper/internal/logging"
)

// Pending is a sent message waiting for deletion.
type Pending struct {
	ChatID      int64
	MessageID   int
	SentAt      time.Time
	DeleteAfter time.Duration
}

func (p Pending) Due() time.Time {
	return p.SentAt.Add(p.DeleteAfter)
}

// Deleter removes a message through the transport.
type Deleter interface {
	Delete(ctx context.Context, chatID int64, messageID int) error
}

const (
	DefaultInterval = time.Second
	DefaultBuffer   = 1024
)

var now = time.Now

type Reaper struct {
	deleter  Deleter
	log      logging.Logger
	interval time.Duration
	in       chan Pending
	queue    pendingHeap
}

func New(d Deleter, log logging.Logger, interval time.Duration, buffer int) *Reaper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Reaper{
		deleter:  d,
		log:      log.With("component", "reaper"),
		interval: interval,
		in:       make(chan Pending, buffer),
	}
}

// Schedule enqueues p without blocking. When the buffer is full the message
// is dropped and stays in the chat.
func (r *Reaper) Schedule(ctx context.Context, p Pending) {
	select {
	case r.in <- p:
	default:
		r.log.Warn(ctx, "reaper queue full, message will not be deleted",
			"chat_id", p.ChatID, "message_id", p.MessageID)
	}
}

// Run sweeps until ctx is done. It must be called from a single goroutine.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case p := <-r.in:
			heap.Push(&r.queue, p)
		case <-ticker.C:
			r.drain()
			r.sweep(ctx, now())
		}
	}
}

// drain moves everything already buffered into the heap.
func (r *Reaper) drain() {
	for {
		select {
		case p := <-r.in:
			heap.Push(&r.queue, p)
		default:
			return
		}
	}
}

// sweep deletes every entry due at t. Failed deletions are logged and the
// entry is dropped anyway.
func (r *Reaper) sweep(ctx context.Context, t time.Time) int {
	n := 0
	for r.queue.Len() > 0 && !r.queue[0].Due().After(t) {
		p := heap.Pop(&r.queue).(Pending)
		if err := r.deleter.Delete(ctx, p.ChatID, p.MessageID); err != nil {
			r.log.Warn(ctx, "delete message failed", "chat_id", p.ChatID, "message_id", p.MessageID, "error", err)
		}
		n++
	}
	return n
}

// Len is the number of entries held by the heap. Not safe while Run is active.
func (r *Reaper) Len() int {
	return r.queue.Len()
}

type pendingHeap []Pending

func (h pendingHeap) Len() int           { return len(h) }
func (h pendingHeap) Less(i, j int) bool { return h[i].Due().Before(h[j].Due()) }
func (h pendingHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *pendingHeap) Push(x any) {
	*h = append(*h, x.(Pending))
}

func (h *pendingHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}
