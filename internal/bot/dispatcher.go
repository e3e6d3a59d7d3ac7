package bot

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/folderkeeper/internal/logging"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
)

// HandleFunc processes one update.
type HandleFunc func(ctx context.Context, u telegram.Update)

// Dispatcher shards updates by chat id over a fixed set of workers. Updates
// of one chat are handled in arrival order; different chats run in parallel.
type Dispatcher struct {
	queues []chan telegram.Update
	handle HandleFunc
	log    logging.Logger
	wg     sync.WaitGroup
	once   sync.Once
}

func NewDispatcher(workers, buffer int, handle HandleFunc, log logging.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	d := &Dispatcher{
		queues: make([]chan telegram.Update, workers),
		handle: handle,
		log:    log,
	}
	for i := range d.queues {
		d.queues[i] = make(chan telegram.Update, buffer)
	}
	return d
}

// Start launches the workers. They run until Close.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, q := range d.queues {
		d.wg.Add(1)
		go func(i int, q <-chan telegram.Update) {
			defer d.wg.Done()
			for u := range q {
				d.handle(ctx, u)
			}
			d.log.Debug(ctx, "worker stopped", "worker", i)
		}(i, q)
	}
}

func (d *Dispatcher) shard(chatID int64) int {
	n := chatID % int64(len(d.queues))
	if n < 0 {
		n = -n
	}
	return int(n)
}

// Dispatch queues u on the worker owning its chat. It blocks while that
// worker's queue is full and gives up when ctx is done.
func (d *Dispatcher) Dispatch(ctx context.Context, u telegram.Update) error {
	select {
	case d.queues[d.shard(u.ChatID)] <- u:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting updates and waits for queued ones to finish.
// Dispatch must not be called after Close.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		for _, q := range d.queues {
			close(q)
		}
	})
	d.wg.Wait()
}
