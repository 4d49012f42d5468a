package hotkey

import "sync"

// Actions is what the dispatcher calls when a trigger fires.
type Actions interface {
	PlaySound(soundID string)
	StopPlayback()
}

type trigger struct {
	chord string
	stop  bool
}

// dispatcher serializes hotkey triggers onto a single goroutine so the
// player only ever sees one caller at a time.
type dispatcher struct {
	queue    chan trigger
	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	resolve  func(chord string) (string, bool)
	actions  Actions
}

func newDispatcher(resolve func(string) (string, bool), actions Actions) *dispatcher {
	return &dispatcher{
		queue:   make(chan trigger, 16),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		resolve: resolve,
		actions: actions,
	}
}

func (d *dispatcher) start() {
	go d.run()
}

func (d *dispatcher) run() {
	defer close(d.done)
	for {
		select {
		case t := <-d.queue:
			if t.stop {
				d.actions.StopPlayback()
				continue
			}
			if soundID, ok := d.resolve(t.chord); ok {
				d.actions.PlaySound(soundID)
			}
		case <-d.quit:
			return
		}
	}
}

// send never blocks; a full queue drops the trigger.
func (d *dispatcher) send(t trigger) {
	select {
	case d.queue <- t:
	default:
	}
}

func (d *dispatcher) stop() {
	d.stopOnce.Do(func() { close(d.quit) })
	<-d.done
}
