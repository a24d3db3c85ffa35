package audit

import "github.com/rs/zerolog"

type Event struct {
	UserID   uint
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher decouples audit writes from request handling. Events go through
// a buffered channel; when the buffer is full the event is dropped rather
// than blocking the API.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
	log    zerolog.Logger
}

func NewDispatcher(logger *Logger, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		log:    log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
