package notify

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/salonbook/salon-scheduler/internal/timezone"
)

// BookingCreated is everything the owner email and the client message need.
type BookingCreated struct {
	OwnerEmail  string
	OwnerName   string
	ClientName  string
	ClientPhone string
	ServiceName string
	Start       time.Time
	End         time.Time
	Timezone    string
}

// Dispatcher delivers booking notifications off the request path. Delivery is
// best effort: a full queue or a failed send is logged and dropped, never
// surfaced to the client who just booked.
type Dispatcher struct {
	mailer Mailer
	log    *zap.Logger
	queue  chan BookingCreated
}

func NewDispatcher(mailer Mailer, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		log:    log,
		queue:  make(chan BookingCreated, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) Dispatch(ev BookingCreated) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("notify queue full, dropping event",
			zap.String("client_phone", ev.ClientPhone))
	}
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev BookingCreated) {
	loc := timezone.Location(ev.Timezone)
	dateStr := ev.Start.In(loc).Format("Monday, 2 January 2006")
	timeStr := fmt.Sprintf(
		"%s - %s",
		ev.Start.In(loc).Format("15:04"),
		ev.End.In(loc).Format("15:04"),
	)

	if d.mailer != nil && ev.OwnerEmail != "" {
		subject := fmt.Sprintf("New booking - %s", ev.ClientName)
		body := fmt.Sprintf(
			"Hello %s,\n\nYou have a new booking:\n\nClient: %s\nPhone: %s\nService: %s\nDate: %s\nTime: %s\n\nLog in to your account for details.\n",
			ev.OwnerName,
			ev.ClientName,
			ev.ClientPhone,
			ev.ServiceName,
			dateStr,
			timeStr,
		)

		if err := d.mailer.Send(ev.OwnerEmail, subject, body); err != nil {
			d.log.Warn("owner email failed",
				zap.String("to", ev.OwnerEmail),
				zap.Error(err))
		}
	}

	// No SMS provider wired yet; the client confirmation goes to the log the
	// same way the delivery worker will emit it once a gateway exists.
	d.log.Info("sms notification to client",
		zap.String("to", ev.ClientPhone),
		zap.String("body", fmt.Sprintf(
			"Your booking at %s was created. %s, %s. Service: %s.",
			ev.OwnerName, dateStr, timeStr, ev.ServiceName,
		)))
}
