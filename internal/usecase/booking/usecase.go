package booking

import (
	"github.com/salonbook/salon-scheduler/internal/audit"
	"github.com/salonbook/salon-scheduler/internal/notify"
)

// The async fan-outs are consumed through these, so tests can stub them.

type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

type NotifyDispatcher interface {
	Dispatch(ev notify.BookingCreated)
}
