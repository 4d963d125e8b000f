package display

import "expvar"

var (
	metricEventsTotal       = expvar.NewInt("display_events_total")
	metricSentTotal         = expvar.NewInt("display_sent_total")
	metricFailedTotal       = expvar.NewInt("display_failed_total")
	metricPanicTotal        = expvar.NewInt("display_panic_total")
	metricMutedDroppedTotal = expvar.NewInt("display_muted_dropped_total")
)
