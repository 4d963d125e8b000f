package httptransport

import "expvar"

var (
	metricSessionQueryTotal = expvar.NewInt("session_query_total")
	metricRoundsQueryTotal  = expvar.NewInt("rounds_query_total")
)
