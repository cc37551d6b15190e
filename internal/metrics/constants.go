package metrics

// Metric namespace
const Namespace = "prizedraw"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Board metric names
const (
	MetricNameBoardEvents     = "board_events_total"
	MetricNameDrawRequests    = "draw_requests_total"
	MetricNameResetRequests   = "reset_requests_total"
	MetricNameLoads           = "loads_total"
	MetricNamePrizesAvailable = "prizes_available"
	MetricNamePrizesTotal     = "prizes_total"
	MetricNameSSEClients      = "sse_clients"
)

// Help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextBoardEvents          = "Board events published, by type"
	HelpTextDrawRequests         = "Draw requests, by outcome"
	HelpTextResetRequests        = "Reset requests, by outcome"
	HelpTextLoads                = "Prize configuration loads, by outcome"
	HelpTextPrizesAvailable      = "Prizes not yet drawn"
	HelpTextPrizesTotal          = "Prizes in the pool"
	HelpTextSSEClients           = "Connected SSE clients"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
)

// Outcome label values
const (
	OutcomeStarted   = "started"
	OutcomeIgnored   = "ignored"
	OutcomeExhausted = "exhausted"
	OutcomeNoop      = "noop"
	OutcomeDeclined  = "declined"
	OutcomeReset     = "reset"
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeError     = "error"
)

// HTTPLatencyBuckets are histogram buckets for request latency. A draw with
// wait=true holds the request for about 2.2s.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
