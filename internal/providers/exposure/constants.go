package exposure

import "time"

const (
	providerName       = "exposure"
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "hoops-analytics"
	maxErrorBody       = 512

	selectScheduleItems = "div.bg-dark.text-white.mb-4, div.card"
	selectCardBody      = ".card-body"
	selectCardHeader    = ".card-header"
	selectCardFooter    = ".card-footer"
	selectFinalScore    = "span.final-score"
	selectTeamRow       = "div.d-flex"
	selectTeamText      = "div.text-truncate.mr-auto"
)
