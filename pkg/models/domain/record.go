package domain

// Channel identifiers that carry pricing and appear in the final
// report. Other channels survive ingestion at zero cost but are not
// projected into the report columns.
const (
	ChannelSMS = "sms"
	ChannelRCS = "rcs"
)

// DeliveryRecord is one row of an analytic feed after column
// canonicalization: status uppercased, channel lowercased. Extra input
// columns are not carried; the pipeline only ever reads these three.
type DeliveryRecord struct {
	Status   string
	Channel  string
	Campaign string
}

// EnrichedRecord is a DeliveryRecord that passed the eligibility
// filter, tagged with its team and unit cost. Both derivations are
// pure functions of the record itself.
type EnrichedRecord struct {
	DeliveryRecord
	Team     TeamTag
	UnitCost float64
}

// SyntheticDelta is the aggregated contribution of the synthetic
// (pre-aggregated, SMS-only) feeds. It is attributed unconditionally
// to TeamOutbound. A zero-quantity delta contributes nothing.
type SyntheticDelta struct {
	Quantity int64
	Cost     float64
}
