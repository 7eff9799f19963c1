package metrics

// Attribute keys shared by the otel instruments.
const (
	AttrProvider = "provider"
	AttrFeed     = "feed"
	AttrKind     = "kind"
	AttrOutcome  = "outcome"
)
