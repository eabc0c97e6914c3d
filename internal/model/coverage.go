package model

// CoverageSummary holds the parsed-versus-unknown totals for one report.
// It is derived once per invocation from the full event stream and is never
// affected by display truncation.
type CoverageSummary struct {
	// TotalEvents is the number of top-level events in the file.
	TotalEvents int

	// ParsedEvents is the number of events decoded into known event types.
	ParsedEvents int

	// UnknownEvents is the number of events left opaque by the parser.
	// ParsedEvents + UnknownEvents always equals TotalEvents.
	UnknownEvents int

	// ParsedPct is 100 * ParsedEvents / TotalEvents, or 0.0 for an empty file.
	ParsedPct float64

	// UnknownPct is 100 - ParsedPct, or 0.0 for an empty file.
	UnknownPct float64
}

// NewCoverageSummary computes a CoverageSummary from parsed and unknown
// event counts. An empty file yields 0.0 for both percentages rather than
// dividing by zero.
func NewCoverageSummary(parsed, unknown int) CoverageSummary {
	s := CoverageSummary{
		TotalEvents:   parsed + unknown,
		ParsedEvents:  parsed,
		UnknownEvents: unknown,
	}
	if s.TotalEvents > 0 {
		s.ParsedPct = 100 * float64(parsed) / float64(s.TotalEvents)
		s.UnknownPct = 100 - s.ParsedPct
	}
	return s
}

// CoverageReport is the full aggregate for one input file. It is built by
// the analyzer and consumed by the report writers.
//
// Design decision: The report carries untruncated frequency tables; writers
// apply the display row limit themselves via Top. This keeps the summary
// percentages independent of presentation choices.
type CoverageReport struct {
	// FilePath is the resolved path of the analyzed FLP file.
	FilePath string

	// Summary holds the top-level coverage totals and percentages.
	Summary CoverageSummary

	// EventTypes counts events by decoded event type name.
	EventTypes *FrequencyTable[string]

	// EventIDs counts events by (ID, Name, Kind) triple.
	EventIDs *FrequencyTable[EventKey]

	// UnknownEventIDs counts opaque top-level events by ID.
	UnknownEventIDs *FrequencyTable[int]

	// UnknownSubEventIDs counts unrecognized VST sub-events by ID.
	UnknownSubEventIDs *FrequencyTable[int]

	// UnknownSubEvents is the total number of unrecognized VST sub-events,
	// counting every occurrence rather than distinct IDs.
	UnknownSubEvents int
}

// NewCoverageReport creates an empty CoverageReport for the given file path
// with all frequency tables initialized.
func NewCoverageReport(filePath string) *CoverageReport {
	return &CoverageReport{
		FilePath:           filePath,
		EventTypes:         NewFrequencyTable[string](),
		EventIDs:           NewFrequencyTable[EventKey](),
		UnknownEventIDs:    NewFrequencyTable[int](),
		UnknownSubEventIDs: NewFrequencyTable[int](),
	}
}
