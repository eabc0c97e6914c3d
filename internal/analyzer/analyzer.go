package analyzer

import "github.com/nao1215/flpscan/internal/model"

// Analyze classifies the decoded event stream of the file at filePath and
// returns the full coverage aggregate.
//
// Every event feeds the by-type and by-ID tables. Opaque events additionally
// feed the unknown-ID table. For VST plugin container events, each embedded
// sub-event whose ID did not resolve to a symbolic name feeds the unknown
// sub-event table. Sub-events of other event kinds are not inspected; this
// mirrors the parser, which only exposes an embedded event list on the
// plugin container.
//
// The returned tables are untruncated. Display row limits are applied by the
// report writers so the summary percentages always reflect the whole file.
func Analyze(filePath string, events []model.Event) *model.CoverageReport {
	report := model.NewCoverageReport(filePath)

	var unknownEvents int
	for i := range events {
		event := &events[i]

		report.EventTypes.Add(event.Kind)
		report.EventIDs.Add(event.Key())

		if !event.Recognized() {
			unknownEvents++
			report.UnknownEventIDs.Add(event.ID)
		}

		if event.Kind != model.KindVSTPlugin {
			continue
		}
		for j := range event.SubEvents {
			sub := &event.SubEvents[j]
			if sub.Recognized() {
				continue
			}
			report.UnknownSubEvents++
			report.UnknownSubEventIDs.Add(sub.ID)
		}
	}

	report.Summary = model.NewCoverageSummary(len(events)-unknownEvents, unknownEvents)
	return report
}
