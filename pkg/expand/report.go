package expand

// Report summarises how a template uses the catalog.
type Report struct {
	// Counts holds the number of occurrences of each catalog name found in
	// the template. Names that never occur are absent.
	Counts map[string]int
	// Unknown lists tokens that match no catalog entry, in order.
	Unknown []Token
	// Inert lists catalog names with no occurrence, in catalog order.
	Inert []string
}

// Total returns the number of placeholder tokens that will be substituted.
func (r Report) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// Report inspects template without rendering it.
func (e *Engine) Report(template string) Report {
	report := Report{Counts: make(map[string]int)}
	for _, token := range Scan(template) {
		if !e.catalog.Has(token.Name) {
			report.Unknown = append(report.Unknown, token)
			continue
		}
		report.Counts[token.Name]++
	}
	for _, name := range e.names {
		if report.Counts[name] == 0 {
			report.Inert = append(report.Inert, name)
		}
	}
	return report
}
