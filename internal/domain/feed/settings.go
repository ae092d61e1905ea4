package feed

// defaultOrderStatuses is the status allow-list used when none is configured.
var defaultOrderStatuses = []string{"completed", "processing", "on-hold"}

// DefaultExportMonths is the trailing order window used when the configured
// duration is missing or non-positive.
const DefaultExportMonths = 12

// Settings carries the feed configuration handed to the exporters and the
// HTTP gate at construction time. Core logic never consults ambient state.
type Settings struct {
	Enabled              bool
	AccessHash           string
	ExportDurationMonths int
	OrderStatuses        []string
	Currency             string
}

// StatusAllowList returns the configured order status allow-list, falling
// back to the default set when empty.
func (s Settings) StatusAllowList() []string {
	if len(s.OrderStatuses) > 0 {
		out := make([]string, len(s.OrderStatuses))
		copy(out, s.OrderStatuses)
		return out
	}
	out := make([]string, len(defaultOrderStatuses))
	copy(out, defaultOrderStatuses)
	return out
}
