package transfers

// Source names used in logs, traces and FetchError values.
const (
	SourceGold   = "gold"
	SourceNative = "native"
	SourceStable = "stable"
	SourceHead   = "head"
)

// CycleReport summarizes one reconciliation cycle.
type CycleReport struct {
	PreviousWatermark uint64            // Watermark read at the start of the cycle
	Watermark         uint64            // Watermark at the end of the cycle
	Range             BlockRange        // Block range requested from every source, up to the chain head
	LatestBlocks      map[string]uint64 // Highest block scanned, per source name
	Reconciled        uint64            // Highest block every source reached; later transfers wait
	Candidates        int               // Transfers left after the exchange filter
	Dispatched        int               // Notifications issued in this cycle
	Advanced          bool              // Whether the watermark was persisted
}
