package trace

// TraceLevel controls the verbosity of seek tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSummary keeps only the aggregate motion summary.
	TraceLevelSummary TraceLevel = "summary"
	// TraceLevelSteps additionally reports every seek.
	TraceLevelSteps TraceLevel = "steps"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:    true,
	TraceLevelSummary: true,
	TraceLevelSteps:   true,
	"":                true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SeekTrace collects seek records for one run over a disk of DiskSize tracks.
type SeekTrace struct {
	DiskSize int
	Records  []SeekRecord
}

// NewSeekTrace creates a SeekTrace ready for recording.
func NewSeekTrace(diskSize int) *SeekTrace {
	return &SeekTrace{
		DiskSize: diskSize,
		Records:  make([]SeekRecord, 0),
	}
}

// Record appends a movement from one track to another.
func (st *SeekTrace) Record(from, to int) {
	distance := to - from
	if distance < 0 {
		distance = -distance
	}
	st.Records = append(st.Records, SeekRecord{
		Step:     len(st.Records) + 1,
		From:     from,
		To:       to,
		Distance: distance,
		AtEdge:   st.isEdge(to),
	})
}

func (st *SeekTrace) isEdge(track int) bool {
	return track == 0 || track == st.DiskSize-1
}

// isWrap reports a jump from one disk edge straight to the other.
func (st *SeekTrace) isWrap(r SeekRecord) bool {
	return r.From != r.To && st.isEdge(r.From) && st.isEdge(r.To)
}
