package trace

// TraceLevel controls the verbosity of step tracing.
type TraceLevel string

const (
	// TraceLevelNone disables step recording. Sweeps and comparisons only need totals.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSteps captures one StepRecord per reference.
	TraceLevelSteps TraceLevel = "steps"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelSteps: true,
	"":              true, // empty defaults to steps
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig identifies the run a trace belongs to.
type TraceConfig struct {
	Level    TraceLevel
	Policy   string
	Capacity int
}

// Enabled reports whether steps should be recorded under this config.
func (c TraceConfig) Enabled() bool {
	return c.Level != TraceLevelNone
}

// SimulationTrace collects step records during one simulation run.
// Records are append-only and never edited after they are recorded.
type SimulationTrace struct {
	Config TraceConfig
	Steps  []StepRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Steps:  make([]StepRecord, 0),
	}
}

// RecordStep appends a step record. No-op when the trace level is none.
func (st *SimulationTrace) RecordStep(record StepRecord) {
	if !st.Config.Enabled() {
		return
	}
	st.Steps = append(st.Steps, record)
}

// Len returns the number of recorded steps.
func (st *SimulationTrace) Len() int {
	if st == nil {
		return 0
	}
	return len(st.Steps)
}

// FrameAt returns the page held in frame slot frameIndex after step stepIndex.
// The second return value is false when the step does not exist or the slot was empty.
func (st *SimulationTrace) FrameAt(frameIndex, stepIndex int) (int, bool) {
	if stepIndex < 0 || stepIndex >= st.Len() {
		return 0, false
	}
	frames := st.Steps[stepIndex].Frames
	if frameIndex < 0 || frameIndex >= len(frames) {
		return 0, false
	}
	return frames[frameIndex], true
}
