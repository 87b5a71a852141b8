package estimator

import (
	"log"

	"github.com/sarchlab/tsvcost/datarecording"
	"github.com/sarchlab/tsvcost/hooking"
)

// Stage names one computation of an estimator.
type Stage string

// Stages shared by the estimators.
const (
	StageInitialize Stage = "Initialize"
	StageArea       Stage = "CalculateArea"
	StageLatency    Stage = "CalculateLatency"
	StagePower      Stage = "CalculatePower"
)

// Hook positions invoked by the estimators. The Item of the HookCtx is the
// Stage and the Detail is a Snapshot of the unit after the stage.
var (
	HookPosStageDone    = &hooking.HookPos{Name: "StageDone"}
	HookPosStageSkipped = &hooking.HookPos{Name: "StageSkipped"}
)

// Snapshot is a copy of the results of a unit.
type Snapshot struct {
	Component         string
	Area              float64
	Height            float64
	Width             float64
	ReadLatency       float64
	ReadDynamicEnergy float64
	Leakage           float64
	LatencyInCycles   bool
}

// Snapshot copies the current results.
func (u *Unit) Snapshot() Snapshot {
	return Snapshot{
		Component:         u.name,
		Area:              u.Area,
		Height:            u.Height,
		Width:             u.Width,
		ReadLatency:       u.ReadLatency,
		ReadDynamicEnergy: u.ReadDynamicEnergy,
		Leakage:           u.Leakage,
		LatencyInCycles:   u.LatencyInCycles,
	}
}

// NotifyStage invokes the hooks of the unit for a stage of domain.
func (u *Unit) NotifyStage(
	domain hooking.Hookable,
	pos *hooking.HookPos,
	stage Stage,
) {
	if u.NumHooks() == 0 {
		return
	}

	u.InvokeHook(hooking.HookCtx{
		Domain: domain,
		Pos:    pos,
		Item:   stage,
		Detail: u.Snapshot(),
	})
}

// StageLogger is a hook that logs every stage of an estimator.
type StageLogger struct {
	*log.Logger
}

// NewStageLogger creates a StageLogger that writes to logger.
func NewStageLogger(logger *log.Logger) *StageLogger {
	return &StageLogger{Logger: logger}
}

// Func logs the stage.
func (l *StageLogger) Func(ctx hooking.HookCtx) {
	s, ok := ctx.Detail.(Snapshot)
	if !ok {
		return
	}

	if ctx.Pos == HookPosStageSkipped {
		l.Printf("[%s] %v skipped", s.Component, ctx.Item)
		return
	}

	l.Printf("[%s] %v done: area=%g latency=%g energy=%g leakage=%g",
		s.Component, ctx.Item,
		s.Area, s.ReadLatency, s.ReadDynamicEnergy, s.Leakage)
}

// StageTable is the table the RecordingHook writes into.
const StageTable = "stage_results"

// StageRecord is one row of the stage table.
type StageRecord struct {
	RunID             string
	Component         string
	Stage             string
	Area              float64
	Height            float64
	Width             float64
	ReadLatency       float64
	ReadDynamicEnergy float64
	Leakage           float64
	LatencyInCycles   bool
}

// RecordingHook stores the results of every completed stage.
type RecordingHook struct {
	runID    string
	recorder datarecording.DataRecorder
}

// NewRecordingHook creates a RecordingHook and its table.
func NewRecordingHook(
	recorder datarecording.DataRecorder,
	runID string,
) *RecordingHook {
	recorder.CreateTable(StageTable, StageRecord{})

	return &RecordingHook{
		runID:    runID,
		recorder: recorder,
	}
}

// Func records completed stages.
func (h *RecordingHook) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosStageDone {
		return
	}

	s, ok := ctx.Detail.(Snapshot)
	if !ok {
		return
	}

	stage, _ := ctx.Item.(Stage)

	h.recorder.InsertData(StageTable, StageRecord{
		RunID:             h.runID,
		Component:         s.Component,
		Stage:             string(stage),
		Area:              s.Area,
		Height:            s.Height,
		Width:             s.Width,
		ReadLatency:       s.ReadLatency,
		ReadDynamicEnergy: s.ReadDynamicEnergy,
		Leakage:           s.Leakage,
		LatencyInCycles:   s.LatencyInCycles,
	})
}
