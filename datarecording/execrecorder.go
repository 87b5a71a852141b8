package datarecording

import (
	"os"
	"strings"
	"time"
)

// ExecInfoTable is the table that holds the information of the program runs.
const ExecInfoTable = "exec_info"

// ExecInfo is one property of a program run.
type ExecInfo struct {
	RunID    string
	Property string
	Value    string
}

// ExecRecorder records when and how the program was run.
type ExecRecorder struct {
	runID    string
	recorder DataRecorder
	entries  []ExecInfo
	now      func() time.Time
}

// NewExecRecorder creates an ExecRecorder that writes into recorder.
func NewExecRecorder(recorder DataRecorder, runID string) *ExecRecorder {
	e := &ExecRecorder{
		runID:    runID,
		recorder: recorder,
		now:      time.Now,
	}

	recorder.CreateTable(ExecInfoTable, ExecInfo{})

	return e
}

// Start logs the start time, the command line, and the working directory.
func (e *ExecRecorder) Start() {
	e.add("Start Time", e.timestamp())
	e.add("Command", strings.Join(os.Args, " "))

	cwd, err := os.Getwd()
	if err == nil {
		e.add("Working Directory", cwd)
	}
}

// Note records an extra property of the run.
func (e *ExecRecorder) Note(property, value string) {
	e.add(property, value)
}

// End writes the recorded properties along with the end time.
func (e *ExecRecorder) End() {
	e.add("End Time", e.timestamp())

	for _, entry := range e.entries {
		e.recorder.InsertData(ExecInfoTable, entry)
	}

	e.entries = nil

	e.recorder.Flush()
}

func (e *ExecRecorder) add(property, value string) {
	e.entries = append(e.entries, ExecInfo{
		RunID:    e.runID,
		Property: property,
		Value:    value,
	})
}

func (e *ExecRecorder) timestamp() string {
	return e.now().Format("2006-01-02 15:04:05.000000000")
}
