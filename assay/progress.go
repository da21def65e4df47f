package assay

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"
)

// ProgressEmitter receives normalization progress events.
//
// Implementations include:
// - CLIEmitter: Pretty-printed terminal output using pterm
// - JSONEmitter: Structured JSON events for machine consumption
// - NopEmitter: Discards everything (the default)
type ProgressEmitter interface {
	// EmitStage announces a pipeline stage transition
	EmitStage(stage string, message string)

	// EmitChunk reports one processed chunk and the accumulated row total
	EmitChunk(index int, rows int, total int)

	// EmitComplete reports the final run summary
	EmitComplete(summary map[string]interface{})

	// EmitError reports a failure in a stage
	EmitError(stage string, err error)
}

// NopEmitter discards all progress events.
type NopEmitter struct{}

func (NopEmitter) EmitStage(string, string)            {}
func (NopEmitter) EmitChunk(int, int, int)             {}
func (NopEmitter) EmitComplete(map[string]interface{}) {}
func (NopEmitter) EmitError(string, error)             {}

// CLIEmitter outputs pretty-printed progress to terminal using pterm
type CLIEmitter struct {
	verbosity int
}

// NewCLIEmitter creates a CLI progress emitter for terminal output
func NewCLIEmitter(verbosity int) *CLIEmitter {
	return &CLIEmitter{verbosity: verbosity}
}

// EmitStage prints a stage announcement to terminal
func (e *CLIEmitter) EmitStage(stage string, message string) {
	pterm.Printf("%s: %s\n", pterm.LightCyan(stage), message)
}

// EmitChunk prints per-chunk progress
func (e *CLIEmitter) EmitChunk(index int, rows int, total int) {
	pterm.Printf("Processed chunk %s (%s rows, %s total)\n",
		pterm.Green(fmt.Sprintf("%d", index)),
		pterm.Green(fmt.Sprintf("%d", rows)),
		pterm.Green(fmt.Sprintf("%d", total)))
}

// EmitComplete prints completion summary
func (e *CLIEmitter) EmitComplete(summary map[string]interface{}) {
	pterm.Success.Println("Normalization complete!")
	if e.verbosity >= 1 {
		for key, value := range summary {
			pterm.Printf("  %s: %v\n", key, value)
		}
	}
}

// EmitError prints an error
func (e *CLIEmitter) EmitError(stage string, err error) {
	pterm.Error.Printf("Error in %s: %v\n", stage, err)
}

// ProgressEvent is one structured JSON progress event
type ProgressEvent struct {
	Type      string                 `json:"type"` // "stage", "chunk", "complete", "error"
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// JSONEmitter writes newline-delimited JSON progress events
type JSONEmitter struct {
	out io.Writer
}

// NewJSONEmitter creates a JSON progress emitter writing to out
func NewJSONEmitter(out io.Writer) *JSONEmitter {
	return &JSONEmitter{out: out}
}

func (e *JSONEmitter) emit(eventType string, data map[string]interface{}) {
	event := ProgressEvent{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
	// Emission failures are not worth failing a run over
	_ = json.NewEncoder(e.out).Encode(event)
}

// EmitStage writes a stage event
func (e *JSONEmitter) EmitStage(stage string, message string) {
	e.emit("stage", map[string]interface{}{"stage": stage, "message": message})
}

// EmitChunk writes a chunk event
func (e *JSONEmitter) EmitChunk(index int, rows int, total int) {
	e.emit("chunk", map[string]interface{}{"index": index, "rows": rows, "total": total})
}

// EmitComplete writes a completion event
func (e *JSONEmitter) EmitComplete(summary map[string]interface{}) {
	e.emit("complete", summary)
}

// EmitError writes an error event
func (e *JSONEmitter) EmitError(stage string, err error) {
	e.emit("error", map[string]interface{}{"stage": stage, "error": err.Error()})
}
