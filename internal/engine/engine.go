package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/numsanitize/internal/domain/schema"
	"github.com/leengari/numsanitize/internal/precision"
	"github.com/leengari/numsanitize/internal/storage"
	"github.com/leengari/numsanitize/internal/storage/writer"
	"github.com/leengari/numsanitize/internal/validation"
)

// Request describes a single precision-reduction run
type Request struct {
	InputPath  string         `yaml:"input_file" validate:"required"`
	OutputPath string         `yaml:"output_file"` // defaults to InputPath
	Column     string         `yaml:"column_name" validate:"required"`
	FileType   string         `yaml:"file_type"` // csv or json, inferred from InputPath when empty
	Precision  precision.Spec `yaml:"precision"`
}

// Result summarizes a completed run
type Result struct {
	RunID      string
	Format     storage.Format
	InputPath  string
	OutputPath string
	Rows       int
	Rounded    int               // values that were numeric and got rounded
	ColumnType schema.ColumnType // type of the column after rounding
	Warnings   []precision.Warning
	Duration   time.Duration
}

// Engine runs load → reduce → write and reports each phase to its observers
type Engine struct {
	logger    *slog.Logger
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine instance. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger:    logger,
		observers: make([]Observer, 0),
	}
}

// AddObserver registers an observer for lifecycle events
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// RemoveObserver unregisters a previously added observer
func (e *Engine) RemoveObserver(o Observer) {
	for i, registered := range e.observers {
		if registered == o {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

func (e *Engine) notify(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	for _, o := range e.observers {
		o.OnEvent(event)
	}
}

// Run loads the input table, rounds the requested column and writes the
// result. Any fatal error stops the run before the output is written.
func (e *Engine) Run(req Request) (*Result, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger := e.logger.With(slog.String("run_id", runID))
	start := time.Now()

	format, err := storage.DetectFormat(req.InputPath, req.FileType)
	if err != nil {
		return nil, err
	}
	if req.FileType == "" {
		logger.Info("file type inferred", slog.String("format", string(format)))
	}

	// 1. Load
	e.notify(Event{Type: EventLoadStart, RunID: runID, Data: req.InputPath})
	table, err := storage.LoadTable(req.InputPath, format, logger)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	e.notify(Event{Type: EventLoadEnd, RunID: runID, Data: len(table.Rows)})

	// 2. Reduce
	e.notify(Event{Type: EventReduceStart, RunID: runID, Data: req.Precision.String()})
	if col := table.GetColumn(req.Column); col != nil {
		col.Type = schema.InferColumnType(table.Rows, req.Column)
		logger.Debug("target column",
			slog.String("column", req.Column),
			slog.String("type", string(col.Type)),
			slog.String("precision", req.Precision.String()),
		)
	}
	reduced, warnings, err := precision.Apply(table, req.Column, req.Precision)
	if err != nil {
		return nil, fmt.Errorf("precision reduction failed: %w", err)
	}
	e.notify(Event{Type: EventReduceEnd, RunID: runID, Data: len(warnings)})

	for _, w := range warnings {
		logger.Debug("value left unchanged",
			"row", w.Row,
			"column", w.Column,
			"value", w.Value,
			"reason", w.Reason,
		)
	}
	if len(warnings) > 0 {
		logger.Warn("some values could not be rounded",
			slog.String("column", req.Column),
			slog.Int("count", len(warnings)),
		)
	}

	// 3. Write
	outPath := req.OutputPath
	if outPath == "" {
		outPath = req.InputPath
	}
	e.notify(Event{Type: EventWriteStart, RunID: runID, Data: outPath})
	if err := writer.SaveTable(reduced, outPath, format, logger); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	e.notify(Event{Type: EventWriteEnd, RunID: runID, Data: outPath})

	result := &Result{
		RunID:      runID,
		Format:     format,
		InputPath:  req.InputPath,
		OutputPath: outPath,
		Rows:       len(reduced.Rows),
		Rounded:    countPresent(table, req.Column) - len(warnings),
		ColumnType: reduced.GetColumn(req.Column).Type,
		Warnings:   warnings,
		Duration:   time.Since(start),
	}

	logger.Info("Data sanitization complete",
		slog.String("output", outPath),
		slog.Int("rows", result.Rows),
		slog.Int("rounded", result.Rounded),
		slog.String("column_type", string(result.ColumnType)),
		slog.Int("warnings", len(warnings)),
		slog.Duration("duration", result.Duration),
	)

	return result, nil
}

// countPresent counts rows holding a non-null value in column
func countPresent(t *schema.Table, column string) int {
	n := 0
	for _, row := range t.Rows {
		if v, ok := row.Get(column); ok && v != nil {
			n++
		}
	}
	return n
}
