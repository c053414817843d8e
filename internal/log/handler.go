package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// CallbackFunc receives log records forwarded by a CallbackHandler.
// The watch TUI uses it to surface recent log lines without writing
// to the terminal behind the UI's back.
type CallbackFunc func(record slog.Record)

// CallbackHandler is a slog.Handler that forwards log records to a callback function
type CallbackHandler struct {
	level    slog.Level
	mu       sync.Mutex
	callback CallbackFunc
	attrs    []slog.Attr
}

// NewCallbackHandler creates a new slog handler that forwards logs to a callback
func NewCallbackHandler(callback CallbackFunc, level slog.Level) *CallbackHandler {
	return &CallbackHandler{
		level:    level,
		callback: callback,
	}
}

// Enabled reports whether the handler handles records at the given level
func (h *CallbackHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle handles the Record by forwarding to the callback
func (h *CallbackHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.callback == nil {
		return nil
	}

	// Add stored attributes to the record
	if len(h.attrs) > 0 {
		record.AddAttrs(h.attrs...)
	}

	// Forward the record to the callback
	h.callback(record)
	return nil
}

// WithAttrs returns a new Handler whose attributes consist of both the receiver's attributes and the arguments
func (h *CallbackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CallbackHandler{
		level:    h.level,
		callback: h.callback,
		attrs:    append(h.attrs, attrs...),
	}
}

// WithGroup returns a new Handler with the given group name
func (h *CallbackHandler) WithGroup(name string) slog.Handler {
	// For simplicity, we don't support WithGroup
	return h
}

// Handler is a slog.Handler for formatted output with optional file progress information
type Handler struct {
	level      slog.Level
	mu         sync.Mutex
	fileNum    int
	totalFiles int
	fileName   string
	output     io.Writer
}

// NewHandler creates a new handler for formatted output
func NewHandler(output io.Writer, level slog.Level) *Handler {
	return &Handler{
		level:  level,
		output: output,
	}
}

// NewHandlerWithFile creates a new handler carrying file progress information
func NewHandlerWithFile(fileNum, totalFiles int, fileName string, output io.Writer, level slog.Level) *Handler {
	return &Handler{
		level:      level,
		fileNum:    fileNum,
		totalFiles: totalFiles,
		fileName:   fileName,
		output:     output,
	}
}

// Enabled returns whether the handler handles records at the given level
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle processes the Record and outputs formatted log
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Format level prefix
	var levelStr string
	switch {
	case r.Level >= slog.LevelError:
		levelStr = "[ERROR] "
	case r.Level >= slog.LevelWarn:
		levelStr = "[WARN] "
	case r.Level >= slog.LevelInfo:
		levelStr = "" // No prefix for INFO
	case r.Level >= slog.LevelDebug:
		levelStr = "[DEBUG] "
	default:
		levelStr = "[TRACE] "
	}

	// Format file progress info if available
	var fileInfo string
	if h.fileName != "" {
		fileInfo = fmt.Sprintf("[%d/%d %s] ", h.fileNum, h.totalFiles, h.fileName)
	}

	// Build the message with attributes, excluding file progress ones
	formattedMsg := r.Message
	r.Attrs(func(a slog.Attr) bool {
		// Skip file progress attributes and time
		if a.Key == "fileIndex" || a.Key == "totalFiles" || a.Key == "fileName" || a.Key == slog.TimeKey {
			return true
		}
		// Format other attributes inline
		formattedMsg += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
		return true
	})

	// Write to output
	fmt.Fprintf(h.output, "%s%s%s\n", levelStr, fileInfo, formattedMsg)
	return nil
}

// WithAttrs returns a new Handler with the given attributes
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	// For simplicity, we don't support WithAttrs
	return h
}

// WithGroup returns a new Handler with the given group name
func (h *Handler) WithGroup(name string) slog.Handler {
	// For simplicity, we don't support WithGroup
	return h
}
