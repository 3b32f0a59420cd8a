// Package xlog is a small structured, leveled logger in the style of the
// teacher's own log package: a Logger carries an accumulated key/value
// context, Handlers decide where records go, and callers log with
// Debug/Info/Warn/Error/Crit plus alternating key/value pairs.
package xlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-stack/stack"
)

// Lvl is a log level.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

func (l Lvl) String() string {
	switch l {
	case LvlTrace:
		return "trce"
	case LvlDebug:
		return "dbug"
	case LvlInfo:
		return "info"
	case LvlWarn:
		return "warn"
	case LvlError:
		return "eror"
	case LvlCrit:
		return "crit"
	default:
		return "????"
	}
}

const skipLevel = 3

// Record is what a Logger asks its Handler to write.
type Record struct {
	Time time.Time
	Lvl  Lvl
	Msg  string
	Ctx  []interface{}
	Call stack.Call
}

// Handler writes a Record somewhere.
type Handler interface {
	Log(r *Record) error
}

// Logger writes key/value pairs to a Handler.
type Logger interface {
	New(ctx ...interface{}) Logger
	SetHandler(h Handler)

	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

type swapHandler struct {
	v atomic.Value
}

func (h *swapHandler) Log(r *Record) error {
	v := h.v.Load()
	if v == nil {
		return nil
	}
	return v.(Handler).Log(r)
}

func (h *swapHandler) Swap(handler Handler) {
	h.v.Store(handler)
}

type logger struct {
	ctx []interface{}
	h   *swapHandler
}

// Root is the default logger, matching the teacher's package-level root.
var root = &logger{h: new(swapHandler)}

func init() {
	root.SetHandler(StreamHandler(os.Stderr))
}

// Root returns the package-wide default Logger.
func Root() Logger { return root }

func (l *logger) New(ctx ...interface{}) Logger {
	child := &logger{ctx: newContext(l.ctx, ctx), h: new(swapHandler)}
	child.h.Swap(l.h)
	return child
}

func newContext(prefix, suffix []interface{}) []interface{} {
	if len(suffix)%2 != 0 {
		suffix = append(suffix, "MISSING_VALUE")
	}
	out := make([]interface{}, 0, len(prefix)+len(suffix))
	out = append(out, prefix...)
	out = append(out, suffix...)
	return out
}

func (l *logger) write(msg string, lvl Lvl, ctx []interface{}) {
	l.h.Log(&Record{
		Time: time.Now(),
		Lvl:  lvl,
		Msg:  msg,
		Ctx:  newContext(l.ctx, ctx),
		Call: stack.Caller(skipLevel - 2),
	})
}

func (l *logger) SetHandler(h Handler)               { l.h.Swap(h) }
func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(msg, LvlTrace, ctx) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(msg, LvlDebug, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(msg, LvlInfo, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(msg, LvlWarn, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(msg, LvlError, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(msg, LvlCrit, ctx)
	os.Exit(1)
}

// streamHandler writes "key=value" formatted records to an io.Writer.
type streamHandler struct {
	mu sync.Mutex
	wr io.Writer
}

// StreamHandler returns a Handler that writes logfmt-style records to w.
func StreamHandler(w io.Writer) Handler {
	return &streamHandler{wr: w}
}

// DiscardHandler returns a Handler that drops every record, for use in tests
// and hot paths where logging would otherwise be observable but unwanted.
func DiscardHandler() Handler {
	return discardHandler{}
}

type discardHandler struct{}

func (discardHandler) Log(*Record) error { return nil }

func (h *streamHandler) Log(r *Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(h.wr, "%s[%s] %s", r.Time.Format("2006-01-02T15:04:05.000"), r.Lvl, r.Msg)
	for i := 0; i+1 < len(r.Ctx); i += 2 {
		fmt.Fprintf(h.wr, " %v=%v", r.Ctx[i], r.Ctx[i+1])
	}
	fmt.Fprintln(h.wr)
	return nil
}

// New is a convenience for root.New, matching the teacher's package-level
// helpers (log.New, log.Debug, ...).
func New(ctx ...interface{}) Logger { return root.New(ctx...) }

func Trace(msg string, ctx ...interface{}) { root.Trace(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { root.Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { root.Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { root.Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { root.Error(msg, ctx...) }
func Crit(msg string, ctx ...interface{})  { root.Crit(msg, ctx...) }
