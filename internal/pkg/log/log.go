package log

import (
	"context"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

type contextKey string

const contextKeyRequestID contextKey = "request_id"

// WithRequestID adds a request ID to the context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestIDFromContext returns the request ID carried by the context,
// or an empty string
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func format(requestID, format string, a ...interface{}) string {
	msg := fmt.Sprintf(format, a...)
	if requestID != "" {
		return fmt.Sprintf("[req_id=%s] %s", requestID, msg)
	}
	return msg
}

// Info log information
func Info(f string, a ...interface{}) {
	badge := color.New(color.FgWhite, color.BgGreen).SprintFunc()
	fmt.Printf("%s ", badge("[INFO] "))
	fmt.Printf(f, a...)
	fmt.Println()
}

// InfoWithContext logs information including the request ID if present
func InfoWithContext(ctx context.Context, f string, a ...interface{}) {
	badge := color.New(color.FgWhite, color.BgGreen).SprintFunc()
	fmt.Printf("%s ", badge("[INFO] "))
	fmt.Println(format(RequestIDFromContext(ctx), f, a...))
}

// Warn log warning
func Warn(f string, a ...interface{}) {
	badge := color.New(color.FgWhite, color.BgYellow).SprintFunc()
	fmt.Printf("%s ", badge("[WARN] "))
	fmt.Printf(f, a...)
	fmt.Println()
}

// WarnWithContext logs a warning including the request ID if present
func WarnWithContext(ctx context.Context, f string, a ...interface{}) {
	badge := color.New(color.FgWhite, color.BgYellow).SprintFunc()
	fmt.Printf("%s ", badge("[WARN] "))
	fmt.Println(format(RequestIDFromContext(ctx), f, a...))
}

// Error log error
func Error(f string, a ...interface{}) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Printf("%s ", red("[Error]"))
	fmt.Printf(f, a...)
	fmt.Println()
}

// ErrorWithContext logs an error including the request ID if present
func ErrorWithContext(ctx context.Context, f string, a ...interface{}) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Printf("%s ", red("[Error]"))
	fmt.Println(format(RequestIDFromContext(ctx), f, a...))
}

// Debug dumps values with spew when CIAAN_DEBUG is set
func Debug(a ...interface{}) {
	if os.Getenv("CIAAN_DEBUG") == "" {
		return
	}
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("%s %s", cyan("[Debug]"), spew.Sdump(a...))
}
