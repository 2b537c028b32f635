package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}

func TestFormatIncludesRequestID(t *testing.T) {
	assert.Equal(t, "[req_id=abc] hello world", format("abc", "hello %s", "world"))
	assert.Equal(t, "hello", format("", "hello"))
}
