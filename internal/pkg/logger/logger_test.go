package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsTraceAndUser(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)})

	ctx := WithTraceID(context.Background(), "trace-1")
	ctx = context.WithValue(ctx, UserIDKey, uint64(9))
	l.InfoContext(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "trace-1", record[TraceIDKey])
	assert.EqualValues(t, 9, record[UserIDKey])
}

func TestRemoteFilterDropsUntracedRecords(t *testing.T) {
	var remote bytes.Buffer
	h := &ContextHandler{&RemoteFilterHandler{next: log.NewJSONHandler(&remote, nil)}}
	l := log.New(h)

	l.Info("startup")
	assert.Zero(t, remote.Len())

	l.InfoContext(WithTraceID(context.Background(), "abc"), "request")
	assert.Contains(t, remote.String(), "abc")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab"+truncatedPostfix, truncate("abcdef", 2))
}
