package obs

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTime_RecordsOutcome(t *testing.T) {
	ctx := context.Background()

	var err error
	Time(ctx, "test.op")(&err)

	err = errors.New("boom")
	Time(ctx, "test.op")(&err)

	// one series per (op, outcome)
	assert.Equal(t, 2, testutil.CollectAndCount(operationDuration, "estimate_operation_duration_seconds"))
}

func TestTime_LogsThroughContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Str("req_id", "req-1").Logger()
	ctx := logger.WithContext(context.Background())

	err := errors.New("upstream down")
	Time(ctx, "geo.Geocode")(&err)

	out := buf.String()
	assert.Contains(t, out, `"req_id":"req-1"`)
	assert.Contains(t, out, `"op":"geo.Geocode"`)
	assert.Contains(t, out, `"error":"upstream down"`)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(`"req_id"`)))
}
