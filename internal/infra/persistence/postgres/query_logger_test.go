package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"eshop/config"
	deliverycontext "eshop/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}

	return out
}

func TestQueryLogger_Trace(t *testing.T) {
	statement := func() (string, int64) { return `SELECT * FROM "products"`, 3 }

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		wantMsg string
	}{
		{name: "failure", err: errors.New("boom"), begin: time.Now(), wantMsg: "Query failed"},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound, begin: time.Now()},
		{name: "slow", begin: time.Now().Add(-time.Second), wantMsg: "Slow query"},
		{name: "fast query hidden outside debug", begin: time.Now()},
		{name: "fast query shown in debug", debug: true, begin: time.Now(), wantMsg: "Query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := captureLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			newQueryLogger(logger, cfg).Trace(context.Background(), tt.begin, statement, tt.err)

			lines := decodeLines(t, buf)
			if tt.wantMsg == "" {
				assert.Empty(t, lines)

				return
			}
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantMsg, lines[0]["msg"])
			assert.EqualValues(t, 3, lines[0]["rows"])
		})
	}
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	base, baseBuf := captureLogger()
	scoped, scopedBuf := captureLogger()
	ctx := deliverycontext.WithLogger(context.Background(), scoped.With(slog.String("request_id", "req-1")))

	newQueryLogger(base, nil).Trace(ctx, time.Now(), func() (string, int64) { return "DELETE", 0 }, errors.New("fk"))

	assert.Empty(t, baseBuf.String())
	lines := decodeLines(t, scopedBuf)
	require.Len(t, lines, 1)
	assert.Equal(t, "req-1", lines[0]["request_id"])
}

func TestQueryLogger_TruncatesSQL(t *testing.T) {
	logger, buf := captureLogger()
	long := "SELECT " + strings.Repeat("x", 2*maxLoggedSQL)

	newQueryLogger(logger, nil).Trace(context.Background(), time.Now(), func() (string, int64) { return long, 0 }, errors.New("boom"))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	sql, _ := lines[0]["sql"].(string)
	assert.True(t, strings.HasSuffix(sql, "..."))
	assert.LessOrEqual(t, len([]rune(sql)), maxLoggedSQL)
}

func TestQueryLogger_Silent(t *testing.T) {
	logger, buf := captureLogger()

	newQueryLogger(logger, nil).LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	newQueryLogger(logger, nil).Info(context.Background(), "hidden %d", 1)

	assert.Empty(t, buf.String())
}
