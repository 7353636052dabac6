package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(buf *bytes.Buffer, debug bool) *gormSlogLogger {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)
}

func selectPending() (string, int64) {
	return `SELECT * FROM "pending_verifications" WHERE token = $1`, 1
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l := newBufferedGormLogger(&bytes.Buffer{}, false)

	sql, vars := l.ParamsFilter(context.Background(), "SELECT 1 WHERE token = $1", "secret-token")

	assert.Equal(t, "SELECT 1 WHERE token = $1", sql)
	assert.Nil(t, vars)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantLog bool
	}{
		{name: "query failure", begin: time.Now(), err: errors.New("deadlock detected"), want: "GORM query failed", wantLog: true},
		{name: "record not found is silent", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: "GORM slow query", wantLog: true},
		{name: "fast query without debug is silent", begin: time.Now()},
		{name: "fast query with debug", debug: true, begin: time.Now(), want: "GORM query", wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newBufferedGormLogger(&buf, tt.debug)

			l.Trace(context.Background(), tt.begin, selectPending, tt.err)

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "pending_verifications")
		})
	}
}

func TestGormSlogLogger_UsesRequestScopedLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newBufferedGormLogger(&base, false)
	ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-42")))

	l.Trace(ctx, time.Now(), selectPending, errors.New("connection reset"))

	assert.Empty(t, base.String())
	require.Contains(t, scoped.String(), "GORM query failed")
	assert.Contains(t, scoped.String(), "request_id=req-42")
}

func TestGormSlogLogger_LogModeClones(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferedGormLogger(&buf, false)

	silent := l.LogMode(logger.Silent)
	silent.Error(context.Background(), "boom %d", 1)
	assert.Empty(t, buf.String())

	l.Error(context.Background(), "boom %d", 2)
	assert.Contains(t, buf.String(), "boom 2")
}
