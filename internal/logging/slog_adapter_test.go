// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newCapturingSlog(level zerolog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(NewSlogHandler(zerolog.New(&buf).Level(level))), &buf
}

func TestSlogHandler_Attributes(t *testing.T) {
	t.Parallel()

	logger, buf := newCapturingSlog(zerolog.DebugLevel)

	logger.Info("service started",
		"service", "refit",
		"attempt", 3,
		"ready", true,
		"interval", 30*time.Second,
		"err", errors.New("transient"),
	)

	output := buf.String()
	for _, want := range []string{
		`"level":"info"`,
		`"message":"service started"`,
		`"service":"refit"`,
		`"attempt":3`,
		`"ready":true`,
		`"err":"transient"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSlogHandler_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelInfo, `"level":"info"`},
		{slog.LevelWarn, `"level":"warn"`},
		{slog.LevelError, `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()
			logger, buf := newCapturingSlog(zerolog.TraceLevel)
			logger.Log(context.Background(), tt.level, "msg")
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %s, got: %s", tt.want, buf.String())
			}
		})
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	handler := NewSlogHandler(zerolog.New(nil).Level(zerolog.WarnLevel))

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestSlogHandler_GroupsAndWithAttrs(t *testing.T) {
	t.Parallel()

	logger, buf := newCapturingSlog(zerolog.DebugLevel)

	logger.With("supervisor", "basketwise").
		WithGroup("event").
		Info("restart", "service", "http", slog.Group("backoff", "seconds", 15))

	output := buf.String()
	for _, want := range []string{
		`"supervisor":"basketwise"`,
		`"event.service":"http"`,
		`"event.backoff.seconds":15`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSlogHandler_WithAttrsDoesNotShareSlice(t *testing.T) {
	t.Parallel()

	base := NewSlogHandler(zerolog.Nop())
	a := base.WithAttrs([]slog.Attr{slog.String("a", "1")}).(*SlogHandler)
	b := a.WithAttrs([]slog.Attr{slog.String("b", "2")}).(*SlogHandler)
	c := a.WithAttrs([]slog.Attr{slog.String("c", "3")}).(*SlogHandler)

	if b.attrs[1].Key != "b" || c.attrs[1].Key != "c" {
		t.Errorf("derived handlers share attribute storage: b=%v c=%v", b.attrs, c.attrs)
	}
}
