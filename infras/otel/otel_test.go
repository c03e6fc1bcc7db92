package otel_test

import (
	"context"
	"errors"
	"shareit/config"
	"shareit/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "shareit-test"

	o := otel.New(cfg)

	ctx, scope := o.NewScope(context.Background(), "service", "service.Test")
	scope.SetAttribute("query", "SELECT 1")
	scope.SetAttributes(map[string]any{"count": 3, "ok": true, "ids": []string{"a"}, "other": 1.5})
	scope.AddEvent("checked")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	assert.True(t, oteltrace.SpanContextFromContext(ctx).IsValid())
	assert.NoError(t, o.Shutdown(context.Background()))
}
