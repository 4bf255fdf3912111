package helpers

import (
	"context"
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func SetupOpenTelemetry() {
	otel.SetTracerProvider(trace.NewTracerProvider())
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
}

// TraceHandler wraps handler so every request runs inside a server span named operation.
func TraceHandler(handler http.Handler, operation string) http.Handler {
	return otelhttp.NewHandler(handler, operation)
}

func AddTraceID(ctx context.Context, data lager.Data) lager.Data {
	spanContext := oteltrace.SpanFromContext(ctx).SpanContext()
	if spanContext.HasTraceID() {
		data["w3c_trace-id"] = spanContext.TraceID().String()
	}
	return data
}
