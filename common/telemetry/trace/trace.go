package trace

import (
	"context"
	"fmt"

	"github.com/narender/product-console/common/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const TracerName = "github.com/narender/product-console"

type StatusMapperFunc func(error) codes.Code

func DefaultStatusMapper(err error) codes.Code {
	if err == nil {
		return codes.Ok
	}
	return codes.Error
}

// StartSpan begins a new span named after the calling function.
func StartSpan(ctx context.Context, initialAttrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return startSpan(ctx, trace.SpanKindInternal, utils.GetCallerFunctionName(3), initialAttrs)
}

// StartClientSpan is StartSpan for outbound calls.
func StartClientSpan(ctx context.Context, initialAttrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return startSpan(ctx, trace.SpanKindClient, utils.GetCallerFunctionName(3), initialAttrs)
}

func startSpan(ctx context.Context, kind trace.SpanKind, operationName string, initialAttrs []attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := []trace.SpanStartOption{
		trace.WithSpanKind(kind),
		trace.WithAttributes(
			semconv.CodeFunction(operationName),
			semconv.CodeNamespace(TracerName),
		),
	}
	if len(initialAttrs) > 0 {
		opts = append(opts, trace.WithAttributes(initialAttrs...))
	}
	return otel.Tracer(TracerName).Start(ctx, operationName, opts...)
}

// EndSpan concludes the given span, recording *errPtr when it is set.
func EndSpan(span trace.Span, errPtr *error, statusMapper StatusMapperFunc, options ...trace.SpanEndOption) {
	defer span.End(options...)

	if errPtr == nil || *errPtr == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	err := *errPtr
	span.RecordError(err, trace.WithStackTrace(true))

	mapper := statusMapper
	if mapper == nil {
		mapper = DefaultStatusMapper
	}
	statusCode := mapper(err)

	statusMsg := ""
	if statusCode == codes.Error {
		statusMsg = err.Error()
	}
	span.SetStatus(statusCode, statusMsg)
}

// RecordSpanError marks span failed with err and exception attributes.
func RecordSpanError(span trace.Span, err error, attrs ...attribute.KeyValue) {
	if span == nil || !span.IsRecording() || err == nil {
		return
	}
	allAttrs := append([]attribute.KeyValue{
		semconv.ExceptionMessage(err.Error()),
		semconv.ExceptionType(fmt.Sprintf("%T", err)),
	}, attrs...)

	span.RecordError(err, trace.WithAttributes(allAttrs...))
	span.SetStatus(codes.Error, err.Error())
}
