package logging

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace"
)

const hookScope = "github.com/narender/product-console/common/logging"

// OtelHook implements logrus.Hook, emitting every entry through the global
// OTel LoggerProvider and stamping trace/span ids when the entry has a context.
type OtelHook struct{}

func NewOtelHook() *OtelHook {
	return &OtelHook{}
}

// Levels returns the log levels that this hook should fire for.
func (h *OtelHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *OtelHook) Fire(entry *logrus.Entry) error {
	ctx := entry.Context
	if ctx == nil {
		ctx = context.Background()
	}

	if spanCtx := trace.SpanFromContext(ctx).SpanContext(); spanCtx.IsValid() {
		entry.Data["trace_id"] = spanCtx.TraceID().String()
		entry.Data["span_id"] = spanCtx.SpanID().String()
	}

	record := otellog.Record{}
	record.SetTimestamp(entry.Time)
	record.SetObservedTimestamp(time.Now())
	record.SetSeverity(mapLogLevel(entry.Level))
	record.SetSeverityText(entry.Level.String())
	record.SetBody(otellog.StringValue(entry.Message))

	for k, v := range entry.Data {
		record.AddAttributes(toKeyValue(k, v))
	}

	global.GetLoggerProvider().Logger(hookScope).Emit(ctx, record)
	return nil
}

func toKeyValue(k string, v any) otellog.KeyValue {
	switch val := v.(type) {
	case string:
		return otellog.String(k, val)
	case int:
		return otellog.Int(k, val)
	case int64:
		return otellog.Int64(k, val)
	case float64:
		return otellog.Float64(k, val)
	case bool:
		return otellog.Bool(k, val)
	case time.Duration:
		return otellog.String(k, val.String())
	case error:
		return otellog.String(k, val.Error())
	default:
		return otellog.String(k, fmt.Sprintf("%+v", val))
	}
}

// mapLogLevel converts Logrus level to OTel severity number.
func mapLogLevel(level logrus.Level) otellog.Severity {
	switch level {
	case logrus.TraceLevel:
		return otellog.SeverityTrace
	case logrus.DebugLevel:
		return otellog.SeverityDebug
	case logrus.InfoLevel:
		return otellog.SeverityInfo
	case logrus.WarnLevel:
		return otellog.SeverityWarn
	case logrus.ErrorLevel:
		return otellog.SeverityError
	case logrus.FatalLevel, logrus.PanicLevel:
		return otellog.SeverityFatal
	default:
		return otellog.SeverityInfo
	}
}
