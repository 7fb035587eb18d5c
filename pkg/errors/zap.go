package errors

import "go.uber.org/zap"

// ZapHandler forwards reported errors to a zap logger.
type ZapHandler struct {
	Logger *zap.Logger
}

// HandleError logs err at error level with its kind and operation.
func (h *ZapHandler) HandleError(err *Error) {
	if err == nil || h.Logger == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Selector != "" {
		fields = append(fields, zap.String("selector", err.Selector))
	}
	h.Logger.Error("host binding error", fields...)
}

// HandlePanic logs a recovered panic at error level.
func (h *ZapHandler) HandlePanic(err *PanicError) {
	if err == nil || h.Logger == nil {
		return
	}
	h.Logger.Error("recovered panic",
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
		zap.String("stack", err.StackTrace),
	)
}
