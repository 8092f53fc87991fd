package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	lserrors "github.com/YuminosukeSato/linsys/pkg/errors"
)

// ErrFmtHandler is a slog handler that expands errors logged under
// ErrAttrKey: it adds the cockroachdb stack trace and a stable error code.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps a slog handler with ErrFmtHandler.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{
		handler: handler,
	}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var logged error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ErrAttrKey {
			if err, ok := attr.Value.Any().(error); ok {
				logged = err
			}
			return false
		}
		return true
	})

	if logged != nil {
		if stacktrace := extractStacktrace(logged); stacktrace != "" {
			r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
		}
		if code := ErrorCode(logged); code != "" {
			r.AddAttrs(slog.String(ErrorCodeKey, code))
		}
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

// ErrorCode maps solver errors to the ErrorXxx codes. Unknown errors map to "".
func ErrorCode(err error) string {
	var shapeErr *lserrors.ShapeError
	var dimErr *lserrors.DimensionError
	var validationErr *lserrors.ValidationError
	switch {
	case errors.As(err, &shapeErr), errors.As(err, &dimErr):
		return ErrorShapeMismatch
	case errors.Is(err, lserrors.ErrNoUniqueSolution):
		return ErrorNoUniqueSol
	case errors.As(err, &validationErr):
		return ErrorInvalidInput
	}
	return ""
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
