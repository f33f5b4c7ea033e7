package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/dto"
)

// Recovery returns middleware that turns a handler panic into a logged stack
// trace and a 500 problem response. When the handler already started the
// response only the log entry is written. http.ErrAbortHandler is passed
// through so net/http can abort the connection quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := record(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				value, stack := v, debug.Stack()
				if hp, ok := v.(handlerPanic); ok {
					value, stack = hp.value, hp.stack
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(value)),
					slog.String("stack", string(stack)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !sr.Committed() {
					dto.WriteErrorResponse(sr, r, dto.ErrInternal)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
