package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction. The response is
// held back until the outcome is known: status >= 400 rolls back, anything else
// commits, and a failed commit is reported as 500 instead of the held response.
// Callbacks registered with AfterCommit run only once the commit succeeded;
// those registered with AfterRollback run when it did not.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := RequestIDFromContext(r.Context())

			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "request_id", reqID, "error", err)
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			hooks := &txHooks{}
			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					hooks.run(hooks.onRollback)
					panic(rec)
				}
			}()

			ctx := setTxToContext(r.Context(), tx, hooks)
			bw := &bufferedWriter{header: w.Header(), statusCode: http.StatusOK}

			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "request_id", reqID, "error", err)
				}
				hooks.run(hooks.onRollback)
				bw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "request_id", reqID, "error", err)
				hooks.run(hooks.onRollback)
				w.Header().Del("Content-Length")
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			hooks.run(hooks.onCommit)
			bw.flush(w)
		})
	}
}

// bufferedWriter holds a response in memory until flush.
type bufferedWriter struct {
	header      http.Header
	statusCode  int
	wroteHeader bool
	body        bytes.Buffer
}

func (bw *bufferedWriter) Header() http.Header { return bw.header }

func (bw *bufferedWriter) WriteHeader(code int) {
	if bw.wroteHeader {
		return
	}
	bw.statusCode = code
	bw.wroteHeader = true
}

func (bw *bufferedWriter) Write(b []byte) (int, error) { return bw.body.Write(b) }

func (bw *bufferedWriter) flush(w http.ResponseWriter) {
	w.WriteHeader(bw.statusCode)
	_, _ = w.Write(bw.body.Bytes())
}

// txHooks collects callbacks for one request. Handlers run on a single
// goroutine, so no locking.
type txHooks struct {
	onCommit   []func()
	onRollback []func()
}

func (h *txHooks) run(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

type hooksKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction and its hooks in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx, hooks *txHooks) context.Context {
	ctx = context.WithValue(ctx, txKey, tx)
	return context.WithValue(ctx, hooksKey{}, hooks)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// AfterCommit defers fn until the request transaction commits. Without a
// transaction in ctx, fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(hooksKey{}).(*txHooks)
	if !ok {
		fn()
		return
	}
	hooks.onCommit = append(hooks.onCommit, fn)
}

// AfterRollback registers fn to run if the request transaction does not
// commit. Without a transaction in ctx, fn is dropped.
func AfterRollback(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(hooksKey{}).(*txHooks)
	if !ok {
		return
	}
	hooks.onRollback = append(hooks.onRollback, fn)
}
