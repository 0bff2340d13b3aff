// Package server exposes the compression pipeline over HTTP, for
// visualizers that render the tree, code table, and encoded output.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	huffman "github.com/chronos-tachyon/huffman-tree"
	"github.com/chronos-tachyon/huffman-tree/internal/report"
	"github.com/chronos-tachyon/huffman-tree/internal/textinput"
)

// ErrorBody is the JSON body of every non-2xx response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CompressRequest is the JSON body of POST /v1/compress.
type CompressRequest struct {
	Text      string `json:"text"`
	Symbols   string `json:"symbols"`
	Normalize string `json:"normalize"`
	Trace     *bool  `json:"trace"`
}

// DefaultMaxBodyBytes is the request body limit used when
// Options.MaxBodyBytes is zero.
const DefaultMaxBodyBytes = 1 << 20

// Options configures the HTTP handler.
type Options struct {
	Logger *slog.Logger
	Shards int

	// MaxBodyBytes caps the size of request bodies.  Larger requests get
	// 413 BODY_TOO_LARGE.
	MaxBodyBytes int64
}

// New returns the HTTP handler.
func New(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = huffman.Logger()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(opts.Logger), limitBody(opts.MaxBodyBytes))

	ctrl := &compressController{shards: opts.Shards}
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		v1.POST("compress", ctrl.CompressHandler)
	}
	return router
}

type compressController struct {
	shards int
}

func (c *compressController) CompressHandler(ctx *gin.Context) {
	var req CompressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			errorResponse(ctx, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE",
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		errorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETERS", err.Error())
		return
	}

	mode, err := textinput.ParseMode(req.Symbols)
	if err != nil {
		errorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETERS", err.Error())
		return
	}
	normalization, err := textinput.ParseNormalization(req.Normalize)
	if err != nil {
		errorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETERS", err.Error())
		return
	}

	r, err := report.Generate(ctx.Request.Context(), req.Text, report.Options{
		Options: textinput.Options{Mode: mode, Normalization: normalization},
		Shards:  c.shards,
		Trace:   req.Trace == nil || *req.Trace,
	})
	switch {
	case errors.Is(err, huffman.ErrEmptyInput):
		errorResponse(ctx, http.StatusUnprocessableEntity, "EMPTY_INPUT", "nothing to compress: the input text is empty")
		return
	case err != nil:
		errorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, r)
}

func errorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.AbortWithStatusJSON(status, ErrorBody{Code: code, Message: message})
}

func limitBody(limit int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.ContentLength > limit {
			errorResponse(ctx, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE",
				fmt.Sprintf("request body exceeds %d bytes", limit))
			return
		}
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)
		ctx.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		logger.Info("http request",
			slog.String("method", ctx.Request.Method),
			slog.String("path", ctx.Request.URL.Path),
			slog.Int("status", ctx.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)))
	}
}

// ListenAndServe serves handler on addr until ctx is done, then shuts down
// gracefully, waiting at most shutdownTimeout for requests in flight.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
