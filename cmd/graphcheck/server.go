/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/sync/errgroup"

	"github.com/voedger/graphcheck/pkg/constraints"
	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

func newServeCmd(params *cliParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, params, func(ctx context.Context, app *wiredApp) error {
				return serve(ctx, app)
			})
		},
	}
	cmd.Flags().StringVar(&params.Overrides.Server.Addr, "addr", "", "Address to listen on")
	return cmd
}

// Serves until ctx is done, then shuts down gracefully
func serve(ctx context.Context, app *wiredApp) error {
	srv := &http.Server{
		Addr:              app.Config.Server.Addr,
		Handler:           newRouter(app),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening on", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newRouter(app *wiredApp) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc(routeCheck, app.handleCheck).Methods(http.MethodPost)
	r.HandleFunc(routeMigrate, app.handleMigrate).Methods(http.MethodPost)
	r.HandleFunc(routeConstraints, app.handleConstraints).Methods(http.MethodGet)
	r.Handle(routeMetrics, promhttp.HandlerFor(app.Prometheus, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return r
}

func (a *wiredApp) handleCheck(w http.ResponseWriter, req *http.Request) {
	body := checkRequest{}
	if err := readJSON(req, &body); err != nil {
		replyErr(w, err)
		return
	}
	res, err := a.check(req.Context(), body)
	if err != nil {
		replyErr(w, err)
		return
	}
	replyJSON(w, res, http.StatusOK)
}

func (a *wiredApp) handleMigrate(w http.ResponseWriter, req *http.Request) {
	body := migrateRequest{}
	if err := readJSON(req, &body); err != nil {
		replyErr(w, err)
		return
	}
	res, err := a.migrate(req.Context(), body)
	if err != nil {
		replyErr(w, err)
		return
	}
	replyJSON(w, res, http.StatusOK)
}

func (a *wiredApp) handleConstraints(w http.ResponseWriter, _ *http.Request) {
	replyJSON(w, a.Constraints.Names(), http.StatusOK)
}

func readJSON(req *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(req.Body, maxRequestBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return nil
}

func replyJSON(w http.ResponseWriter, data any, code int) {
	bb, err := json.Marshal(data)
	if err != nil {
		replyCommonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(code)
	writeResponse(w, bb)
}

func replyCommonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(code)
	writeResponse(w, []byte(fmt.Sprintf(`{"status":%d,"message":%q}`, code, msg)))
}

func replyErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, validators.ErrInvalidRequest),
		errors.Is(err, schema.ErrInvalidSchema),
		errors.Is(err, constraints.ErrUnsupportedConstraint):
		code = http.StatusBadRequest
	case errors.Is(err, graph.ErrBranchNotFound),
		errors.Is(err, schema.ErrSchemaNotFound):
		code = http.StatusNotFound
	}
	if code == http.StatusInternalServerError {
		logger.Error(err)
	}
	replyCommonError(w, err.Error(), code)
}

func writeResponse(w http.ResponseWriter, data []byte) {
	if _, err := w.Write(data); err != nil {
		logger.Error("failed to write response:", err)
	}
}
