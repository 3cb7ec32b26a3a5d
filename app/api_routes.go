package app

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rocketcandle/docs"
	"rocketcandle/x/rocketfuel/types"
)

// NewAPIHandler returns the read-only HTTP API of the node.
func (app *App) NewAPIHandler() http.Handler {
	router := mux.NewRouter()
	app.RegisterAPIRoutes(router)
	docs.RegisterOpenAPIService(Name, router)

	var h http.Handler = router
	if app.cfg.API.EnableCORS {
		h = handlers.CORS(
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
			handlers.AllowedOrigins([]string{"*"}),
		)(h)
	}
	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(false))(h)
}

// RegisterAPIRoutes mounts the rocketfuel query routes under /rocketfuel.
func (app *App) RegisterAPIRoutes(router *mux.Router) {
	r := router.PathPrefix("/" + types.ModuleName).Subrouter()
	r.Use(jsonContentType)

	r.HandleFunc("/params", app.queryHandler(func(ctx context.Context, qs types.QueryServer, _ *http.Request) (any, error) {
		return qs.Params(ctx, &types.QueryParamsRequest{})
	})).Methods(http.MethodGet)

	r.HandleFunc("/week", app.queryHandler(func(ctx context.Context, qs types.QueryServer, _ *http.Request) (any, error) {
		return qs.CurrentWeek(ctx, &types.QueryCurrentWeekRequest{})
	})).Methods(http.MethodGet)

	r.HandleFunc("/leaderboard/{week:[0-9]+}", app.queryHandler(func(ctx context.Context, qs types.QueryServer, req *http.Request) (any, error) {
		week, err := strconv.ParseUint(mux.Vars(req)["week"], 10, 64)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid week")
		}
		limit, err := uintParam(req, "limit", 32)
		if err != nil {
			return nil, err
		}
		return qs.TopScores(ctx, &types.QueryTopScoresRequest{WeekID: week, Limit: uint32(limit)})
	})).Methods(http.MethodGet)

	r.HandleFunc("/players/{address}/stats", app.queryHandler(func(ctx context.Context, qs types.QueryServer, req *http.Request) (any, error) {
		return qs.PlayerStats(ctx, &types.QueryPlayerStatsRequest{Player: mux.Vars(req)["address"]})
	})).Methods(http.MethodGet)

	r.HandleFunc("/players/{address}/history", app.queryHandler(func(ctx context.Context, qs types.QueryServer, req *http.Request) (any, error) {
		offset, err := uintParam(req, "offset", 64)
		if err != nil {
			return nil, err
		}
		limit, err := uintParam(req, "limit", 64)
		if err != nil {
			return nil, err
		}
		return qs.PlayerHistory(ctx, &types.QueryPlayerHistoryRequest{
			Player: mux.Vars(req)["address"],
			Offset: offset,
			Limit:  limit,
		})
	})).Methods(http.MethodGet)

	r.HandleFunc("/balances/{address}", app.queryHandler(func(ctx context.Context, qs types.QueryServer, req *http.Request) (any, error) {
		return qs.Balance(ctx, &types.QueryBalanceRequest{Address: mux.Vars(req)["address"]})
	})).Methods(http.MethodGet)

	r.HandleFunc("/supply", app.queryHandler(func(ctx context.Context, qs types.QueryServer, _ *http.Request) (any, error) {
		return qs.Supply(ctx, &types.QuerySupplyRequest{})
	})).Methods(http.MethodGet)

	r.HandleFunc("/state", app.queryHandler(func(ctx context.Context, qs types.QueryServer, _ *http.Request) (any, error) {
		return qs.OperationalState(ctx, &types.QueryOperationalStateRequest{})
	})).Methods(http.MethodGet)

	r.HandleFunc("/reward", app.queryHandler(func(ctx context.Context, qs types.QueryServer, req *http.Request) (any, error) {
		score, err := uintParam(req, "score", 64)
		if err != nil {
			return nil, err
		}
		level, err := uintParam(req, "level", 64)
		if err != nil {
			return nil, err
		}
		return qs.PreviewReward(ctx, &types.QueryPreviewRewardRequest{Score: score, Level: level})
	})).Methods(http.MethodGet)
}

type queryFunc func(ctx context.Context, qs types.QueryServer, req *http.Request) (any, error)

func (app *App) queryHandler(fn queryFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var res any
		err := app.Query(r.Context(), func(ctx context.Context, qs types.QueryServer) error {
			var err error
			res, err = fn(ctx, qs, r)
			return err
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeRawJSON(w, http.StatusOK, res)
	}
}

func uintParam(r *http.Request, name string, bits int) (uint64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, status.Errorf(codes.InvalidArgument, "invalid %s", name)
	}
	return v, nil
}

// writeError mirrors the grpc-gateway error payload.
func writeError(w http.ResponseWriter, err error) {
	st, ok := status.FromError(err)
	if !ok {
		st = status.New(codes.Internal, err.Error())
	}
	writeRawJSON(w, runtime.HTTPStatusFromCode(st.Code()), map[string]any{
		"code":    int32(st.Code()),
		"message": st.Message(),
		"details": []any{},
	})
}

func writeRawJSON(w http.ResponseWriter, code int, obj any) {
	bz, err := json.Marshal(obj)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(code)
	_, _ = w.Write(bz)
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
