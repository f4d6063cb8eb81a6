package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"storefrontGraphQL/internal/logging"
	"storefrontGraphQL/internal/metrics"
	"storefrontGraphQL/repository"
)

// Deps are the collaborators of the HTTP routes.
type Deps struct {
	Schema   *graphql.Schema
	Accounts repository.AccountRepositoryI
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	GraphiQL bool
}

// NewRouter mounts the GraphQL endpoint, the REST listing and the metrics exposition.
func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	mux := http.NewServeMux()
	mux.Handle("GET /{$}", instrument(d.Metrics, "/", http.HandlerFunc(handleRoot)))
	mux.Handle("/graphql", instrument(d.Metrics, "/graphql", &graphqlHandler{
		schema:   d.Schema,
		graphiql: d.GraphiQL,
		logger:   d.Logger,
	}))
	mux.Handle("GET /accounts", instrument(d.Metrics, "/accounts", accountsHandler(d.Accounts, d.Logger)))
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics.Handler())
	}
	return recoverer(d.Logger, requestID(d.Logger, accessLog(d.Logger, mux)))
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

// accountsHandler lists the username and email of every account.
func accountsHandler(accounts repository.AccountRepositoryI, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		list, err := accounts.ListContacts(r.Context())
		if err != nil {
			logging.FromContext(r.Context(), logger).Error("list accounts", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list accounts"})
			return
		}
		writeJSON(w, http.StatusOK, list)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
