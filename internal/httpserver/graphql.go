package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/dgraph-io/gqlparser/v2/ast"
	"github.com/dgraph-io/gqlparser/v2/parser"
	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"storefrontGraphQL/internal/logging"
)

const maxBodyBytes = 1 << 20

type graphqlParams struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// graphqlHandler executes GraphQL over HTTP. GET takes query, operationName and variables
// from the URL; POST takes a JSON body or, with Content-Type application/graphql, the raw query.
type graphqlHandler struct {
	schema   *graphql.Schema
	graphiql bool
	logger   *zap.Logger
}

func (h *graphqlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var params graphqlParams
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		q := r.URL.Query()
		if h.graphiql && q.Get("query") == "" && acceptsHTML(r) {
			serveGraphiQL(w)
			return
		}
		params.Query = q.Get("query")
		params.OperationName = q.Get("operationName")
		if v := q.Get("variables"); v != "" {
			if err := json.Unmarshal([]byte(v), &params.Variables); err != nil {
				writeGraphQLError(w, http.StatusBadRequest, "variables are invalid JSON")
				return
			}
		}
	case http.MethodPost:
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeGraphQLError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeGraphQLError(w, http.StatusBadRequest, "failed to read request body")
			return
		}
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType == "application/graphql" {
			params.Query = string(body)
		} else if err := json.Unmarshal(body, &params); err != nil {
			logging.FromContext(r.Context(), h.logger).Debug("rejecting graphql body", zap.Error(err))
			writeGraphQLError(w, http.StatusBadRequest, "body must be a JSON object with a query")
			return
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		writeGraphQLError(w, http.StatusMethodNotAllowed, "GraphQL only supports GET and POST requests")
		return
	}

	if strings.TrimSpace(params.Query) == "" {
		writeGraphQLError(w, http.StatusBadRequest, "must provide query string")
		return
	}
	if r.Method != http.MethodPost && selectsMutation(params.Query, params.OperationName) {
		w.Header().Set("Allow", "POST")
		writeGraphQLError(w, http.StatusMethodNotAllowed, "Can only perform a mutation operation from a POST request")
		return
	}

	resp := h.schema.Exec(r.Context(), params.Query, params.OperationName, params.Variables)
	status := http.StatusOK
	// No data at all means the document was rejected before execution.
	if len(resp.Data) == 0 && len(resp.Errors) > 0 {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, resp)
}

// selectsMutation reports whether the operation that would run is a mutation.
// Documents that do not parse are left for the schema to reject.
func selectsMutation(query, operationName string) bool {
	doc, gqlErr := parser.ParseQuery(&ast.Source{Input: query})
	if gqlErr != nil {
		return false
	}
	op := doc.Operations.ForName(operationName)
	return op != nil && op.Operation == ast.Mutation
}

func writeGraphQLError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"errors": []map[string]string{{"message": msg}},
	})
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
