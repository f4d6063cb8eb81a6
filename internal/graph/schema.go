// Package graph binds the GraphQL schema to the storefront repositories.
package graph

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

//go:embed schema.graphql
var schemaSDL string

// SDL returns the schema definition served by NewSchema.
func SDL() string { return schemaSDL }

// NewSchema parses the schema and binds it to r.
func NewSchema(r *Resolver, maxParallelism int) (*graphql.Schema, error) {
	opts := []graphql.SchemaOpt{
		graphql.Logger(panicLogger{logger: r.logger}),
	}
	if maxParallelism > 0 {
		opts = append(opts, graphql.MaxParallelism(maxParallelism))
	}
	schema, err := graphql.ParseSchema(schemaSDL, r, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL schema: %w", err)
	}
	return schema, nil
}

// panicLogger reports resolver panics recovered by the execution engine.
type panicLogger struct {
	logger *zap.Logger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.logger.Error("graphql: panic occurred", zap.Any("panic", value), zap.Stack("stack"))
}
