package graph

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"storefrontGraphQL/internal/logging"
	"storefrontGraphQL/internal/metrics"
	"storefrontGraphQL/models"
	"storefrontGraphQL/repository"
)

// Deps are the collaborators of the root resolver.
type Deps struct {
	Accounts repository.AccountRepositoryI
	Products repository.ProductRepositoryI
	Sales    repository.SaleRepositoryI
	Tasks    repository.TaskStore
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	accounts repository.AccountRepositoryI
	products repository.ProductRepositoryI
	sales    repository.SaleRepositoryI
	tasks    repository.TaskStore
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

func NewResolver(d Deps) *Resolver {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		accounts: d.Accounts,
		products: d.Products,
		sales:    d.Sales,
		tasks:    d.Tasks,
		logger:   logger,
		metrics:  d.Metrics,
	}
}

// TaskInput is the createTask argument.
type TaskInput struct {
	Title       string
	Description string
	Number      *int32
}

// AccountInput is the createAccount argument.
type AccountInput struct {
	Username  string
	Password  string
	Email     string
	CreatedOn *DateTime
	LastLogin *DateTime
}

func (r *Resolver) Hello() *string {
	s := "Hello World with GraphQL"
	return &s
}

func (r *Resolver) Greet(args struct{ Name string }) *string {
	s := fmt.Sprintf("Hello %s!", args.Name)
	return &s
}

func (r *Resolver) Tasks(ctx context.Context) (*[]*taskResolver, error) {
	list, err := r.tasks.List(ctx)
	if err != nil {
		return nil, r.storeError(ctx, "tasks", err)
	}
	out := make([]*taskResolver, 0, len(list))
	for _, t := range list {
		out = append(out, &taskResolver{t: t})
	}
	return &out, nil
}

func (r *Resolver) Accounts(ctx context.Context) (*[]*accountResolver, error) {
	list, err := r.accounts.List(ctx)
	if err != nil {
		return nil, r.storeError(ctx, "accounts", err)
	}
	out := make([]*accountResolver, 0, len(list))
	for _, a := range list {
		out = append(out, &accountResolver{a: a})
	}
	return &out, nil
}

func (r *Resolver) Products(ctx context.Context) (*[]*productResolver, error) {
	list, err := r.products.List(ctx)
	if err != nil {
		return nil, r.storeError(ctx, "products", err)
	}
	out := make([]*productResolver, 0, len(list))
	for _, p := range list {
		out = append(out, &productResolver{p: p})
	}
	return &out, nil
}

func (r *Resolver) SalesProd(ctx context.Context) (*[]*saleResolver, error) {
	list, err := r.sales.ListWithProduct(ctx)
	if err != nil {
		return nil, r.storeError(ctx, "salesProd", err)
	}
	out := make([]*saleResolver, 0, len(list))
	for _, s := range list {
		out = append(out, &saleResolver{s: s})
	}
	return &out, nil
}

// CreateTask stores the task under the next sequential ID and returns it.
func (r *Resolver) CreateTask(ctx context.Context, args struct{ Input *TaskInput }) (*taskResolver, error) {
	if args.Input == nil {
		return nil, &Error{Code: CodeBadUserInput, Message: "createTask: input is required"}
	}
	t, err := r.tasks.Create(ctx, models.Task{
		Title:       args.Input.Title,
		Description: args.Input.Description,
		Number:      args.Input.Number,
	})
	if err != nil {
		return nil, r.storeError(ctx, "createTask", err)
	}
	return &taskResolver{t: *t}, nil
}

// CreateAccount inserts the account and returns the persisted row, including the
// database generated user_id.
func (r *Resolver) CreateAccount(ctx context.Context, args struct{ Input *AccountInput }) (*accountResolver, error) {
	in := args.Input
	if in == nil {
		return nil, &Error{Code: CodeBadUserInput, Message: "createAccount: input is required"}
	}
	a, err := r.accounts.Create(ctx, &models.Account{
		Username:  in.Username,
		Password:  in.Password,
		Email:     in.Email,
		CreatedOn: timeOf(in.CreatedOn),
		LastLogin: timeOf(in.LastLogin),
	})
	if err != nil {
		return nil, r.storeError(ctx, "createAccount", err)
	}
	logging.FromContext(ctx, r.logger).Info("account created", zap.Int64("user_id", a.UserID))
	return &accountResolver{a: *a}, nil
}

// storeError logs a data store failure and converts it into a GraphQL error that does not
// expose driver details to the client.
func (r *Resolver) storeError(ctx context.Context, field string, err error) error {
	logging.FromContext(ctx, r.logger).Error("resolver failed", zap.String("field", field), zap.Error(err))
	r.metrics.ResolverError(field)
	return &Error{Code: CodeDatabase, Message: field + ": data store unavailable", Err: err}
}

func timeOf(d *DateTime) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
