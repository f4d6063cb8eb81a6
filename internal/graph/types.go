package graph

import (
	"strconv"

	"github.com/graph-gophers/graphql-go"

	"storefrontGraphQL/models"
)

func idOf(n int64) *graphql.ID {
	id := graphql.ID(strconv.FormatInt(n, 10))
	return &id
}

type taskResolver struct {
	t models.Task
}

func (r *taskResolver) ID() *graphql.ID { return idOf(r.t.ID) }
func (r *taskResolver) Title() string { return r.t.Title }
func (r *taskResolver) Description() string { return r.t.Description }
func (r *taskResolver) Number() *int32 { return r.t.Number }

type accountResolver struct {
	a models.Account
}

func (r *accountResolver) UserID() *graphql.ID { return idOf(r.a.UserID) }
func (r *accountResolver) Username() string { return r.a.Username }
func (r *accountResolver) Password() string { return r.a.Password }
func (r *accountResolver) Email() string { return r.a.Email }
func (r *accountResolver) CreatedOn() *DateTime { return newDateTime(r.a.CreatedOn) }
func (r *accountResolver) LastLogin() *DateTime { return newDateTime(r.a.LastLogin) }

type productResolver struct {
	p models.Product
}

func (r *productResolver) ProductID() *graphql.ID { return idOf(r.p.ProductID) }
func (r *productResolver) ProductName() string { return r.p.ProductName }
func (r *productResolver) Description() *string { return r.p.Description }
func (r *productResolver) Price() *float64 { return r.p.Price }

type saleResolver struct {
	s models.Sale
}

func (r *saleResolver) ProductName() string { return r.s.ProductName }
func (r *saleResolver) Price() *float64 { return r.s.Price }
func (r *saleResolver) Quantity() *float64 { return r.s.Quantity }

// Total is declared by the schema but never computed.
func (r *saleResolver) Total() *float64 { return r.s.Total }
