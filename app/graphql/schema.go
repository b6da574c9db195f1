package graphql

import (
	"net/http"
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/ovenfresh/cookieshop/app/models"
	"github.com/ovenfresh/cookieshop/app/services"
	"github.com/ovenfresh/cookieshop/pkg/bind"
	"github.com/ovenfresh/cookieshop/pkg/logger"
	"github.com/ovenfresh/cookieshop/pkg/response"
)

// Handler serves a read-only GraphQL view of the catalogue at
// /api/graphql. Mutations stay on the REST routes where the admin
// authorization middleware lives.
type Handler struct {
	schema graphql.Schema
}

func NewHandler(service *services.CookieService) (*Handler, error) {
	nutritionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Nutrition",
		Fields: graphql.Fields{
			"calories": nutritionField("calories"),
			"protein":  nutritionField("protein"),
			"fat":      nutritionField("fat"),
			"carbs":    nutritionField("carbs"),
		},
	})

	cookieType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Cookie",
		Fields: graphql.Fields{
			"id":          {Type: graphql.NewNonNull(graphql.Int)},
			"name":        {Type: graphql.NewNonNull(graphql.String)},
			"description": {Type: graphql.String},
			"bgColor": {
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Cookie).BgColor, nil
				},
			},
			"image":  {Type: graphql.String},
			"rating": {Type: graphql.Float},
			"ratingCount": {
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Cookie).RatingCount, nil
				},
			},
			"stock": {Type: graphql.Int},
			"nutrition": {
				Type: nutritionType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Cookie).Nutrition, nil
				},
			},
			"allergens": {Type: graphql.NewList(graphql.String)},
			"topReviews": {
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Cookie).TopReviews, nil
				},
			},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"cookies": {
				Type: graphql.NewList(cookieType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return service.List()
				},
			},
			"cookie": {
				Type: cookieType,
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw, _ := p.Args["id"].(string)
					id, err := strconv.ParseUint(raw, 10, 64)
					if err != nil {
						return nil, nil
					}
					cookie, err := service.Get(uint(id))
					if err != nil {
						return nil, nil
					}
					return cookie, nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: query})
	if err != nil {
		return nil, err
	}
	return &Handler{schema: schema}, nil
}

// nutritionField resolves a single numeric key from the serialized
// nutrition map, absent keys resolving to null rather than erroring.
func nutritionField(key string) *graphql.Field {
	return &graphql.Field{
		Type: graphql.Float,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			m, ok := p.Source.(models.JSONMap)
			if !ok {
				return nil, nil
			}
			v, ok := m[key]
			if !ok {
				return nil, nil
			}
			return v, nil
		},
	}
}

// ServeHTTP handles POST /api/graphql.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}
	if err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Query == "" {
		response.Error(w, http.StatusBadRequest, "Query is required")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  body.Query,
		OperationName:  body.OperationName,
		VariableValues: body.Variables,
		Context:        r.Context(),
	})
	if len(result.Errors) > 0 {
		logger.WithCtx(r.Context()).Warn("graphql query errors", "errors", result.Errors)
	}

	response.OK(w, result)
}
