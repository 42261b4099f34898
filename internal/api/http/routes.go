package httpapi

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/surfwatch/surfcast/internal/chat"
	"github.com/surfwatch/surfcast/internal/store"
	"github.com/surfwatch/surfcast/internal/surf"
)

var validate = validator.New()

// Chatter answers one free-text message; satisfied by *chat.Router.
type Chatter interface {
	Chat(ctx context.Context, userInput string) (chat.Reply, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *surf.Service, router Chatter, reports *store.MemoryStore) {
	v1 := app.Group("/api/v1")

	v1.Post("/chat", func(c *fiber.Ctx) error {
		if router == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "chat is not configured; set OPENAI_API_KEY")
		}

		var req chatRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		req.Message = strings.TrimSpace(req.Message)
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "message is required")
		}

		reply, err := router.Chat(c.Context(), req.Message)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "chat service unavailable")
		}

		return c.JSON(fiber.Map{
			"id":       reply.ID,
			"response": reply.Message,
			"status":   "success",
		})
	})

	v1.Get("/surf/conditions", func(c *fiber.Ctx) error {
		var req conditionsQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		analysis, err := service.GetConditionsForDate(c.Context(), req.Location, req.StartDate, req.EndDate)
		if err != nil {
			return mapSurfError(err)
		}

		return c.JSON(fiber.Map{
			"location": req.Location,
			"analysis": analysis,
		})
	})

	v1.Get("/surf/safety", func(c *fiber.Ctx) error {
		var req safetyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		analysis, assessment, err := service.GetSafety(c.Context(), req.Location, req.Query)
		if err != nil {
			return mapSurfError(err)
		}

		return c.JSON(fiber.Map{
			"location":   req.Location,
			"conditions": analysis.Current,
			"assessment": assessment,
		})
	})

	v1.Get("/surf/compare", func(c *fiber.Ctx) error {
		var req compareQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		cmp, err := service.CompareCities(c.Context(), req.Locations, surf.FetchOptions{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			return mapSurfError(err)
		}

		return c.JSON(cmp)
	})

	v1.Get("/surf/latest", func(c *fiber.Ctx) error {
		spot := c.Query("spot")
		if spot == "" {
			return fiber.NewError(fiber.StatusBadRequest, "spot query parameter is required")
		}

		report, err := reports.GetLatest(spot)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no stored report for requested spot")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load stored report")
		}

		return c.JSON(report)
	})
}

// mapSurfError translates the pipeline's error taxonomy to HTTP statuses.
func mapSurfError(err error) error {
	switch {
	case errors.Is(err, surf.ErrLocationNotFound):
		return fiber.NewError(fiber.StatusNotFound, "location could not be geocoded")
	case errors.Is(err, surf.ErrNoData):
		return fiber.NewError(fiber.StatusNotFound, "no hourly data for requested location")
	case errors.Is(err, surf.ErrCityCount):
		return fiber.NewError(fiber.StatusBadRequest, surf.ErrCityCount.Error())
	case errors.Is(err, surf.ErrUnavailable):
		return fiber.NewError(fiber.StatusBadGateway, "marine weather provider unavailable")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to analyze surf conditions")
	}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

// conditionsQuery holds query parameters for the conditions endpoint.
type conditionsQuery struct {
	Location  string `validate:"required"`
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
}

func (q *conditionsQuery) bind(c *fiber.Ctx) error {
	q.Location = c.Query("location")
	q.StartDate = c.Query("start_date")
	q.EndDate = c.Query("end_date")
	return validate.Struct(q)
}

// safetyQuery holds query parameters for the safety endpoint. Query carries
// the free text the experience classifier scans.
type safetyQuery struct {
	Location string `validate:"required"`
	Query    string
}

func (q *safetyQuery) bind(c *fiber.Ctx) error {
	q.Location = c.Query("location")
	q.Query = c.Query("query")
	return validate.Struct(q)
}

// compareQuery holds query parameters for the comparison endpoint.
type compareQuery struct {
	Locations []string `validate:"required,min=2,max=5"`
	StartDate string   `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string   `validate:"omitempty,datetime=2006-01-02"`
}

func (q *compareQuery) bind(c *fiber.Ctx) error {
	raw := c.Query("locations")
	for _, loc := range strings.Split(raw, ",") {
		if loc = strings.TrimSpace(loc); loc != "" {
			q.Locations = append(q.Locations, loc)
		}
	}
	q.StartDate = c.Query("start_date")
	q.EndDate = c.Query("end_date")
	return validate.Struct(q)
}
