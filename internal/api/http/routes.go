package httpapi

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/i474232898/weather-records/internal/store"
	"github.com/i474232898/weather-records/internal/weather"
)

// StatusText is served on GET /.
const StatusText = "Weather API is running. Use /api/weather"

// fetchFailedMessage is the only error text lookup callers ever see.
const fetchFailedMessage = "Failed to fetch weather data. Please try again."

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, records *weather.RecordService, lookup *weather.Service) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(StatusText)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		if err := records.Health(c.UserContext()); err != nil {
			log.Error().Err(err).Msg("store health check failed")
			status = "degraded"
		}
		return c.JSON(fiber.Map{
			"status":  status,
			"service": "weather-records",
		})
	})

	registerRecordRoutes(app.Group("/api/weather"), records)
	registerLookupRoutes(app.Group("/api/v1/weather"), lookup)
}

func registerRecordRoutes(r fiber.Router, records *weather.RecordService) {
	r.Post("/", func(c *fiber.Ctx) error {
		in, err := bindObservation(c)
		if err != nil {
			return err
		}

		obs, err := records.Create(c.UserContext(), in)
		if err != nil {
			return storageError(err)
		}
		return c.JSON(obs)
	})

	r.Get("/", func(c *fiber.Ctx) error {
		rows, err := records.List(c.UserContext())
		if err != nil {
			return storageError(err)
		}
		return c.JSON(rows)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		obs, err := records.Get(c.UserContext(), pathID(c))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Not found")
			}
			return storageError(err)
		}
		return c.JSON(obs)
	})

	r.Put("/:id", func(c *fiber.Ctx) error {
		in, err := bindObservation(c)
		if err != nil {
			return err
		}

		if err := records.Update(c.UserContext(), pathID(c), in); err != nil {
			return storageError(err)
		}
		return c.JSON(weather.UpdateEcho{ID: c.Params("id"), ObservationInput: in})
	})

	r.Delete("/:id", func(c *fiber.Ctx) error {
		n, err := records.Delete(c.UserContext(), pathID(c))
		if err != nil {
			return storageError(err)
		}
		return c.JSON(fiber.Map{"deleted": n})
	})
}

func registerLookupRoutes(r fiber.Router, lookup *weather.Service) {
	r.Get("/current", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		cur, err := lookup.Current(c.UserContext(), q.Location)
		if err != nil {
			return lookupError(err)
		}
		return c.JSON(cur)
	})

	r.Get("/forecast", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		f, err := lookup.Forecast(c.UserContext(), q.Location)
		if err != nil {
			return lookupError(err)
		}
		return c.JSON(f)
	})

	r.Get("/lookup", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := lookup.Lookup(c.UserContext(), q.Location)
		if err != nil {
			return lookupError(err)
		}
		return c.JSON(report)
	})
}

// bindObservation decodes a JSON body. A missing or non-JSON body yields
// an input with every field absent, which storage then judges.
func bindObservation(c *fiber.Ctx) (weather.ObservationInput, error) {
	var in weather.ObservationInput
	if len(c.Body()) == 0 || !c.Is("json") {
		return in, nil
	}
	if err := c.BodyParser(&in); err != nil {
		return in, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return in, nil
}

// pathID parses the :id parameter the way an INTEGER column compares with
// text: "7", " 7 " and "7.0" all name row 7. Anything else becomes 0, which
// no stored row ever has.
func pathID(c *fiber.Ctx) int64 {
	raw := strings.TrimSpace(c.Params("id"))
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id
	}

	// ParseFloat also takes hex, inf, nan and underscores; SQLite does not.
	if raw == "" || strings.ContainsAny(raw, "xXnNiI_") {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
		return 0
	}
	return int64(f)
}

func storageError(err error) error {
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}

func lookupError(err error) error {
	if errors.Is(err, weather.ErrLocationRequired) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return fiber.NewError(fiber.StatusBadGateway, fetchFailedMessage)
}

// locationQuery holds the query parameter identifying a search location.
type locationQuery struct {
	Location string `validate:"required"`
}

func parseLocationQuery(c *fiber.Ctx) (locationQuery, error) {
	q := locationQuery{Location: c.Query("location")}
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}
