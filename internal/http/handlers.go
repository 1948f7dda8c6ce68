package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/navigation"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/service"
)

const requestIDKey = "requestid"

func Register(app *fiber.App, svcs *service.Services) {
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString, ContextKey: requestIDKey}))
	app.Use(logRequests)

	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Post("/login", func(c *fiber.Ctx) error {
		req, err := svcs.Screens.Login(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(navigated(req, navigation.MainTabs{}))
	})
	app.Post("/navigate", func(c *fiber.Ctx) error {
		var req navigation.Request
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		r, err := navigation.Parse(req)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(navigated(navigation.Encode(r), r))
	})

	g := app.Group("/screens")
	g.Get("dashboard", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Screens.Dashboard())
	})
	g.Get("sites", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Screens.Sites(c.Query("q"), c.Query("status")))
	})
	g.Get("sites/:id", func(c *fiber.Ctx) error {
		v := svcs.Screens.SiteDetails(c.Params("id"))
		return found(c, v.Found, v)
	})
	g.Get("assets/:id", func(c *fiber.Ctx) error {
		v := svcs.Screens.AssetDetails(c.Params("id"))
		return found(c, v.Found, v)
	})
	g.Get("assets/:id/maintenance/new", func(c *fiber.Ctx) error {
		v := svcs.Screens.UploadMaintenance(c.Params("id"))
		return found(c, v.Found, v)
	})
	g.Get("tickets", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Screens.Tickets(c.Query("q"), c.Query("status"), c.Query("priority")))
	})
	// registered before tickets/:id so "new" is not taken as an id
	g.Get("tickets/new", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Screens.CreateTicket(c.Query("site_id")))
	})
	g.Get("tickets/:id", func(c *fiber.Ctx) error {
		v := svcs.Screens.TicketDetails(c.Params("id"))
		return found(c, v.Found, v)
	})
	g.Get("statistics", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Screens.Statistics())
	})
	g.Get("profile", func(c *fiber.Ctx) error {
		v := svcs.Screens.Profile()
		return found(c, v.Found, v)
	})
}

type navigateResponse struct {
	navigation.Request
	Path string `json:"path"`
}

func navigated(req navigation.Request, r navigation.Route) navigateResponse {
	return navigateResponse{Request: req, Path: navigation.Path(r)}
}

// found renders the fallback view with 404 when the entity is missing.
func found(c *fiber.Ctx, ok bool, view any) error {
	if !ok {
		c.Status(fiber.StatusNotFound)
	}
	return c.JSON(view)
}

func logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	id, _ := c.Locals(requestIDKey).(string)
	log.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", status).
		Dur("latency", time.Since(start)).
		Str("request_id", id).
		Msg("request")
	return err
}
