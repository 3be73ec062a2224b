// Package server exposes game sessions over HTTP and websockets.
package server

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/service"
)

// Options configures New.
type Options struct {
	// RequestLog receives one line per request; nil disables it.
	RequestLog io.Writer
}

// createRequest is the optional body of POST /games.
type createRequest struct {
	FEN string `json:"fen"`
}

// moveRequest is the body of POST /games/:id/moves.
type moveRequest struct {
	Move string `json:"move"`
}

type handlers struct {
	games *service.Manager
}

// New builds the fiber app serving games.
//
//	POST   /games              new game, optional {"fen": "..."}
//	GET    /games              stored game ids
//	GET    /games/:id          snapshot
//	DELETE /games/:id          drop a game
//	POST   /games/:id/moves    {"move": "Nf3"}
//	GET    /ws/games/:id       websocket, one command per text frame
func New(games *service.Manager, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "chessrules",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	if opts.RequestLog != nil {
		app.Use(logger.New(logger.Config{Output: opts.RequestLog}))
	}

	h := &handlers{games: games}

	app.Post("/games", h.create)
	app.Get("/games", h.list)
	app.Get("/games/:id", h.get)
	app.Delete("/games/:id", h.remove)
	app.Post("/games/:id/moves", h.move)
	app.Get("/games/:id/targets/:square", h.targets)

	app.Use("/ws", upgradeOnly)
	app.Get("/ws/games/:id", websocket.New(h.stream))

	return app
}

// upgradeOnly rejects plain HTTP requests to websocket routes.
func upgradeOnly(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *handlers) create(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fiber.StatusBadRequest, err)
		}
	}

	snap, err := h.games.Create(req.FEN)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidFEN) {
			return fail(c, fiber.StatusBadRequest, err)
		}
		return fail(c, fiber.StatusInternalServerError, err)
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

func (h *handlers) list(c *fiber.Ctx) error {
	ids, err := h.games.List()
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(fiber.Map{"games": ids})
}

func (h *handlers) get(c *fiber.Ctx) error {
	snap, err := h.games.Get(c.Params("id"))
	if err != nil {
		return fail(c, statusOf(err), err)
	}
	return c.JSON(snap)
}

func (h *handlers) remove(c *fiber.Ctx) error {
	if err := h.games.Delete(c.Params("id")); err != nil {
		return fail(c, fiber.StatusInternalServerError, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *handlers) move(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	snap, err := h.games.Play(c.Params("id"), req.Move)
	if err != nil {
		status := statusOf(err)
		if status == fiber.StatusUnprocessableEntity {
			return c.Status(status).JSON(snap)
		}
		return fail(c, status, err)
	}
	return c.JSON(snap)
}

func (h *handlers) targets(c *fiber.Ctx) error {
	square := c.Params("square")
	targets, err := h.games.Targets(c.Params("id"), square)
	if err != nil {
		return fail(c, statusOf(err), err)
	}
	return c.JSON(fiber.Map{"square": square, "targets": targets})
}

// stream plays each text frame as a command and answers with the
// snapshot. Rejections are reported in the snapshot and keep the
// connection open.
func (h *handlers) stream(conn *websocket.Conn) {
	id := conn.Params("id")

	snap, err := h.games.Get(id)
	if err != nil {
		_ = conn.WriteJSON(fiber.Map{"error": errors.Message(err)})
		_ = conn.Close()
		return
	}
	if err := conn.WriteJSON(snap); err != nil {
		return
	}

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			log.Debugf("game %s: websocket closed: %v", id, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		snap, err := h.games.Play(id, string(message))
		var reply interface{} = snap
		if err != nil && statusOf(err) != fiber.StatusUnprocessableEntity {
			reply = fiber.Map{"error": errors.Message(err)}
		}
		if err := conn.WriteJSON(reply); err != nil {
			log.Warnf("game %s: websocket write: %v", id, err)
			return
		}
	}
}

// statusOf maps a service error to an HTTP status.
func statusOf(err error) int {
	var me *errors.MoveError
	switch {
	case errors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errors.ErrInvalidSquare):
		return fiber.StatusBadRequest
	case errors.As(err, &me):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, status int, err error) error {
	if status >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{"error": errors.Message(err)})
}
