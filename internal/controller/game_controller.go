package controller

import (
	"errors"

	"github.com/Arcify/4-player-chess-engine/internal/model"
	"github.com/Arcify/4-player-chess-engine/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

// ImportGame creates a game from a snapshot previously exported via
// GetSnapshot.
func (gc *GameController) ImportGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.ImportGame(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game imported",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return gameError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

// JoinMatchmaking enqueues the player. The game id and seat are delivered on
// the /ws/matchmaking socket, which also enqueues on connect; this route is
// kept for clients that queue up before opening the socket.
func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.JoinMatchmaking(playerID); err != nil {
		if errors.Is(err, model.ErrAlreadyQueued) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to join matchmaking",
		})
	}
	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	view, err := gc.gameService.GetGameView(c.Params("gameId"))
	if err != nil {
		return gameError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(view)
}

func (gc *GameController) GetStatus(c *fiber.Ctx) error {
	status, err := gc.gameService.GetGameStatus(c.Params("gameId"))
	if err != nil {
		return gameError(c, err)
	}
	return c.JSON(status)
}

// GetLegalMoves returns the legal moves from the square given by the x and y
// query parameters, for UI move hinting.
func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	pos := model.Position{
		X: c.QueryInt("x", -1),
		Y: c.QueryInt("y", -1),
	}
	moves, err := gc.gameService.GetLegalMoves(c.Params("gameId"), pos)
	if err != nil {
		return gameError(c, err)
	}
	if moves == nil {
		moves = []model.Move{}
	}
	return c.JSON(fiber.Map{
		"moves": moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var move model.WSMove
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move payload",
		})
	}
	if err := gc.gameService.HandleMove(gameID, playerID, move); err != nil {
		return gameError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Move played",
	})
}

func (gc *GameController) UndoMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.HandleUndo(gameID, playerID); err != nil {
		return gameError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Move undone",
	})
}

func (gc *GameController) GetSnapshot(c *fiber.Ctx) error {
	snapshot, err := gc.gameService.GetSnapshot(c.Params("gameId"))
	if err != nil {
		return gameError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(snapshot)
}

// gameError maps engine and registry errors onto HTTP statuses.
func gameError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, model.ErrIllegalMove),
		errors.Is(err, model.ErrInvalidPosition),
		errors.Is(err, model.ErrNoHistory):
		status = fiber.StatusBadRequest
	case errors.Is(err, model.ErrGameFinished):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
