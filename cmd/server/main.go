package main

import (
	"log"

	"github.com/chesshouse/backend/internal/controller"
	"github.com/chesshouse/backend/internal/middleware"
	"github.com/chesshouse/backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         []string{"http://localhost:5173"},
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/matchmaking/join", gameController.JoinMatchmaking)
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)

	log.Fatal(app.Listen(":3000"))
}
