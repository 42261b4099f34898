package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	httpapi "github.com/surfwatch/surfcast/internal/api/http"
	"github.com/surfwatch/surfcast/internal/chat"
	"github.com/surfwatch/surfcast/internal/config"
	"github.com/surfwatch/surfcast/internal/render"
	"github.com/surfwatch/surfcast/internal/scheduler"
	"github.com/surfwatch/surfcast/internal/store"
	"github.com/surfwatch/surfcast/internal/surf"
	"github.com/surfwatch/surfcast/internal/surf/providers"
	"github.com/surfwatch/surfcast/pkg/log"
)

func main() {
	chatMode := flag.Bool("chat", false, "run the interactive chat loop instead of the HTTP server")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	defer log.Sync()

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Geocoding: Open-Meteo first, Google as fallback when a key is set.
	var resolver surf.Resolver = providers.NewGeocodingResolver(httpClient, cfg.GeoBaseURL)
	if cfg.GoogleAPIKey != "" {
		resolver = providers.NewFallbackResolver(resolver, providers.NewGoogleResolver(cfg.GoogleAPIKey))
	}

	fetcher := providers.NewMarineClient(httpClient, cfg.MarineBaseURL, cfg.Timezone, cfg.ForecastDays)
	service := surf.NewService(resolver, fetcher)

	var router *chat.Router
	if cfg.OpenAIAPIKey != "" {
		router = chat.NewRouter(cfg.OpenAIAPIKey, cfg.OpenAIModel, service)
	} else {
		log.Warnf("OPENAI_API_KEY not set; chat is disabled")
	}

	if *chatMode {
		runChatLoop(service, router)
		return
	}

	// In-memory report store with configured retention.
	reports := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Scheduler that periodically refreshes home spot reports.
	sched := scheduler.New(cfg.HomeSpots, cfg.RefreshInterval, service, reports)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "surfcast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":       "ok",
			"service":      "surfcast",
			"chat_enabled": router != nil,
		})
	})

	httpapi.RegisterRoutes(app, service, chatterOrNil(router), reports)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Errorf("fiber server stopped: %v", err)
		}
	}()
	log.Infof("surfcast listening on :%s", cfg.Port)

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("error during shutdown: %v", err)
	}
}

// chatterOrNil avoids handing the routes a typed nil wrapped in an interface.
func chatterOrNil(router *chat.Router) httpapi.Chatter {
	if router == nil {
		return nil
	}
	return router
}

// runChatLoop is the interactive terminal front end: one line in, one reply
// out, until quit. The "test" command checks provider connectivity.
func runChatLoop(service *surf.Service, router *chat.Router) {
	if router == nil {
		fmt.Println("Chat requires OPENAI_API_KEY to be set.")
		os.Exit(1)
	}

	sessionID := uuid.NewString()
	log.Infow("starting chat session", "session_id", sessionID)

	fmt.Println("Welcome to the Surfing Conditions Chatbot!")
	fmt.Println("Ask me about surfing conditions in any city!")
	fmt.Println("Type 'test' to test API calls, 'quit' to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "exit", "bye":
			fmt.Println("Thanks for using the Surfing Conditions Chatbot!")
			return
		case "test":
			runConnectivityTest(service)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		reply, err := router.Chat(ctx, input)
		cancel()

		if err != nil {
			fmt.Printf("Bot: Sorry, I encountered an error: %v\n\n", err)
			continue
		}
		fmt.Printf("Bot: %s\n\n", reply.Message)
	}
}

// runConnectivityTest exercises geocoding and the marine fetch against a
// known coastal city.
func runConnectivityTest(service *surf.Service) {
	const testCity = "San Diego"

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Printf("Testing with city: %s\n", testCity)

	coords, err := service.Resolve(ctx, testCity)
	if err != nil {
		fmt.Printf("Failed to geocode city: %s\n", testCity)
		return
	}
	fmt.Println(render.Coordinates(testCity, coords))

	data, err := service.FetchRaw(ctx, coords, surf.FetchOptions{})
	if err != nil {
		fmt.Println("Failed to retrieve marine weather data")
		return
	}
	fmt.Printf("Marine weather data retrieved: %d hourly data points\n", len(data.Time))
}
