package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/surfwatch/surfcast/internal/render"
	"github.com/surfwatch/surfcast/internal/surf"
	"github.com/surfwatch/surfcast/pkg/log"
)

const systemPrompt = `You are a helpful surfing and weather assistant with safety expertise. You have access to real-time marine weather data through function calls.

Function Selection Guidelines:
- Use get_safety_assessment when users ask about safety ("is it safe?", "should I go out?") or mention their experience level ("beginner", "new to surfing", "experienced")
- Use get_surfing_conditions for general surf reports and conditions
- Use get_surfing_conditions_for_date for specific date queries
- Use compare_surfing_cities when users want to compare multiple locations ("compare", "which is better", "rank these cities", "best option between")

Always prioritize safety in your responses and encourage users to surf within their abilities. Be friendly, informative, and helpful.`

const followUpPrompt = "You are a helpful surfing assistant. Present the function results in a friendly, conversational way."

// Reply is the router's answer to one user message.
type Reply struct {
	ID      string `json:"id"`
	Message string `json:"response"`
}

// Router dispatches free-text queries to the surf pipeline through the
// model's tool selection, then asks the model to phrase the result.
type Router struct {
	client  openai.Client
	model   string
	service *surf.Service
}

// NewRouter creates a Router bound to a chat model and the surf service.
func NewRouter(apiKey, model string, service *surf.Service) *Router {
	return &Router{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		service: service,
	}
}

// Chat answers one user message. The first completion selects a tool (or
// answers directly); when a tool is called its text result is fed back for a
// second completion that produces the final reply.
func (r *Router) Chat(ctx context.Context, userInput string) (Reply, error) {
	reply := Reply{ID: uuid.NewString()}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userInput),
		},
		Tools:     toolDefinitions(),
		MaxTokens: openai.Int(1000),
	}

	completion, err := r.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return reply, fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return reply, fmt.Errorf("chat completion returned no choices")
	}

	msg := completion.Choices[0].Message
	if len(msg.ToolCalls) == 0 {
		reply.Message = msg.Content
		return reply, nil
	}

	toolCall := msg.ToolCalls[0]
	name := toolCall.Function.Name
	log.Infow("dispatching tool call", "request_id", reply.ID, "tool", name)

	result := r.dispatch(ctx, name, toolCall.Function.Arguments, userInput)

	followUp := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(followUpPrompt),
			openai.UserMessage(userInput),
			msg.ToParam(),
			openai.ToolMessage(result, toolCall.ID),
		},
		MaxTokens: openai.Int(1000),
	}

	final, err := r.client.Chat.Completions.New(ctx, followUp)
	if err != nil {
		return reply, fmt.Errorf("follow-up completion: %w", err)
	}
	if len(final.Choices) == 0 {
		return reply, fmt.Errorf("follow-up completion returned no choices")
	}

	reply.Message = final.Choices[0].Message.Content
	return reply, nil
}

// dispatch executes one tool call. Tool failures become descriptive text
// results rather than errors: the model is expected to relay them, and none
// of the pipeline's failure modes are fatal.
func (r *Router) dispatch(ctx context.Context, name, rawArgs, userInput string) string {
	switch name {
	case toolGetConditions:
		var args conditionsArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return "Invalid arguments for " + name
		}
		analysis, err := r.service.GetConditions(ctx, args.CityName)
		if err != nil {
			return conditionsErrorText(args.CityName, err)
		}
		return render.Conditions(args.CityName, analysis, surf.FetchOptions{})

	case toolGetConditionsForDate:
		var args conditionsForDateArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return "Invalid arguments for " + name
		}
		analysis, err := r.service.GetConditionsForDate(ctx, args.CityName, args.StartDate, args.EndDate)
		if err != nil {
			return conditionsErrorText(args.CityName, err)
		}
		end := args.EndDate
		if end == "" {
			end = args.StartDate
		}
		return render.Conditions(args.CityName, analysis, surf.FetchOptions{StartDate: args.StartDate, EndDate: end})

	case toolGeocodeCity:
		var args geocodeArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return "Invalid arguments for " + name
		}
		coords, err := r.service.Resolve(ctx, args.CityName)
		if err != nil {
			return "Could not find coordinates for " + args.CityName
		}
		return render.Coordinates(args.CityName, coords)

	case toolGetSafetyAssessment:
		var args safetyArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return "Invalid arguments for " + name
		}
		query := args.UserQuery
		if query == "" {
			query = userInput
		}
		analysis, assessment, err := r.service.GetSafety(ctx, args.CityName, query)
		if err != nil {
			return conditionsErrorText(args.CityName, err)
		}
		return render.Safety(args.CityName, analysis, assessment)

	case toolGetMarineWeather:
		var args marineWeatherArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return "Invalid arguments for " + name
		}
		coords := surf.Coordinates{Latitude: args.Latitude, Longitude: args.Longitude}
		data, err := r.service.FetchRaw(ctx, coords, surf.FetchOptions{StartDate: args.StartDate, EndDate: args.EndDate})
		if err != nil {
			return "Could not retrieve marine weather data"
		}
		raw, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "Could not retrieve marine weather data"
		}
		return "Marine weather data: " + string(raw)

	case toolCompareCities:
		var args compareArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return "Invalid arguments for " + name
		}
		cmp, err := r.service.CompareCities(ctx, args.CityNames, surf.FetchOptions{StartDate: args.StartDate, EndDate: args.EndDate})
		if err != nil {
			if errors.Is(err, surf.ErrCityCount) {
				if len(args.CityNames) < 2 {
					return "Please provide at least 2 cities to compare."
				}
				return "Please limit comparisons to 5 cities or fewer for better readability."
			}
			return "Could not compare the requested cities."
		}
		return render.Comparison(cmp)

	default:
		return "Unknown function called"
	}
}

// conditionsErrorText maps pipeline errors to the user-facing phrasing the
// follow-up completion relays.
func conditionsErrorText(city string, err error) string {
	switch {
	case errors.Is(err, surf.ErrLocationNotFound):
		return fmt.Sprintf("Sorry, I couldn't find the city '%s'. Please check the spelling and try again.", city)
	case errors.Is(err, surf.ErrNoData):
		return fmt.Sprintf("Sorry, I couldn't analyze the surfing conditions for %s.", city)
	default:
		return fmt.Sprintf("Sorry, I couldn't retrieve weather data for %s.", city)
	}
}
