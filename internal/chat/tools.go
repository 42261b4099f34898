package chat

import (
	"github.com/openai/openai-go/v2"
)

// Tool names form a closed set; dispatch is a single switch in router.go and
// every tool has a typed argument struct below.
const (
	toolGetConditions        = "get_surfing_conditions"
	toolGetConditionsForDate = "get_surfing_conditions_for_date"
	toolGeocodeCity          = "geocode_city"
	toolGetSafetyAssessment  = "get_safety_assessment"
	toolGetMarineWeather     = "get_marine_weather"
	toolCompareCities        = "compare_surfing_cities"
)

type conditionsArgs struct {
	CityName string `json:"city_name"`
}

type conditionsForDateArgs struct {
	CityName  string `json:"city_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type geocodeArgs struct {
	CityName string `json:"city_name"`
}

type safetyArgs struct {
	CityName  string `json:"city_name"`
	UserQuery string `json:"user_query"`
}

type marineWeatherArgs struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

type compareArgs struct {
	CityNames []string `json:"city_names"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
}

// toolDefinitions declares the callable tools the model can select from.
func toolDefinitions() []openai.ChatCompletionToolUnionParam {
	return []openai.ChatCompletionToolUnionParam{
		openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        toolGetConditions,
			Description: openai.String("Get current surfing conditions for a specific city including wave height, period, swell data, and quality score"),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"city_name": map[string]any{
						"type":        "string",
						"description": "The name of the city to get surfing conditions for (e.g., 'San Diego', 'Las Palmas de Gran Canaria')",
					},
				},
				"required": []string{"city_name"},
			},
		}),
		openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        toolGetConditionsForDate,
			Description: openai.String("Get surfing conditions for a specific date or date range. Use this when users ask about specific dates like 'October 1st 2025' or 'best surfing hour on October 1st'"),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"city_name": map[string]any{
						"type":        "string",
						"description": "The name of the city to get surfing conditions for",
					},
					"start_date": map[string]any{
						"type":        "string",
						"description": "Start date in YYYY-MM-DD format (e.g., '2025-10-01')",
					},
					"end_date": map[string]any{
						"type":        "string",
						"description": "End date in YYYY-MM-DD format (optional, defaults to start_date if not provided)",
					},
				},
				"required": []string{"city_name", "start_date"},
			},
		}),
		openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        toolGeocodeCity,
			Description: openai.String("Get latitude and longitude coordinates for a city name"),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"city_name": map[string]any{
						"type":        "string",
						"description": "The name of the city to geocode",
					},
				},
				"required": []string{"city_name"},
			},
		}),
		openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        toolGetSafetyAssessment,
			Description: openai.String("Get safety assessment for surfing conditions based on user experience level. Use this when users ask about safety or mention their experience level."),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"city_name": map[string]any{
						"type":        "string",
						"description": "The name of the city to assess safety for",
					},
					"user_query": map[string]any{
						"type":        "string",
						"description": "The original user query to extract experience level from",
					},
				},
				"required": []string{"city_name", "user_query"},
			},
		}),
		openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        toolGetMarineWeather,
			Description: openai.String("Get raw marine weather data for specific coordinates and optional date range"),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"latitude": map[string]any{
						"type":        "number",
						"description": "Latitude coordinate",
					},
					"longitude": map[string]any{
						"type":        "number",
						"description": "Longitude coordinate",
					},
					"start_date": map[string]any{
						"type":        "string",
						"description": "Start date in YYYY-MM-DD format (optional)",
					},
					"end_date": map[string]any{
						"type":        "string",
						"description": "End date in YYYY-MM-DD format (optional)",
					},
				},
				"required": []string{"latitude", "longitude"},
			},
		}),
		openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        toolCompareCities,
			Description: openai.String("Compare surfing conditions across multiple cities and provide a ranking. Use this when users want to compare or rank multiple surfing locations."),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"city_names": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "List of city names to compare (2-5 cities)",
					},
					"start_date": map[string]any{
						"type":        "string",
						"description": "Start date in YYYY-MM-DD format (optional)",
					},
					"end_date": map[string]any{
						"type":        "string",
						"description": "End date in YYYY-MM-DD format (optional)",
					},
				},
				"required": []string{"city_names"},
			},
		}),
	}
}
