package nodes

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"google.golang.org/genai"

	"github.com/proraahi-core/server/internal/agent/composer"
	"github.com/proraahi-core/server/internal/agent/model"
	"github.com/proraahi-core/server/internal/agent/nlu"
	logx "github.com/proraahi-core/server/pkg/logger"
)

// ChatModelConfig holds the configuration for provider creation
type ChatModelConfig struct {
	APIKey     string
	BaseURL    string
	NLUConfig  *model.NLUModelConfig
	RespConfig *model.ResponseModelConfig
}

// Providers holds the NLU provider and the response generator, both backed by one
// Gemini client.
type Providers struct {
	NLU               *nlu.GeminiProvider
	Generator         *composer.ChatModelGenerator
	NLUModelName      string
	ResponseModelName string
}

// NewProviders creates the Gemini client, the JSON-mode NLU provider and the response
// chat model.
func NewProviders(ctx context.Context, config ChatModelConfig) (*Providers, error) {
	if config.NLUConfig == nil || config.RespConfig == nil {
		return nil, fmt.Errorf("model configs are required")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	chatModelResponse, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       config.RespConfig.Model,
		Temperature: &config.RespConfig.Temperature,
		MaxTokens:   &config.RespConfig.MaxTokens,
		ThinkingConfig: &genai.ThinkingConfig{
			IncludeThoughts: false,
			ThinkingBudget:  genai.Ptr(int32(1024)),
		},
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Response model")
		return nil, fmt.Errorf("error creating Response model: %w", err)
	}

	return &Providers{
		NLU:               nlu.NewGeminiProvider(client, *config.NLUConfig),
		Generator:         composer.NewChatModelGenerator(chatModelResponse, config.RespConfig.Model, config.RespConfig.Timeout),
		NLUModelName:      config.NLUConfig.Model,
		ResponseModelName: config.RespConfig.Model,
	}, nil
}
