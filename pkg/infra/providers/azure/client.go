package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/deepx/semspace/pkg/infra/providers"
)

const (
	defaultAPIVersion = "2024-02-15-preview"
	cognitiveScope    = "https://cognitiveservices.azure.com/.default"
	vendor            = "azure"
)

var ErrEndpointRequired = errors.New("azure endpoint is required")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	TopP        float64       `json:"top_p,omitempty"`
	Seed        int64         `json:"seed,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage providers.Usage `json:"usage"`
}

type client struct {
	httpClient *http.Client
	credential azcore.TokenCredential
	credOnce   sync.Once
	credErr    error
}

func NewAzureClient(httpClient *http.Client) providers.Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &client{httpClient: httpClient}
}

// newAzureClientWithCredential is used by tests to bypass the default
// credential chain.
func newAzureClientWithCredential(httpClient *http.Client, cred azcore.TokenCredential) *client {
	c := &client{httpClient: httpClient, credential: cred}
	c.credOnce.Do(func() {})
	return c
}

// Ask calls an Azure OpenAI chat deployment. config.Model is the deployment
// name. Authentication uses the api key unless Azure.UseIdentity is set, in
// which case an AAD token is obtained from the default credential chain.
func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	azure := config.Credentials.Azure
	if azure == nil || azure.Endpoint == "" {
		return nil, ErrEndpointRequired
	}
	if config.Model == "" {
		return nil, fmt.Errorf("%w: deployment name", providers.ErrModelRequired)
	}

	headerKey, headerValue := "api-key", config.Credentials.ApiKey
	if azure.UseIdentity {
		token, err := c.token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get Azure AD token: %w", err)
		}
		headerKey, headerValue = "Authorization", "Bearer "+token
	} else if headerValue == "" {
		return nil, fmt.Errorf("%w when not using Azure identity", providers.ErrAPIKeyRequired)
	}

	var messages []chatMessage
	if config.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: config.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	bodyBytes, err := json.Marshal(chatRequest{
		Messages:    messages,
		MaxTokens:   config.MaxTokens,
		Temperature: config.Temperature,
		TopP:        config.TopP,
		Seed:        config.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	apiVersion := azure.ApiVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(azure.Endpoint, "/"), config.Model, apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerKey, headerValue)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d: %s", providers.ErrNonOKResponse, resp.StatusCode, respBody)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, providers.ErrNoCompletion
	}

	id := parsed.ID
	if id == "" {
		id = providers.ResponseID(ctx, vendor)
	}
	model := parsed.Model
	if model == "" {
		model = config.Model
	}
	return &providers.CompletionResponse{
		ID:       id,
		Model:    model,
		Response: parsed.Choices[0].Message.Content,
		Usage:    parsed.Usage,
	}, nil
}

func (c *client) token(ctx context.Context) (string, error) {
	c.credOnce.Do(func() {
		c.credential, c.credErr = azidentity.NewDefaultAzureCredential(nil)
	})
	if c.credErr != nil {
		return "", fmt.Errorf("failed to create credential: %w", c.credErr)
	}
	token, err := c.credential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{cognitiveScope},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	return token.Token, nil
}
