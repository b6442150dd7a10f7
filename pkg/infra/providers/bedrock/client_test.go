package bedrock

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/deepx/semspace/pkg/infra/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type converseMock struct {
	mock.Mock
}

func (m *converseMock) Converse(ctx context.Context, params *bedrockruntime.ConverseInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockruntime.ConverseOutput) //nolint:errcheck
	return out, args.Error(1)
}

func newTestClient(runtime ConverseAPI) *client {
	return &client{
		clientPool: &sync.Map{},
		build: func(context.Context, *providers.AwsBedrockCredentials) (ConverseAPI, error) {
			return runtime, nil
		},
	}
}

func testConfig() *providers.Config {
	return &providers.Config{
		Model:       "meta.llama3-8b-instruct-v1:0",
		MaxTokens:   60,
		Temperature: 0.8,
		TopP:        0.95,
		Credentials: providers.Credentials{
			AwsBedrock: &providers.AwsBedrockCredentials{Region: "eu-west-1", AccessKey: "a", SecretKey: "s"},
		},
	}
}

func TestAsk(t *testing.T) {
	runtime := &converseMock{}
	runtime.On("Converse", mock.Anything, mock.MatchedBy(func(in *bedrockruntime.ConverseInput) bool {
		return aws.ToString(in.ModelId) == "meta.llama3-8b-instruct-v1:0" &&
			aws.ToInt32(in.InferenceConfig.MaxTokens) == 60 &&
			len(in.Messages) == 1
	})).Return(&bedrockruntime.ConverseOutput{
		Output: &types.ConverseOutputMemberMessage{Value: types.Message{
			Role:    types.ConversationRoleAssistant,
			Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: " foo\n- bar"}},
		}},
		Usage: &types.TokenUsage{InputTokens: aws.Int32(3), OutputTokens: aws.Int32(4), TotalTokens: aws.Int32(7)},
	}, nil)

	resp, err := newTestClient(runtime).Ask(context.Background(), testConfig(), "seed\n-")
	require.NoError(t, err)
	assert.Equal(t, " foo\n- bar", resp.Response)
	assert.Equal(t, 7, resp.Usage.TotalTokens)
	runtime.AssertExpectations(t)
}

func TestAsk_ReusesPooledClient(t *testing.T) {
	runtime := &converseMock{}
	runtime.On("Converse", mock.Anything, mock.Anything).Return(&bedrockruntime.ConverseOutput{
		Output: &types.ConverseOutputMemberMessage{Value: types.Message{
			Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: "x"}},
		}},
	}, nil)

	builds := 0
	c := &client{
		clientPool: &sync.Map{},
		build: func(context.Context, *providers.AwsBedrockCredentials) (ConverseAPI, error) {
			builds++
			return runtime, nil
		},
	}
	for i := 0; i < 3; i++ {
		_, err := c.Ask(context.Background(), testConfig(), "p")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, builds)
}

func TestAsk_Errors(t *testing.T) {
	_, err := newTestClient(nil).Ask(context.Background(), &providers.Config{}, "p")
	assert.ErrorIs(t, err, providers.ErrModelRequired)

	_, err = newTestClient(nil).Ask(context.Background(), &providers.Config{Model: "m"}, "p")
	assert.ErrorIs(t, err, ErrCredentialsRequired)

	runtime := &converseMock{}
	runtime.On("Converse", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))
	_, err = newTestClient(runtime).Ask(context.Background(), testConfig(), "p")
	assert.ErrorContains(t, err, "throttled")
}

func TestConverseInput_SystemPrompt(t *testing.T) {
	cfg := testConfig()
	cfg.SystemPrompt = "list ideas"
	in := converseInput(cfg, "p")
	require.Len(t, in.System, 1)
	assert.InDelta(t, 0.95, aws.ToFloat32(in.InferenceConfig.TopP), 1e-6)
}
