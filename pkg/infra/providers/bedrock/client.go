package bedrock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	stsTypes "github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/deepx/semspace/pkg/infra/providers"
)

const (
	defaultRegion      = "us-east-1"
	defaultSessionName = "SemSpaceSession"
	vendor             = "bedrock"
)

var ErrCredentialsRequired = errors.New("aws credentials are required")

// ConverseAPI is the part of the bedrock runtime client used here.
type ConverseAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

type clientBuilder func(ctx context.Context, credentials *providers.AwsBedrockCredentials) (ConverseAPI, error)

type client struct {
	clientPool *sync.Map
	build      clientBuilder
}

// NewBedrockClient uses the model-agnostic Converse API so every Bedrock text
// model is called the same way.
func NewBedrockClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
		build:      buildRuntimeClient,
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Model == "" {
		return nil, providers.ErrModelRequired
	}
	if config.Credentials.AwsBedrock == nil {
		return nil, ErrCredentialsRequired
	}

	runtime, err := c.getOrCreateClient(ctx, config.Credentials.AwsBedrock)
	if err != nil {
		return nil, fmt.Errorf("failed to create Bedrock client: %w", err)
	}

	output, err := runtime.Converse(ctx, converseInput(config, prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to invoke model: %w", err)
	}

	msg, ok := output.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return nil, providers.ErrNoCompletion
	}
	var text strings.Builder
	for _, block := range msg.Value.Content {
		if t, ok := block.(*types.ContentBlockMemberText); ok {
			text.WriteString(t.Value)
		}
	}
	if text.Len() == 0 {
		return nil, providers.ErrNoCompletion
	}

	resp := &providers.CompletionResponse{
		ID:       providers.ResponseID(ctx, vendor),
		Model:    config.Model,
		Response: text.String(),
	}
	if u := output.Usage; u != nil {
		resp.Usage = providers.Usage{
			PromptTokens:     int(aws.ToInt32(u.InputTokens)),
			CompletionTokens: int(aws.ToInt32(u.OutputTokens)),
			TotalTokens:      int(aws.ToInt32(u.TotalTokens)),
		}
	}
	return resp, nil
}

func converseInput(config *providers.Config, prompt string) *bedrockruntime.ConverseInput {
	inference := &types.InferenceConfiguration{}
	if config.MaxTokens > 0 {
		inference.MaxTokens = aws.Int32(int32(config.MaxTokens)) // #nosec G115
	}
	if config.Temperature > 0 {
		inference.Temperature = aws.Float32(float32(config.Temperature))
	}
	if config.TopP > 0 {
		inference.TopP = aws.Float32(float32(config.TopP))
	}

	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(config.Model),
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: prompt},
				},
			},
		},
		InferenceConfig: inference,
	}
	if config.SystemPrompt != "" {
		input.System = []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: config.SystemPrompt},
		}
	}
	return input
}

func (c *client) getOrCreateClient(ctx context.Context, credentials *providers.AwsBedrockCredentials) (ConverseAPI, error) {
	key := buildClientKey(credentials)
	if v, ok := c.clientPool.Load(key); ok {
		if cl, ok := v.(ConverseAPI); ok {
			return cl, nil
		}
	}
	cl, err := c.build(ctx, credentials)
	if err != nil {
		return nil, err
	}
	actual, _ := c.clientPool.LoadOrStore(key, cl)
	return actual.(ConverseAPI), nil //nolint:errcheck
}

func buildClientKey(credentials *providers.AwsBedrockCredentials) string {
	return fmt.Sprintf("%s:%s:%v:%s",
		credentials.AccessKey,
		credentials.Region,
		credentials.UseRole,
		credentials.RoleARN,
	)
}

func buildRuntimeClient(ctx context.Context, credentials *providers.AwsBedrockCredentials) (ConverseAPI, error) {
	cfg, err := buildAwsConfig(ctx, credentials)
	if err != nil {
		return nil, err
	}
	return bedrockruntime.NewFromConfig(cfg), nil
}

func buildAwsConfig(ctx context.Context, credentials *providers.AwsBedrockCredentials) (aws.Config, error) {
	region := credentials.Region
	if region == "" {
		region = defaultRegion
	}

	if credentials.UseRole && credentials.RoleARN != "" {
		creds, err := assumeRole(ctx, credentials, region)
		if err != nil {
			return aws.Config{}, err
		}
		return loadAWSConfig(ctx, aws.ToString(creds.AccessKeyId), aws.ToString(creds.SecretAccessKey), aws.ToString(creds.SessionToken), region)
	}
	return loadAWSConfig(ctx, credentials.AccessKey, credentials.SecretKey, credentials.SessionToken, region)
}

// loadAWSConfig falls back to the default credential chain when no static
// keys are configured.
func loadAWSConfig(ctx context.Context, accessKey, secretKey, sessionToken, region string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     accessKey,
					SecretAccessKey: secretKey,
					SessionToken:    sessionToken,
				}, nil
			},
		)))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

func assumeRole(ctx context.Context, credentials *providers.AwsBedrockCredentials, region string) (*stsTypes.Credentials, error) {
	baseCfg, err := loadAWSConfig(ctx, credentials.AccessKey, credentials.SecretKey, credentials.SessionToken, region)
	if err != nil {
		return nil, fmt.Errorf("unable to load base AWS config: %w", err)
	}
	output, err := sts.NewFromConfig(baseCfg).AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(credentials.RoleARN),
		RoleSessionName: aws.String(defaultSessionName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assume role: %w", err)
	}
	return output.Credentials, nil
}
