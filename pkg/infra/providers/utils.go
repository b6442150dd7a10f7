package providers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deepx/semspace/pkg/common"
)

var (
	ErrAPIKeyRequired  = errors.New("API key is required")
	ErrModelRequired   = errors.New("model is required")
	ErrNoCompletion    = errors.New("no completions returned")
	ErrNonOKResponse   = errors.New("non-OK response from provider")
	ErrUnknownProvider = errors.New("unsupported provider")
)

// ResponseID builds a completion id for vendors that do not return one,
// preferring the request id carried by ctx.
func ResponseID(ctx context.Context, vendor string) string {
	if requestID, ok := ctx.Value(common.RequestIDKey).(string); ok && requestID != "" {
		return fmt.Sprintf("%s-%s", vendor, requestID)
	}
	return fmt.Sprintf("%s-%d", vendor, time.Now().UnixNano())
}
