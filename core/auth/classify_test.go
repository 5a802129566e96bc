package auth_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechainkit/walletkit/core/auth"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		message   string
		category  auth.Category
		retryable bool
	}{
		{"user rejected", "User rejected the request", auth.CategoryUserRejection, false},
		{"cancelled", "operation was cancelled by user", auth.CategoryUserRejection, false},
		{"popup", "Popup window failed to open", auth.CategoryPopupBlocked, true},
		{"blocked", "request blocked by browser", auth.CategoryPopupBlocked, true},
		{"network", "Network request failed", auth.CategoryNetwork, true},
		{"timeout", "Network timeout", auth.CategoryNetwork, true},
		{"configuration", "invalid configuration for app", auth.CategoryConfiguration, true},
		{"not initialized", "client not initialized", auth.CategoryConfiguration, true},
		{"unknown", "something else went wrong", auth.CategoryUnknown, true},
		{"empty message", "", auth.CategoryUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			classified := auth.Classify(auth.MethodEmail, errors.New(tt.message))
			require.NotNil(t, classified)
			assert.Equal(t, tt.category, classified.Category)
			assert.Equal(t, tt.retryable, classified.Retryable)
			assert.Equal(t, tt.message, classified.Message)
			assert.NotEmpty(t, classified.UserMessage)
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	classified := auth.Classify(auth.MethodGoogle, errors.New("USER REJECTED"))
	assert.Equal(t, auth.CategoryUserRejection, classified.Category)
}

func TestClassifyFirstRuleWins(t *testing.T) {
	t.Parallel()

	// "rejected" and "network" both match; the rejection rule is first.
	classified := auth.Classify(auth.MethodEmail, errors.New("network call rejected"))
	assert.Equal(t, auth.CategoryUserRejection, classified.Category)
	assert.False(t, classified.Retryable)
}

func TestClassifyNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, auth.Classify(auth.MethodEmail, nil))
}

func TestClassifyPreClassifiedPassThrough(t *testing.T) {
	t.Parallel()

	original := &auth.Error{
		Code:        "custom",
		Message:     "network hiccup", // would match network_error by substring
		Category:    auth.CategoryConfiguration,
		Retryable:   true,
		UserMessage: "call SetCrossAppProvider first",
	}

	t.Run("direct", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, original, auth.Classify(auth.MethodVeChain, original))
	})

	t.Run("wrapped", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("adapter: %w", original)
		assert.Same(t, original, auth.Classify(auth.MethodVeChain, wrapped))
	})
}

func TestClassifyUnknownUserMessageNamesMethod(t *testing.T) {
	t.Parallel()

	classified := auth.Classify(auth.MethodVeChain, errors.New("weird failure"))
	assert.Equal(t, "Failed to authenticate with vechain", classified.UserMessage)
}
