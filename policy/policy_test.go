package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_KindOf(t *testing.T) {
	testCases := []struct {
		name   string
		config *Config
		size   int
		expect string
	}{
		{name: "single", config: DefaultConfig(), size: 1, expect: KindSRT},
		{name: "two", config: DefaultConfig(), size: 2, expect: KindSRT},
		{name: "three", config: DefaultConfig(), size: 3, expect: KindPriority},
		{name: "five", config: DefaultConfig(), size: 5, expect: KindPriority},
		{name: "six", config: DefaultConfig(), size: 6, expect: KindRR},
		{name: "nil config", size: 4, expect: KindPriority},
		{name: "custom", config: &Config{ShortestRemainingMax: 1, PriorityMax: 1}, size: 2, expect: KindRR},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.config.KindOf(tc.size))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, (&Config{ShortestRemainingMax: 0, PriorityMax: 3}).Validate())
	assert.Error(t, (&Config{ShortestRemainingMax: 4, PriorityMax: 3}).Validate())

	config := &Config{PriorityMax: 7}
	config.Init()
	assert.Equal(t, 2, config.ShortestRemainingMax)
	assert.Equal(t, 7, config.PriorityMax)
}

func TestContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))
	config := &Config{ShortestRemainingMax: 3, PriorityMax: 4}
	ctx := WithPolicy(context.Background(), config)
	assert.Equal(t, config, FromContext(ctx))
}
