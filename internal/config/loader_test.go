package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_CFG_HOST", "db.internal")

	assert.Equal(t, "host: db.internal", expandEnv("host: ${TEST_CFG_HOST}"))
	assert.Equal(t, "host: db.internal", expandEnv("host: ${TEST_CFG_HOST:fallback}"))
	assert.Equal(t, "port: 5432", expandEnv("port: ${TEST_CFG_MISSING:5432}"))
	// 无默认值且未定义时保留占位符，便于定位配置缺失
	assert.Equal(t, "key: ${TEST_CFG_MISSING}", expandEnv("key: ${TEST_CFG_MISSING}"))
}

func TestExpandEnvEmptyDefault(t *testing.T) {
	// ${VAR:} 形式的空默认值展开为空串，用于密码等可留空的配置
	assert.Equal(t, "password: ", expandEnv("password: ${TEST_CFG_MISSING:}"))
}

func TestLLMConfigured(t *testing.T) {
	var nilCfg *LLMConfig
	assert.False(t, nilCfg.Configured())

	cfg := &LLMConfig{
		DefaultProvider: "openai",
		Providers:       map[string]ProviderConfig{},
	}
	assert.False(t, cfg.Configured(), "default provider missing")

	cfg.Providers["openai"] = ProviderConfig{APIKey: "   "}
	assert.False(t, cfg.Configured(), "blank api key")

	cfg.Providers["openai"] = ProviderConfig{APIKey: "sk-test"}
	assert.True(t, cfg.Configured())
}
