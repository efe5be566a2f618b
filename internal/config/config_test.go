package config

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
		"OPENAI_TEMPERATURE", "LOG_LEVEL", "LOG_FORMAT", "AWS_LAMBDA_FUNCTION_NAME", "AWS_REGION", "STAGE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8081" {
		t.Errorf("Expected port 8081, got %s", cfg.Port)
	}
	if cfg.OpenAI.APIKey != "" {
		t.Errorf("Expected empty API key, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("Unexpected base URL %s", cfg.OpenAI.BaseURL)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("Expected model gpt-4o-mini, got %s", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.Temperature != 0.2 {
		t.Errorf("Expected temperature 0.2, got %f", cfg.OpenAI.Temperature)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_TEMPERATURE", "0.7")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("Expected API key from env, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Expected model gpt-4o, got %s", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.Temperature != 0.7 {
		t.Errorf("Expected temperature 0.7, got %f", cfg.OpenAI.Temperature)
	}
	if cfg.Port != "9000" {
		t.Errorf("Expected port 9000, got %s", cfg.Port)
	}
}

func TestAdaptConfigForServerless(t *testing.T) {
	tests := []struct {
		name         string
		functionName string
		wantFormat   string
		wantMode     string
	}{
		{name: "server", functionName: "", wantFormat: "text", wantMode: "server"},
		{name: "lambda", functionName: "preflop-decide", wantFormat: "json", wantMode: "serverless"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("AWS_LAMBDA_FUNCTION_NAME", tt.functionName)

			cfg := &Config{Environment: "development", Logging: LoggingConfig{Format: "text"}}
			cfg = AdaptConfigForServerless(cfg)

			if cfg.Logging.Format != tt.wantFormat {
				t.Errorf("Expected format %s, got %s", tt.wantFormat, cfg.Logging.Format)
			}
			if mode := GetDeploymentMode(); mode != tt.wantMode {
				t.Errorf("Expected mode %s, got %s", tt.wantMode, mode)
			}
		})
	}
}

func TestGetServerlessConfig(t *testing.T) {
	t.Run("defaults outside lambda", func(t *testing.T) {
		clearEnv(t)

		sc := GetServerlessConfig()
		if sc.IsLambda {
			t.Error("Expected IsLambda to be false")
		}
		if sc.Stage != "dev" {
			t.Errorf("Expected default stage dev, got %s", sc.Stage)
		}
	})

	t.Run("inside lambda", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "preflop-decide")
		t.Setenv("AWS_REGION", "eu-west-1")
		t.Setenv("STAGE", "prod")

		sc := GetServerlessConfig()
		if !sc.IsLambda || sc.FunctionName != "preflop-decide" {
			t.Errorf("Unexpected function info %+v", sc)
		}
		if sc.Region != "eu-west-1" || sc.Stage != "prod" {
			t.Errorf("Unexpected region/stage %+v", sc)
		}
	})
}
