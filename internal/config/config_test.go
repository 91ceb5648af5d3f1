package config

import (
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantPanic bool
	}{
		{name: "variable set", key: "TEST_VAR", value: "test_value"},
		{name: "variable not set", key: "TEST_VAR_MISSING", wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestRequireEnvInt(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expected  int
		wantPanic bool
	}{
		{name: "valid integer", value: "42", expected: 42},
		{name: "invalid integer", value: "not_a_number", wantPanic: true},
		{name: "missing variable", value: "", wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnvInt() should have panicked")
					}
				}()
			}

			result := requireEnvInt("TEST_INT")
			if !tt.wantPanic && result != tt.expected {
				t.Errorf("requireEnvInt() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected []string
	}{
		{name: "empty", in: "", expected: nil},
		{name: "single value", in: "value1", expected: []string{"value1"}},
		{name: "multiple values", in: "value1, value2 ,value3", expected: []string{"value1", "value2", "value3"}},
		{name: "quoted values", in: `"a.example.com", 'b.example.com'`, expected: []string{"a.example.com", "b.example.com"}},
		{name: "blank entries dropped", in: "a,, ,b", expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndTrim(tt.in)
			if len(result) != len(tt.expected) {
				t.Fatalf("splitAndTrim() = %v, want %v", result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{name: "valid duration", value: "5s", def: time.Second, expected: 5 * time.Second},
		{name: "invalid duration uses default", value: "invalid", def: 10 * time.Second, expected: 10 * time.Second},
		{name: "missing variable uses default", value: "", def: 15 * time.Second, expected: 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)

			result := mustDuration("TEST_DURATION", tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      bool
		expected bool
	}{
		{name: "true value", value: "true", def: false, expected: true},
		{name: "false value", value: "false", def: true, expected: false},
		{name: "invalid value uses default", value: "invalid", def: true, expected: true},
		{name: "missing variable uses default", value: "", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)

			result := mustBool("TEST_BOOL", tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestLoadMemoryStore(t *testing.T) {
	t.Setenv("MAKERHUB_STORE", "Memory")
	t.Setenv("MAKERHUB_REDIS_ADDR", "")
	t.Setenv("MAKERHUB_ALLOWED_HOSTS", "")
	t.Setenv("MAKERHUB_CATALOG_FILE", "")
	t.Setenv("MAKERHUB_CORS_ORIGINS", "")

	cfg := Load()
	if cfg.Store != StoreMemory {
		t.Errorf("Store = %q, want %q", cfg.Store, StoreMemory)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty when Store=memory", cfg.RedisAddr)
	}
	if cfg.StateKey != "makerhub_state" {
		t.Errorf("StateKey = %q, want makerhub_state", cfg.StateKey)
	}
	if cfg.CatalogFile != "" {
		t.Errorf("CatalogFile = %q, want empty", cfg.CatalogFile)
	}
	if len(cfg.AllowedHosts) != 0 {
		t.Errorf("AllowedHosts = %v, want none", cfg.AllowedHosts)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
}

func TestLoadRedisStore(t *testing.T) {
	t.Setenv("MAKERHUB_STORE", "redis")
	t.Setenv("MAKERHUB_REDIS_ADDR", "localhost:6379")
	t.Setenv("MAKERHUB_REDIS_DB", "2")
	t.Setenv("MAKERHUB_REDIS_PASSWORD", "secret")
	t.Setenv("MAKERHUB_STATE_KEY", "custom_state")

	cfg := Load()
	if cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 2 {
		t.Errorf("redis settings = %q db %d", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.StateKey != "custom_state" {
		t.Errorf("StateKey = %q, want custom_state", cfg.StateKey)
	}
}

func TestLoadPanics(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown store",
			env:  map[string]string{"MAKERHUB_STORE": "s3"},
		},
		{
			name: "redis without address",
			env:  map[string]string{"MAKERHUB_STORE": "redis", "MAKERHUB_REDIS_ADDR": ""},
		},
		{
			name: "redis without required password",
			env: map[string]string{
				"MAKERHUB_STORE":                   "redis",
				"MAKERHUB_REDIS_ADDR":              "localhost:6379",
				"MAKERHUB_REDIS_DB":                "0",
				"MAKERHUB_REDIS_PASSWORD":          "",
				"MAKERHUB_REDIS_PASSWORD_REQUIRED": "true",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Load() should have panicked")
				}
			}()
			Load()
		})
	}
}
