package config

import (
	"os"
	"testing"
	"time"
)

func TestCheckEnv(t *testing.T) {
	tests := []struct {
		name      string
		envVars   []string
		setup     func()
		teardown  func()
		wantError bool
	}{
		{
			name:    "AllVariablesPresent",
			envVars: []string{"TEST_VAR_1", "TEST_VAR_2"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "value1")
				os.Setenv("TEST_VAR_2", "value2")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
				os.Unsetenv("TEST_VAR_2")
			},
			wantError: false,
		},
		{
			name:    "OneVariableMissing",
			envVars: []string{"TEST_VAR_1", "TEST_VAR_2"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "value1")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
			},
			wantError: true,
		},
		{
			name:    "VariablePresentButEmpty",
			envVars: []string{"TEST_VAR_1"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			defer func() {
				if tt.teardown != nil {
					tt.teardown()
				}
			}()

			err := checkEnv(tt.envVars)
			if (err != nil) != tt.wantError {
				t.Errorf("checkEnv() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateEnv(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		teardown  func()
		wantError bool
	}{
		{
			name: "AllRequiredVariablesPresent",
			setup: func() {
				os.Setenv("LOG_MODE", "debug")
				os.Setenv("SERVER_PORT", "8080")
				os.Setenv("SOGNI_API_URL", "https://api.sogni.ai")
				os.Setenv("SOGNI_APP_ID", "test-app")
			},
			teardown: func() {
				os.Unsetenv("LOG_MODE")
				os.Unsetenv("SERVER_PORT")
				os.Unsetenv("SOGNI_API_URL")
				os.Unsetenv("SOGNI_APP_ID")
			},
			wantError: false,
		},
		{
			name: "MissingOneRequiredVariable",
			setup: func() {
				os.Setenv("LOG_MODE", "debug")
				os.Setenv("SERVER_PORT", "8080")
			},
			teardown: func() {
				os.Unsetenv("LOG_MODE")
				os.Unsetenv("SERVER_PORT")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			defer func() {
				if tt.teardown != nil {
					tt.teardown()
				}
			}()

			err := validateEnv()
			if (err != nil) != tt.wantError {
				t.Errorf("validateEnv() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		fallback int
		want     int
		wantErr  bool
	}{
		{
			name:     "ValidNumber",
			value:    "42",
			set:      true,
			fallback: 7,
			want:     42,
		},
		{
			name:     "NotSetUsesFallback",
			set:      false,
			fallback: 7,
			want:     7,
		},
		{
			name:     "EmptyUsesFallback",
			value:    "",
			set:      true,
			fallback: 7,
			want:     7,
		},
		{
			name:    "InvalidNumber",
			value:   "not_a_number",
			set:     true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				os.Setenv("TEST_INT_VAR", tt.value)
				defer os.Unsetenv("TEST_INT_VAR")
			}

			got, err := envInt("TEST_INT_VAR", tt.fallback)
			if (err != nil) != tt.wantErr {
				t.Errorf("envInt() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("envInt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	const testEnvContent = `LOG_MODE=debug
SERVER_PORT=8080
SOGNI_API_URL=https://api.sogni.ai
SOGNI_APP_ID=test-app
MAX_ACTIVE_REQUESTS=5
IMAGE_TIMEOUT_SECONDS=120
`

	envFile, err := os.CreateTemp("", ".env")
	if err != nil {
		t.Fatalf("Failed to create temp .env file: %v", err)
	}
	defer os.Remove(envFile.Name())

	if _, err := envFile.WriteString(testEnvContent); err != nil {
		t.Fatalf("Failed to write to temp .env file: %v", err)
	}
	if err := envFile.Close(); err != nil {
		t.Fatalf("Failed to close temp .env file: %v", err)
	}

	defer func() {
		for _, name := range []string{"LOG_MODE", "SERVER_PORT", "SOGNI_API_URL", "SOGNI_APP_ID", "MAX_ACTIVE_REQUESTS", "IMAGE_TIMEOUT_SECONDS"} {
			os.Unsetenv(name)
		}
	}()

	tests := []struct {
		name      string
		envFile   string
		want      *Config
		wantError bool
	}{
		{
			name:    "successful config load",
			envFile: envFile.Name(),
			want: &Config{
				LogMode:           "debug",
				ServerPort:        "8080",
				SogniAPIURL:       "https://api.sogni.ai",
				SogniAppID:        "test-app",
				MaxActiveRequests: 5,
				ImageTimeout:      120 * time.Second,
				VideoTimeout:      600 * time.Second,
				URLCacheTTL:       55 * time.Minute,
			},
			wantError: false,
		},
		{
			name:      "missing env file",
			envFile:   "nonexistent_file",
			want:      nil,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(tt.envFile)
			if (err != nil) != tt.wantError {
				t.Errorf("LoadConfig() error = %v, wantError %v", err, tt.wantError)
				return
			}

			if !tt.wantError {
				if got.LogMode != tt.want.LogMode {
					t.Errorf("LoadConfig() LogMode = %v, want %v", got.LogMode, tt.want.LogMode)
				}
				if got.ServerPort != tt.want.ServerPort {
					t.Errorf("LoadConfig() ServerPort = %v, want %v", got.ServerPort, tt.want.ServerPort)
				}
				if got.SogniAPIURL != tt.want.SogniAPIURL {
					t.Errorf("LoadConfig() SogniAPIURL = %v, want %v", got.SogniAPIURL, tt.want.SogniAPIURL)
				}
				if got.MaxActiveRequests != tt.want.MaxActiveRequests {
					t.Errorf("LoadConfig() MaxActiveRequests = %v, want %v", got.MaxActiveRequests, tt.want.MaxActiveRequests)
				}
				if got.ImageTimeout != tt.want.ImageTimeout {
					t.Errorf("LoadConfig() ImageTimeout = %v, want %v", got.ImageTimeout, tt.want.ImageTimeout)
				}
				if got.VideoTimeout != tt.want.VideoTimeout {
					t.Errorf("LoadConfig() VideoTimeout = %v, want %v", got.VideoTimeout, tt.want.VideoTimeout)
				}
				if got.URLCacheTTL != tt.want.URLCacheTTL {
					t.Errorf("LoadConfig() URLCacheTTL = %v, want %v", got.URLCacheTTL, tt.want.URLCacheTTL)
				}
			}
		})
	}
}
