package config

import "testing"

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantURL   string
		wantLevel string
	}{
		{
			name:      "defaults",
			env:       map[string]string{"FIPE_BASE_URL": "", "LOG_LEVEL": ""},
			wantURL:   "https://parallelum.com.br/fipe/api/v1",
			wantLevel: "warn",
		},
		{
			name:      "from environment",
			env:       map[string]string{"FIPE_BASE_URL": "http://localhost:8080/fipe/api/v1/", "LOG_LEVEL": "DEBUG"},
			wantURL:   "http://localhost:8080/fipe/api/v1",
			wantLevel: "debug",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := Load()
			if cfg.BaseURL != tt.wantURL {
				t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, tt.wantURL)
			}
			if cfg.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, tt.wantLevel)
			}
		})
	}
}
