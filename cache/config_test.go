package cache

import (
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "empty addr is valid degraded mode",
			config:  Config{},
			wantErr: false,
		},
		{
			name:    "negative db",
			config:  Config{DB: -1},
			wantErr: true,
		},
		{
			name:    "negative dial timeout",
			config:  Config{DialTimeout: -time.Second},
			wantErr: true,
		},
		{
			name:    "negative read timeout",
			config:  Config{ReadTimeout: -time.Millisecond},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
