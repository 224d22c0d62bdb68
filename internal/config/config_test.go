package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `database:
  host: db.internal
  port: 3307
  username: curation
  database: curation
cache:
  directory: custom/cache
  ttl_hours: 12
curation:
  target_age_years: 5
reports:
  directory: custom/reports
`,
			useExplicitPath: false,
			wantErr:         false,
			want: &Config{
				Database: DatabaseConfig{
					Host:     "db.internal",
					Port:     3307,
					Username: "curation",
					Database: "curation",
				},
				Cache: CacheConfig{
					Directory: "custom/cache",
					TTLHours:  12,
				},
				Curation: CurationConfig{
					TargetAgeYears: 5,
				},
				Reports: ReportsConfig{
					Directory: "custom/reports",
				},
			},
		},
		{
			name: "invalid YAML format",
			configContent: `database:
  host: db.internal
  invalid yaml format here [[[
`,
			useExplicitPath: false,
			wantErr:         true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown keys fall back to defaults",
			configContent: `wrong_key:
  some_value: test
`,
			useExplicitPath: false,
			wantErr:         false,
			want: &Config{
				Database: DatabaseConfig{
					Host:     "127.0.0.1",
					Port:     3306,
					Username: "chaekmaru",
					Database: "chaekmaru",
				},
				Cache: CacheConfig{
					Directory: filepath.Join("cache", "providers"),
					TTLHours:  24,
				},
				Reports: ReportsConfig{
					Directory: "reports",
				},
			},
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `database:
  host: db.internal
`,
			useExplicitPath: false,
			wantErr:         false,
			want: &Config{
				Database: DatabaseConfig{
					Host:     "db.internal",
					Port:     3306,
					Username: "chaekmaru",
					Database: "chaekmaru",
				},
				Cache: CacheConfig{
					Directory: filepath.Join("cache", "providers"),
					TTLHours:  24,
				},
				Reports: ReportsConfig{
					Directory: "reports",
				},
			},
		},
		{
			name: "explicit config file path",
			configContent: `database:
  host: explicit.internal
cache:
  directory: explicit/cache
`,
			useExplicitPath: true,
			wantErr:         false,
			want: &Config{
				Database: DatabaseConfig{
					Host:     "explicit.internal",
					Port:     3306,
					Username: "chaekmaru",
					Database: "chaekmaru",
				},
				Cache: CacheConfig{
					Directory: "explicit/cache",
					TTLHours:  24,
				},
				Reports: ReportsConfig{
					Directory: "reports",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			} else {
				if tt.configContent != "" {
					configPath = filepath.Join(tempDir, "config.yaml")
					err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
					require.NoError(t, err)
				}

				originalDir, err := os.Getwd()
				require.NoError(t, err)
				defer func() {
					err := os.Chdir(originalDir)
					require.NoError(t, err)
				}()

				err = os.Chdir(tempDir)
				require.NoError(t, err)
				configPath = ""
			}

			got, err := Load(configPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Database: DatabaseConfig{Host: "127.0.0.1", Port: 3306, Username: "chaekmaru", Database: "chaekmaru"},
		Cache:    CacheConfig{Directory: "cache", TTLHours: 24},
		Reports:  ReportsConfig{Directory: "reports"},
	}
	require.NoError(t, valid.Validate())

	invalid := valid
	invalid.Database.Host = ""
	invalid.Cache.TTLHours = 0
	err := invalid.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host")
	assert.Contains(t, err.Error(), "ttl_hours")
}
