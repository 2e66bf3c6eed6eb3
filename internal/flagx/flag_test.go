package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "conf.json", "-a", "http://backend"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-a", "http://backend"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "unknown flags dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "dash token is not a value",
			args:    []string{"-t", "-notvalue"},
			allowed: []string{"-t"},
			want:    []string{"-t"},
		},
		{
			name:    "order kept across several flags",
			args:    []string{"-a", "http://b:8080", "-p", "25", "-v", "debug"},
			allowed: []string{"-p", "-a"},
			want:    []string{"-a", "http://b:8080", "-p", "25"},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/etc/stylo.json", ConfigPath([]string{"-c", "/etc/stylo.json"}))
	assert.Equal(t, "long.json", ConfigPath([]string{"-a", "x", "-config", "long.json"}))
	assert.Equal(t, "2.json", ConfigPath([]string{"-c", "1.json", "-config=2.json"}))
	assert.Empty(t, ConfigPath([]string{"-x", "1"}))
}

func TestEnvFilePath(t *testing.T) {
	assert.Equal(t, ".env.local", EnvFilePath([]string{"-e", ".env.local", "-c", "x.json"}))
	assert.Empty(t, EnvFilePath(nil))
}
