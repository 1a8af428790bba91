package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"navio/internal/middleware"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	for _, key := range []string{"DATABASE_DRIVER", "JWT_SECRET", "JWT_EXPIRES_IN", "LOG_LEVEL", "NODE_ENV", "NAVIO_ENV"} {
		t.Setenv(key, "")
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yml")}, args...))
	t.Cleanup(func() { serverURL = "" })

	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestAnalyzeLocal(t *testing.T) {
	out := execute(t, "analyze", "Please", "send", "the", "payment", "immediately")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "high", got["risk_level"])
	assert.ElementsMatch(t, []any{"urgency", "money"}, got["matches"])
}

func TestToken(t *testing.T) {
	out := strings.TrimSpace(execute(t, "token", "--id", "user-42", "--email", "u@example.org"))

	claims, err := middleware.NewAuthenticator("secret", time.Hour, zap.NewNop()).ParseToken(out)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.ID)
	assert.Equal(t, "u@example.org", claims.Email)
}

func TestKeygen(t *testing.T) {
	out := strings.TrimSpace(execute(t, "keygen"))

	key, err := base64.StdEncoding.DecodeString(out)
	require.NoError(t, err)
	assert.Len(t, key, 32)
}
