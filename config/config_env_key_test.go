package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"inbox": map[string]any{
			"cacheTtl": "2m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "INBOX_CACHETTL", want: "inbox.cacheTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyInboxDefaults(t *testing.T) {
	t.Run("nil config gets all defaults", func(t *testing.T) {
		inbox := applyInboxDefaults(nil)

		if inbox.CacheTTL != 2*time.Minute {
			t.Errorf("CacheTTL = %v, want 2m", inbox.CacheTTL)
		}
		if inbox.CacheMaxEntries != 100 {
			t.Errorf("CacheMaxEntries = %d, want 100", inbox.CacheMaxEntries)
		}
		if inbox.DefaultPageSize != 20 {
			t.Errorf("DefaultPageSize = %d, want 20", inbox.DefaultPageSize)
		}
		if inbox.MaxPageSize != 40 {
			t.Errorf("MaxPageSize = %d, want 40", inbox.MaxPageSize)
		}
		if inbox.MaxMarkReadBatch != 500 {
			t.Errorf("MaxMarkReadBatch = %d, want 500", inbox.MaxMarkReadBatch)
		}
	})

	t.Run("explicit values are preserved", func(t *testing.T) {
		inbox := applyInboxDefaults(&InboxConfig{
			CacheTTL:    5 * time.Minute,
			MaxPageSize: 25,
		})

		if inbox.CacheTTL != 5*time.Minute {
			t.Errorf("CacheTTL = %v, want 5m", inbox.CacheTTL)
		}
		if inbox.MaxPageSize != 25 {
			t.Errorf("MaxPageSize = %d, want 25", inbox.MaxPageSize)
		}
		if inbox.DefaultPageSize != 20 {
			t.Errorf("DefaultPageSize = %d, want 20", inbox.DefaultPageSize)
		}
	})
}
