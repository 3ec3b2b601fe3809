package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
)

func TestNewElasticSearchConnection(t *testing.T) {
	elasticsearchContainer, err := elasticsearch.Run(
		context.Background(),
		"docker.elastic.co/elasticsearch/elasticsearch:8.17.4",
		testcontainers.WithEnv(map[string]string{
			"xpack.security.enabled": "false",
		}),
	)
	require.NoError(t, err)
	defer func() {
		if e := testcontainers.TerminateContainer(elasticsearchContainer); e != nil {
			t.Logf("failed to terminate container: %s", e)
		}
	}()

	testCases := []struct {
		name      string
		input     ElasticsearchConfig
		expectErr bool
	}{
		{
			name:  "valid input",
			input: ElasticsearchConfig{Addresses: []string{elasticsearchContainer.Settings.Address}},
		},
		{
			name:      "unreachable address",
			input:     ElasticsearchConfig{Addresses: []string{"http://127.0.0.1:8001"}},
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, e := NewElasticSearchConnection(tc.input)
			if tc.expectErr {
				assert.Error(t, e)
			} else {
				assert.NoError(t, e)
				assert.NotNil(t, client)
			}
		})
	}

	t.Run("ensure index is idempotent", func(t *testing.T) {
		client, e := NewElasticSearchConnection(ElasticsearchConfig{Addresses: []string{elasticsearchContainer.Settings.Address}})
		require.NoError(t, e)
		mapping := `{"mappings":{"properties":{"server_id":{"type":"keyword"}}}}`

		require.NoError(t, EnsureIndex(context.Background(), client, "health_checks_test", mapping))
		require.NoError(t, EnsureIndex(context.Background(), client, "health_checks_test", mapping))

		res, e := client.Indices.Exists([]string{"health_checks_test"})
		require.NoError(t, e)
		defer res.Body.Close()
		assert.Equal(t, 200, res.StatusCode)
	})
}
