package minio

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	TestAccessKey = "minioadmin"
	TestSecretKey = "minioadmin"
	BucketName    = "temp-bucket-for-tests"
)

func setupMinio(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     TestAccessKey,
			"MINIO_ROOT_PASSWORD": TestSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	return endpoint
}

func testConfig(endpoint string) Config {
	return Config{
		Endpoint:       endpoint,
		AccessKey:      TestAccessKey,
		SecretKey:      TestSecretKey,
		Bucket:         BucketName,
		UploaderConfig: UploaderConfig{Timeout: 5000},
		RemoverConfig:  RemoverConfig{Timeout: 5000},
	}
}

func fetch(t *testing.T, url string) (int, []byte) {
	t.Helper()

	resp, err := http.Get(url) //nolint
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, body
}

func TestStore(t *testing.T) {
	endpoint := setupMinio(t)
	ctx := context.Background()

	store, err := New(ctx, testConfig(endpoint))
	require.NoError(t, err)

	// a second store on the same bucket must not fail on the existing bucket
	_, err = New(ctx, testConfig(endpoint))
	require.NoError(t, err)

	t.Run("object is publicly readable", func(t *testing.T) {
		data := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

		obj, err := store.SaveObject(ctx, "images/2025-01-01/a.jpg", data, "image/jpeg")
		require.NoError(t, err)
		assert.Equal(t, "images/2025-01-01/a.jpg", obj.Key)
		assert.Equal(t, "http://"+endpoint+"/"+BucketName+"/images/2025-01-01/a.jpg", obj.URL)
		assert.Equal(t, obj.URL, store.PublicURL(obj.Key))

		status, body := fetch(t, obj.URL)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, data, body)
	})

	t.Run("text round trip", func(t *testing.T) {
		obj, err := store.SaveText(ctx, "texts/1-a.txt", "hello", "")
		require.NoError(t, err)

		status, body := fetch(t, obj.URL)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "hello", string(body))
	})

	t.Run("delete", func(t *testing.T) {
		obj, err := store.SaveText(ctx, "texts/2-b.txt", "bye", "")
		require.NoError(t, err)

		require.NoError(t, store.DeleteObject(ctx, obj.Key))
		require.NoError(t, store.DeleteObject(ctx, obj.Key))
		require.NoError(t, store.DeleteObject(ctx, "texts/never-existed.txt"))

		status, _ := fetch(t, obj.URL)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestPublicURLWithBaseURL(t *testing.T) {
	t.Parallel()

	s := &Store{baseURL: "https://cdn.example.com/media"}
	assert.Equal(t, "https://cdn.example.com/media/texts/a.txt", s.PublicURL("texts/a.txt"))
	assert.Equal(t, "https://cdn.example.com/media/texts/a.txt", s.PublicURL("/texts/a.txt"))
}
