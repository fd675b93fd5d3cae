// Package mongotest starts a throwaway MongoDB container for tests.
package mongotest

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"mediarental/internal/config"
)

var (
	once      sync.Once
	container testcontainers.Container
	mongoCfg  config.MongoConfig
	setupErr  error
)

func start() {
	ctx := context.Background()

	func() {
		defer func() {
			if r := recover(); r != nil {
				setupErr = fmt.Errorf("docker not available: %v", r)
			}
		}()
		req := testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections"),
			Tmpfs:        map[string]string{"/data/db": "rw"},
		}
		container, setupErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
	}()
	if setupErr != nil {
		return
	}

	host, err := container.Host(ctx)
	if err != nil {
		setupErr = fmt.Errorf("failed to get container host: %w", err)
		return
	}
	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		setupErr = fmt.Errorf("failed to get container port: %w", err)
		return
	}
	p, err := strconv.Atoi(port.Port())
	if err != nil {
		setupErr = fmt.Errorf("invalid container port %q: %w", port.Port(), err)
		return
	}

	mongoCfg = config.MongoConfig{
		Host:           host,
		Port:           p,
		ConnectTimeout: 10 * time.Second,
	}
}

// Config returns connection settings for the shared test container, using a
// database named after the test. The test is skipped when Docker is missing.
func Config(t *testing.T) config.MongoConfig {
	t.Helper()
	once.Do(start)
	if setupErr != nil {
		t.Skipf("Docker not available, skipping MongoDB test: %v", setupErr)
	}

	cfg := mongoCfg
	cfg.Database = databaseName(t.Name())
	return cfg
}

// database names may not contain '/', '.', ' ' and are limited to 63 bytes
func databaseName(testName string) string {
	b := make([]byte, 0, len(testName))
	for i := 0; i < len(testName); i++ {
		c := testName[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
			b = append(b, c)
		default:
			b = append(b, '_')
		}
	}
	if len(b) > 63 {
		b = b[len(b)-63:]
	}
	return string(b)
}
