package cache

import (
	"crypto/tls"
	"fieldtrack/internal/config"
	"sync"

	"github.com/valkey-io/valkey-go"
)

var (
	once         sync.Once
	valkeyClient valkey.Client
)

// GetCache returns the shared valkey client. In testing mode no cache
// backend is running and nil is returned; cache utils treat a nil client
// as a disabled cache.
func GetCache() valkey.Client {
	once.Do(func() {
		env := config.GetEnv()

		if env.IsTesting || env.ValkeyHost == "" {
			return
		}

		options := valkey.ClientOption{
			InitAddress: []string{env.ValkeyHost + ":" + env.ValkeyPort},
			Password:    env.ValkeyPassword,
			Username:    env.ValkeyUsername,
		}

		if env.ValkeyIsSsl {
			options.TLSConfig = &tls.Config{
				ServerName: env.ValkeyHost,
			}
		}

		client, err := valkey.NewClient(options)
		if err != nil {
			panic(err)
		}

		valkeyClient = client
	})

	return valkeyClient
}
