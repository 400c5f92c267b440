package redis

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"log/slog"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/config"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type RedisClientConstructor func(opt *redis.Options) *redis.Client

type RedisClient struct {
	Client *redis.Client
}

// ConnectToRedis dials and pings Redis. newClientFunc may be nil.
func ConnectToRedis(
	ctx context.Context,
	cfg config.RedisConfig,
	newClientFunc RedisClientConstructor,
) (*RedisClient, error) {
	if !cfg.Enabled() {
		return nil, errors.New("redis address not configured")
	}

	logger.CtxInfo(ctx, "Connecting to Redis",
		slog.String("addr", cfg.Addr),
		slog.Int("db", cfg.DB),
		slog.Bool("enable_tls", cfg.EnableTLS),
	)

	opts := &redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.ConnectTimeout,
	}

	if cfg.EnableTLS {
		tlsConfig, err := buildTLSConfig(ctx, cfg.CertContent)
		if err != nil {
			logger.CtxError(ctx, "Failed to build TLS config", err)
			return nil, fmt.Errorf("failed to build TLS config: %w", err)
		}
		opts.TLSConfig = tlsConfig
	}

	if newClientFunc == nil {
		newClientFunc = redis.NewClient
	}
	client := newClientFunc(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		logger.CtxError(ctx, "Redis ping failed", err, slog.String("addr", cfg.Addr))
		return nil, err
	}

	logger.CtxInfo(ctx, "Successfully connected to Redis", slog.String("addr", cfg.Addr))

	return &RedisClient{Client: client}, nil
}

// buildTLSConfig accepts a PEM bundle holding a client key pair, CA certs, or both.
func buildTLSConfig(ctx context.Context, pemContent string) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	if pemContent == "" {
		return tlsConfig, nil
	}

	content := []byte(pemContent)
	var loadedAny bool

	if cert, err := tls.X509KeyPair(content, content); err == nil {
		tlsConfig.Certificates = []tls.Certificate{cert}
		logger.CtxDebug(ctx, "Loaded Redis client certificate")
		loadedAny = true
	}

	pool := x509.NewCertPool()
	if pool.AppendCertsFromPEM(content) {
		tlsConfig.RootCAs = pool
		logger.CtxDebug(ctx, "Loaded Redis CA certificates")
		loadedAny = true
	}

	if !loadedAny {
		return nil, fmt.Errorf("failed to parse PEM content as a valid CA certificate or client key pair")
	}

	return tlsConfig, nil
}

func Disconnect(client *redis.Client) error {
	return client.Close()
}
