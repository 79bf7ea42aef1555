package common

import (
	"github.com/hetarchief/aip-services/network"
	"github.com/hetarchief/aip-services/util/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/op/go-logging"
)

// Context holds everything a worker needs to talk to the outside world:
// config, logger, the NSQ publisher, the PID webservice, Redis for interim
// work results, and (optionally) an S3 client for AIP delivery.
type Context struct {
	Config      *Config
	Logger      *logging.Logger
	NSQClient   *network.NSQClient
	PidClient   *network.PidClient
	RedisClient *network.RedisClient
	S3Client    *minio.Client
}

func NewContext() *Context {
	config := NewConfig()
	_logger := getLogger(config)
	return &Context{
		Config:      config,
		Logger:      _logger,
		NSQClient:   network.NewNSQClient(config.NsqURL),
		PidClient:   network.NewPidClient(config.PidServiceURL),
		RedisClient: getRedisClient(config),
		S3Client:    getS3Client(config),
	}
}

func getLogger(config *Config) *logging.Logger {
	log, _ := logger.InitLogger(config.LogDir, config.LogLevel)
	return log
}

func getRedisClient(config *Config) *network.RedisClient {
	return network.NewRedisClient(
		config.RedisURL,
		config.RedisPassword,
		config.RedisDefaultDB)
}

// getS3Client returns nil when no S3 host is configured. Delivery to the
// staging bucket is optional; the transport service can also pick the zip
// up from the shared AIP folder.
func getS3Client(config *Config) *minio.Client {
	if config.S3Host == "" {
		return nil
	}
	client, err := minio.New(
		config.S3Host,
		&minio.Options{
			Creds:  credentials.NewStaticV4(config.S3KeyID, config.S3Secret, ""),
			Secure: config.S3UseSSL,
		})
	if err != nil {
		panic(err)
	}
	return client
}
