package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	StorageMemory   = "memory"
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"

	// DefaultStorage is the document store. The memory backend is meant for
	// local development and tests only.
	DefaultStorage = StorageMongo
)

type Config struct {
	NetAddr   string `env:"RUN_ADDRESS"`
	Storage   string `env:"STORAGE"`
	DBConnect string `env:"DATABASE_URI"`
	MongoURI  string `env:"MONGO_URI"`
	MongoDB   string `env:"MONGO_DATABASE"`
	LogLevel  string `env:"LOG_LEVEL"`

	JWTSecret      string        `env:"JWT_SECRET"`
	TokenTTL       time.Duration `env:"TOKEN_TTL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	PricePolicy  string `env:"PRICE_POLICY"`
	StatusPolicy string `env:"STATUS_POLICY"`

	Images ImagesConfig
}

type ImagesConfig struct {
	Bucket          string `env:"S3_BUCKET"`
	Region          string `env:"S3_REGION" envDefault:"us-east-1"`
	Endpoint        string `env:"S3_ENDPOINT"`
	PublicURL       string `env:"S3_PUBLIC_URL"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
}

func InitConfig() (config Config) {
	flag.StringVar(&config.NetAddr, "a", "localhost:5000", "net address host:port")
	flag.StringVar(&config.Storage, "s", DefaultStorage, "storage backend: mongo, postgres or memory (development only)")
	flag.StringVar(&config.DBConnect, "d", "", "postgres credentials in format: host=host port=port user=myuser password=xxxx dbname=mydb sslmode=disable")
	flag.StringVar(&config.MongoURI, "m", "mongodb://localhost:27017", "mongodb connection uri")
	flag.StringVar(&config.MongoDB, "mdb", "orders", "mongodb database name")
	flag.StringVar(&config.LogLevel, "l", "info", "log level")
	flag.StringVar(&config.JWTSecret, "k", "", "secret key for signing auth tokens")
	flag.DurationVar(&config.TokenTTL, "ttl", 15*24*time.Hour, "auth token lifetime")
	flag.DurationVar(&config.RequestTimeout, "t", 3*time.Second, "timeout of a single storage request")
	flag.StringVar(&config.PricePolicy, "price-policy", "trust", "line item price policy: trust or catalog")
	flag.StringVar(&config.StatusPolicy, "status-policy", "any", "order status transition policy: any or strict")
	flag.Parse()

	if err := env.Parse(&config); err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	if len(config.JWTSecret) == 0 {
		panic(fmt.Errorf("error while parsing config: empty jwt secret"))
	}

	return
}
