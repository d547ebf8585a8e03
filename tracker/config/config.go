package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/reading-tracker/pkg/kafka"
	"github.com/Astemirdum/reading-tracker/pkg/logger"
	"github.com/Astemirdum/reading-tracker/pkg/postgres"
	"github.com/Astemirdum/reading-tracker/tracker/internal/service/catalog"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"TRACKER_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"TRACKER_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Database postgres.DB
	Catalog  catalog.Config
	Kafka    kafka.Config
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	cfg.Catalog.APIKey = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
