package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/Astemirdum/hotel-service/internal/server"
	"github.com/Astemirdum/hotel-service/pkg/kafka"
	"github.com/Astemirdum/hotel-service/pkg/logger"
	"github.com/Astemirdum/hotel-service/pkg/postgres"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   server.Config `yaml:"server"`
	Database postgres.DB   `yaml:"db"`
	Kafka    kafka.Config  `yaml:"kafka"`
	Log      logger.Log    `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
