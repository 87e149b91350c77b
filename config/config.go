package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/ratel-online/liar/consts"
)

type Config struct {
	TcpAddr      string `env:"LIAR_TCP_ADDR"      envDefault:":9999"`
	WsAddr       string `env:"LIAR_WS_ADDR"       envDefault:":9998"`
	RoomCapacity int    `env:"LIAR_ROOM_CAPACITY" envDefault:"4"`
	SendBuffer   int    `env:"LIAR_SEND_BUFFER"   envDefault:"64"`
	// Seed feeds every room's shuffles and revolvers; 0 picks a time seed.
	Seed int64 `env:"LIAR_SEED" envDefault:"0"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.RoomCapacity < consts.MinPlayers || c.RoomCapacity > consts.MaxPlayers {
		return fmt.Errorf("room capacity %d out of range [%d, %d]", c.RoomCapacity, consts.MinPlayers, consts.MaxPlayers)
	}
	if c.SendBuffer <= 0 {
		return fmt.Errorf("send buffer must be positive, got %d", c.SendBuffer)
	}
	if c.TcpAddr == "" && c.WsAddr == "" {
		return fmt.Errorf("no listen address configured")
	}
	return nil
}
