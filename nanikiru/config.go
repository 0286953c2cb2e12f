package nanikiru

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kevin-chtw/tw_nanikiru/mahjong"
	"github.com/kevin-chtw/tw_nanikiru/ting"
)

type Config struct {
	Rule     string `mapstructure:"rule"`
	HandSize int    `mapstructure:"hand_size"`
	Seed     uint64 `mapstructure:"seed"` // 0 表示使用运行时随机源
	RedFives bool   `mapstructure:"red_fives"`
	Workers  int    `mapstructure:"workers"`
	LogLevel string `mapstructure:"log_level"`
	LogDir   string `mapstructure:"log_dir"`

	Manual *mahjong.Manual `mapstructure:"-"`
}

func setDefaults(vp *viper.Viper) {
	vp.SetDefault("rule", ting.RuleRiichi)
	vp.SetDefault("hand_size", mahjong.TileCountInitBanker)
	vp.SetDefault("seed", 0)
	vp.SetDefault("red_fives", false)
	vp.SetDefault("workers", 4)
	vp.SetDefault("log_level", "info")
	vp.SetDefault("log_dir", "./logs")
}

// DefaultConfig 不读文件时的默认配置
func DefaultConfig() *Config {
	cfg, err := NewConfig(viper.New())
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfig 读取 yaml 配置，如 etc/nanikiru.yaml
func LoadConfig(file string) (*Config, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetConfigFile(file)
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}
	return NewConfig(vp)
}

func NewConfig(vp *viper.Viper) (*Config, error) {
	setDefaults(vp)
	cfg := &Config{}
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.HandSize < 2 || cfg.HandSize > mahjong.TileCountTotal {
		return nil, fmt.Errorf("%w: hand_size %d", mahjong.ErrDrawSize, cfg.HandSize)
	}
	manual, err := mahjong.NewManual(vp.Sub("manual"))
	if err != nil {
		return nil, err
	}
	cfg.Manual = manual
	return cfg, nil
}

// NewRuleSet 按配置创建求解器
func (c *Config) NewRuleSet() (*ting.RuleSet, error) {
	return ting.NewRuleSet(c.Rule, ting.WithHandCount(c.HandSize))
}

// NewDealer 按配置创建发牌器
func (c *Config) NewDealer() *mahjong.Dealer {
	var opts []mahjong.DealerOption
	if c.RedFives {
		opts = append(opts, mahjong.WithRedFives())
	}
	if c.Seed != 0 {
		return mahjong.NewSeededDealer(c.Seed, opts...)
	}
	return mahjong.NewRandomDealer(opts...)
}
