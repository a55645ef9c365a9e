package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BoardPath         string   `yaml:"board-path" env-default:"data/board.json"`
	ChancePath        string   `yaml:"chance-path" env-default:"data/chance.json"`
	CommunityPath     string   `yaml:"community-chest-path" env-default:"data/community_chest.json"`
	SQLiteStoragePath string   `yaml:"sqlite-storage-path" env-default:"saves.db"`
	SnapshotDir       string   `yaml:"snapshot-dir" env-default:"snapshots"`
	Redis             Redis    `yaml:"redis"`
	Rules             Rules    `yaml:"rules"`
	SpeedDie          SpeedDie `yaml:"speed-die"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Rules holds the fixed rule set of a single game.
type Rules struct {
	StartingBalance  int  `yaml:"starting-balance" env-default:"1500"`
	BaseSalary       int  `yaml:"base-salary" env-default:"200"`
	DoubleSalaryOnGo bool `yaml:"double-salary-on-go" env-default:"false"`
	BailAmount       int  `yaml:"bail-amount" env-default:"50"`
	MaxJailTurns     int  `yaml:"max-jail-turns" env-default:"3"`
	RentInJail       bool `yaml:"rent-in-jail" env-default:"true"`
	Houses           int  `yaml:"houses" env-default:"32"`
	Hotels           int  `yaml:"hotels" env-default:"12"`
	DiceSize         int  `yaml:"dice-size" env-default:"6"`
}

// SpeedDie configures the optional third die. Numeric faces add to the
// movement total; the remaining faces show the bus or Mr. Monopoly symbol.
type SpeedDie struct {
	Active          bool `yaml:"active" env-default:"false"`
	Size            int  `yaml:"size" env-default:"6"`
	BusFaces        int  `yaml:"bus-faces" env-default:"1"`
	MrMonopolyFaces int  `yaml:"mr-monopoly-faces" env-default:"2"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
