package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Game     GameConfig     `mapstructure:"game"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Log      LogConfig      `mapstructure:"log"`
	Security SecurityConfig `mapstructure:"security"`
	System   SystemConfig   `mapstructure:"system"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr 监听地址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LogLevel        string        `mapstructure:"log_level"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// 附近地块的查询方式
const (
	NearbyModeBox = "box" // 轴对齐包围盒 |Δq|<=r && |Δr|<=r
	NearbyModeHex = "hex" // 六边形距离
)

// GameConfig 游戏规则配置
type GameConfig struct {
	NearbyMode               string         `mapstructure:"nearby_mode"`
	DefaultRadius            int            `mapstructure:"default_radius"`
	MaxRadius                int            `mapstructure:"max_radius"`
	EnforceInventoryCapacity bool           `mapstructure:"enforce_inventory_capacity"`
	Snapshot                 SnapshotConfig `mapstructure:"snapshot"`
}

// SnapshotConfig 世界状态快照配置
type SnapshotConfig struct {
	Compression string `mapstructure:"compression"` // zstd, none
	Level       string `mapstructure:"level"`       // fastest, default, better, best
}

// CatalogConfig 物品目录配置
type CatalogConfig struct {
	SeedFile    string `mapstructure:"seed_file"`
	SeedOnStart bool   `mapstructure:"seed_on_start"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level   string            `mapstructure:"level"`
	Format  string            `mapstructure:"format"`
	Output  string            `mapstructure:"output"`
	File    LogFileConfig     `mapstructure:"file"`
	Modules map[string]string `mapstructure:"modules"`
}

// LogFileConfig 日志文件配置
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret        string        `mapstructure:"secret"`
	AccessExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshExpiry time.Duration `mapstructure:"refresh_expiry"`
}

// SystemConfig 系统配置
type SystemConfig struct {
	Timezone string `mapstructure:"timezone"`
	MaxProcs int    `mapstructure:"max_procs"`
}

var (
	cfg  *Config
	once sync.Once
	mu   sync.RWMutex
	v    *viper.Viper
)

// Init 初始化配置
func Init(configPath string) error {
	var err error
	once.Do(func() {
		v = viper.New()

		if configPath != "" {
			v.SetConfigFile(configPath)
		} else {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath("./config")
			v.AddConfigPath(".")
		}

		// HEXREALM_DATABASE_DSN -> database.dsn
		v.SetEnvPrefix("HEXREALM")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		setDefaults(v)

		if err = v.ReadInConfig(); err != nil {
			// 配置文件不存在时使用默认配置
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return
			}
			err = nil
		}

		loaded := &Config{}
		if err = v.Unmarshal(loaded); err != nil {
			return
		}
		if err = loaded.Validate(); err != nil {
			return
		}
		cfg = loaded
	})

	return err
}

// Default 返回只包含默认值的配置，不读取文件与环境变量
func Default() *Config {
	dv := viper.New()
	setDefaults(dv)
	c := &Config{}
	_ = dv.Unmarshal(c)
	return c
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "development")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "./data/hexrealm.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("game.nearby_mode", NearbyModeBox)
	v.SetDefault("game.default_radius", 1)
	v.SetDefault("game.max_radius", 0)
	v.SetDefault("game.enforce_inventory_capacity", false)
	v.SetDefault("game.snapshot.compression", "zstd")
	v.SetDefault("game.snapshot.level", "default")

	v.SetDefault("catalog.seed_file", "./config/items.yaml")
	v.SetDefault("catalog.seed_on_start", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file.path", "./logs")
	v.SetDefault("log.file.filename", "hexrealm.log")
	v.SetDefault("log.file.max_size", 100)
	v.SetDefault("log.file.max_age", 30)
	v.SetDefault("log.file.max_backups", 7)
	v.SetDefault("log.file.compress", true)

	v.SetDefault("security.jwt.secret", "change-me-in-production")
	v.SetDefault("security.jwt.access_expiry", "15m")
	v.SetDefault("security.jwt.refresh_expiry", "168h")
}

// Validate 校验配置项
func (c *Config) Validate() error {
	switch c.Game.NearbyMode {
	case NearbyModeBox, NearbyModeHex:
	default:
		return fmt.Errorf("game.nearby_mode 只能是 box 或 hex: %q", c.Game.NearbyMode)
	}
	if c.Game.DefaultRadius < 0 {
		return fmt.Errorf("game.default_radius 不能为负数")
	}
	// max_radius 为 0 表示不限制
	if c.Game.MaxRadius < 0 {
		return fmt.Errorf("game.max_radius 不能为负数")
	}
	if c.Game.MaxRadius > 0 && c.Game.MaxRadius < c.Game.DefaultRadius {
		return fmt.Errorf("game.max_radius 不能小于 default_radius")
	}
	switch c.Game.Snapshot.Compression {
	case "zstd", "none":
	default:
		return fmt.Errorf("game.snapshot.compression 不支持: %q", c.Game.Snapshot.Compression)
	}
	return nil
}

// Get 获取配置实例
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// Watch 监听配置文件变化
func Watch(callback func(*Config)) {
	if v == nil {
		return
	}
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		newCfg := &Config{}
		if err := v.Unmarshal(newCfg); err != nil {
			fmt.Printf("配置重载失败: %v\n", err)
			return
		}
		if err := newCfg.Validate(); err != nil {
			fmt.Printf("配置重载失败: %v\n", err)
			return
		}

		mu.Lock()
		cfg = newCfg
		mu.Unlock()

		// 回调中可能再次调用 Get，必须在释放锁之后执行
		if callback != nil {
			callback(newCfg)
		}

		fmt.Println("配置已重新加载", e.Name)
	})
}

// GetString 获取字符串配置
func GetString(key string) string {
	return v.GetString(key)
}

// ConfigFile 当前使用的配置文件
func ConfigFile() string {
	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}
