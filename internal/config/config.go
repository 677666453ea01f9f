package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Campus    CampusConfig
	Analytics AnalyticsConfig
	Log       LogConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	RealTimeStatsTTL time.Duration
	DemandTTL        time.Duration
}

// CampusConfig — геозона кампуса: центр и радиус грубой проверки.
// Полигон границы и каталог ориентиров вшиты в бинарник.
type CampusConfig struct {
	CenterLat float64
	CenterLng float64
	RadiusKm  float64
}

// AnalyticsConfig — окна и радиусы аналитических запросов
type AnalyticsConfig struct {
	ActiveWindow       time.Duration // окно активных сессий
	BikeWindow         time.Duration // окно отчетов о велосипедах
	NearbyRadiusMeters float64       // радиус анализа активности вокруг точки
	ClusterRadius      float64       // радиус кластера, метры
	PickupRadiusMeters float64       // радиус поиска точек посадки
	DemandDaysBack     int           // историческое окно спроса, дни
	SafetyDaysBack     int           // окно аналитики безопасности, дни
	HistoryCapacity    int           // емкость кольца истории на сессию
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled         bool
	RefreshInterval time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RealTimeStatsTTL: time.Duration(viper.GetInt("REALTIME_CACHE_TTL")) * time.Second,
			DemandTTL:        time.Duration(viper.GetInt("DEMAND_CACHE_TTL")) * time.Second,
		},
		Campus: CampusConfig{
			CenterLat: viper.GetFloat64("CAMPUS_CENTER_LAT"),
			CenterLng: viper.GetFloat64("CAMPUS_CENTER_LNG"),
			RadiusKm:  viper.GetFloat64("CAMPUS_RADIUS_KM"),
		},
		Analytics: AnalyticsConfig{
			ActiveWindow:       time.Duration(viper.GetInt("ANALYTICS_ACTIVE_WINDOW")) * time.Minute,
			BikeWindow:         time.Duration(viper.GetInt("ANALYTICS_BIKE_WINDOW")) * time.Minute,
			NearbyRadiusMeters: viper.GetFloat64("ANALYTICS_NEARBY_RADIUS"),
			ClusterRadius:      viper.GetFloat64("ANALYTICS_CLUSTER_RADIUS"),
			PickupRadiusMeters: viper.GetFloat64("PICKUP_SEARCH_RADIUS"),
			DemandDaysBack:     viper.GetInt("DEMAND_DAYS_BACK"),
			SafetyDaysBack:     viper.GetInt("SAFETY_DAYS_BACK"),
			HistoryCapacity:    viper.GetInt("HISTORY_CAPACITY"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:         viper.GetBool("WORKER_ENABLED"),
			RefreshInterval: time.Duration(viper.GetInt("WORKER_REFRESH_INTERVAL")) * time.Second,
		},
	}

	// Set default values if not provided
	if cfg.Cache.RealTimeStatsTTL == 0 {
		cfg.Cache.RealTimeStatsTTL = 30 * time.Second
	}
	if cfg.Cache.DemandTTL == 0 {
		cfg.Cache.DemandTTL = 5 * time.Minute
	}
	if cfg.Campus.CenterLat == 0 {
		cfg.Campus.CenterLat = 7.5227
	}
	if cfg.Campus.CenterLng == 0 {
		cfg.Campus.CenterLng = 4.5198
	}
	if cfg.Campus.RadiusKm == 0 {
		cfg.Campus.RadiusKm = 5.0
	}
	if cfg.Analytics.ActiveWindow == 0 {
		cfg.Analytics.ActiveWindow = 5 * time.Minute
	}
	if cfg.Analytics.BikeWindow == 0 {
		cfg.Analytics.BikeWindow = 10 * time.Minute
	}
	if cfg.Analytics.NearbyRadiusMeters == 0 {
		cfg.Analytics.NearbyRadiusMeters = 500
	}
	if cfg.Analytics.ClusterRadius == 0 {
		cfg.Analytics.ClusterRadius = 100
	}
	if cfg.Analytics.PickupRadiusMeters == 0 {
		cfg.Analytics.PickupRadiusMeters = 1000
	}
	if cfg.Analytics.DemandDaysBack == 0 {
		cfg.Analytics.DemandDaysBack = 7
	}
	if cfg.Analytics.SafetyDaysBack == 0 {
		cfg.Analytics.SafetyDaysBack = 30
	}
	if cfg.Analytics.HistoryCapacity == 0 {
		cfg.Analytics.HistoryCapacity = 50
	}
	if cfg.Worker.RefreshInterval == 0 {
		cfg.Worker.RefreshInterval = 60 * time.Second
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// CampusCenter возвращает центр кампуса как пару координат
func (c *Config) CampusCenter() (float64, float64) {
	return c.Campus.CenterLat, c.Campus.CenterLng
}
