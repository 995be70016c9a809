package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	Auth      AuthConfig
	HTTP      HTTPConfig
	Firestore FirestoreConfig
	Offline   OfflineConfig
	Stock     StockConfig
	Reports   ReportsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL (cola offline y caché local).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string con URL encoding para caracteres especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

// AuthConfig selecciona cómo se verifica el token Bearer.
type AuthConfig struct {
	Provider string // jwt | firebase
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// FirestoreConfig proyecto y credenciales; CredentialsFile vacío usa las credenciales del entorno.
type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
}

// OfflineConfig cola de escrituras pendientes.
type OfflineConfig struct {
	Enabled      bool
	PingInterval time.Duration
}

// StockConfig umbrales de clasificación y alertas.
type StockConfig struct {
	MinStockDefault          float64
	ConsumptionWindow        int
	FallbackMean             int64
	HighShortageRatio        float64
	AttendanceAlertThreshold float64
}

// ReportsConfig bucket de GCS para archivar reportes; vacío = no se archivan.
type ReportsConfig struct {
	Bucket string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, FIRESTORE_PROJECT_ID, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "farmacia-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "farmacia_offline"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "farmacia-api"),
		},
		Auth: AuthConfig{
			Provider: strings.ToLower(getString(v, "AUTH_PROVIDER", AuthProviderJWT)),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Firestore: FirestoreConfig{
			ProjectID:       getString(v, "FIRESTORE_PROJECT_ID", ""),
			CredentialsFile: getString(v, "GOOGLE_APPLICATION_CREDENTIALS", ""),
		},
		Offline: OfflineConfig{
			Enabled:      getBool(v, "OFFLINE_ENABLED", true),
			PingInterval: getDuration(v, "OFFLINE_PING_INTERVAL", 15*time.Second),
		},
		Stock: StockConfig{
			MinStockDefault:          getFloat(v, "MIN_STOCK_DEFAULT", 10),
			ConsumptionWindow:        getInt(v, "CONSUMPTION_WINDOW", 3),
			FallbackMean:             int64(getInt(v, "FALLBACK_MEAN", 10)),
			HighShortageRatio:        getFloat(v, "HIGH_SHORTAGE_RATIO", 0.20),
			AttendanceAlertThreshold: getFloat(v, "ATTENDANCE_ALERT_THRESHOLD", 80),
		},
		Reports: ReportsConfig{
			Bucket: getString(v, "REPORTS_BUCKET", ""),
		},
	}

	if cfg.Auth.Provider != AuthProviderJWT && cfg.Auth.Provider != AuthProviderFirebase {
		return nil, fmt.Errorf("config: AUTH_PROVIDER inválido %q (jwt|firebase)", cfg.Auth.Provider)
	}
	if cfg.Auth.Provider == AuthProviderFirebase && cfg.Firestore.ProjectID == "" {
		return nil, fmt.Errorf("config: AUTH_PROVIDER=firebase requiere FIRESTORE_PROJECT_ID")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if !v.IsSet(key) {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
	if err != nil {
		return def
	}
	return f
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

// getDuration acepta "30s", "2m" o un número entero de segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
