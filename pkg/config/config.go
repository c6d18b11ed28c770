package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a .env file).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Company CompanyConfig
	Gateway GatewayConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// CompanyConfig is the fiscal identity of the reporting taxpayer. These are
// jurisdiction constants for a deployment, not per-request data.
type CompanyConfig struct {
	Name     string
	TPIN     string // 10-digit taxpayer ID
	BranchID string // bhfId assigned by the authority
	SdcID    string // original SDC device ID (orgSdcId on credit/debit notes)
	Currency string // company base currency, ZMW
}

// GatewayConfig holds the Smart Invoice endpoint URLs and submission policy.
// Every URL is deployment-specific and editable; the defaults point at the
// public sandbox VSDC.
type GatewayConfig struct {
	SalesEndpoint           string
	PurchaseEndpoint        string
	PurchaseSelectEndpoint  string
	ItemSaveEndpoint        string
	ItemUpdateEndpoint      string
	ItemCompositionEndpoint string
	ImportSelectEndpoint    string
	ImportUpdateEndpoint    string
	StockIOEndpoint         string
	StockMasterEndpoint     string
	ClassificationEndpoint  string
	CommonCodesEndpoint     string

	// TimeoutSeconds bounds each gateway call; 0 disables the timeout and
	// reproduces the legacy unbounded blocking behavior.
	TimeoutSeconds int

	// StrictStock makes stock I/O and stock master submission failures abort
	// the confirmation instead of being logged and swallowed.
	StrictStock bool
}

// DBConfig PostgreSQL settings. A non-empty DatabaseURL wins over the
// individual fields.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns the DSN to use: DATABASE_URL if set, else DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds the PostgreSQL connection string with URL-encoded credentials.
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

// JWTConfig auth token settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// HTTPConfig listen settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

const sandboxBase = "http://vsdc.iswe.co.zm/sandbox"

// Load reads configuration from env vars (and optionally a .env file).
// Env vars take priority.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "smartinvoice"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "smartinvoice"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "smartinvoice"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Company: CompanyConfig{
			Name:     getString(v, "COMPANY_NAME", ""),
			TPIN:     getString(v, "COMPANY_TPIN", ""),
			BranchID: getString(v, "COMPANY_BHF_ID", "000"),
			SdcID:    getString(v, "COMPANY_SDC_ID", ""),
			Currency: getString(v, "COMPANY_CURRENCY", "ZMW"),
		},
		Gateway: GatewayConfig{
			SalesEndpoint:           getString(v, "ZRA_SALES_ENDPOINT", sandboxBase+"/trnsSales/saveSales"),
			PurchaseEndpoint:        getString(v, "ZRA_PURCHASE_ENDPOINT", sandboxBase+"/trnsPurchase/savePurchase"),
			PurchaseSelectEndpoint:  getString(v, "ZRA_PURCHASE_SELECT_ENDPOINT", sandboxBase+"/trnsPurchase/selectTrnsPurchaseSales"),
			ItemSaveEndpoint:        getString(v, "ZRA_ITEM_SAVE_ENDPOINT", sandboxBase+"/items/saveItem"),
			ItemUpdateEndpoint:      getString(v, "ZRA_ITEM_UPDATE_ENDPOINT", sandboxBase+"/items/updateItem"),
			ItemCompositionEndpoint: getString(v, "ZRA_ITEM_COMPOSITION_ENDPOINT", sandboxBase+"/items/saveItemComposition"),
			ImportSelectEndpoint:    getString(v, "ZRA_IMPORT_SELECT_ENDPOINT", sandboxBase+"/imports/selectImportItems"),
			ImportUpdateEndpoint:    getString(v, "ZRA_IMPORT_UPDATE_ENDPOINT", sandboxBase+"/imports/updateImportItems"),
			StockIOEndpoint:         getString(v, "ZRA_STOCK_IO_ENDPOINT", sandboxBase+"/stock/saveStockItems"),
			StockMasterEndpoint:     getString(v, "ZRA_STOCK_MASTER_ENDPOINT", sandboxBase+"/stockMaster/saveStockMaster"),
			ClassificationEndpoint:  getString(v, "ZRA_CLASSIFICATION_ENDPOINT", sandboxBase+"/itemClass/selectItemsClass"),
			CommonCodesEndpoint:     getString(v, "ZRA_COMMON_CODES_ENDPOINT", sandboxBase+"/code/selectCodes"),
			TimeoutSeconds:          getInt(v, "GATEWAY_TIMEOUT_SECONDS", 60),
			StrictStock:             getBool(v, "GATEWAY_STRICT_STOCK", false),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
