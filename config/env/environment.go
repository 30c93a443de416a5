package env

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golangid/orderpush/candihelper"
	"github.com/joho/godotenv"
)

// Env model
type Env struct {
	ServiceName string
	BuildNumber string
	Environment string
	DebugMode   bool

	// HTTPPort config
	HTTPPort uint16
	// AllowedOrigins for websocket upgrade and CORS, "*" allow all
	AllowedOrigins []string
	// EmitSecret shared secret for publish gateway
	EmitSecret string

	// WSSendBuffer outbound buffer size per connection
	WSSendBuffer int
	// WSMaxMessageSize max inbound client frame size in bytes
	WSMaxMessageSize int64

	// UseOrderService mount order management routes
	UseOrderService bool
	// OrderStore "memory" or "redis"
	OrderStore string
	// OrderNumbering default numbering mode
	OrderNumbering string
	// ShopNumbering per shop numbering override
	ShopNumbering map[string]string
	// OrderNumberDigits zero padded width of generated order number
	OrderNumberDigits int
	// OrderTimezone location used to compute order day
	OrderTimezone *time.Location
	// EmitURL remote publish gateway, empty means in-process
	EmitURL string

	Redis struct {
		Host, Port, Auth string
		TLS              bool
	}

	// JaegerTracingHost env
	JaegerTracingHost string

	// BasicAuthUsername config
	BasicAuthUsername string
	// BasicAuthPassword config
	BasicAuthPassword string

	StartAt string
}

const (
	// OrderStoreMemory in process order store
	OrderStoreMemory = "memory"
	// OrderStoreRedis redis order store
	OrderStoreRedis = "redis"

	// NumberingSequential per shop per day counter
	NumberingSequential = "sequential"
	// NumberingRandom random number
	NumberingRandom = "random"
)

var env Env

// BaseEnv get global basic environment
func BaseEnv() Env {
	return env
}

// SetEnv set env for mocking data env
func SetEnv(newEnv Env) {
	env = newEnv
}

// Load environment, panic if there is invalid value
func Load(serviceName string) {
	// load main .env, environment variable already set in process take precedence
	if err := godotenv.Load(os.Getenv(candihelper.WORKDIR) + ".env"); err != nil {
		log.Printf("Warning: load env, %v", err)
	}

	e, mErrs := Parse(serviceName)
	if mErrs.HasError() {
		panic("Environment error: \n" + mErrs.Error())
	}
	env = e
}

// Parse read environment from current process
func Parse(serviceName string) (e Env, mErrs candihelper.MultiError) {
	mErrs = candihelper.NewMultiError()

	e.ServiceName = serviceName
	e.BuildNumber = os.Getenv("BUILD_NUMBER")
	e.Environment = os.Getenv("ENVIRONMENT")
	e.DebugMode = parseBool("DEBUG_MODE", false)
	e.StartAt = time.Now().Format(time.RFC3339)

	port, err := parseInt("HTTP_PORT", 3000)
	if err != nil || port <= 0 || port > 65535 {
		mErrs.Append("HTTP_PORT", errors.New("invalid value for HTTP_PORT environment"))
	}
	e.HTTPPort = uint16(port)

	e.AllowedOrigins = candihelper.ParseCSV(os.Getenv("ALLOWED_ORIGINS"))
	if len(e.AllowedOrigins) == 0 {
		e.AllowedOrigins = []string{"*"}
	}

	if e.EmitSecret = os.Getenv("EMIT_SECRET"); e.EmitSecret == "" {
		mErrs.Append("EMIT_SECRET", errors.New("missing value for EMIT_SECRET environment"))
	}

	if e.WSSendBuffer, err = parseInt("WS_SEND_BUFFER", 32); err != nil || e.WSSendBuffer <= 0 {
		mErrs.Append("WS_SEND_BUFFER", errors.New("invalid value for WS_SEND_BUFFER environment"))
	}
	maxSize, err := parseInt("WS_MAX_MESSAGE_SIZE", int(4*candihelper.KByte))
	if err != nil || maxSize <= 0 {
		mErrs.Append("WS_MAX_MESSAGE_SIZE", errors.New("invalid value for WS_MAX_MESSAGE_SIZE environment"))
	}
	e.WSMaxMessageSize = int64(maxSize)

	e.UseOrderService = parseBool("USE_ORDER_SERVICE", true)
	e.OrderStore = strings.ToLower(valueOrDefault("ORDER_STORE", OrderStoreMemory))
	if !candihelper.StringInSlice(e.OrderStore, []string{OrderStoreMemory, OrderStoreRedis}) {
		mErrs.Append("ORDER_STORE", fmt.Errorf("invalid value %q for ORDER_STORE environment", e.OrderStore))
	}
	e.Redis.Host = os.Getenv("REDIS_HOST")
	e.Redis.Port = valueOrDefault("REDIS_PORT", "6379")
	e.Redis.Auth = os.Getenv("REDIS_AUTH")
	e.Redis.TLS = parseBool("REDIS_TLS", false)
	if e.UseOrderService && e.OrderStore == OrderStoreRedis && e.Redis.Host == "" {
		mErrs.Append("REDIS_HOST", errors.New("missing value for REDIS_HOST environment"))
	}

	e.OrderNumbering = strings.ToLower(valueOrDefault("ORDER_NUMBERING", NumberingSequential))
	if !isNumberingMode(e.OrderNumbering) {
		mErrs.Append("ORDER_NUMBERING", fmt.Errorf("invalid value %q for ORDER_NUMBERING environment", e.OrderNumbering))
	}
	e.ShopNumbering = candihelper.ParseKeyValueCSV(os.Getenv("SHOP_NUMBERING"))
	for shop, mode := range e.ShopNumbering {
		mode = strings.ToLower(mode)
		if !isNumberingMode(mode) {
			mErrs.Append("SHOP_NUMBERING", fmt.Errorf("invalid numbering %q for shop %q", mode, shop))
		}
		e.ShopNumbering[shop] = mode
	}
	if e.OrderNumberDigits, err = parseInt("ORDER_NUMBER_DIGITS", 3); err != nil || e.OrderNumberDigits < 1 || e.OrderNumberDigits > 9 {
		mErrs.Append("ORDER_NUMBER_DIGITS", errors.New("invalid value for ORDER_NUMBER_DIGITS environment, must be 1..9"))
	}
	e.OrderTimezone = time.Local
	if tz := os.Getenv("ORDER_TIMEZONE"); tz != "" {
		if e.OrderTimezone, err = time.LoadLocation(tz); err != nil {
			mErrs.Append("ORDER_TIMEZONE", err)
		}
	}
	e.EmitURL = strings.TrimSuffix(os.Getenv("EMIT_URL"), "/")

	e.JaegerTracingHost = os.Getenv("JAEGER_TRACING_HOST")
	e.BasicAuthUsername = os.Getenv("BASIC_AUTH_USERNAME")
	e.BasicAuthPassword = os.Getenv("BASIC_AUTH_PASSWORD")

	return e, mErrs
}

func isNumberingMode(mode string) bool {
	return mode == NumberingSequential || mode == NumberingRandom
}

func valueOrDefault(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}

func parseBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}

func parseInt(key string, defaultValue int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(v)
}
