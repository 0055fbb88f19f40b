package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"net/http"
	"stegobmp/pkg/config"
	"time"

	_ "stegobmp/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"

	defaultsKey = "stego_defaults"

	shutdownTimeout = 10 * time.Second
)

// StartServer godoc
// @title stegobmp API
// @version 1.0
// @description An API to hide files in 24-bit BMP images with LSB1, LSB4 and LSBI, and to find them again
// @BasePath /api/v1
func StartServer(ctx context.Context, port int, defaults config.StegoConfig) error {
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: NewRouter(defaults)}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// NewRouter builds the API. Requests that leave options unset get them from defaults
func NewRouter(defaults config.StegoConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.Use(func(ctx *gin.Context) {
		ctx.Set(defaultsKey, defaults)
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/embed", EmbedHandler)
	v1.POST("/embed/binary", EmbedBinaryHandler)
	v1.POST("/extract", ExtractHandler)
	v1.POST("/analyze", AnalyzeHandler)
	v1.POST("/capacity", CapacityHandler)
	return r
}

// stegoConfig merges the options of a request with the server defaults
func stegoConfig(ctx *gin.Context, requested config.StegoConfig) config.StegoConfig {
	defaults, _ := ctx.MustGet(defaultsKey).(config.StegoConfig)
	return requested.Merge(defaults)
}

type accessLog struct {
	Timestamp      string `json:"timestamp"`
	StatusCode     int    `json:"status_code"`
	Latency        string `json:"latency"`
	LatencyRaw     int64  `json:"latency_raw"`
	RequestSize    string `json:"request_size"`
	RequestSizeRaw int    `json:"request_size_raw"`
	ClientIP       string `json:"client_ip"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Error          string `json:"error,omitempty"`
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	bodySize := max(param.BodySize, 0)
	entry, err := json.Marshal(accessLog{
		Timestamp:      param.TimeStamp.Format(RFC3339Millis),
		StatusCode:     param.StatusCode,
		Latency:        param.Latency.String(),
		LatencyRaw:     int64(param.Latency),
		RequestSize:    humanize.Bytes(uint64(bodySize)),
		RequestSizeRaw: bodySize,
		ClientIP:       param.ClientIP,
		Method:         param.Method,
		Path:           param.Path,
		Error:          param.ErrorMessage,
	})
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}\n", err.Error())
	}
	return string(entry) + "\n"
}
