package tracer

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/golangid/orderpush/candihelper"
	opentracing "github.com/opentracing/opentracing-go"
	config "github.com/uber/jaeger-client-go/config"
)

// Option for jaeger init
type Option struct {
	AgentHost      string
	Level          string
	BuildNumberTag string
}

// InitJaeger set jaeger as global tracer, returned closer flush pending spans
func InitJaeger(serviceName string, opt Option) (io.Closer, error) {
	if opt.Level != "" {
		serviceName = fmt.Sprintf("%s-%s", serviceName, strings.ToLower(opt.Level))
	}

	tags := []opentracing.Tag{
		{Key: "num_cpu", Value: runtime.NumCPU()},
		{Key: "go_version", Value: runtime.Version()},
		{Key: "service_version", Value: candihelper.Version},
	}
	if opt.BuildNumberTag != "" {
		tags = append(tags, opentracing.Tag{Key: "build_number", Value: opt.BuildNumberTag})
	}

	cfg := &config.Configuration{
		ServiceName: serviceName,
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &config.ReporterConfig{
			BufferFlushInterval: 1 * time.Second,
			LocalAgentHostPort:  opt.AgentHost,
		},
		Tags: tags,
	}
	tracer, closer, err := cfg.NewTracer(config.MaxTagValueLength(math.MaxInt32))
	if err != nil {
		return nil, err
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}
