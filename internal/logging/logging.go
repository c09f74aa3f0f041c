// Package logging builds the run's zap logger from the CLI logging flags.
// The logger is constructed once by the command layer and passed down
// explicitly; there is no package-level logging state.
package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config captures the logging-related CLI flags.
type Config struct {
	Verbosity int    // number of -v occurrences
	Quiet     bool   // silence all output
	Timestamp string // none, sec, ms or ns
}

// New builds a console logger writing to stderr. The default level is warn;
// one -v raises it to info, two or more to debug. Quiet discards everything.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.Quiet {
		return zap.NewNop(), nil
	}

	encodeTime, err := timeEncoder(cfg.Timestamp)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Level = zap.NewAtomicLevelAt(levelFor(cfg.Verbosity))
	zc.DisableCaller = true
	zc.DisableStacktrace = true
	zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	if encodeTime == nil {
		zc.EncoderConfig.TimeKey = zapcore.OmitKey
	} else {
		zc.EncoderConfig.EncodeTime = encodeTime
	}

	return zc.Build()
}

func levelFor(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// timeEncoder maps the --timestamp flag to a unix-epoch time encoder at the
// requested precision. A nil encoder means timestamps are omitted.
func timeEncoder(timestamp string) (zapcore.TimeEncoder, error) {
	switch timestamp {
	case "", "none":
		return nil, nil
	case "sec":
		return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendInt64(t.Unix())
		}, nil
	case "ms":
		return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendInt64(t.UnixMilli())
		}, nil
	case "ns":
		return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendInt64(t.UnixNano())
		}, nil
	default:
		return nil, fmt.Errorf("invalid value for 'timestamp': %q (expected none, sec, ms or ns)", timestamp)
	}
}
