package logging

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

// Level 日志级别，与zapcore保持一致
type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

type Options struct {
	Level      string `yaml:"level"`    // debug|info|warn|error
	FileName   string `yaml:"file"`     // 日志文件，为空时仅输出到控制台
	MaxSize    int    `yaml:"max-size"` // 单个文件最大MB
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"` // 天
	Compress   bool   `yaml:"compress"`
}

var (
	once          sync.Once
	defaultLogger *zap.SugaredLogger
)

var searchDirs = []string{".", "./config", "../config", "../../config", "../../../config"}

// GetDefaultLogger 获取默认日志实例
// 首次调用时初始化，存在config/logging.yaml则按其配置
func GetDefaultLogger() *zap.SugaredLogger {
	once.Do(func() {
		opts := Options{Level: "debug"}
		for _, dir := range searchDirs {
			bts, err := os.ReadFile(filepath.Join(dir, "logging.yaml"))
			if err != nil {
				continue
			}
			_ = yaml.Unmarshal(bts, &opts)
			break
		}
		defaultLogger = NewLogger(opts)
	})
	return defaultLogger
}

func NewLogger(opts Options) *zap.SugaredLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encCfg)

	level := parseLevel(opts.Level)
	ws := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if opts.FileName != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.FileName,
			MaxSize:    defaultInt(opts.MaxSize, 100),
			MaxBackups: defaultInt(opts.MaxBackups, 10),
			MaxAge:     defaultInt(opts.MaxAge, 30),
			Compress:   opts.Compress,
		}
		ws = append(ws, zapcore.AddSync(rotator))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(ws...), level)
	return zap.New(core, zap.AddCaller()).Sugar()
}

func parseLevel(s string) Level {
	switch s {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func defaultInt(v, d int) int {
	if v == 0 {
		return d
	}
	return v
}
