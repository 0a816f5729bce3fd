package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"repmark/misc"
)

type LoggerConfig struct {
	Level       string `yaml:"level" validate:"required,oneof=none debug normal"`
	Destination string `yaml:"destination,omitempty" sanitize:"path_clean,assure_dir_exists_for_file" validate:"omitempty,filepath"`
	Mode        string `yaml:"mode,omitempty" validate:"omitempty,oneof=append overwrite"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`

	panicLog string
}

// PanicLog returns name of the file receiving runtime crash output, empty
// when file logging is off.
func (conf *LoggingConfig) PanicLog() string {
	return conf.panicLog
}

// lowest enabled level for configured verbosity, false when logging is off.
func minLevel(level string) (zapcore.Level, bool) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, true
	case "normal":
		return zapcore.InfoLevel, true
	}
	return zapcore.InfoLevel, false
}

func consoleEncoder(stream *os.File) zapcore.Encoder {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(stream) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return zapcore.NewConsoleEncoder(ec)
}

// Prepare returns our standard logger - configured zap logger for use by the
// program. Messages below error level go to stdout, errors go to stderr. When
// debug report is requested file log is always written with debug level and
// stored in the report.
func (conf *LoggingConfig) Prepare(rpt *Report) (*zap.Logger, error) {
	cores := make([]zapcore.Core, 0, 3)

	if lvl, ok := minLevel(conf.ConsoleLogger.Level); ok {
		cores = append(cores,
			zapcore.NewCore(consoleEncoder(os.Stdout), zapcore.Lock(os.Stdout),
				zap.LevelEnablerFunc(func(l zapcore.Level) bool {
					return lvl <= l && l < zapcore.ErrorLevel
				})),
			zapcore.NewCore(consoleEncoder(os.Stderr), zapcore.Lock(os.Stderr),
				zap.LevelEnablerFunc(func(l zapcore.Level) bool {
					return l >= zapcore.ErrorLevel
				})),
		)
	}

	level, mode, dest := conf.FileLogger.Level, conf.FileLogger.Mode, conf.FileLogger.Destination
	if rpt != nil {
		level, mode = "debug", "overwrite"
		if len(dest) == 0 {
			dest = misc.GetAppName() + ".log"
		}
	}

	var redirected string
	if lvl, ok := minLevel(level); ok {
		conf.panicLog = capturePanics(filepath.Dir(dest), mode, rpt)

		f, err := openLog(dest, mode)
		if err != nil {
			if f, err = os.CreateTemp("", misc.GetAppName()+".*.log"); err != nil {
				return nil, fmt.Errorf("unable to access file log destination (%s): %w", dest, err)
			}
			redirected = f.Name()
		}
		rpt.Store("final.log", f.Name())
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), zap.NewAtomicLevelAt(lvl)))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	if len(redirected) != 0 {
		log.Warn("Log file was redirected to new location", zap.String("location", redirected))
	}
	return log.Named(misc.GetAppName()), nil
}

func openLog(fname, mode string) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if mode == "append" {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(fname, flags, 0644)
}

// capturePanics directs runtime crash output next to the log file and
// returns its name. Failures are quietly ignored.
func capturePanics(dir, mode string, rpt *Report) string {
	ef, err := openLog(filepath.Join(dir, misc.GetAppName()+"-panic.log"), mode)
	if err != nil {
		if ef, err = os.CreateTemp("", misc.GetAppName()+"-panic.*.log"); err != nil {
			return ""
		}
	}
	defer ef.Close()
	if err := debug.SetCrashOutput(ef, debug.CrashOptions{}); err != nil {
		return ""
	}
	rpt.Store("panic.log", ef.Name())
	return ef.Name()
}
