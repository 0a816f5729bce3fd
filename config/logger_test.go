package config

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"
)

func TestLoggingPrepare_Off(t *testing.T) {
	dir := t.TempDir()
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none", Destination: filepath.Join(dir, "repmark.log")},
	}
	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Info("nowhere")

	if _, err := os.Stat(conf.FileLogger.Destination); err == nil {
		t.Error("log file must not be created when file logging is off")
	}
	if conf.PanicLog() != "" {
		t.Errorf("PanicLog() = %q, want empty", conf.PanicLog())
	}
}

func TestLoggingPrepare_ReportForcesDebugFile(t *testing.T) {
	t.Cleanup(func() { _ = debug.SetCrashOutput(nil, debug.CrashOptions{}) })

	dir := t.TempDir()
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none", Destination: filepath.Join(dir, "repmark.log")},
	}
	rpt := &Report{entries: make(map[string]entry)}

	log, err := conf.Prepare(rpt)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("layout details")
	_ = log.Sync()

	data, err := os.ReadFile(conf.FileLogger.Destination)
	if err != nil {
		t.Fatalf("log file was not created: %v", err)
	}
	if !strings.Contains(string(data), "layout details") {
		t.Errorf("debug message missing from log file:\n%s", data)
	}
	if _, ok := rpt.entries["final.log"]; !ok {
		t.Error("log file must be stored in report")
	}
	if want := filepath.Join(dir, "repmark-panic.log"); conf.PanicLog() != want {
		t.Errorf("PanicLog() = %q, want %q", conf.PanicLog(), want)
	}
}

func TestMinLevel(t *testing.T) {
	for _, level := range []string{"debug", "normal"} {
		if _, ok := minLevel(level); !ok {
			t.Errorf("minLevel(%q) reports logging off", level)
		}
	}
	if _, ok := minLevel("none"); ok {
		t.Error("minLevel(none) reports logging on")
	}
}
