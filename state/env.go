// Package state keeps program wide environment, shared by CLI hooks and
// commands through context.
package state

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"repmark/config"
)

type envKey struct{}

type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	start   time.Time
	undoLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	panic("program environment is missing from context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// Setup loads configuration, opens debug report when requested and replaces
// placeholder logger with configured one. Standard library log is redirected
// until Teardown.
func (e *LocalEnv) Setup(configFile string, report bool) (err error) {
	if e.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return fmt.Errorf("unable to prepare configuration: %w", err)
	}

	if report {
		if e.Rpt, err = e.Cfg.Reporting.Prepare(); err != nil {
			return fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		if data, err := config.Dump(e.Cfg); err == nil {
			e.Rpt.StoreData("config/effective.yaml", data)
		}
		if len(configFile) > 0 {
			e.Rpt.Store("config/"+filepath.Base(configFile), configFile)
		}
	}

	log, err := e.Cfg.Logging.Prepare(e.Rpt)
	if err != nil {
		return fmt.Errorf("unable to prepare logs: %w", err)
	}
	e.Log = log
	e.undoLog = zap.RedirectStdLog(log)
	return nil
}

// Teardown flushes logs and writes debug report. After it returns errors
// could only be reported to stderr.
func (e *LocalEnv) Teardown() (err error) {
	// syncing console is not supported everywhere
	_ = e.Log.Sync()
	if e.undoLog != nil {
		e.undoLog()
		e.undoLog = nil
	}

	if er := e.Rpt.Close(); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
	}
	e.Rpt = nil

	if e.Cfg == nil {
		return err
	}
	if fname := e.Cfg.Logging.PanicLog(); len(fname) > 0 {
		_ = debug.SetCrashOutput(nil, debug.CrashOptions{})
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return err
}
