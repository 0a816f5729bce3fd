package state

import (
	"archive/zip"
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestContextWithEnv(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Log == nil {
		t.Fatal("Environment must have usable logger before configuration is loaded")
	}
	env.Log.Info("nowhere")
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := newLocalEnv()
	time.Sleep(10 * time.Millisecond)
	if up := env.Uptime(); up < 10*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 10ms", up)
	}
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "repmark.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLocalEnv_SetupDefaults(t *testing.T) {
	env := newLocalEnv()
	if err := env.Setup("", false); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if env.Cfg == nil || env.Rpt != nil {
		t.Fatalf("unexpected environment after setup: cfg %v, report %v", env.Cfg, env.Rpt)
	}
	if err := env.Teardown(); err != nil {
		t.Errorf("Teardown() error = %v", err)
	}
}

func TestLocalEnv_SetupBadConfig(t *testing.T) {
	env := newLocalEnv()
	path := writeConfig(t, t.TempDir(), "version: 1\nunknown: true\n")
	if err := env.Setup(path, false); err == nil {
		t.Fatal("expected error for unknown configuration field")
	}
	// partially prepared environment must still tear down
	if err := env.Teardown(); err != nil {
		t.Errorf("Teardown() error = %v", err)
	}
}

func TestLocalEnv_Report(t *testing.T) {
	dir := t.TempDir()
	rpt := filepath.Join(dir, "report.zip")
	path := writeConfig(t, dir, `version: 1
logging:
  console:
    level: none
  file:
    level: none
    destination: `+filepath.Join(dir, "repmark.log")+`
reporting:
  destination: `+rpt+`
`)

	env := newLocalEnv()
	if err := env.Setup(path, true); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	// redirected standard log ends up in the report log
	log.Print("through std log")
	if err := env.Teardown(); err != nil {
		t.Fatalf("Teardown() error = %v", err)
	}
	if env.Rpt != nil {
		t.Error("report must be released by teardown")
	}

	zr, err := zip.OpenReader(rpt)
	if err != nil {
		t.Fatalf("report was not written: %v", err)
	}
	defer zr.Close()
	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{"MANIFEST", "config/effective.yaml", "config/repmark.yaml", "final.log"} {
		if !names[want] {
			t.Errorf("report is missing %q, has %v", want, names)
		}
	}
	if fname := env.Cfg.Logging.PanicLog(); len(fname) > 0 {
		if _, err := os.Stat(fname); err == nil {
			t.Errorf("empty panic log %q must be removed", fname)
		}
	}
}
