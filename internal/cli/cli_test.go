package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"housepriced/internal/config"
	"housepriced/internal/features"
	"housepriced/pkg/types"
)

const sampleBody = `{"MedInc":8.3,"HouseAge":41,"AveRooms":6.98,"AveBedrms":1.02,"Population":322,"AveOccup":2.56}`

// clearEnv isolates a test from the caller's environment and any .env file.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvPort, config.EnvModelPath, config.EnvStrictStartup,
		config.EnvLogLevel, config.EnvLogFormat, config.EnvLogFile, config.EnvRequestLogLevel,
	} {
		t.Setenv(k, "")
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	args = append(args, "--env-file", "", "--log-level", "off")
	err := Run(args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), err
}

func TestRun_Version(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != Version {
		t.Fatalf("version output = %q", out)
	}
}

func TestRun_CheckModel(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "", "check-model", filepath.Join("testdata", "boosted.json"))
	if err != nil {
		t.Fatalf("check-model: %v", err)
	}
	var info types.ModelInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("decode: %v (%s)", err, out)
	}
	if info.Kind != "tree_ensemble" || info.Trees != 3 || len(info.Features) != 6 {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestRun_CheckModelUsesModelFlag(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "", "check-model", "--model", filepath.Join("testdata", "linear.yaml"))
	if err != nil {
		t.Fatalf("check-model: %v", err)
	}
	if !strings.Contains(out, `"linear"`) {
		t.Fatalf("expected linear kind, got %s", out)
	}
}

func TestRun_CheckModelMissing(t *testing.T) {
	clearEnv(t)
	if _, err := run(t, "", "check-model", filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing artifact")
	}
}

func TestRun_PredictStdin(t *testing.T) {
	clearEnv(t)
	out, err := run(t, sampleBody, "predict", "--model", filepath.Join("testdata", "boosted.json"))
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	var resp types.PredictResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode: %v (%s)", err, out)
	}
	if resp.Status != "success" {
		t.Fatalf("status = %q", resp.Status)
	}
	if d := resp.Prediction.Price100kUnits - 4.42; d > 1e-9 || d < -1e-9 {
		t.Fatalf("price = %v", resp.Prediction.Price100kUnits)
	}
	if resp.Prediction.EstimatedValueUSD != 442000 {
		t.Fatalf("usd = %v", resp.Prediction.EstimatedValueUSD)
	}
}

func TestRun_PredictFile(t *testing.T) {
	clearEnv(t)
	in := filepath.Join(t.TempDir(), "req.json")
	if err := os.WriteFile(in, []byte(sampleBody), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "predict", "-i", in, "--model", filepath.Join("testdata", "linear.yaml"))
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if !strings.Contains(out, `"estimated_value_usd": 426440`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestRun_PredictMissingField(t *testing.T) {
	clearEnv(t)
	out, err := run(t, `{"MedInc":8.3}`, "predict", "--model", filepath.Join("testdata", "boosted.json"))
	if !features.IsMissingField(err) {
		t.Fatalf("expected missing field error, got %v", err)
	}
	var e types.ErrorResponse
	if err := json.Unmarshal([]byte(out), &e); err != nil {
		t.Fatalf("decode: %v (%s)", err, out)
	}
	if !strings.HasPrefix(e.Error, "Missing required fields: 'HouseAge'") {
		t.Fatalf("error = %q", e.Error)
	}
}

func TestRun_PredictRequiresModel(t *testing.T) {
	clearEnv(t)
	_, err := run(t, sampleBody, "predict", "--model", filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "load model") {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestRun_BadPortEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvPort, "http")
	if _, err := run(t, "", "check-model", filepath.Join("testdata", "boosted.json")); err == nil {
		t.Fatalf("expected config error for non-numeric PORT")
	}
}

func TestResolveConfig_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "housepriced.yaml")
	yml := "port: 6000\nmodel_path: from-file.json\nlog_format: json\n"
	if err := os.WriteFile(cfgPath, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvPort, "7000")
	t.Setenv(config.EnvModelPath, "from-env.json")

	opts := &options{}
	cmd := buildRootCmd(opts)
	if err := cmd.ParseFlags([]string{"--config", cfgPath, "--env-file", "", "--port", "8000"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Port != 8000 {
		t.Fatalf("flag should win for port, got %d", cfg.Port)
	}
	if cfg.ModelPath != "from-env.json" {
		t.Fatalf("env should beat file for model path, got %q", cfg.ModelPath)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("file value lost: %q", cfg.LogFormat)
	}
	if cfg.Host != config.DefaultHost || cfg.MaxBodyBytes != config.DefaultMaxBodyBytes {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestResolveConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(config.EnvPort)
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("PORT=5055\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(config.EnvPort) })

	opts := &options{}
	cmd := buildRootCmd(opts)
	if err := cmd.ParseFlags([]string{"--env-file", envFile}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Port != 5055 {
		t.Fatalf("port from .env = %d", cfg.Port)
	}
}

func startServe(t *testing.T, cfg config.Config) (string, context.CancelFunc, <-chan error) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, ln, cfg, zerolog.Nop()) }()
	return "http://" + ln.Addr().String(), cancel, done
}

func TestServe_LenientWithoutModelAndShutdown(t *testing.T) {
	cfg := config.Config{ModelPath: filepath.Join(t.TempDir(), "missing.json")}
	cfg.ApplyDefaults()
	base, cancel, done := startServe(t, cfg)

	resp, err := http.Get(base + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"status":"online"`) {
		t.Fatalf("health: %d %s", resp.StatusCode, body)
	}

	resp, err = http.Get(base + "/readyz")
	if err != nil {
		t.Fatalf("GET /readyz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("readyz = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatalf("serve did not stop")
	}
}

func TestServe_StrictFailsWithoutModel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	cfg := config.Config{ModelPath: filepath.Join(t.TempDir(), "missing.json"), StrictStartup: true}
	cfg.ApplyDefaults()
	if err := serve(context.Background(), ln, cfg, zerolog.Nop()); err == nil {
		t.Fatalf("expected strict startup failure")
	}
}
