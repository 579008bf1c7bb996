/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"flag"
	"os"
	"testing"
	"time"
)

func TestBindFlagsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	m := BindFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if m.MetricsBindAddress != ":8080" {
		t.Errorf("MetricsBindAddress = %q, want :8080", m.MetricsBindAddress)
	}
	if m.ReconcileWorkers != 4 {
		t.Errorf("ReconcileWorkers = %d, want 4", m.ReconcileWorkers)
	}
	if m.RecordRetryBaseInterval != 5*time.Second {
		t.Errorf("RecordRetryBaseInterval = %v, want 5s", m.RecordRetryBaseInterval)
	}
}

func TestBindFlagsEnvOverride(t *testing.T) {
	t.Setenv("BINDY_RECONCILE_WORKERS", "10")
	t.Setenv("BINDY_NAMESPACE", "dns-system")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	m := BindFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if m.ReconcileWorkers != 10 {
		t.Errorf("ReconcileWorkers = %d, want 10", m.ReconcileWorkers)
	}
	if m.Namespace != "dns-system" {
		t.Errorf("Namespace = %q, want dns-system", m.Namespace)
	}
}

func TestBindFlagsExplicitFlagWinsOverEnv(t *testing.T) {
	os.Setenv("BINDY_RECONCILE_WORKERS", "10")
	defer os.Unsetenv("BINDY_RECONCILE_WORKERS")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	m := BindFlags(fs)
	if err := fs.Parse([]string{"-reconcile-workers=7"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if m.ReconcileWorkers != 7 {
		t.Errorf("ReconcileWorkers = %d, want 7 (explicit flag overrides env default)", m.ReconcileWorkers)
	}
}
