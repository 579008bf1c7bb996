/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"crypto/tls"
	"flag"
	"os"

	// Import all Kubernetes client auth plugins (e.g. Azure, GCP, OIDC, etc.)
	// to ensure that exec-entrypoint and run can make use of them.
	_ "k8s.io/client-go/plugin/pkg/client/auth"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"
	"sigs.k8s.io/controller-runtime/pkg/webhook"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
	"github.com/firestoned/bindy/internal/config"
	"github.com/firestoned/bindy/internal/controller"
	"github.com/firestoned/bindy/internal/mgmtclient"
	"github.com/firestoned/bindy/internal/workload"
	//+kubebuilder:scaffold:imports
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))

	utilruntime.Must(bindyv1beta1.AddToScheme(scheme))
	//+kubebuilder:scaffold:scheme
}

func main() {
	var mgmtScheme string
	var mgmtToken string

	mgmtScheme = os.Getenv("BINDY_MGMT_SCHEME")
	if mgmtScheme == "" {
		mgmtScheme = "https"
	}
	mgmtToken = os.Getenv("BINDY_MGMT_TOKEN")

	cfg := config.BindFlags(flag.CommandLine)
	flag.StringVar(&mgmtScheme, "mgmt-scheme", mgmtScheme, "The scheme used to reach each instance's management endpoint.")
	opts := zap.Options{
		Development: false,
	}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))
	setupLog.Info("management endpoint scheme", "scheme", mgmtScheme)

	// if the enable-http2 flag is false (the default), http/2 should be disabled
	// due to its vulnerabilities. More specifically, disabling http/2 will
	// prevent from being vulnerable to the HTTP/2 Stream Cancellation and
	// Rapid Reset CVEs. For more information see:
	// - https://github.com/advisories/GHSA-qppj-fm5r-hxr3
	// - https://github.com/advisories/GHSA-4374-p667-p6c8
	disableHTTP2 := func(c *tls.Config) {
		setupLog.Info("disabling http/2")
		c.NextProtos = []string{"http/1.1"}
	}

	tlsOpts := []func(*tls.Config){}
	if !cfg.EnableHTTP2 {
		tlsOpts = append(tlsOpts, disableHTTP2)
	}

	webhookServer := webhook.NewServer(webhook.Options{
		TLSOpts: tlsOpts,
	})

	mgrOpts := ctrl.Options{
		Scheme: scheme,
		Metrics: metricsserver.Options{
			BindAddress:   cfg.MetricsBindAddress,
			SecureServing: cfg.SecureMetrics,
			TLSOpts:       tlsOpts,
		},
		WebhookServer:          webhookServer,
		HealthProbeBindAddress: cfg.ProbeBindAddress,
		LeaderElection:         cfg.EnableLeaderElection,
		LeaderElectionID:       cfg.LeaderElectionID,
	}
	if cfg.Namespace != "" {
		mgrOpts.Cache.DefaultNamespaces = map[string]ctrl.CacheOptions{cfg.Namespace: {}}
	}

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), mgrOpts)
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	mgmtOpts := []mgmtclient.Option{mgmtclient.WithScheme(mgmtScheme)}
	if mgmtToken != "" {
		mgmtOpts = append(mgmtOpts, mgmtclient.WithStaticToken(mgmtToken))
	}
	mgmt := mgmtclient.New(mgmtOpts...)
	wl := workload.New(mgr.GetClient(), mgr.GetScheme())

	recordReconcilers := []interface {
		SetupWithManager(ctrl.Manager) error
	}{
		controller.NewARecordReconciler(mgr.GetClient(), mgr.GetScheme(), mgmt),
		controller.NewAAAARecordReconciler(mgr.GetClient(), mgr.GetScheme(), mgmt),
		controller.NewCNAMERecordReconciler(mgr.GetClient(), mgr.GetScheme(), mgmt),
		controller.NewMXRecordReconciler(mgr.GetClient(), mgr.GetScheme(), mgmt),
		controller.NewTXTRecordReconciler(mgr.GetClient(), mgr.GetScheme(), mgmt),
		controller.NewNSRecordReconciler(mgr.GetClient(), mgr.GetScheme(), mgmt),
		controller.NewSRVRecordReconciler(mgr.GetClient(), mgr.GetScheme(), mgmt),
		controller.NewCAARecordReconciler(mgr.GetClient(), mgr.GetScheme(), mgmt),
	}
	for _, rr := range recordReconcilers {
		if err := rr.SetupWithManager(mgr); err != nil {
			setupLog.Error(err, "unable to create controller", "controller", "Record")
			os.Exit(1)
		}
	}

	if err = (&controller.ZoneReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Mgmt:   mgmt,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "DNSZone")
		os.Exit(1)
	}
	if err = (&controller.ClusterReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "Bind9Cluster")
		os.Exit(1)
	}
	if err = (&controller.InstanceReconciler{
		Client:   mgr.GetClient(),
		Scheme:   mgr.GetScheme(),
		Workload: wl,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "Bind9Instance")
		os.Exit(1)
	}
	//+kubebuilder:scaffold:builder

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		os.Exit(1)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		os.Exit(1)
	}

	setupLog.Info("starting manager")
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "problem running manager")
		os.Exit(1)
	}
}
