/*
 * Software Name : bindy
 * SPDX-License-Identifier: Apache-2.0
 */

package controller

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	k8sruntime "k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/envtest"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	bindyv1beta1 "github.com/firestoned/bindy/api/v1beta1"
	"github.com/firestoned/bindy/internal/mgmtclient"
	"github.com/firestoned/bindy/internal/workload"
	//+kubebuilder:scaffold:imports
)

// These tests use Ginkgo (BDD-style Go testing framework). Refer to
// http://onsi.github.io/ginkgo/ to learn more about Ginkgo.

var (
	cfg       *rest.Config
	k8sClient client.Client
	testEnv   *envtest.Environment
	testScheme *k8sruntime.Scheme
	mgmt      *mgmtclient.Client
	wl        *workload.Renderer
	ctx       context.Context
	cancel    context.CancelFunc
)

const FIRST_GENERATION = 1

func TestControllers(t *testing.T) {
	RegisterFailHandler(Fail)

	RunSpecs(t, "Controller Suite")
}

var _ = BeforeSuite(func() {
	logf.SetLogger(zap.New(zap.WriteTo(GinkgoWriter), zap.UseDevMode(true)))

	ctx, cancel = context.WithCancel(context.TODO())
	By("bootstrapping test environment")
	testEnv = &envtest.Environment{
		CRDDirectoryPaths:     []string{filepath.Join("..", "..", "config", "crd", "bases")},
		ErrorIfCRDPathMissing: true,

		// The BinaryAssetsDirectory is only required if you want to run the tests directly
		// without call the makefile target test. If not informed it will look for the
		// default path defined in controller-runtime which is /usr/local/kubebuilder/.
		BinaryAssetsDirectory: filepath.Join("..", "..", "bin", "k8s",
			fmt.Sprintf("1.31.0-%s-%s", runtime.GOOS, runtime.GOARCH)),
	}

	var err error
	cfg, err = testEnv.Start()
	Expect(err).NotTo(HaveOccurred())
	Expect(cfg).NotTo(BeNil())

	testScheme = scheme.Scheme
	err = bindyv1beta1.AddToScheme(testScheme)
	Expect(err).NotTo(HaveOccurred())

	//+kubebuilder:scaffold:scheme

	k8sClient, err = client.New(cfg, client.Options{Scheme: testScheme})
	Expect(err).NotTo(HaveOccurred())
	Expect(k8sClient).NotTo(BeNil())

	k8sManager, err := ctrl.NewManager(cfg, ctrl.Options{
		Scheme: testScheme,
	})
	Expect(err).ToNot(HaveOccurred())

	mgmt = mgmtclient.New(mgmtclient.WithHTTPClient(newFakeManagementHTTPClient()), mgmtclient.WithScheme("http"))
	wl = workload.New(k8sManager.GetClient(), k8sManager.GetScheme())

	for _, rr := range []interface {
		SetupWithManager(ctrl.Manager) error
	}{
		NewARecordReconciler(k8sManager.GetClient(), k8sManager.GetScheme(), mgmt),
		NewAAAARecordReconciler(k8sManager.GetClient(), k8sManager.GetScheme(), mgmt),
		NewCNAMERecordReconciler(k8sManager.GetClient(), k8sManager.GetScheme(), mgmt),
		NewMXRecordReconciler(k8sManager.GetClient(), k8sManager.GetScheme(), mgmt),
		NewTXTRecordReconciler(k8sManager.GetClient(), k8sManager.GetScheme(), mgmt),
		NewNSRecordReconciler(k8sManager.GetClient(), k8sManager.GetScheme(), mgmt),
		NewSRVRecordReconciler(k8sManager.GetClient(), k8sManager.GetScheme(), mgmt),
		NewCAARecordReconciler(k8sManager.GetClient(), k8sManager.GetScheme(), mgmt),
	} {
		Expect(rr.SetupWithManager(k8sManager)).To(Succeed())
	}

	Expect((&ZoneReconciler{
		Client: k8sManager.GetClient(),
		Scheme: k8sManager.GetScheme(),
		Mgmt:   mgmt,
	}).SetupWithManager(k8sManager)).To(Succeed())

	Expect((&ClusterReconciler{
		Client: k8sManager.GetClient(),
		Scheme: k8sManager.GetScheme(),
	}).SetupWithManager(k8sManager)).To(Succeed())

	Expect((&InstanceReconciler{
		Client:   k8sManager.GetClient(),
		Scheme:   k8sManager.GetScheme(),
		Workload: wl,
	}).SetupWithManager(k8sManager)).To(Succeed())

	go func() {
		defer GinkgoRecover()
		err = k8sManager.Start(ctx)
		Expect(err).ToNot(HaveOccurred(), "failed to run manager")
	}()

	By("creating application namespaces")
	for _, n := range []string{"example1", "example2", "example3"} {
		ns := &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: n}}
		_, err = controllerutil.CreateOrUpdate(ctx, k8sClient, ns, func() error { return nil })
		Expect(err).Should(Succeed())
	}
})

var _ = AfterSuite(func() {
	cancel()
	By("tearing down the test environment")
	err := testEnv.Stop()
	Expect(err).NotTo(HaveOccurred())
})
