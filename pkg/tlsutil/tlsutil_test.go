package tlsutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeTempCA generates a self-signed CA certificate and writes it as PEM.
func writeTempCA(t *testing.T) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate CA key: %v", err)
	}

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{Organization: []string{"Test CA"}},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(time.Hour),
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("create CA cert: %v", err)
	}

	path := filepath.Join(t.TempDir(), "ca.pem")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create CA file: %v", err)
	}
	defer f.Close()

	if err := pem.Encode(f, &pem.Block{Type: "CERTIFICATE", Bytes: der}); err != nil {
		t.Fatalf("encode CA PEM: %v", err)
	}

	return path
}

func TestClientConfigDefaults(t *testing.T) {
	cfg, err := ClientConfig("", false)
	if err != nil {
		t.Fatalf("ClientConfig() error = %v", err)
	}

	if cfg.MinVersion != tls.VersionTLS12 {
		t.Errorf("MinVersion = %v, want TLS 1.2", cfg.MinVersion)
	}
	if cfg.InsecureSkipVerify {
		t.Error("InsecureSkipVerify = true, want false")
	}
	if cfg.RootCAs != nil {
		t.Error("RootCAs set without a CA file, want system pool (nil)")
	}
}

func TestClientConfigInsecure(t *testing.T) {
	cfg, err := ClientConfig("", true)
	if err != nil {
		t.Fatalf("ClientConfig() error = %v", err)
	}

	if !cfg.InsecureSkipVerify {
		t.Error("InsecureSkipVerify = false, want true")
	}
}

func TestClientConfigWithCA(t *testing.T) {
	caFile := writeTempCA(t)

	cfg, err := ClientConfig(caFile, false)
	if err != nil {
		t.Fatalf("ClientConfig() error = %v", err)
	}

	if cfg.RootCAs == nil {
		t.Error("RootCAs = nil, want pool containing the CA")
	}
}

func TestClientConfigMissingCAFile(t *testing.T) {
	_, err := ClientConfig(filepath.Join(t.TempDir(), "absent.pem"), false)
	if err == nil {
		t.Fatal("ClientConfig() error = nil, want read failure")
	}
}

func TestClientConfigInvalidCAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.pem")
	if err := os.WriteFile(path, []byte("not a certificate"), 0o600); err != nil {
		t.Fatalf("write bogus CA: %v", err)
	}

	_, err := ClientConfig(path, false)
	if err == nil {
		t.Fatal("ClientConfig() error = nil, want parse failure")
	}
}
