// Package tlsutil provides helpers for loading client TLS configuration for
// broker and database connections.
package tlsutil

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// ClientConfig builds a client *tls.Config.
// If caFile is provided, it is used as the root CA; otherwise the system CA
// pool is used. Set insecureSkipVerify to true only for development/testing.
func ClientConfig(caFile string, insecureSkipVerify bool) (*tls.Config, error) {
	tlsCfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: insecureSkipVerify, //nolint:gosec // intentional for dev use
	}

	if caFile != "" {
		caPEM, err := os.ReadFile(caFile)
		if err != nil {
			return nil, fmt.Errorf("tlsutil: read CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("tlsutil: failed to parse CA certificate from %s", caFile)
		}
		tlsCfg.RootCAs = pool
	}

	return tlsCfg, nil
}

// ClientConfigWithKeyPair builds a client *tls.Config that presents a client
// certificate, for brokers requiring mutual TLS.
func ClientConfigWithKeyPair(caFile, certFile, keyFile string) (*tls.Config, error) {
	tlsCfg, err := ClientConfig(caFile, false)
	if err != nil {
		return nil, err
	}

	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: load client key pair: %w", err)
	}
	tlsCfg.Certificates = []tls.Certificate{cert}

	return tlsCfg, nil
}
