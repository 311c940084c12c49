package kafka

// Config holds Kafka connection parameters.
type Config struct {
	// SASL configuration for authentication.
	SASLMechanism string // "PLAIN" or "SCRAM-SHA-256" or "SCRAM-SHA-512"
	SASLUsername  string
	SASLPassword  string

	Brokers []string

	// TLS enables TLS for broker connections. TLSCAFile optionally points at
	// a PEM bundle used instead of the system roots.
	TLS         bool
	TLSCAFile   string
	TLSInsecure bool
	SASLEnabled bool
}
