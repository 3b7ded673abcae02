package auth

import (
	"fmt"
	"net"
)

// Loopback port range for the consent redirect listener.
const (
	consentPortStart = 8484
	consentPortEnd   = 8500
)

// findAvailablePort finds an available loopback port in the given range.
func findAvailablePort(startPort, endPort int) (int, error) {
	for port := startPort; port <= endPort; port++ {
		addr := fmt.Sprintf("127.0.0.1:%d", port)
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", startPort, endPort)
}
