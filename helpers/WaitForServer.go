package helpers

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// healthTimeout bounds each poll so a server that accepts but never
// answers still uses up an attempt.
var healthTimeout = 2 * time.Second

// WaitForServer polls addr's /health endpoint until it answers 200 OK.
func WaitForServer(addr string, attempts int) error {
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}
	url := strings.TrimRight(addr, "/") + "/health"
	client := &http.Client{Timeout: healthTimeout}

	for i := 0; i < attempts; i++ {
		resp, err := client.Get(url)
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return nil
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("server at %s not ready after %d attempts", addr, attempts)
}
