package e2e

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

var apiURL string

func TestMain(m *testing.M) {
	os.Exit(runTestMain(m))
}

func runTestMain(m *testing.M) int {
	// 1. Build the stub backend binary
	buildPath := filepath.Join(os.TempDir(), "partner-api-stub-test")
	target := "../cmd/stubserver"
	if _, err := os.Stat(target); os.IsNotExist(err) {
		// Running from the repo root instead of e2e/
		if _, err := os.Stat("cmd/stubserver"); err == nil {
			target = "./cmd/stubserver"
		} else {
			fmt.Println("Could not find cmd/stubserver to build")
			return 1
		}
	}
	cmd := exec.Command("go", "build", "-o", buildPath, target)
	output, err := cmd.CombinedOutput()
	if err != nil {
		fmt.Printf("Failed to build stub server: %v\n%s\n", err, output)
		return 1
	}
	defer os.Remove(buildPath)

	// 2. Start it
	port := "3100"
	apiURL = "http://localhost:" + port

	serverCmd := exec.Command(buildPath)
	serverCmd.Env = append(os.Environ(),
		"PORT="+port,
		"STUB_EMAIL=partner@example.com",
		"STUB_PASSWORD=vendtokens1",
	)
	serverCmd.Stdout = os.Stdout
	serverCmd.Stderr = os.Stderr

	if err := serverCmd.Start(); err != nil {
		fmt.Printf("Failed to start stub server: %v\n", err)
		return 1
	}

	// Wait for it to come up
	ready := false
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		resp, err := http.Get(apiURL + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			ready = true
			resp.Body.Close()
			break
		}
	}
	if !ready {
		fmt.Println("Stub server failed to start or is not reachable")
		serverCmd.Process.Kill()
		return 1
	}

	// 3. Run tests
	code := m.Run()

	// 4. Cleanup
	if err := serverCmd.Process.Kill(); err != nil {
		fmt.Printf("Failed to kill stub server: %v\n", err)
	}

	return code
}
