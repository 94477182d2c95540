package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	sampleBlocks = 60 // Number of RESULT tables in the generated McUtils log
)

var (
	sockets = []string{"socket0", "socket1"}
	mcs     = []string{"0", "1"}
	chs     = []string{"0", "1", "2"}
)

const ethtoolLog = `eth0: flags=4163<UP,BROADCAST,RUNNING,MULTICAST>  mtu 1500
        inet 10.0.0.12  netmask 255.255.255.0  broadcast 10.0.0.255
        ether 08:00:27:4e:66:a1  txqueuelen 1000  (Ethernet)
        RX packets 1024  bytes 204800 (200.0 KiB)
        RX errors 0  dropped 0  overruns 0  frame 0
        TX packets 512  bytes 102400 (100.0 KiB)
        TX errors 0  dropped 0 overruns 0  carrier 0  collisions 0
	Speed: 10000Mb/s
	Duplex: Full
	Link detected: yes
lo: flags=73<UP,LOOPBACK,RUNNING>  mtu 65536
        inet 127.0.0.1  netmask 255.0.0.0
NIC statistics:
     rx_bytes: 204800
     tx_bytes: 102400
     rx_packets: 1024
     tx_packets: 512
     rx_size_64.nic: 100
     rx_size_65_to_127.nic: 50
     tx_size_64.nic: 70
`

// ### End - fixed configs

type bandwidthReport struct {
	AnalysisID string `json:"analysisId"`
	Digest     string `json:"digest"`
	Samples    []struct {
		Socket string `json:"socket"`
	} `json:"samples"`
	Statistics []struct {
		Mc          string  `json:"mc"`
		Ch          string  `json:"ch"`
		SampleCount int     `json:"sampleCount"`
		P95Read     float64 `json:"p95Read"`
	} `json:"statistics"`
}

type networkReport struct {
	AnalysisID string `json:"analysisId"`
	Interfaces []struct {
		Port string `json:"port"`
	} `json:"interfaces"`
	LinkStatistics map[string]uint64 `json:"linkStatistics"`
}

// main runs the e2e scenario: 001_repeated_log_analysis
//
// This scenario uploads the same McUtils bandwidth log many times, concurrently and
// with different filters, then uploads one ifconfig/ethtool log.
//
// What it tests:
//   - McUtils analysis via POST /analyses/mcutils, raw body and multipart upload
//   - Repeatable socket/mc/ch filters
//   - Concurrent uploads of identical bytes share one analysis (same analysisId)
//   - ethtool analysis via POST /analyses/ethtool
//   - Archived results and uploads written to the file storage directory
//
// Expected results:
//   - Every request returns 200
//   - All McUtils responses carry the same analysisId and digest
//   - The unfiltered report holds 60 * 12 samples and 6 statistics rows (mc x ch) per socket filter
//   - The ethtool report lists eth0 and lo
//   - <file-storage>/analysis-results/{mcutils,ethtool}/<digest>.json exist after archiving
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"    // Base URL of the analytics API server
	requests := 200                       // Number of McUtils uploads of the same log
	parallel := 8                         // Number of concurrent requests
	fileStorageDir := ".tmp/file-storage" // File storage directory path relative to project root
	wantCleanFileStorage := true          // If true, clean up file storage directory before running scenario

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	storagePath, err := filepath.Abs(filepath.Join(projectRoot, fileStorageDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to resolve file storage path: %v\n", err)
		os.Exit(1)
	}

	if wantCleanFileStorage {
		fmt.Printf("Cleaning file storage directory: %s\n", storagePath)
		if err := os.RemoveAll(storagePath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean file storage directory: %v\n", err)
		}
		fmt.Println()
	}

	fmt.Println("Starting e2e scenario: 001_repeated_log_analysis")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("REQUESTS: %d\n", requests)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("FILE_STORAGE_PATH: %s\n", storagePath)
	fmt.Println()

	mcutilsLog := generateMcUtilsLog()
	fmt.Printf("Generated McUtils log: %d bytes, %d sample blocks\n", len(mcutilsLog), sampleBlocks)

	client := &http.Client{Timeout: 30 * time.Second}

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	analysisIDs := make(map[string]int)
	var okRequest int64

	for i := 0; i < requests; i++ {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-workerChan }()

			query := fmt.Sprintf("?socket=%s", sockets[i%len(sockets)])
			var report bandwidthReport
			var err error
			if i%2 == 0 {
				err = postRaw(client, baseURL+"/analyses/mcutils"+query, mcutilsLog, &report)
			} else {
				err = postMultipart(client, baseURL+"/analyses/mcutils"+query, mcutilsLog, &report)
			}
			if err == nil && len(report.Statistics) != len(mcs)*len(chs) {
				err = fmt.Errorf("expected %d statistics rows, got %d", len(mcs)*len(chs), len(report.Statistics))
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errors = append(errors, fmt.Errorf("request %d: %w", i, err))
				return
			}
			analysisIDs[report.AnalysisID]++
			atomic.AddInt64(&okRequest, 1)
		}(i)
	}
	wg.Wait()

	var unfiltered bandwidthReport
	if err := postRaw(client, baseURL+"/analyses/mcutils", mcutilsLog, &unfiltered); err != nil {
		errors = append(errors, fmt.Errorf("unfiltered request: %w", err))
	} else if want := sampleBlocks * len(sockets) * len(mcs) * len(chs); len(unfiltered.Samples) != want {
		errors = append(errors, fmt.Errorf("unfiltered request: expected %d samples, got %d", want, len(unfiltered.Samples)))
	}

	var network networkReport
	if err := postRaw(client, baseURL+"/analyses/ethtool", ethtoolLog, &network); err != nil {
		errors = append(errors, fmt.Errorf("ethtool request: %w", err))
	} else if len(network.Interfaces) != 2 {
		errors = append(errors, fmt.Errorf("ethtool request: expected 2 interfaces, got %d", len(network.Interfaces)))
	}

	if len(analysisIDs) != 1 {
		errors = append(errors, fmt.Errorf("expected one analysisId across uploads, got %d", len(analysisIDs)))
	}

	fmt.Println()
	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}

	// archiving is asynchronous
	time.Sleep(time.Second)
	archived := countArchived(storagePath)

	fmt.Println("=== Statistics ===")
	fmt.Printf("Successful McUtils requests: %d\n", atomic.LoadInt64(&okRequest))
	fmt.Printf("Distinct analysis ids: %d\n", len(analysisIDs))
	fmt.Printf("Unfiltered samples: %d\n", len(unfiltered.Samples))
	fmt.Printf("Interfaces: %d\n", len(network.Interfaces))
	fmt.Printf("Archived results: %d\n", archived)
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("could not find go.mod, run from the project root")
}

// generateMcUtilsLog prints sampleBlocks RESULT tables, one per minute. Read bandwidth
// grows with the block index so percentiles are easy to check by hand.
func generateMcUtilsLog() string {
	var b strings.Builder
	b.WriteString("mcutils bandwidth monitor\n")
	for block := 0; block < sampleBlocks; block++ {
		fmt.Fprintf(&b, "03-14 10:%02d:RESULT\n", block)
		b.WriteString("| Socket  | Mc | Ch |    Read     |    Write    |   Request   |\n")
		for _, socket := range sockets {
			for _, mc := range mcs {
				for _, ch := range chs {
					read := float64(block+1) * 0.5
					fmt.Fprintf(&b, "| %s |  %s |  %s | %8.2f G   | %8.2f G   | %8.2f G   |\n", socket, mc, ch, read, read/2, read*1.5)
				}
			}
		}
		b.WriteString("=================================================================\n")
	}
	return b.String()
}

func postRaw(client *http.Client, url, body string, out any) error {
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	return do(client, req, out)
}

func postMultipart(client *http.Client, url, body string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "mcutils.log")
	if err != nil {
		return err
	}
	if _, err := io.WriteString(part, body); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return do(client, req, out)
}

func do(client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func countArchived(storagePath string) int {
	count := 0
	for _, kind := range []string{"mcutils", "ethtool"} {
		entries, err := os.ReadDir(filepath.Join(storagePath, "analysis-results", kind))
		if err != nil {
			continue
		}
		count += len(entries)
	}
	return count
}
