package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"
)

// TransactionResponse is the part of the API response the script reads
type TransactionResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	ReleaseState string `json:"releaseState"`
	SellerID     string `json:"sellerId"`
}

// PayoutResponse is one payout record of a transaction
type PayoutResponse struct {
	Reference string `json:"reference"`
	Role      string `json:"role"`
	Amount    int64  `json:"amount"`
	State     string `json:"state"`
}

// TestResult contains metrics for a single completion request
type TestResult struct {
	TransactionID string
	StatusCode    int
	ResponseTime  time.Duration
	Error         error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests   int
	StatusCounts    map[int]int
	ErrorCounts     map[string]int
	ResponseTimes   []time.Duration
	WinsPerTxn      map[string]int
	TotalTime       time.Duration
	MinResponseTime time.Duration
	MaxResponseTime time.Duration
}

type apiClient struct {
	baseURL string
	http    *http.Client
}

func main() {
	transactions := flag.Int("n", 20, "Number of transactions to drive to DELIVERED")
	racers := flag.Int("c", 8, "Concurrent completion requests per transaction")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	itemID := flag.String("item", "item-bike", "Listing to buy")
	buyerID := flag.String("buyer", "user-buyer", "Buyer user id")
	sellerID := flag.String("seller", "user-seller", "Seller user id of the listing")
	flag.Parse()

	api := &apiClient{baseURL: *baseURL, http: &http.Client{Timeout: 10 * time.Second}}

	fmt.Printf("Preparing %d delivered transactions for item %s\n", *transactions, *itemID)
	ids := make([]string, 0, *transactions)
	for i := 0; i < *transactions; i++ {
		id, err := api.prepare(*itemID, *buyerID, *sellerID)
		if err != nil {
			fmt.Printf("Failed to prepare transaction %d: %v\n", i, err)
			os.Exit(1)
		}
		ids = append(ids, id)
	}

	stats := &TestStats{
		TotalRequests:   len(ids) * *racers,
		StatusCounts:    make(map[int]int),
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, len(ids)**racers),
		WinsPerTxn:      make(map[string]int),
		MinResponseTime: time.Hour,
	}

	fmt.Printf("Racing %d completions per transaction (%d requests)\n", *racers, stats.TotalRequests)
	results := make(chan TestResult, stats.TotalRequests)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for _, id := range ids {
		for r := 0; r < *racers; r++ {
			wg.Add(1)
			go func(transactionID string) {
				defer wg.Done()
				<-start
				results <- api.complete(transactionID, *buyerID)
			}(id)
		}
	}

	startTime := time.Now()
	close(start)
	wg.Wait()
	close(results)
	stats.TotalTime = time.Since(startTime)

	for result := range results {
		stats.StatusCounts[result.StatusCode]++
		if result.Error != nil {
			stats.ErrorCounts[result.Error.Error()]++
		}
		if result.StatusCode == http.StatusOK {
			stats.WinsPerTxn[result.TransactionID]++
		}
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		if result.ResponseTime < stats.MinResponseTime {
			stats.MinResponseTime = result.ResponseTime
		}
		if result.ResponseTime > stats.MaxResponseTime {
			stats.MaxResponseTime = result.ResponseTime
		}
	}

	violations := 0
	for _, id := range ids {
		if err := api.verifySinglePayout(id, *buyerID); err != nil {
			fmt.Printf("Transaction %s: %v\n", id, err)
			violations++
		}
		if stats.WinsPerTxn[id] != 1 {
			fmt.Printf("Transaction %s: %d successful completions\n", id, stats.WinsPerTxn[id])
			violations++
		}
	}

	printResults(stats, violations)
	if violations > 0 {
		os.Exit(1)
	}
}

// prepare walks one transaction from checkout to DELIVERED
func (a *apiClient) prepare(itemID, buyerID, sellerID string) (string, error) {
	var txn TransactionResponse
	body := map[string]any{
		"itemId":   itemID,
		"delivery": map[string]any{"method": "face_to_face", "notes": "load test"},
	}
	if _, err := a.do(http.MethodPost, "/transactions", buyerID, body, &txn); err != nil {
		return "", err
	}

	steps := []struct {
		action string
		actor  string
	}{
		{"pay", buyerID},
		{"ship", sellerID},
		{"deliver", buyerID},
	}
	for _, step := range steps {
		if _, err := a.do(http.MethodPost, "/transactions/"+txn.ID+"/"+step.action, step.actor, nil, &txn); err != nil {
			return "", fmt.Errorf("%s: %w", step.action, err)
		}
	}
	return txn.ID, nil
}

func (a *apiClient) complete(transactionID, buyerID string) TestResult {
	started := time.Now()
	status, err := a.do(http.MethodPost, "/transactions/"+transactionID+"/complete", buyerID, nil, nil)
	result := TestResult{TransactionID: transactionID, StatusCode: status, ResponseTime: time.Since(started)}
	// a losing racer is refused with 409, which is the expected outcome
	if err != nil && status != http.StatusConflict {
		result.Error = err
	}
	return result
}

// verifySinglePayout checks the transaction settled with one confirmed seller payout
func (a *apiClient) verifySinglePayout(transactionID, buyerID string) error {
	var txn TransactionResponse
	if _, err := a.do(http.MethodGet, "/transactions/"+transactionID, buyerID, nil, &txn); err != nil {
		return err
	}
	if txn.Status != "COMPLETED" || txn.ReleaseState != "released" {
		return fmt.Errorf("ended %s/%s", txn.Status, txn.ReleaseState)
	}

	var payouts []PayoutResponse
	if _, err := a.do(http.MethodGet, "/transactions/"+transactionID+"/payouts", buyerID, nil, &payouts); err != nil {
		return err
	}
	seller := 0
	for _, p := range payouts {
		if p.Role == "seller" {
			seller++
			if p.State != "confirmed" {
				return fmt.Errorf("seller payout %s is %s", p.Reference, p.State)
			}
		}
	}
	if seller != 1 {
		return fmt.Errorf("%d seller payouts", seller)
	}
	return nil
}

func (a *apiClient) do(method, path, actor string, body any, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, a.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", actor)

	resp, err := a.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("HTTP status code %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func printResults(stats *TestStats, violations int) {
	var avgResponseTime time.Duration
	var p50, p90, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		sorted := make([]time.Duration, n)
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var total time.Duration
		for _, d := range sorted {
			total += d
		}
		avgResponseTime = total / time.Duration(n)
		p50 = sorted[n*50/100]
		p90 = sorted[n*90/100]
		p99 = sorted[n*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- STATUS CODES -----------------")
	codes := make([]int, 0, len(stats.StatusCounts))
	for code := range stats.StatusCounts {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Printf("HTTP %d:            %d\n", code, stats.StatusCounts[code])
	}

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- UNEXPECTED ERRORS -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-60s: %d\n", errMsg, count)
		}
	}

	fmt.Println("\n================= CONCLUSION =================")
	if violations == 0 {
		fmt.Println("✅ Every transaction completed once with exactly one seller payout")
	} else {
		fmt.Printf("❌ %d exactly-once violations\n", violations)
	}
	fmt.Println("================================================")
}
