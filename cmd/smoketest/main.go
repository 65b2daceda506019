package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// 1x1 pixel PNG, enough to exercise the analyze endpoint
const sampleImageBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

type client struct {
	base   string
	http   *http.Client
	userID string
	passed int
	failed int
}

func main() {
	base := flag.String("base", "http://localhost:8080", "server base URL")
	flag.Parse()

	c := &client{
		base:   strings.TrimRight(*base, "/"),
		http:   &http.Client{Timeout: 5 * time.Minute},
		userID: fmt.Sprintf("smoke_%d", time.Now().Unix()),
	}

	fmt.Printf("Running smoke tests against %s (user %s)\n\n", c.base, c.userID)

	c.checkRoot()
	c.checkStatusRoundTrip()
	itemID := c.checkAnalyze()
	c.checkClothingList(itemID)
	c.checkGenerate(itemID)
	c.checkDelete(itemID)

	fmt.Printf("\n%d passed, %d failed\n", c.passed, c.failed)
	if c.failed > 0 {
		os.Exit(1)
	}
}

func (c *client) pass(name string) {
	c.passed++
	fmt.Printf("PASS  %s\n", name)
}

func (c *client) fail(name, format string, args ...interface{}) {
	c.failed++
	fmt.Printf("FAIL  %s: %s\n", name, fmt.Sprintf(format, args...))
}

func (c *client) do(method, path string, payload interface{}, out interface{}) (int, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.base+path, body)
	if err != nil {
		return 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("bad JSON: %v", err)
		}
	}
	return resp.StatusCode, nil
}

func (c *client) checkRoot() {
	var body map[string]string
	status, err := c.do(http.MethodGet, "/api/", nil, &body)
	if err != nil || status != http.StatusOK {
		c.fail("root", "status=%d err=%v", status, err)
		return
	}
	if !strings.Contains(body["message"], "running") {
		c.fail("root", "unexpected message %q", body["message"])
		return
	}
	c.pass("root")
}

func (c *client) checkStatusRoundTrip() {
	clientName := "smoketest_" + c.userID
	var created map[string]interface{}
	status, err := c.do(http.MethodPost, "/api/status", map[string]string{"client_name": clientName}, &created)
	if err != nil || status != http.StatusOK {
		c.fail("status create", "status=%d err=%v", status, err)
		return
	}
	c.pass("status create")

	var checks []map[string]interface{}
	status, err = c.do(http.MethodGet, "/api/status", nil, &checks)
	if err != nil || status != http.StatusOK {
		c.fail("status list", "status=%d err=%v", status, err)
		return
	}
	for _, check := range checks {
		if check["client_name"] == clientName {
			c.pass("status list")
			return
		}
	}
	c.fail("status list", "created check not in listing")
}

// checkAnalyze uploads the sample image and returns the created item id
func (c *client) checkAnalyze() string {
	payload := map[string]string{"user_id": c.userID, "image_base64": sampleImageBase64}
	var item map[string]interface{}
	status, err := c.do(http.MethodPost, "/api/clothing/analyze", payload, &item)
	if err != nil || status != http.StatusOK {
		c.fail("clothing analyze", "status=%d err=%v", status, err)
		return ""
	}
	id, _ := item["id"].(string)
	if id == "" || item["user_id"] != c.userID || item["category"] == "" {
		c.fail("clothing analyze", "unexpected record: %v", item)
		return ""
	}
	c.pass("clothing analyze")
	return id
}

func (c *client) checkClothingList(itemID string) {
	if itemID == "" {
		c.fail("clothing list", "skipped, no item created")
		return
	}
	var items []map[string]interface{}
	status, err := c.do(http.MethodGet, "/api/clothing/"+c.userID, nil, &items)
	if err != nil || status != http.StatusOK {
		c.fail("clothing list", "status=%d err=%v", status, err)
		return
	}
	if len(items) != 1 || items[0]["id"] != itemID {
		c.fail("clothing list", "expected exactly the created item, got %d items", len(items))
		return
	}
	c.pass("clothing list")
}

func (c *client) checkGenerate(itemID string) {
	if itemID == "" {
		c.fail("outfit generate", "skipped, no item created")
		return
	}
	payload := map[string]interface{}{
		"user_id":        c.userID,
		"style":          "casual",
		"clothing_items": []string{itemID},
	}
	var outfit map[string]interface{}
	status, err := c.do(http.MethodPost, "/api/outfit/generate", payload, &outfit)
	if err != nil {
		c.fail("outfit generate", "err=%v", err)
		return
	}
	// Generation needs a live credential; quota and missing-key failures are
	// reported but do not fail the run
	if status == http.StatusTooManyRequests {
		fmt.Println("SKIP  outfit generate: quota exceeded")
		return
	}
	if status == http.StatusInternalServerError {
		if msg, ok := outfit["error"].(string); ok && strings.Contains(msg, "not available") {
			fmt.Println("SKIP  outfit generate: service not configured")
			return
		}
	}
	if status != http.StatusOK {
		c.fail("outfit generate", "status=%d body=%v", status, outfit)
		return
	}
	if outfit["outfit_image_base64"] == "" || outfit["user_id"] != c.userID {
		c.fail("outfit generate", "unexpected record")
		return
	}
	c.pass("outfit generate")

	var outfits []map[string]interface{}
	status, err = c.do(http.MethodGet, "/api/outfit/"+c.userID, nil, &outfits)
	if err != nil || status != http.StatusOK || len(outfits) != 1 {
		c.fail("outfit list", "status=%d err=%v count=%d", status, err, len(outfits))
		return
	}
	c.pass("outfit list")
}

func (c *client) checkDelete(itemID string) {
	if itemID == "" {
		c.fail("clothing delete", "skipped, no item created")
		return
	}
	path := "/api/clothing/" + itemID + "?user_id=" + c.userID

	status, err := c.do(http.MethodDelete, path, nil, nil)
	if err != nil || status != http.StatusOK {
		c.fail("clothing delete", "status=%d err=%v", status, err)
		return
	}
	c.pass("clothing delete")

	// A second delete on the same item must report not found
	status, err = c.do(http.MethodDelete, path, nil, nil)
	if err != nil || status != http.StatusNotFound {
		c.fail("clothing delete repeat", "status=%d err=%v, want 404", status, err)
		return
	}
	c.pass("clothing delete repeat")
}
