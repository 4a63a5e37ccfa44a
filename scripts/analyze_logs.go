package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors       int
	LoginSuccess      int
	LoginFailures     int
	Purchases         int
	PurchaseFailures  int
	RejectedCoupons   int
	PermissionDenials int
	UserActivities    map[string]int
	ErrorPatterns     map[string]int
}

// logLine is the subset of a zerolog JSON entry the report needs
type logLine struct {
	Level   string `json:"level"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

func main() {
	logDir := flag.String("dir", "./logs", "log directory")
	date := flag.String("date", time.Now().Format("2006-01-02"), "log date (YYYY-MM-DD)")
	flag.Parse()

	stats := &LogStats{
		UserActivities: make(map[string]int),
		ErrorPatterns:  make(map[string]int),
	}

	scanLog(filepath.Join(*logDir, fmt.Sprintf("error-%s.log", *date)), func(l logLine) {
		stats.TotalErrors++
		switch {
		case strings.Contains(l.Message, "Login attempt failed"):
			stats.LoginFailures++
			extractUserActivity(l.Message, stats)
		case strings.HasPrefix(l.Message, "Purchase of course"):
			stats.PurchaseFailures++
		case strings.Contains(l.Message, " denied "):
			stats.PermissionDenials++
		}
		extractErrorPattern(l.Message, stats)
	})

	scanLog(filepath.Join(*logDir, fmt.Sprintf("info-%s.log", *date)), func(l logLine) {
		switch {
		case strings.HasSuffix(l.Message, "logged in"):
			stats.LoginSuccess++
		case strings.Contains(l.Message, "purchased course"):
			stats.Purchases++
		case strings.HasPrefix(l.Message, "Rejected ") && strings.Contains(l.Message, "coupon"):
			stats.RejectedCoupons++
		case strings.HasPrefix(l.Message, "Registered user"):
			extractUserActivity(l.Message, stats)
		}
	})

	printReport(stats)
}

func scanLog(logFile string, handle func(logLine)) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var l logLine
		if err := json.Unmarshal(scanner.Bytes(), &l); err != nil {
			continue
		}
		handle(l)
	}
	if err := scanner.Err(); err != nil {
		fmt.Printf("Error reading log file %s: %v\n", logFile, err)
	}
}

func extractUserActivity(msg string, stats *LogStats) {
	if email := emailRegex.FindString(msg); email != "" {
		stats.UserActivities[email]++
	}
}

// extractErrorPattern groups errors by the text before the first colon
func extractErrorPattern(msg string, stats *LogStats) {
	pattern, _, _ := strings.Cut(msg, ":")
	if pattern = strings.TrimSpace(pattern); pattern != "" {
		stats.ErrorPatterns[pattern]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Println("\n1. Authentication Statistics:")
	fmt.Printf("   Successful Logins: %d\n", stats.LoginSuccess)
	fmt.Printf("   Failed Logins: %d\n", stats.LoginFailures)
	fmt.Printf("   Permission Denials: %d\n", stats.PermissionDenials)

	fmt.Println("\n2. Purchases:")
	fmt.Printf("   Completed: %d\n", stats.Purchases)
	fmt.Printf("   Failed: %d\n", stats.PurchaseFailures)
	fmt.Printf("   Rejected Coupons: %d\n", stats.RejectedCoupons)

	fmt.Println("\n3. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)

	fmt.Println("\n4. Most Active Users:")
	printTop(stats.UserActivities, 5, "activities")

	fmt.Println("\n5. Most Common Errors:")
	printTop(stats.ErrorPatterns, 5, "occurrences")
}

func printTop(counts map[string]int, limit int, unit string) {
	type entry struct {
		key   string
		count int
	}

	var entries []entry
	for k, n := range counts {
		entries = append(entries, entry{k, n})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	for i, e := range entries {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d %s\n", e.key, e.count, unit)
	}
}
