package logger

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// TestConcurrency_MultipleLevels verifies that lines written from many goroutines
// to one writer stay whole.
func TestConcurrency_MultipleLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig("Stress", Config{Output: &buf, Color: ColorNever})

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				l.Debug(fmt.Sprintf("goroutine-%d-debug-%d", id, j))
				l.Info("goroutine-"+fmt.Sprint(id)+"-info", j)
				l.Warn("goroutine", id, "warn", j)
				l.Error(map[string]int{"goroutine": id, "error": j})
			}
		}(i)
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	expectedLines := numGoroutines * messagesPerGoroutine * 4
	if len(lines) != expectedLines {
		t.Fatalf("expected %d log lines, got %d", expectedLines, len(lines))
	}

	for i, line := range lines {
		hasLevelTag := strings.Contains(line, " DEBUG [Stress] ") ||
			strings.Contains(line, " INFO [Stress] ") ||
			strings.Contains(line, " WARN [Stress] ") ||
			strings.Contains(line, " ERROR [Stress] ")

		if !hasLevelTag {
			t.Fatalf("line %d appears garbled (missing level tag): %q", i, line)
		}
		if !strings.Contains(line, "goroutine") {
			t.Fatalf("line %d appears garbled (missing goroutine marker): %q", i, line)
		}
	}
}

// TestConcurrency_SeparateContexts verifies loggers sharing a writer never
// mix up their context tags.
func TestConcurrency_SeparateContexts(t *testing.T) {
	var buf bytes.Buffer
	contexts := []string{"Auth", "DB", "Cache", ""}

	const perContext = 250
	var wg sync.WaitGroup
	wg.Add(len(contexts))

	for _, ctx := range contexts {
		l := NewWithConfig(ctx, Config{Output: &buf, Color: ColorNever})
		go func() {
			defer wg.Done()
			for n := 0; n < perContext; n++ {
				l.Info("from", "ctx="+l.Context())
			}
		}()
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != perContext*len(contexts) {
		t.Fatalf("expected %d log lines, got %d", perContext*len(contexts), len(lines))
	}

	for i, line := range lines {
		idx := strings.LastIndex(line, "ctx=")
		if idx < 0 {
			t.Fatalf("line %d missing marker: %q", i, line)
		}
		ctx := line[idx+len("ctx="):]
		if ctx == "" {
			if strings.Contains(line, "[") {
				t.Fatalf("line %d from empty context has a tag: %q", i, line)
			}
			continue
		}
		if !strings.Contains(line, " INFO ["+ctx+"] from ") {
			t.Fatalf("line %d has the wrong context tag for %q: %q", i, ctx, line)
		}
	}
}
