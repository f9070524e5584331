package util

import (
	"strings"
	"testing"
)

func captureLog(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	previous := logSink
	logSink = func(txt string) {
		lines = append(lines, txt)
	}
	t.Cleanup(func() { logSink = previous })
	return &lines
}

func TestEnsureLogsOnFailure(t *testing.T) {
	lines := captureLog(t)
	if Ensure(true, "barrel") != true {
		t.Fatalf("Ensure(true) must return true")
	}
	if len(*lines) != 0 {
		t.Fatalf("Ensure(true) must not log, got %v", *lines)
	}
	if Ensure(false, "barrel") != false {
		t.Fatalf("Ensure(false) must return false")
	}
	if len(*lines) != 1 || !strings.Contains((*lines)[0], "barrel") {
		t.Fatalf("expected one error line naming the barrel, got %v", *lines)
	}
}

func TestEnsureLogsEachFailureOnce(t *testing.T) {
	lines := captureLog(t)
	for i := 0; i < 3; i++ {
		if Ensure(false, "tank has no turret") {
			t.Fatalf("Ensure(false) must keep returning false")
		}
	}
	Ensure(false, "tank has no spawner")
	if len(*lines) != 2 {
		t.Fatalf("expected one line per distinct failure, got %v", *lines)
	}
}

func TestLogLevelFilter(t *testing.T) {
	lines := captureLog(t)
	previous := GLOBAL_LOG_LEVEL
	GLOBAL_LOG_LEVEL = LogLevelWarning
	defer func() { GLOBAL_LOG_LEVEL = previous }()

	LogAimingInfo("hidden")
	LogSystemError("shown")
	if len(*lines) != 1 || (*lines)[0] != "shown" {
		t.Fatalf("unexpected output %v", *lines)
	}
}

func TestDebugHiddenAtInfoLevel(t *testing.T) {
	lines := captureLog(t)
	previous := GLOBAL_LOG_LEVEL
	GLOBAL_LOG_LEVEL = LogLevelInfo
	defer func() { GLOBAL_LOG_LEVEL = previous }()

	LogAimingDebug("hidden")
	LogAimingInfo("shown")
	if len(*lines) != 1 || (*lines)[0] != "shown" {
		t.Fatalf("unexpected output %v", *lines)
	}
}
