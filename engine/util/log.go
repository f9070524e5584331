package util

import "sync"

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogAiming | LogController | LogWorld | LogProjectile | LogSystem | LogIO

type LogLevel int

const (
    LogLevelError LogLevel = 1 << iota
    LogLevelWarning
    LogLevelInfo
    LogLevelDebug
)

type LogCategory int

const (
    LogAiming LogCategory = 1 << iota
    LogController
    LogWorld
    LogProjectile
    LogSystem
    LogIO
)

// logSink is swapped out by tests that want to inspect the output.
var logSink = func(txt string) {
    println(txt)
}

func log(cat LogCategory, lvl LogLevel, txt string) {
    if lvl > GLOBAL_LOG_LEVEL {
        return
    }
    if GLOBAL_LOG_CATEGORIES&cat == 0 {
        return
    }
    logSink(txt)
}

var failedEnsures = struct {
    sync.Mutex
    seen map[string]bool
}{seen: make(map[string]bool)}

// Ensure is a development assertion. A false condition is returned so the
// caller can bail out with a no-op. Each distinct failure is logged once.
func Ensure(condition bool, what string) bool {
    if condition {
        return true
    }
    failedEnsures.Lock()
    alreadyLogged := failedEnsures.seen[what]
    failedEnsures.seen[what] = true
    failedEnsures.Unlock()
    if !alreadyLogged {
        log(LogSystem, LogLevelError, "[Ensure] condition failed: "+what)
    }
    return false
}

func LogAimingInfo(txt string) {
    log(LogAiming, LogLevelInfo, txt)
}

func LogAimingDebug(txt string) {
    log(LogAiming, LogLevelDebug, txt)
}

func LogControllerInfo(txt string) {
    log(LogController, LogLevelInfo, txt)
}

func LogControllerDebug(txt string) {
    log(LogController, LogLevelDebug, txt)
}

func LogWorldInfo(txt string) {
    log(LogWorld, LogLevelInfo, txt)
}

func LogWorldDebug(txt string) {
    log(LogWorld, LogLevelDebug, txt)
}

func LogProjectileInfo(txt string) {
    log(LogProjectile, LogLevelInfo, txt)
}

func LogProjectileDebug(txt string) {
    log(LogProjectile, LogLevelDebug, txt)
}

func LogSystemInfo(txt string) {
    log(LogSystem, LogLevelInfo, txt)
}

func LogSystemError(txt string) {
    log(LogSystem, LogLevelError, txt)
}

func LogIOError(txt string) {
    log(LogIO, LogLevelError, txt)
}

func LogIOInfo(txt string) {
    log(LogIO, LogLevelInfo, txt)
}
