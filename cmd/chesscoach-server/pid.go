package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// managePIDFile writes the current PID to path and, when lock is set, holds
// an exclusive flock on it so a second instance refuses to start. The
// returned cleanup releases the lock and removes the file.
func managePIDFile(path string, lock bool) (func(), error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if os.IsExist(err) {
		// A file is already there. When locking, figure out whether its
		// owner is alive before clobbering it.
		if lock {
			if err := describeExistingPID(path); err != nil {
				return nil, err
			}
		}
		file, err = os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0644)
	}
	if err != nil {
		return nil, fmt.Errorf("pid file %s: %w", path, err)
	}

	if lock {
		if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
			file.Close()
			if errors.Is(err, syscall.EWOULDBLOCK) {
				return nil, errors.New("another instance is already running")
			}
			return nil, fmt.Errorf("locking pid file: %w", err)
		}
	}

	if _, err := fmt.Fprintf(file, "%d\n", os.Getpid()); err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("writing pid file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("syncing pid file: %w", err)
	}

	return func() {
		if lock {
			syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
		}
		file.Close()
		os.Remove(path)
	}, nil
}

// describeExistingPID reports why an existing PID file blocks startup. It
// always returns an error; the caller decides nothing, the operator does.
func describeExistingPID(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading existing pid file: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return fmt.Errorf("pid file %s is corrupted (%q)", path, strings.TrimSpace(string(data)))
	}

	// Signal 0 probes process existence without touching it.
	proc, _ := os.FindProcess(pid)
	if sigErr := proc.Signal(syscall.Signal(0)); sigErr != nil {
		if errors.Is(sigErr, os.ErrProcessDone) || errors.Is(sigErr, syscall.ESRCH) {
			return fmt.Errorf("stale pid file for defunct process %d, remove %s to start", pid, path)
		}
		return fmt.Errorf("process %d exists but cannot be verified: %v", pid, sigErr)
	}
	return fmt.Errorf("process %d from %s is still running", pid, path)
}
