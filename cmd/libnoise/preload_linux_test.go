//go:build linux && cgo

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// hostSource sleeps for half a second and prints the CPU time, in
// microseconds, the whole process used meanwhile.
const hostSource = `#include <stdio.h>
#include <sys/resource.h>
#include <time.h>

int main(void) {
	struct timespec ts = {0, 500000000};
	struct rusage ru;
	nanosleep(&ts, NULL);
	if (getrusage(RUSAGE_SELF, &ru) != 0)
		return 1;
	printf("%ld\n", (long)(ru.ru_utime.tv_sec + ru.ru_stime.tv_sec) * 1000000L +
		(long)(ru.ru_utime.tv_usec + ru.ru_stime.tv_usec));
	return 0;
}
`

func buildPreload(t *testing.T) (lib, host string) {
	t.Helper()
	if testing.Short() {
		t.Skip("builds a shared object")
	}
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go toolchain not on PATH")
	}
	cc, err := exec.LookPath("cc")
	if err != nil {
		t.Skip("no C compiler on PATH")
	}

	dir := t.TempDir()
	lib = filepath.Join(dir, "libnoise.so")
	host = filepath.Join(dir, "host")

	build := exec.Command(goBin, "build", "-buildmode=c-shared", "-o", lib, ".")
	build.Env = append(os.Environ(), "CGO_ENABLED=1")
	out, err := build.CombinedOutput()
	require.NoError(t, err, "building shared object: %s", out)

	src := filepath.Join(dir, "host.c")
	require.NoError(t, os.WriteFile(src, []byte(hostSource), 0o600))
	out, err = exec.Command(cc, "-o", host, src).CombinedOutput()
	require.NoError(t, err, "compiling host: %s", out)

	return lib, host
}

func runHost(t *testing.T, lib, host string, env ...string) time.Duration {
	t.Helper()
	cmd := exec.Command(host)
	cmd.Env = append(os.Environ(), "LD_PRELOAD="+lib, "NOISE_LOG_FILE=")
	cmd.Env = append(cmd.Env, env...)
	out, err := cmd.Output()
	require.NoError(t, err)

	usec, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
	require.NoError(t, err, "host output %q", out)
	return time.Duration(usec) * time.Microsecond
}

func TestPreload_EnableGatesEmitter(t *testing.T) {
	lib, host := buildPreload(t)

	disabled := runHost(t, lib, host, "NOISE_ENABLE=0", "NOISE_RATE_HZ=0")
	busy := runHost(t, lib, host, "NOISE_ENABLE=1", "NOISE_RATE_HZ=0")

	if disabled >= 100*time.Millisecond {
		t.Errorf("disabled host CPU = %v, want under 100ms", disabled)
	}
	if busy < 100*time.Millisecond {
		t.Errorf("busy host CPU = %v, want at least 100ms", busy)
	}
}

func TestPreload_HostExitsNormally(t *testing.T) {
	lib, host := buildPreload(t)

	// Paced at the default rate the host still finishes its own work.
	runHost(t, lib, host, "NOISE_ENABLE=", "NOISE_RATE_HZ=")
}
