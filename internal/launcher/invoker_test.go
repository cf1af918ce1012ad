package launcher

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rvben/upd/internal/platform"
)

func TestArgvPrependsPath(t *testing.T) {
	args := []string{"status", "--verbose"}

	got := argv("/opt/upd/target/release/upd", args)
	want := []string{"/opt/upd/target/release/upd", "status", "--verbose"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("argv = %v, want %v", got, want)
	}

	// The caller's slice must come through untouched.
	if !reflect.DeepEqual(args, []string{"status", "--verbose"}) {
		t.Errorf("input args mutated: %v", args)
	}
}

func TestArgvNoArgs(t *testing.T) {
	got := argv("/bin/upd", nil)
	want := []string{"/bin/upd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("argv = %v, want %v", got, want)
	}
}

func TestExecInvokerArgvAndEnv(t *testing.T) {
	var gotArgv0 string
	var gotArgv, gotEnv []string

	inv := &execInvoker{exec: func(argv0 string, argv []string, envv []string) error {
		gotArgv0 = argv0
		gotArgv = argv
		gotEnv = envv
		return nil
	}}

	code, err := inv.Invoke("/bin/tool", []string{"a", "b"})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}

	if gotArgv0 != "/bin/tool" {
		t.Errorf("argv0 = %q, want %q", gotArgv0, "/bin/tool")
	}
	want := []string{"/bin/tool", "a", "b"}
	if !reflect.DeepEqual(gotArgv, want) {
		t.Errorf("argv = %v, want %v", gotArgv, want)
	}
	if len(gotEnv) == 0 {
		t.Error("environment was not passed through")
	}
}

func TestExecInvokerFailure(t *testing.T) {
	execErr := errors.New("permission denied")
	inv := &execInvoker{exec: func(string, []string, []string) error {
		return execErr
	}}

	_, err := inv.Invoke("/bin/tool", nil)

	var invErr *InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("Invoke error = %v, want InvocationError", err)
	}
	if !errors.Is(err, execErr) {
		t.Error("InvocationError does not wrap the exec error")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("error message missing underlying text: %q", err.Error())
	}
}

func TestNewInvokerStrategy(t *testing.T) {
	if _, ok := newInvoker(platform.LinuxAMD64).(*execInvoker); !ok {
		t.Error("linux should use process replacement")
	}
	if _, ok := newInvoker(platform.DarwinARM64).(*execInvoker); !ok {
		t.Error("darwin should use process replacement")
	}
	if _, ok := newInvoker(platform.WindowsAMD64).(*spawnInvoker); !ok {
		t.Error("windows should spawn and wait")
	}
}
