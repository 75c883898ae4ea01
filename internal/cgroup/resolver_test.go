package cgroup

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

// mkScope creates a fake container scope directory under the test cgroup
// root and returns its path.
func mkScope(t *testing.T, root, qos, uidUnderscored, scopeName string) string {
	t.Helper()
	base := filepath.Join(root, "kubepods.slice")
	var podSlice string
	if qos == "" {
		podSlice = filepath.Join(base, "kubepods-pod"+uidUnderscored+".slice")
	} else {
		podSlice = filepath.Join(base,
			"kubepods-"+qos+".slice",
			"kubepods-"+qos+"-pod"+uidUnderscored+".slice")
	}
	scope := filepath.Join(podSlice, scopeName)
	if err := os.MkdirAll(scope, 0o755); err != nil {
		t.Fatalf("Failed to create scope dir: %v", err)
	}
	return scope
}

func dirInode(t *testing.T, path string) uint64 {
	t.Helper()
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		t.Skip("platform without syscall.Stat_t")
	}
	return st.Ino
}

func TestResolve_GuaranteedPod(t *testing.T) {
	root := t.TempDir()
	scope := mkScope(t, root, "", "abc_123", "cri-containerd-deadbeef.scope")

	r := NewResolver(root)
	ino, err := r.Resolve("abc-123", "containerd://deadbeef")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if want := dirInode(t, scope); ino != want {
		t.Errorf("Expected inode %d, got %d", want, ino)
	}
}

func TestResolve_QoSVariants(t *testing.T) {
	for _, qos := range []string{"burstable", "besteffort"} {
		t.Run(qos, func(t *testing.T) {
			root := t.TempDir()
			scope := mkScope(t, root, qos, "11_22_33", "cri-containerd-cafe.scope")

			r := NewResolver(root)
			ino, err := r.Resolve("11-22-33", "cafe")
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if want := dirInode(t, scope); ino != want {
				t.Errorf("Expected inode %d, got %d", want, ino)
			}
		})
	}
}

func TestResolve_OtherRuntimes(t *testing.T) {
	cases := []struct {
		scopeName   string
		containerID string
	}{
		{"crio-0011.scope", "cri-o://0011"},
		{"docker-2233.scope", "docker://2233"},
	}
	for _, tc := range cases {
		t.Run(tc.scopeName, func(t *testing.T) {
			root := t.TempDir()
			mkScope(t, root, "burstable", "aa_bb", tc.scopeName)

			r := NewResolver(root)
			if _, err := r.Resolve("aa-bb", tc.containerID); err != nil {
				t.Fatalf("Resolve failed for %s: %v", tc.scopeName, err)
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := NewResolver(t.TempDir())
	_, err := r.Resolve("no-such-pod", "containerd://nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestResolve_MalformedInput(t *testing.T) {
	r := NewResolver(t.TempDir())
	cases := []struct{ uid, cid string }{
		{"", "abc"},
		{"uid", ""},
		{"uid", "containerd://"},
	}
	for _, tc := range cases {
		if _, err := r.Resolve(tc.uid, tc.cid); !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve(%q, %q): expected ErrNotFound, got %v", tc.uid, tc.cid, err)
		}
	}
}

func TestDetectRuntime(t *testing.T) {
	root := t.TempDir()
	mkScope(t, root, "besteffort", "dd_ee", "crio-4455.scope")

	r := NewResolver(root)
	if r.Runtime() != RuntimeCRIO {
		t.Errorf("Expected detected runtime cri-o, got %s", r.Runtime())
	}
}

func TestDetectRuntime_EmptyNode(t *testing.T) {
	r := NewResolver(t.TempDir())
	if r.Runtime() != RuntimeContainerd {
		t.Errorf("Expected containerd default on empty node, got %s", r.Runtime())
	}
}

func TestScanAll(t *testing.T) {
	root := t.TempDir()
	s1 := mkScope(t, root, "", "abc_123", "cri-containerd-c1.scope")
	s2 := mkScope(t, root, "burstable", "def_456", "cri-containerd-c2.scope")

	r := NewResolver(root)
	entries, err := r.ScanAll()
	if err != nil {
		t.Fatalf("ScanAll failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %+v", len(entries), entries)
	}

	byCID := make(map[string]Entry)
	for _, e := range entries {
		byCID[e.ContainerID] = e
	}
	e1, ok := byCID["c1"]
	if !ok || e1.PodUID != "abc-123" || e1.Inode != dirInode(t, s1) {
		t.Errorf("Unexpected entry for c1: %+v", e1)
	}
	e2, ok := byCID["c2"]
	if !ok || e2.PodUID != "def-456" || e2.Inode != dirInode(t, s2) {
		t.Errorf("Unexpected entry for c2: %+v", e2)
	}
}

func TestScanAll_MissingHierarchy(t *testing.T) {
	r := NewResolver(t.TempDir())
	entries, err := r.ScanAll()
	if err != nil {
		t.Fatalf("ScanAll on empty root should not fail, got: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestPodUIDFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/sys/fs/cgroup/kubepods.slice/kubepods-pod12345.slice/c.scope", "12345"},
		{"/sys/fs/cgroup/kubepods.slice/kubepods-burstable.slice/kubepods-burstable-pod12345_6789.slice/c.scope", "12345-6789"},
		{"/sys/fs/cgroup/system.slice/ssh.service", ""},
	}
	for _, tc := range cases {
		if got := podUIDFromPath(tc.path); got != tc.want {
			t.Errorf("podUIDFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
