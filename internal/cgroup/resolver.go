package cgroup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// DefaultRoot is the cgroup v2 mount point.
const DefaultRoot = "/sys/fs/cgroup"

// ErrNotFound means no candidate cgroup path exists for the container.
// Callers decide whether to retry; the resolver never waits.
var ErrNotFound = errors.New("cgroup not found")

// Runtime is a supported container runtime. The set is closed: resolution
// scans the template table below, it never guesses at path shapes.
type Runtime int

const (
	RuntimeContainerd Runtime = iota
	RuntimeCRIO
	RuntimeDocker
)

func (r Runtime) String() string {
	switch r {
	case RuntimeContainerd:
		return "containerd"
	case RuntimeCRIO:
		return "cri-o"
	case RuntimeDocker:
		return "docker"
	default:
		return fmt.Sprintf("runtime(%d)", int(r))
	}
}

// scopePrefix is the systemd scope prefix a runtime uses for container
// cgroups under the kubepods slice hierarchy.
type scopePrefix struct {
	runtime Runtime
	prefix  string
}

var scopePrefixes = []scopePrefix{
	{RuntimeContainerd, "cri-containerd-"},
	{RuntimeCRIO, "crio-"},
	{RuntimeDocker, "docker-"},
}

// qosClasses orders the pod slice variants: guaranteed pods sit directly
// under kubepods.slice, the other classes add an intermediate slice.
var qosClasses = []string{"", "burstable", "besteffort"}

// Entry is one container group found by ScanAll.
type Entry struct {
	Inode       uint64
	PodUID      string
	ContainerID string
}

// Resolver maps (pod UID, container ID) pairs to cgroup inode numbers.
// It performs plain filesystem reads and keeps no per-call state, so one
// instance is safe to share across goroutines.
type Resolver struct {
	root     string
	detected Runtime
}

// NewResolver builds a resolver rooted at the given cgroup mount point
// (DefaultRoot when empty) and detects the node's runtime once.
func NewResolver(root string) *Resolver {
	if root == "" {
		root = DefaultRoot
	}
	r := &Resolver{root: root}
	r.detected = r.detectRuntime()
	return r
}

// Runtime reports the runtime detected at construction time.
func (r *Resolver) Runtime() Runtime {
	return r.detected
}

// detectRuntime scans the kubepods hierarchy for the first known scope
// prefix. Containerd is assumed when nothing matches yet (empty node).
func (r *Resolver) detectRuntime() Runtime {
	detected := RuntimeContainerd
	root := filepath.Join(r.root, "kubepods.slice")
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		for _, sp := range scopePrefixes {
			if strings.HasPrefix(d.Name(), sp.prefix) && strings.HasSuffix(d.Name(), ".scope") {
				detected = sp.runtime
				return filepath.SkipAll
			}
		}
		return nil
	})
	return detected
}

// Resolve returns the cgroup inode for a pod's container. It tries the
// detected runtime's scope prefix first, then every other known prefix,
// across all QoS slice variants. Malformed input is ErrNotFound, never a
// panic.
func (r *Resolver) Resolve(podUID, containerID string) (uint64, error) {
	if podUID == "" || containerID == "" {
		return 0, fmt.Errorf("resolve pod %q container %q: %w", podUID, containerID, ErrNotFound)
	}

	// Slice names use underscores where the UID has dashes, and container
	// IDs from the API carry a scheme prefix like "containerd://".
	uid := strings.ReplaceAll(podUID, "-", "_")
	cid := containerID
	if i := strings.LastIndex(cid, "://"); i >= 0 {
		cid = cid[i+3:]
	}
	if cid == "" {
		return 0, fmt.Errorf("resolve pod %q container %q: %w", podUID, containerID, ErrNotFound)
	}

	for _, sp := range orderedPrefixes(r.detected) {
		for _, qos := range qosClasses {
			path := filepath.Join(r.podSlice(qos, uid), sp.prefix+cid+".scope")
			if ino, ok := inodeOf(path); ok {
				return ino, nil
			}
		}
	}
	return 0, fmt.Errorf("resolve pod %q container %q: %w", podUID, containerID, ErrNotFound)
}

// orderedPrefixes returns the scope prefix table with the detected
// runtime's entry first, so the common case stats one path per QoS class.
func orderedPrefixes(detected Runtime) []scopePrefix {
	ordered := make([]scopePrefix, 0, len(scopePrefixes))
	for _, sp := range scopePrefixes {
		if sp.runtime == detected {
			ordered = append(ordered, sp)
		}
	}
	for _, sp := range scopePrefixes {
		if sp.runtime != detected {
			ordered = append(ordered, sp)
		}
	}
	return ordered
}

// podSlice builds the pod's slice directory for one QoS class.
func (r *Resolver) podSlice(qos, uid string) string {
	base := filepath.Join(r.root, "kubepods.slice")
	if qos == "" {
		return filepath.Join(base, "kubepods-pod"+uid+".slice")
	}
	return filepath.Join(base,
		"kubepods-"+qos+".slice",
		"kubepods-"+qos+"-pod"+uid+".slice")
}

// ScanAll walks the kubepods hierarchy and returns every container scope
// it can attribute to a pod. Useful for reconciling identities the watcher
// never saw created.
func (r *Resolver) ScanAll() ([]Entry, error) {
	root := filepath.Join(r.root, "kubepods.slice")
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}

	var entries []Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Scopes vanish while we walk; skip and keep going.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		for _, sp := range scopePrefixes {
			if !strings.HasPrefix(name, sp.prefix) || !strings.HasSuffix(name, ".scope") {
				continue
			}
			cid := strings.TrimSuffix(strings.TrimPrefix(name, sp.prefix), ".scope")
			uid := podUIDFromPath(path)
			if cid == "" || uid == "" {
				continue
			}
			if ino, ok := inodeOf(path); ok {
				entries = append(entries, Entry{Inode: ino, PodUID: uid, ContainerID: cid})
			}
		}
		return nil
	})
	if err != nil {
		return entries, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return entries, nil
}

// podUIDFromPath extracts the pod UID from the nearest ancestor matching
// kubepods-...pod<uid>.slice, restoring dashes.
func podUIDFromPath(path string) string {
	for dir := filepath.Dir(path); dir != "/" && dir != "."; dir = filepath.Dir(dir) {
		name := filepath.Base(dir)
		if !strings.HasSuffix(name, ".slice") {
			continue
		}
		i := strings.Index(name, "-pod")
		if i < 0 {
			continue
		}
		uid := strings.TrimSuffix(name[i+len("-pod"):], ".slice")
		if uid == "" {
			continue
		}
		return strings.ReplaceAll(uid, "_", "-")
	}
	return ""
}

// inodeOf stats a path and pulls the inode out of the platform stat data.
func inodeOf(path string) (uint64, bool) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return st.Ino, true
}
