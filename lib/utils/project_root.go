package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ProjectRootDir returns the absolute path to the repository root.
//
// Resolution order:
//  1. $PROJECT_ROOT env-var (explicit override)
//  2. `git rev-parse --show-toplevel` if inside a Git work-tree
//  3. Walk up from the directory of this source file until one of
//     .git, go.work, go.mod, cdk.json is found
//
// Panics if none of the above succeed; the constants loader needs the root
// to locate deploy.toml regardless of the synth working directory.
func ProjectRootDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return filepath.Clean(root)
	}

	if gitRoot, err := gitToplevel(); err == nil && gitRoot != "" {
		return gitRoot
	}

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("ProjectRootDir: runtime.Caller failed (cannot determine source path)")
	}
	if root := climb(filepath.Dir(thisFile)); root != "" {
		return root
	}

	panic(`ProjectRootDir: repository root not found.
Set $PROJECT_ROOT or ensure one of {.git, go.work, go.mod, cdk.json} exists somewhere above your source tree`)
}

func gitToplevel() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	out, err := cmd.Output()
	if err != nil {
		return "", err // caller falls through to the file-walk
	}
	return strings.TrimSpace(string(out)), nil
}

func climb(dir string) string {
	markers := []string{".git", "go.work", "go.mod", "cdk.json"}

	for {
		for _, m := range markers {
			if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
