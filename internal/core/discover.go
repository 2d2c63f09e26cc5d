package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultProfileRoots returns the directories Firefox keeps profiles in for
// the given OS. appData is the Windows roaming application data directory.
func DefaultProfileRoots(home, goos, appData string) []string {
	switch goos {
	case "windows":
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return []string{filepath.Join(appData, "Mozilla", "Firefox", "Profiles")}
	case "darwin":
		return []string{filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles")}
	default:
		return []string{
			filepath.Join(home, ".mozilla", "firefox"),
			filepath.Join(home, "snap", "firefox", "common", ".mozilla", "firefox"),
			filepath.Join(home, ".var", "app", "org.mozilla.firefox", ".mozilla", "firefox"),
		}
	}
}

// FindPlacesFiles walks roots and returns every places database that lives
// under a default profile directory (".default", ".default-release", ...),
// sorted. Roots that do not exist are skipped, as are subdirectories that
// cannot be read.
func FindPlacesFiles(roots []string) ([]string, error) {
	var found []string
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debugf("Profile root %s does not exist, skipping", root)
				continue
			}
			return nil, fmt.Errorf("failed to stat profile root %s: %w", root, err)
		}

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && path != root {
					log.Debugf("Skipping unreadable directory %s: %v", path, err)
					return fs.SkipDir
				}
				return err
			}
			if d.IsDir() || d.Name() != PlacesFileName {
				return nil
			}
			if strings.Contains(filepath.Dir(path), ".default") {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile root %s: %w", root, err)
		}
	}

	sort.Strings(found)
	return found, nil
}
