/*
Copyright © 2025 Katie Mulliken <katie@mulliken.net>
*/
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverCmd_CommandMetadata(t *testing.T) {
	if discoverCmd.Use != "discover" {
		t.Errorf("Expected Use to be 'discover', got %s", discoverCmd.Use)
	}

	if discoverCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}
}

func TestDiscoverCmd_InheritsConfigFlag(t *testing.T) {
	// The discover command should have access to the persistent --config flag from root
	flag := discoverCmd.InheritedFlags().Lookup("config")
	if flag == nil {
		t.Error("Expected discover command to inherit --config flag from root")
	}
}

func TestDiscoverCmd_RejectsArgs(t *testing.T) {
	if err := discoverCmd.Args(discoverCmd, []string{"extra"}); err == nil {
		t.Error("Expected discover to reject positional arguments")
	}
}

func TestDiscoverCmd_ListsDefaultProfiles(t *testing.T) {
	resetFlags(t, rootCmd)
	resetFlags(t, discoverCmd)

	root := t.TempDir()
	want := filepath.Join(root, "x.default-release", "places.sqlite")
	for _, p := range []string{want, filepath.Join(root, "y.dev-edition", "places.sqlite")} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("profile_roots:\n  - "+root+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"discover", "--config", cfgPath})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if stdout.String() != want+"\n" {
		t.Errorf("got %q, want %q", stdout.String(), want+"\n")
	}
}
