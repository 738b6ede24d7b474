package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadTOML(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.toml")

	type TestStruct struct {
		Root     string
		NoteFile string
	}

	originalData := TestStruct{
		Root:     "/home/someone/Echo",
		NoteFile: "journal.txt",
	}

	if err := SaveTOML(testFile, originalData); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loadedData := TestStruct{}
	if err := LoadTOML(testFile, &loadedData); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if loadedData != originalData {
		t.Errorf("Expected %+v, got %+v", originalData, loadedData)
	}
}

func TestLoadTOMLNonExistent(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "nonexistent.toml")

	var data struct{ Name string }
	if err := LoadTOML(testFile, &data); err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
}

func TestSaveTOMLCreatesPrivateFile(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "subdir", "test.toml")

	if err := SaveTOML(testFile, struct{ Name string }{"Test"}); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("File was not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600, got %o", info.Mode().Perm())
	}
}
