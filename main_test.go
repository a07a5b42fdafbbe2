package main

import "testing"

func TestSceneDirNameUsesBaseNameForYAMLFiles(t *testing.T) {
	got := sceneDirName("scenes/my-scene.yaml")
	if got != "my-scene" {
		t.Errorf("expected %q, got %q", "my-scene", got)
	}
}

func TestSceneDirNamePassesThroughBuiltins(t *testing.T) {
	got := sceneDirName("cornell")
	if got != "cornell" {
		t.Errorf("expected %q, got %q", "cornell", got)
	}
}

func TestThumbnailPathForInsertsSuffixBeforeExtension(t *testing.T) {
	got := thumbnailPathFor("output/cornell/render_20260730_120000.png")
	want := "output/cornell/render_20260730_120000_thumb.png"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
