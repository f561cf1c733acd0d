package main

import (
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"single sphere scene", "single", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}
			if scene.Config.Width <= 0 {
				t.Errorf("Scene width should be positive, got %d", scene.Config.Width)
			}
			if scene.Config.Height <= 0 {
				t.Errorf("Scene height should be positive, got %d", scene.Config.Height)
			}
		})
	}
}
