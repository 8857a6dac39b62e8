package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试默认设置
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.WindowScale != 1.0 {
		t.Errorf("WindowScale: got %v, want 1.0", settings.WindowScale)
	}
}

// TestNewSettingsManagerNilGdata 测试降级模式（仅内存设置）
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.Persistent() {
		t.Error("Persistent() should be false without gdata manager")
	}
	if sm.GetSettings().Fullscreen {
		t.Error("Expected default settings in degraded mode")
	}

	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got %v", err)
	}
	if sm.GetSettings().Fullscreen {
		t.Error("Load() in degraded mode should reset to defaults")
	}
}

// TestSettingsLoadSave 测试保存后重新加载
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_transitions_settings")

	sm1 := NewSettingsManager(gdataManager)
	if !sm1.Persistent() {
		t.Fatal("Persistent() should be true with gdata manager")
	}
	sm1.SetFullscreen(true)
	sm1.SetWindowScale(1.5)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.WindowScale != 1.5 {
		t.Errorf("Loaded WindowScale: got %v, want 1.5", settings.WindowScale)
	}
}

// TestSetWindowScaleClamp 测试窗口缩放范围限制
func TestSetWindowScaleClamp(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"未设置", 0, 1.0},
		{"过小", 0.1, MinWindowScale},
		{"正常", 2.0, 2.0},
		{"过大", 10, MaxWindowScale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(nil)
			sm.SetWindowScale(tt.input)
			if got := sm.GetSettings().WindowScale; got != tt.want {
				t.Errorf("SetWindowScale(%v) -> %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
