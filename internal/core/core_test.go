package core

import "testing"

func ptr[T any](v T) *T { return &v }

func TestMediaInfo_ProgressPercent(t *testing.T) {
	tests := []struct {
		name string
		info *MediaInfo
		want float64
	}{
		{"nil", nil, 0},
		{"no duration", &MediaInfo{Position: ptr(10)}, 0},
		{"zero duration", &MediaInfo{Duration: ptr(0), Position: ptr(10)}, 0},
		{"half", &MediaInfo{Duration: ptr(200), Position: ptr(100)}, 50},
		{"past end", &MediaInfo{Duration: ptr(100), Position: ptr(150)}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.ProgressPercent(); got != tt.want {
				t.Errorf("ProgressPercent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMediaInfo_DisplayTitle(t *testing.T) {
	if got := (&MediaInfo{Title: ptr("Heat"), Filename: ptr("heat.mkv")}).DisplayTitle(); got != "Heat" {
		t.Errorf("DisplayTitle() = %q, want Heat", got)
	}
	if got := (&MediaInfo{Filename: ptr("heat.mkv")}).DisplayTitle(); got != "heat.mkv" {
		t.Errorf("DisplayTitle() = %q, want heat.mkv", got)
	}
	if got := (&MediaInfo{}).DisplayTitle(); got != "" {
		t.Errorf("DisplayTitle() = %q, want empty", got)
	}
}

func TestMediaInfo_IsPlaying(t *testing.T) {
	if (&MediaInfo{}).IsPlaying() {
		t.Error("empty info should not be playing")
	}
	if !(&MediaInfo{State: ptr(StatePlaying)}).IsPlaying() {
		t.Error("state playing should be playing")
	}
}

func TestMovieCache_Find(t *testing.T) {
	c := &MovieCache{Movies: []Movie{{Name: "alpha"}, {Name: "Zeta"}}}
	if m := c.Find("zeta"); m == nil || m.Name != "Zeta" {
		t.Errorf("Find(zeta) = %v", m)
	}
	if m := c.Find("missing"); m != nil {
		t.Errorf("Find(missing) = %v, want nil", m)
	}
	var nilCache *MovieCache
	if nilCache.Len() != 0 || !nilCache.IsEmpty() || nilCache.HasError() {
		t.Error("nil cache helpers should report empty")
	}
}

func TestOutputKind_Label(t *testing.T) {
	if OutputVideoModules.Label() != "video outputs" {
		t.Errorf("Label() = %q", OutputVideoModules.Label())
	}
}
