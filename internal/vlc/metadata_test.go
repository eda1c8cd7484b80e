package vlc

import (
	"encoding/json"
	"testing"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
)

func decodePayload(t *testing.T, body string) core.StatusPayload {
	t.Helper()
	var p core.StatusPayload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return p
}

func TestProjectMediaInfo_Full(t *testing.T) {
	p := decodePayload(t, `{
		"length": 5400, "time": 61, "state": "playing", "rate": 1.5, "volume": 256,
		"information": {"category": {"meta": {
			"title": "Heat", "artist": "Michael Mann", "album": "OST", "filename": "heat.mkv"
		}}}
	}`)

	info := ProjectMediaInfo(p)

	if info.Title == nil || *info.Title != "Heat" {
		t.Errorf("Title = %v, want Heat", info.Title)
	}
	if info.Artist == nil || *info.Artist != "Michael Mann" {
		t.Errorf("Artist = %v", info.Artist)
	}
	if info.Album == nil || *info.Album != "OST" {
		t.Errorf("Album = %v", info.Album)
	}
	if info.Filename == nil || *info.Filename != "heat.mkv" {
		t.Errorf("Filename = %v", info.Filename)
	}
	if info.Duration == nil || *info.Duration != 5400 {
		t.Errorf("Duration = %v, want 5400", info.Duration)
	}
	if info.Position == nil || *info.Position != 61 {
		t.Errorf("Position = %v, want 61", info.Position)
	}
	if info.State == nil || *info.State != "playing" {
		t.Errorf("State = %v", info.State)
	}
	if info.Rate == nil || *info.Rate != 1.5 {
		t.Errorf("Rate = %v", info.Rate)
	}
	if info.Volume == nil || *info.Volume != 256 {
		t.Errorf("Volume = %v", info.Volume)
	}
}

func TestProjectMediaInfo_Sparse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"nothing loaded", `{"state":"stopped","volume":256,"length":0,"time":0}`},
		{"information not an object", `{"state":"stopped","information":"n/a"}`},
		{"category missing meta", `{"state":"stopped","information":{"category":{}}}`},
		{"meta wrong type", `{"state":"stopped","information":{"category":{"meta":[1,2]}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ProjectMediaInfo(decodePayload(t, tt.body))
			if info.Title != nil || info.Artist != nil || info.Album != nil {
				t.Errorf("metadata fields should be absent, got %+v", info)
			}
			if info.State == nil || *info.State != "stopped" {
				t.Errorf("State = %v, want stopped", info.State)
			}
		})
	}
}

func TestProjectMediaInfo_NilAndMistyped(t *testing.T) {
	info := ProjectMediaInfo(nil)
	if info == nil {
		t.Fatal("ProjectMediaInfo(nil) returned nil")
	}
	if info.State != nil || info.Duration != nil {
		t.Errorf("expected empty info, got %+v", info)
	}

	info = ProjectMediaInfo(core.StatusPayload{"length": "long", "rate": "fast", "state": 3})
	if info.Duration != nil || info.Rate != nil || info.State != nil {
		t.Errorf("mistyped fields should be absent, got %+v", info)
	}
}
