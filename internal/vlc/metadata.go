package vlc

import (
	"math"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
)

// ProjectMediaInfo flattens a status payload into MediaInfo. Missing or
// mistyped keys leave the field nil; it never fails. An empty metadata
// section is normal when nothing is loaded.
func ProjectMediaInfo(payload core.StatusPayload) *core.MediaInfo {
	info := &core.MediaInfo{}
	if payload == nil {
		return info
	}

	meta, _ := lookupMap(payload, "information", "category", "meta")
	info.Title = stringField(meta, "title")
	info.Artist = stringField(meta, "artist")
	info.Album = stringField(meta, "album")
	info.Filename = stringField(meta, "filename")

	info.Duration = intField(payload, "length")
	info.Position = intField(payload, "time")
	info.State = stringField(payload, "state")
	info.Rate = floatField(payload, "rate")
	info.Volume = floatField(payload, "volume")

	return info
}

// lookupMap follows keys through nested JSON objects.
func lookupMap(m map[string]any, keys ...string) (map[string]any, bool) {
	cur := m
	for _, k := range keys {
		next, ok := cur[k].(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func stringField(m map[string]any, key string) *string {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func floatField(m map[string]any, key string) *float64 {
	f, ok := m[key].(float64)
	if !ok {
		return nil
	}
	return &f
}

func intField(m map[string]any, key string) *int {
	f := floatField(m, key)
	if f == nil {
		return nil
	}
	i := int(math.Round(*f))
	return &i
}
