package audio

import (
	"encoding/base64"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/simukka/flappy-dunk/game"
)

func TestEncodeWAV_Header(t *testing.T) {
	samples := []int16{0, 1000, -1000, 32767}
	data := EncodeWAV(samples)

	if len(data) != 44+len(samples)*2 {
		t.Fatalf("Expected %d bytes, got %d", 44+len(samples)*2, len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" || string(data[36:40]) != "data" {
		t.Errorf("Unexpected chunk ids %q %q %q", data[0:4], data[8:12], data[36:40])
	}
	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != SampleRate {
		t.Errorf("Expected sample rate %d, got %d", SampleRate, rate)
	}
	if size := binary.LittleEndian.Uint32(data[40:44]); size != 8 {
		t.Errorf("Expected data size 8, got %d", size)
	}
	if v := int16(binary.LittleEndian.Uint16(data[46:48])); v != 1000 {
		t.Errorf("Expected second sample 1000, got %d", v)
	}
}

func TestDataURL(t *testing.T) {
	url := DataURL([]byte("RIFF"))
	if !strings.HasPrefix(url, "data:audio/wav;base64,") {
		t.Fatalf("Unexpected prefix in %q", url)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:audio/wav;base64,"))
	if err != nil || string(raw) != "RIFF" {
		t.Errorf("Expected RIFF payload, got %q %v", raw, err)
	}
}

func TestEffects_CoverCoreSounds(t *testing.T) {
	for _, s := range []game.Sound{game.SoundJump, game.SoundScore, game.SoundMissFatal, game.SoundLevelUp, SoundClick} {
		if _, ok := Lookup(s); !ok {
			t.Errorf("Expected an effect for %s", s)
		}
		wav, ok := WAV(s)
		if !ok || len(wav) <= 44 {
			t.Errorf("Expected rendered WAV for %s, got %d bytes", s, len(wav))
		}
	}
	if _, ok := WAV(game.Sound("nope")); ok {
		t.Error("Expected no WAV for an unknown sound")
	}
}
