package render

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	ffmpeggo "github.com/u2takey/ffmpeg-go"

	"shorts-pipeline/faults"
	"shorts-pipeline/types"
)

// DuckFilter is the voice+music filter chain: the music is compressed with
// the voiceover as sidechain key (so it dips whenever the voice is active),
// the ducked music is halved, and voice + music are mixed down to one track.
func DuckFilter() string {
	return "[2:a][1:a]sidechaincompress=threshold=0.05:ratio=8:attack=5:release=300[ducked];" +
		"[ducked]volume=0.5[music];" +
		"[1:a][music]amix=inputs=2:duration=shortest:dropout_transition=0[aout]"
}

// encodeArgs is the shared output contract for every mixer branch that
// re-encodes: H.264 high/4.0 at the pipeline frame rate, AAC 192k,
// trimmed to the shortest input.
func encodeArgs(fps int) []string {
	return []string{
		"-c:v", "libx264",
		"-profile:v", "high",
		"-level", "4.0",
		"-preset", "fast",
		"-crf", "20",
		"-r", fmt.Sprintf("%d", fps),
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-b:a", "192k",
		"-shortest",
		"-movflags", "+faststart",
	}
}

// MixArgs builds the encoder invocation for one of the four audio cases.
// The mode is decided once per run; this function never checks the
// filesystem.
func MixArgs(video, voice, music, out string, mode types.AudioMode, fps int) []string {
	switch mode {
	case types.AudioBoth:
		args := []string{"-y", "-i", video, "-i", voice, "-i", music,
			"-filter_complex", DuckFilter(),
			"-map", "0:v:0", "-map", "[aout]",
		}
		args = append(args, encodeArgs(fps)...)
		return append(args, out)

	case types.AudioVoiceOnly:
		args := []string{"-y", "-i", video, "-i", voice,
			"-map", "0:v:0", "-map", "1:a:0",
		}
		args = append(args, encodeArgs(fps)...)
		return append(args, out)

	case types.AudioMusicOnly:
		args := []string{"-y", "-i", video, "-i", music,
			"-map", "0:v:0", "-map", "1:a:0",
		}
		args = append(args, encodeArgs(fps)...)
		return append(args, out)

	default: // AudioNone: pass the video through with no audio track
		return []string{"-y", "-i", video, "-c:v", "copy", "-an",
			"-movflags", "+faststart", out}
	}
}

// NormalizeMusic loudness-normalizes the background track before the mix
// stage (integrated -22 LUFS, true peak -1.5 dB, range 11).
func NormalizeMusic(music, runDir string) (string, error) {
	log.Println("[render] Normalizing music loudness...")

	outFile := filepath.Join(runDir, "music_normalized.m4a")
	err := ffmpeggo.Input(music).
		Output(outFile, ffmpeggo.KwArgs{
			"af":  "loudnorm=I=-22:TP=-1.5:LRA=11",
			"c:a": "aac",
			"b:a": "192k",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return "", faults.ExternalTool("music normalization: %v", err)
	}
	return outFile, nil
}

// Mix produces the final muxed output for the run's audio mode.
func (r *Renderer) Mix(ctx context.Context, video string, rctx *types.RenderContext) (string, error) {
	log.Printf("[render] Mixing audio (%s)...", rctx.Mode)

	music := rctx.MusicPath
	if rctx.Mode == types.AudioBoth || rctx.Mode == types.AudioMusicOnly {
		normalized, err := NormalizeMusic(music, rctx.RunDir)
		if err != nil {
			return "", err
		}
		music = normalized
	}

	outFile := filepath.Join(rctx.RunDir, "final_video.mp4")
	args := MixArgs(video, rctx.VoicePath, music, outFile, rctx.Mode, r.cfg.Video.FPS)
	if err := runFFmpeg(ctx, args); err != nil {
		return "", err
	}

	log.Printf("[render] ✅ Final video ready: %s", outFile)
	return outFile, nil
}
