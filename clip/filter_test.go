package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArgsUnitySpeed(t *testing.T) {
	args := BuildArgs("https://cdn.example/stream", 90, 75, 1.0, "out.mp4")

	assert.Equal(t, []string{
		"-ss", "90",
		"-i", "https://cdn.example/stream",
		"-t", "75",
		"-c:v", "libx264",
		"-c:a", "aac",
		"-pix_fmt", "yuv420p",
		"-movflags", "faststart",
		"-preset", "fast",
		"-crf", "23",
		"-y",
		"out.mp4",
	}, args)
}

func TestBuildArgsNearUnityBand(t *testing.T) {
	// Speeds within 0.01 of 1.0 emit no rate filters at all.
	for _, speed := range []float64{0.995, 1.0, 1.005, 1.009} {
		args := BuildArgs("src", 0, 10, speed, "out.mp4")
		assert.NotContains(t, args, "-filter:v", "speed %v", speed)
		assert.NotContains(t, args, "-filter:a", "speed %v", speed)
	}
}

func TestBuildArgsSlowdown(t *testing.T) {
	args := BuildArgs("src", 0, 10, 0.5, "out.mp4")

	// Video timestamps stretch by 1/speed, audio tempo drops directly.
	assert.Contains(t, args, "setpts=2.00*PTS")
	assert.Contains(t, args, "atempo=0.50")
}

func TestBuildArgsModerateSpeedup(t *testing.T) {
	args := BuildArgs("src", 0, 10, 1.5, "out.mp4")

	assert.Contains(t, args, "setpts=0.67*PTS")
	assert.Contains(t, args, "atempo=1.50")
}

func TestBuildArgsSpeedAtTempoCeiling(t *testing.T) {
	args := BuildArgs("src", 0, 10, 2.0, "out.mp4")

	// A single stage at exactly the 2.0 ceiling, no chain.
	assert.Contains(t, args, "atempo=2.00")
}

func TestAtempoChainAboveCeiling(t *testing.T) {
	// Each stage stays at or below 2.0; the product equals the speed.
	assert.Equal(t, "atempo=2.0,atempo=1.25", atempoChain(2.5))
	assert.Equal(t, "atempo=2.0,atempo=1.50", atempoChain(3.0))
	assert.Equal(t, "atempo=2.0,atempo=2.00", atempoChain(4.0))
}

func TestBuildArgsDurationDirective(t *testing.T) {
	ranges := []struct {
		start, end float64
		want       string
	}{
		{0, 10, "10"},
		{90, 165, "75"},
		{5445, 5445.5, "0.5"},
	}

	for _, tt := range ranges {
		rng, err := NewRange(tt.start, tt.end)
		require.NoError(t, err)

		args := BuildArgs("src", rng.Start, rng.Duration(), 1.0, "out.mp4")

		// Exactly one -t token, carrying end - start.
		var durations []string
		for i, a := range args {
			if a == "-t" {
				durations = append(durations, args[i+1])
			}
		}
		require.Len(t, durations, 1)
		assert.Equal(t, tt.want, durations[0])
	}
}

func TestBuildArgsEncodeTailOrder(t *testing.T) {
	tail := []string{
		"-c:v", "libx264",
		"-c:a", "aac",
		"-pix_fmt", "yuv420p",
		"-movflags", "faststart",
		"-preset", "fast",
		"-crf", "23",
		"-y",
		"out.mp4",
	}

	// The fixed encoding block closes every argument list in constant order,
	// with or without rate filters.
	for _, speed := range []float64{0.5, 1.0, 3.0, 4.0} {
		args := BuildArgs("src", 5, 10, speed, "out.mp4")
		require.GreaterOrEqual(t, len(args), len(tail), "speed %v", speed)
		assert.Equal(t, tail, args[len(args)-len(tail):], "speed %v", speed)
	}
}

func TestBuildArgsOrdering(t *testing.T) {
	args := BuildArgs("src", 5, 10, 3.0, "out.mp4")

	// Seek, input, and duration lead; filters follow; encode block trails.
	assert.Equal(t, []string{"-ss", "5", "-i", "src", "-t", "10", "-filter:v", "setpts=0.33*PTS", "-filter:a", "atempo=2.0,atempo=1.50"}, args[:10])
}

func TestBuildArgsIdempotent(t *testing.T) {
	a := BuildArgs("src", 12.5, 30, 2.5, "out.mp4")
	b := BuildArgs("src", 12.5, 30, 2.5, "out.mp4")
	assert.Equal(t, a, b)
}
