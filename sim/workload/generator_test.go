package workload

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWorkload_ExplicitRequests_CopiedVerbatim(t *testing.T) {
	// GIVEN a spec listing tracks explicitly
	reqs := []int{98, 183, 37, 122}
	spec := &WorkloadSpec{DiskSize: 200, InitialPosition: intPtr(53), Requests: reqs}

	// WHEN generated
	w, err := GenerateWorkload(spec)
	require.NoError(t, err)

	// THEN the tracks are preserved in order and not aliased
	assert.Equal(t, reqs, w.Requests)
	assert.Equal(t, 53, w.InitialPosition)
	assert.Equal(t, 200, w.DiskSize)
	w.Requests[0] = 0
	assert.Equal(t, 98, reqs[0])
}

func TestGenerateWorkload_SameSeed_Deterministic(t *testing.T) {
	spec := &WorkloadSpec{Seed: 99, DiskSize: 500, NumRequests: 50, Distribution: &DistSpec{Type: "uniform"}}

	a, err := GenerateWorkload(spec)
	require.NoError(t, err)
	b, err := GenerateWorkload(spec)
	require.NoError(t, err)

	assert.Equal(t, a.Requests, b.Requests)
	assert.Equal(t, a.InitialPosition, b.InitialPosition)
	assert.Len(t, a.Requests, 50)
	for _, r := range a.Requests {
		assert.True(t, r >= 0 && r < 500, "track %d off disk", r)
	}
}

func TestGenerateWorkload_DifferentSeeds_Differ(t *testing.T) {
	dist := &DistSpec{Type: "uniform"}
	a, err := GenerateWorkload(&WorkloadSpec{Seed: 1, DiskSize: 10000, NumRequests: 20, Distribution: dist})
	require.NoError(t, err)
	b, err := GenerateWorkload(&WorkloadSpec{Seed: 2, DiskSize: 10000, NumRequests: 20, Distribution: dist})
	require.NoError(t, err)
	assert.NotEqual(t, a.Requests, b.Requests)
}

func TestGenerateWorkload_FixedHead_DoesNotShiftTracks(t *testing.T) {
	// GIVEN two specs differing only in whether the head is fixed
	base := WorkloadSpec{Seed: 5, DiskSize: 300, NumRequests: 30, Distribution: &DistSpec{Type: "uniform"}}
	fixed := base
	fixed.InitialPosition = intPtr(10)

	// WHEN both are generated
	a, err := GenerateWorkload(&base)
	require.NoError(t, err)
	b, err := GenerateWorkload(&fixed)
	require.NoError(t, err)

	// THEN the sampled tracks are identical (head RNG is isolated)
	assert.Equal(t, a.Requests, b.Requests)
	assert.Equal(t, 10, b.InitialPosition)
}

func TestGenerateWorkload_InvalidSpec_Error(t *testing.T) {
	_, err := GenerateWorkload(&WorkloadSpec{DiskSize: 0, Requests: []int{1}})
	assert.ErrorContains(t, err, "invalid workload spec")
}

// captureLogOutput runs fn and returns the log output as a string.
func captureLogOutput(fn func()) string {
	var buf bytes.Buffer
	origOutput := logrus.StandardLogger().Out
	origLevel := logrus.GetLevel()
	logrus.SetOutput(&buf)
	logrus.SetLevel(logrus.WarnLevel)
	defer func() {
		if origOutput != nil {
			logrus.SetOutput(origOutput)
		} else {
			logrus.SetOutput(os.Stderr)
		}
		logrus.SetLevel(origLevel)
	}()
	fn()
	return buf.String()
}

func TestGenerateWorkload_ClampedGaussian_Warns(t *testing.T) {
	// GIVEN a gaussian far wider than the disk
	spec := &WorkloadSpec{
		Seed:         5,
		DiskSize:     100,
		NumRequests:  50,
		Distribution: &DistSpec{Type: "gaussian", Params: map[string]float64{"std_dev": 1000}},
	}

	// WHEN generated
	var err error
	output := captureLogOutput(func() { _, err = GenerateWorkload(spec) })

	// THEN generation succeeds and the clamping is reported once
	require.NoError(t, err)
	assert.Contains(t, output, "were clamped")
	assert.Equal(t, 1, bytes.Count([]byte(output), []byte("were clamped")))
}

func TestGenerateWorkload_UniformNeverClamps_NoWarning(t *testing.T) {
	spec := &WorkloadSpec{Seed: 5, DiskSize: 100, NumRequests: 50, Distribution: &DistSpec{Type: "uniform"}}
	output := captureLogOutput(func() {
		_, err := GenerateWorkload(spec)
		require.NoError(t, err)
	})
	assert.NotContains(t, output, "clamped")
}
