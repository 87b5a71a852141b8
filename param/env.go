package param

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/sarchlab/tsvcost/timing"
)

// Keys recognized by LoadEnv.
const (
	EnvTSVPitch       = "TSVCOST_TSV_PITCH"
	EnvTSVRes         = "TSVCOST_TSV_RES"
	EnvTSVCap         = "TSVCOST_TSV_CAP"
	EnvNumRowSubArray = "TSVCOST_NUM_ROW_SUBARRAY"
	EnvNumColSubArray = "TSVCOST_NUM_COL_SUBARRAY"
	EnvClkFreq        = "TSVCOST_CLK_FREQ"
	EnvSynchronous    = "TSVCOST_SYNCHRONOUS"
	EnvValidated      = "TSVCOST_VALIDATED"
	EnvDelta          = "TSVCOST_DELTA"
)

// LoadEnv reads the given env files and applies the TSVCOST_* keys they define
// on top of b. Keys that are absent keep the value already in b. The process
// environment is not modified.
func LoadEnv(b Builder, filenames ...string) (Builder, error) {
	vars, err := godotenv.Read(filenames...)
	if err != nil {
		return b, fmt.Errorf("reading env files: %w", err)
	}

	return ApplyEnv(b, vars)
}

// ApplyEnv applies the TSVCOST_* entries of vars on top of b.
func ApplyEnv(b Builder, vars map[string]string) (Builder, error) {
	floats := []struct {
		key string
		set func(Builder, float64) Builder
	}{
		{EnvTSVPitch, Builder.WithTSVPitch},
		{EnvTSVRes, Builder.WithTSVRes},
		{EnvTSVCap, Builder.WithTSVCap},
		{EnvDelta, Builder.WithDelta},
		{EnvClkFreq, func(b Builder, v float64) Builder {
			return b.WithClkFreq(timing.Freq(v))
		}},
	}

	for _, f := range floats {
		s, ok := vars[f.key]
		if !ok {
			continue
		}

		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return b, fmt.Errorf("parsing %s: %w", f.key, err)
		}

		b = f.set(b, v)
	}

	ints := []struct {
		key string
		set func(Builder, int) Builder
	}{
		{EnvNumRowSubArray, Builder.WithNumRowSubArray},
		{EnvNumColSubArray, Builder.WithNumColSubArray},
	}

	for _, i := range ints {
		s, ok := vars[i.key]
		if !ok {
			continue
		}

		v, err := strconv.Atoi(s)
		if err != nil {
			return b, fmt.Errorf("parsing %s: %w", i.key, err)
		}

		b = i.set(b, v)
	}

	bools := []struct {
		key string
		set func(Builder, bool) Builder
	}{
		{EnvSynchronous, Builder.WithSynchronous},
		{EnvValidated, Builder.WithValidated},
	}

	for _, bl := range bools {
		s, ok := vars[bl.key]
		if !ok {
			continue
		}

		v, err := strconv.ParseBool(s)
		if err != nil {
			return b, fmt.Errorf("parsing %s: %w", bl.key, err)
		}

		b = bl.set(b, v)
	}

	return b, nil
}
