// SPDX-License-Identifier: MIT
// Package: lvrand/config
//
// configuration.go - LVRAND_* variables and their defaults.

package config

import "time"

// Prefix for environment variable names, so SAMPLES becomes LVRAND_SAMPLES.
const Prefix = "LVRAND"

// Configuration via environment variables with github.com/kelseyhightower/envconfig.
type Configuration struct {

	// SAMPLES is the sequence length drawn from every generator.
	Samples int `default:"10000" desc:"Samples drawn per generator"`

	// BINS is the histogram resolution of the chi-square test.
	Bins int `default:"50" desc:"Chi-square histogram bins"`

	// LCG_PRESETS lists the LCG parameter sets to compare, by name.
	LCGPresets []string `envconfig:"LCG_PRESETS" default:"good,poor" desc:"LCG presets to compare (good, poor, ansic, minstd, randu)"`

	// SEED seeds the LCG presets and the hash chain.
	Seed uint64 `default:"42" desc:"Seed for LCG presets and the SHA-256 chain"`

	// MT_SEED seeds the Mersenne Twister; 5489 is the reference seed.
	MTSeed uint32 `envconfig:"MT_SEED" default:"5489" desc:"Mersenne Twister seed"`

	// XORSHIFT_SEED seeds the 32-bit XORShift generator and must be non-zero.
	XorshiftSeed uint32 `split_words:"true" default:"2463534242" desc:"XORShift seed (non-zero)"`

	// MSM_SEED and MSM_DIGITS configure the middle-square baseline; a zero
	// digit count leaves it out of the comparison.
	MSMSeed   uint64 `envconfig:"MSM_SEED" default:"675248" desc:"Middle-square seed"`
	MSMDigits int    `envconfig:"MSM_DIGITS" default:"0" desc:"Middle-square digits; 0 disables it"`

	// TRNG enables the microphone generator. Without a device it falls back
	// to the system CSPRNG.
	TRNG bool `envconfig:"TRNG" default:"true" desc:"Include the microphone TRNG"`

	// AUDIO_BACKEND chooses the recorder: arecord, synthetic or portaudio.
	AudioBackend string `split_words:"true" default:"arecord" desc:"Audio recorder: arecord, synthetic or portaudio"`

	// AUDIO_DEVICE is the ALSA device name used by arecord.
	AudioDevice string `split_words:"true" default:"default" desc:"ALSA capture device"`

	// CAPTURE_DURATION, SAMPLE_RATE and BIT_DEPTH shape one capture window.
	CaptureDuration time.Duration `split_words:"true" default:"1s" desc:"Audio capture window"`
	SampleRate      int           `split_words:"true" default:"44100" desc:"Audio sample rate in Hz"`
	BitDepth        int           `split_words:"true" default:"16" desc:"Audio bit depth (16 only)"`

	// EXTRACT_BITS is the number of least significant bits kept per frame.
	ExtractBits int `split_words:"true" default:"1" desc:"LSBs kept per audio frame"`

	// CONDITIONER and DEBIAS control post-extraction processing.
	Conditioner string `default:"sha256" desc:"Entropy conditioner: sha256, blake2b or none"`
	Debias      bool   `default:"true" desc:"Apply von Neumann debiasing"`
}
