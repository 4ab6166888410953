package main

// Default command-line flag values
const (
	defaultMass      = 0.5   // kg
	defaultSpeed     = 1.0   // m/s
	defaultMaxSpeed  = 5.0   // m/s
	defaultTicks     = 10    // 1 second of audio at 100 ms per tick
	defaultPoints    = 100   // curve samples per tick
	defaultFramerate = 44100 // Hz
	defaultSeed      = 1
	tickMs           = 100.0 // length of one scrape tick
)

// Impact modes of the demo object
const (
	fundamentalHz    = 620.0
	fundamentalDecay = 180.0 // ms
	modeResonance    = 0.45
	modeCount        = 4
	modeLevelStepDB  = -6.0
	irSamples        = 2205 // 50 ms
)

// Surface profile
const (
	surfaceSamples   = 20000
	surfaceRoughness = 0.02
	roughnessRatio   = 0.6
	simulationAmp    = 0.8
	scrapeAmp        = 1.0
)

// Level reporting
const (
	amplitudeDBFactor = 20.0
	msPerSecond       = 1000.0
)
