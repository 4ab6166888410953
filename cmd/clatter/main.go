package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	clatter "github.com/tphakala/go-clatter"
	"github.com/tphakala/simd/f64"
)

func main() {
	// Command-line flags
	var (
		mass      = flag.Float64("mass", defaultMass, "Mass of the scraping object in kg")
		speed     = flag.Float64("speed", defaultSpeed, "Scrape speed in m/s")
		maxSpeed  = flag.Float64("max-speed", defaultMaxSpeed, "Speed at which the scrape force reaches full scale")
		ticks     = flag.Int("ticks", defaultTicks, "Number of scrape ticks to synthesize")
		points    = flag.Int("points", defaultPoints, "Surface curve samples consumed per tick")
		framerate = flag.Int("framerate", defaultFramerate, "Sample rate in Hz")
		seed      = flag.Int64("seed", defaultSeed, "Seed for the random surface profile")
		verbose   = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	clatter.SetLogger(log.WithField("component", "clatter"))

	info := clatter.GetInfo()
	log.WithFields(logrus.Fields{
		"simd":          info.SIMD,
		"median_window": info.MedianWindow,
	}).Debug("kernel info")

	ir, err := impactResponse(float64(*framerate))
	if err != nil {
		log.WithError(err).Fatal("failed to build impact response")
	}
	fmt.Printf("Impact response: %d samples, peak %.2f dBFS\n", len(ir), peakDB(ir))

	config := clatter.DefaultScrapeConfig()
	config.Framerate = *framerate
	config.SampleCount = *framerate / int(msPerSecond/tickMs)
	scraper, err := clatter.NewScraper(&config)
	if err != nil {
		log.WithError(err).Fatal("failed to create scraper")
	}

	curve := roughSurface(surfaceSamples, *seed)
	params := clatter.ScrapeParams{
		Speed:          *speed,
		MaxSpeed:       *maxSpeed,
		PrimaryMass:    *mass,
		RoughnessRatio: roughnessRatio,
		SimulationAmp:  simulationAmp,
		ScrapeAmp:      scrapeAmp,
		NumPoints:      *points,
	}

	fmt.Printf("Scraping %d ticks of %d samples (%d curve points each):\n",
		*ticks, config.SampleCount, *points)

	block := make([]float64, config.SampleCount)
	start := time.Now()
	for i := range *ticks {
		if err := scraper.TickInto(block, curve, ir, params); err != nil {
			log.WithError(err).WithField("tick", i).Fatal("scrape tick failed")
		}
		fmt.Printf("  tick %3d: cursor %5d, rms %7.2f dBFS, peak %7.2f dBFS, dc %+.2e\n",
			i, scraper.ScrapeIndex(), rmsDB(block), peakDB(block), mean(block))
	}
	elapsed := time.Since(start)

	audioSeconds := float64(*ticks*config.SampleCount) / float64(*framerate)
	log.WithFields(logrus.Fields{
		"elapsed":  elapsed,
		"realtime": audioSeconds / elapsed.Seconds(),
	}).Info("synthesis complete")

	if n := scraper.NonConvergent(); n > 0 {
		log.WithField("count", n).Warn("median selection fell back to zero")
	}
}

// impactResponse sums a harmonic series of decaying modes.
func impactResponse(framerate float64) ([]float64, error) {
	modes := make([]clatter.Mode, modeCount)
	for i := range modes {
		modes[i] = clatter.Mode{
			Power:     modeLevelStepDB * float64(i),
			Decay:     fundamentalDecay / float64(i+1),
			Frequency: fundamentalHz * float64(i+1) * (1 + 0.03*float64(i)),
			Resonance: modeResonance,
		}
	}
	return clatter.ImpactResponse(modes, irSamples, framerate)
}

// roughSurface builds a random-walk surface and returns its first and second
// differences.
func roughSurface(n int, seed int64) clatter.ScrapeCurve {
	rng := rand.New(rand.NewSource(seed))
	height := make([]float64, n+2)
	for i := 1; i < len(height); i++ {
		height[i] = height[i-1] + surfaceRoughness*rng.NormFloat64()
	}

	curve := clatter.ScrapeCurve{
		Dsdx:   make([]float64, n),
		D2sdx2: make([]float64, n),
	}
	for i := range n {
		curve.Dsdx[i] = height[i+1] - height[i]
		curve.D2sdx2[i] = height[i+2] - 2*height[i+1] + height[i]
	}
	return curve
}

func mean(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return f64.Sum(s) / float64(len(s))
}

func rmsDB(s []float64) float64 {
	if len(s) == 0 {
		return math.Inf(-1)
	}
	rms := math.Sqrt(f64.DotProduct(s, s) / float64(len(s)))
	return amplitudeDBFactor * math.Log10(rms)
}

func peakDB(s []float64) float64 {
	peak := 0.0
	for _, v := range s {
		peak = max(peak, math.Abs(v))
	}
	return amplitudeDBFactor * math.Log10(peak)
}
