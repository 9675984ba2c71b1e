package main

import (
	"fmt"
	"time"

	"github.com/leandrodaf/haptic/internal/logger"
	"github.com/leandrodaf/haptic/sdk/contracts"
	"github.com/leandrodaf/haptic/sdk/haptic"
)

func main() {
	log := logger.NewZapLogger()

	client, err := haptic.NewHapticClient(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithAsync(true),
	)
	if err != nil {
		log.Error("Failed to initialize haptic client", log.Field().Error("error", err))
		return
	}
	defer client.Close()

	fmt.Println("Available cues:", haptic.Cues())

	client.Play()
	time.Sleep(300 * time.Millisecond)

	// Simulate dragging a playhead back and forth.
	for _, v := range []float64{0.2, 0.5, 0.9, 0.4, -0.3, -0.8} {
		client.Scrub(v)
		time.Sleep(40 * time.Millisecond)
	}
	client.DirectionChange()

	if !client.Fire("success") {
		log.Warn("success cue missing from catalog")
	}
	client.Pause()
}
