package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"phantomgen/pkg/config"
	"phantomgen/pkg/gridding"
	"phantomgen/pkg/kspace"
	"phantomgen/pkg/mr"
	"phantomgen/pkg/raster"
	"phantomgen/pkg/trajectory"
	"phantomgen/pkg/visualization"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "phantomgen.yaml", "Path to YAML configuration file")
	outputDir := flag.String("output", "", "Output directory (overrides config)")
	spokes := flag.Int("spokes", 0, "Number of radial spokes (overrides config)")
	samples := flag.Int("samples", 0, "Samples per spoke (overrides config)")
	coils := flag.Int("coils", -1, "Number of receiver coils, 0 disables sensitivity weighting (overrides config)")
	rasterSize := flag.Int("size", 0, "Raster/gridding size in pixels (overrides config)")
	mrVolumes := flag.Bool("mr", false, "Also generate MR tissue parameter volumes (M0, T1, T2)")
	mrDepth := flag.Int("mr-depth", 32, "Number of z slices for MR volumes")
	writeConfig := flag.Bool("write-config", false, "Write the default configuration file and exit")
	flag.Parse()

	if *writeConfig {
		if err := config.CreateDefaultConfigFile(*configPath); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Printf("Default configuration written to %s\n", *configPath)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Apply flag overrides
	if *outputDir != "" {
		cfg.Output.Directory = *outputDir
	}
	if *spokes > 0 {
		cfg.Trajectory.Spokes = *spokes
	}
	if *samples > 0 {
		cfg.Trajectory.SamplesPerSpoke = *samples
	}
	if *coils >= 0 {
		cfg.Synthesis.Coils = *coils
	}
	if *rasterSize > 0 {
		cfg.Raster.Size = *rasterSize
	}

	if err := os.MkdirAll(cfg.Output.Directory, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	fmt.Println("================================")
	fmt.Println("ANALYTIC SHEPP-LOGAN PHANTOM GENERATOR")
	fmt.Println("Spatial-domain rasterization and exact k-space synthesis")
	fmt.Println("================================")

	table, err := cfg.Table()
	if err != nil {
		log.Fatalf("Invalid ellipse table: %v", err)
	}

	// Step 1: Generate the radial sampling trajectory
	fmt.Println("Step 1: Generating radial trajectory...")
	sx, nspokes := cfg.Trajectory.SamplesPerSpoke, cfg.Trajectory.Spokes
	var kx, ky []float64
	if cfg.Trajectory.GoldenAngle {
		kx, ky = trajectory.RadialGolden(sx, nspokes)
	} else {
		kx, ky = trajectory.Radial(sx, nspokes)
	}
	fmt.Printf("  %d spokes x %d samples = %d k-space locations\n", nspokes, sx, len(kx))

	// Trajectory coordinates follow the BART convention; the synthesizer
	// expects them halved.
	for i := range kx {
		kx[i] /= 2
		ky[i] /= 2
	}

	// Step 2: Synthesize analytic k-space along the trajectory
	fmt.Println("Step 2: Synthesizing analytic k-space...")
	synth := kspace.NewSynthesizer(&kspace.Params{
		Table:      table,
		NumWorkers: cfg.Synthesis.NumWorkers,
	})

	start := time.Now()
	if nc := cfg.Synthesis.Coils; nc > 0 {
		measurements, err := synth.SynthesizeCoils(kx, ky, nc)
		if err != nil {
			log.Fatalf("Coil synthesis failed: %v", err)
		}
		fmt.Printf("  Simulated %d coils at %d locations in %.2f seconds\n",
			nc, len(measurements), time.Since(start).Seconds())

		path := filepath.Join(cfg.Output.Directory, "kspace_coils.bin")
		if err := dumpCoilKspace(measurements, path); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		fmt.Printf("  Raw coil k-space written to %s\n", path)
	} else {
		measurements, err := synth.Synthesize(kx, ky)
		if err != nil {
			log.Fatalf("Synthesis failed: %v", err)
		}
		fmt.Printf("  Synthesized %d locations in %.2f seconds\n",
			len(measurements), time.Since(start).Seconds())

		path := filepath.Join(cfg.Output.Directory, "kspace.bin")
		if err := dumpKspace(measurements, path); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		fmt.Printf("  Raw k-space written to %s\n", path)
	}

	// Step 3: Rasterize the phantom in the spatial domain
	fmt.Println("Step 3: Rasterizing spatial-domain phantom...")
	size := cfg.Raster.Size
	grid := raster.Render2D(table, size, size)
	if cfg.Output.SaveImages {
		path := filepath.Join(cfg.Output.Directory, "phantom.png")
		if err := visualization.SaveGrid(grid, path); err != nil {
			log.Fatalf("Failed to save phantom image: %v", err)
		}
		fmt.Printf("  Phantom image written to %s\n", path)
	}

	// Step 4: Validate via Cartesian gridding
	fmt.Println("Step 4: Validating k-space against the rasterized phantom...")
	gkx, gky := gridding.CartesianGrid(size)
	for i := range gkx {
		gkx[i] /= 2
		gky[i] /= 2
	}
	gridKspace, err := synth.Synthesize(gkx, gky)
	if err != nil {
		log.Fatalf("Cartesian synthesis failed: %v", err)
	}
	image, err := gridding.NewGridder(size).Invert(gridKspace)
	if err != nil {
		log.Fatalf("Gridding failed: %v", err)
	}
	metrics, err := gridding.Compare(gridding.Magnitude(image), grid.Data)
	if err != nil {
		log.Fatalf("Comparison failed: %v", err)
	}
	fmt.Printf("  RMSE:        %.4f\n", metrics.RMSE)
	fmt.Printf("  Correlation: %.4f\n", metrics.Correlation)
	if cfg.Output.SaveImages {
		path := filepath.Join(cfg.Output.Directory, "gridded.png")
		if err := visualization.SaveComplexImage(image, size, path); err != nil {
			log.Fatalf("Failed to save gridded image: %v", err)
		}
		fmt.Printf("  Gridded image written to %s\n", path)
	}

	// Step 5: MR tissue parameter volumes, if requested
	if *mrVolumes {
		fmt.Println("Step 5: Generating MR tissue parameter volumes...")
		vols, err := mr.SheppLogan(&mr.VolumeParams{
			Width:  size,
			Height: size,
			Depth:  *mrDepth,
			ZMin:   -1,
			ZMax:   1,
			B0:     3,
		})
		if err != nil {
			log.Fatalf("MR volume synthesis failed: %v", err)
		}

		if cfg.Output.SaveImages {
			for name, vol := range map[string]*visualization.Viewer{
				"m0": visualization.NewViewer(vols.M0),
				"t1": visualization.NewViewer(vols.T1),
				"t2": visualization.NewViewer(vols.T2),
			} {
				dir := filepath.Join(cfg.Output.Directory, "mr_"+name)
				fmt.Printf("  Saving %s slices to %s\n", name, dir)
				if err := vol.SaveSliceSequence("z", dir); err != nil {
					log.Printf("Warning: failed to save %s slices: %v", name, err)
				}
			}
		}
	}

	fmt.Println("\nDone.")
}

// dumpKspace writes measurements as little-endian float64 (re, im) pairs
func dumpKspace(measurements []complex128, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, c := range measurements {
		if err := binary.Write(file, binary.LittleEndian, []float64{real(c), imag(c)}); err != nil {
			return err
		}
	}
	return nil
}

// dumpCoilKspace writes sample-major coil measurements as (re, im) pairs
func dumpCoilKspace(measurements [][]complex128, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, row := range measurements {
		for _, c := range row {
			if err := binary.Write(file, binary.LittleEndian, []float64{real(c), imag(c)}); err != nil {
				return err
			}
		}
	}
	return nil
}
