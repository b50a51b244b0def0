package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	mpi "github.com/sbromberger/gompi"
	"github.com/spf13/cobra"
)

var (
	localRanks  int
	minCount    int
	maxCount    int
	angleLow    float64
	angleHigh   float64
	quiet       bool
	withProfile bool
	memlogPath  string
)

var rootCmd = &cobra.Command{
	Use:   "loadbalance",
	Short: "Balance a variable-sized sine workload across MPI ranks",
	Long: `loadbalance spreads an unknown amount of work evenly over a fixed set
of ranks. Every worker generates a random batch of angles and hands it
to rank 0, which repartitions the combined sequence into equal chunks
(the last rank absorbs the remainder), scatters them back, and gathers
the computed sines in rank order.`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the gather/redistribute/gather exchange",
	Example: `  # one coordinator and three workers under MPI
  mpirun -np 4 ./loadbalance run

  # the same topology simulated in a single process
  loadbalance run --local 4`,
	RunE: runExchange,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	runCmd.Flags().IntVar(&localRanks, "local", 0, "simulate this many ranks in-process instead of using MPI")
	runCmd.Flags().IntVar(&minCount, "min-count", 1, "smallest batch a worker may draw")
	runCmd.Flags().IntVar(&maxCount, "max-count", 50, "largest batch a worker may draw")
	runCmd.Flags().Float64Var(&angleLow, "low", 0, "inclusive lower bound of a drawn angle")
	runCmd.Flags().Float64Var(&angleHigh, "high", 360, "exclusive upper bound of a drawn angle")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the per-vector value dumps")
	runCmd.Flags().BoolVar(&withProfile, "profile", false, "write a CPU profile to the working directory")
	runCmd.Flags().StringVar(&memlogPath, "memlog", "", "record heap usage to this file while running")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runExchange(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("min-count") {
		cfg.MinCount = minCount
	}
	if cmd.Flags().Changed("max-count") {
		cfg.MaxCount = maxCount
	}
	if cmd.Flags().Changed("low") {
		cfg.Low = angleLow
	}
	if cmd.Flags().Changed("high") {
		cfg.High = angleHigh
	}
	cfg.Quiet = quiet
	if err := cfg.Validate(); err != nil {
		return err
	}

	if withProfile {
		p := startProfile()
		defer p.Stop()
	}
	if memlogPath != "" {
		stop := make(chan struct{})
		done := make(chan struct{})
		go recordHeap(memlogPath, time.Second, stop, done)
		defer func() {
			close(stop)
			<-done
		}()
	}

	if localRanks > 0 {
		return runLocal(cfg, localRanks)
	}
	return runMPI(cfg)
}

func runMPI(cfg Config) error {
	mpi.Start(true)
	defer mpi.Stop()

	comm := NewMPIComm(mpi.NewCommunicator(nil))
	return pickRole(comm, cfg).Run()
}

// runLocal runs the whole topology as goroutine ranks in one process,
// coordinator on the calling goroutine.
func runLocal(cfg Config, ranks int) error {
	if ranks < 1 {
		return errors.Errorf("need at least one rank, got %d", ranks)
	}
	comms := NewLocalCluster(ranks)

	var wg sync.WaitGroup
	for _, comm := range comms[1:] {
		wg.Add(1)
		go func(comm Comm) {
			defer wg.Done()
			_ = pickRole(comm, cfg).Run()
		}(comm)
	}

	err := pickRole(comms[0], cfg).Run()
	wg.Wait()
	return err
}

func pickRole(comm Comm, cfg Config) Role {
	if comm.Rank() == coordinatorRank {
		return NewCoordinator(comm, cfg, os.Stdout)
	}
	return NewWorker(comm, cfg, os.Stdout)
}
