// Command schedsim simulates the scheduling algorithms on processes read from a CSV file.
//
//	schedsim [-algorithms fcfs,rr] [-quantum 2] [-export dir] [-server http://host:9095] processes.csv
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/client"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/logger"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

type options struct {
	configPath string
	algorithms []string
	quantum    int
	exportDir  string
	server     string
	file       string
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("schedsim failed", logger.ErrAttr(err))
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	slog.SetDefault(logger.Build(cfg.LogLevel))

	if len(opts.algorithms) == 0 {
		opts.algorithms = cfg.Algorithms
	}
	if opts.quantum == 0 {
		opts.quantum = cfg.RoundRobinTimeQuantum
	}

	processes, err := loadFile(opts.file)
	if err != nil {
		return err
	}

	var results []responses.ScheduleResponse
	if opts.server != "" {
		results, err = scheduleRemote(opts, processes)
	} else {
		results, err = scheduleLocal(opts, processes)
	}
	if err != nil {
		return err
	}

	for _, response := range results {
		report.Write(w, schedulers.Title(response.Algorithm), response)
		if opts.exportDir != "" {
			if err := export(opts.exportDir, response); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseArgs(args []string) (options, error) {
	var (
		opts       options
		algorithms string
	)
	fs := flag.NewFlagSet("schedsim", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to a config file (default ./config.yaml if present)")
	fs.StringVar(&algorithms, "algorithms", "", "comma separated algorithms: "+strings.Join(schedulers.Algorithms, ","))
	fs.IntVar(&opts.quantum, "quantum", 0, "round robin time quantum (default from config)")
	fs.StringVar(&opts.exportDir, "export", "", "directory to write one CSV per algorithm into")
	fs.StringVar(&opts.server, "server", "", "run on a scheduler service at this base URL instead of locally")
	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	if fs.NArg() != 1 {
		return opts, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	opts.file = fs.Arg(0)
	if algorithms != "" {
		for _, a := range strings.Split(algorithms, ",") {
			opts.algorithms = append(opts.algorithms, strings.TrimSpace(a))
		}
	}
	return opts, nil
}

func loadFile(path string) ([]core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scheduling file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return report.LoadProcesses(f)
}

func scheduleLocal(opts options, processes []core.Process) ([]responses.ScheduleResponse, error) {
	results, err := schedulers.RunAll(opts.algorithms, processes, opts.quantum)
	if err != nil {
		return nil, err
	}
	out := make([]responses.ScheduleResponse, len(results))
	for i, result := range results {
		out[i] = schedulers.GenerateResponse(result)
	}
	return out, nil
}

func scheduleRemote(opts options, processes []core.Process) ([]responses.ScheduleResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(opts.server, nil)
	return c.ScheduleAll(ctx, opts.algorithms, requests.FromProcesses(processes, opts.quantum))
}

func export(dir string, response responses.ScheduleResponse) error {
	path := filepath.Join(dir, response.Algorithm+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := report.WriteCSV(f, response.Details); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	slog.Info("exported", slog.String("algorithm", response.Algorithm), slog.String("path", path))
	return f.Close()
}
