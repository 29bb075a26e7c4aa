// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command fuzztype-demo loads a newline-delimited JSON record file,
// installs it into a fuzztype.Engine, and serves interactive searches
// against it over a trivial HTTP endpoint. With -watch, it reinstalls
// records whenever the source file changes on disk.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/edsrzf/mmap-go"
	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/peterbourgon/ff/v3"
	"github.com/pkg/errors"
	sglog "github.com/sourcegraph/log"
	"go.uber.org/automaxprocs/maxprocs"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/sourcegraph/fuzztype"
	"github.com/sourcegraph/fuzztype/debugserver"
)

func main() {
	fs := flag.NewFlagSet("fuzztype-demo", flag.ExitOnError)
	var (
		sourcePath = fs.String("source", "", "path to a newline-delimited JSON record file")
		sourceURL  = fs.String("source-url", "", "optional remote URL to refresh the record source from")
		fields     = fs.String("fields", "name", "comma-separated dotted field paths to index")
		listenAddr = fs.String("listen", ":3969", "address to serve search requests on")
		debugAddr  = fs.String("debug-addr", ":6969", "address to serve the debug mux on")
		logPath    = fs.String("log-file", "", "if set, also write a rotated per-request access log to this path")
		watch      = fs.Bool("watch", false, "watch -source for changes and reinstall records")
		configPath = fs.String("config", "", "optional JSON file overriding scoring options, validated against a schema before use")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("FUZZTYPE")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	liblog := sglog.Init(sglog.Resource{Name: "fuzztype-demo"})
	defer liblog.Sync()
	logger := sglog.Scoped("main", "fuzztype-demo entry point")

	var accessLog *stdlog.Logger
	if *logPath != "" {
		rotated := &lumberjack.Logger{Filename: *logPath, MaxSize: 100, MaxBackups: 5, MaxAge: 28}
		defer rotated.Close()
		accessLog = stdlog.New(rotated, "", stdlog.LstdFlags)
	}

	undoMaxProcs, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Info(fmt.Sprintf(format, args...))
	}))
	if err != nil {
		logger.Error("failed to set GOMAXPROCS", sglog.Error(err))
	}
	defer undoMaxProcs()

	if *sourcePath == "" {
		logger.Fatal("missing -source")
	}

	paths, err := compileFieldPaths(*fields)
	if err != nil {
		logger.Fatal("invalid -fields", sglog.Error(err))
	}

	opts := fuzztype.DefaultOptions()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			logger.Fatal("failed to read -config", sglog.Error(err))
		}
		opts, err = fuzztype.LoadOptionsJSON(data)
		if err != nil {
			logger.Fatal("invalid -config", sglog.Error(err))
		}
	}

	engine, err := fuzztype.NewEngine(opts, paths)
	if err != nil {
		logger.Fatal("failed to construct engine", sglog.Error(err))
	}

	if *sourceURL != "" {
		if err := refreshSource(*sourceURL, *sourcePath); err != nil {
			logger.Error("failed to refresh record source", sglog.Error(err))
		}
	}

	start := time.Now()
	count, err := installFromFile(engine, *sourcePath)
	if err != nil {
		logger.Fatal("failed to load record source", sglog.Error(err))
	}
	logger.Info("installed records",
		sglog.Int("count", count),
		sglog.String("duration", humanize.RelTime(start, time.Now(), "", "")))

	if *watch {
		go watchSource(logger, engine, *sourcePath)
	}

	debugMux := http.NewServeMux()
	debugserver.AddHandlers(debugMux, true)
	go func() {
		logger.Info("serving debug endpoints", sglog.String("addr", *debugAddr))
		if err := http.ListenAndServe(*debugAddr, debugMux); err != nil {
			logger.Error("debug server exited", sglog.Error(err))
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/search", searchHandler(engine, accessLog))

	server := &http.Server{Addr: *listenAddr, Handler: mux}
	go func() {
		logger.Info("serving search requests", sglog.String("addr", *listenAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("search server exited", sglog.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
}

func compileFieldPaths(csv string) ([]fuzztype.FieldPath, error) {
	var paths []fuzztype.FieldPath
	for _, p := range strings.Split(csv, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		compiled, err := fuzztype.CompileFieldPath(p)
		if err != nil {
			return nil, errors.Wrapf(err, "compiling field path %q", p)
		}
		paths = append(paths, compiled)
	}
	if len(paths) == 0 {
		return nil, errors.New("no field paths given")
	}
	return paths, nil
}

// installFromFile memory-maps path (expected to be large enough that a
// full read into a []byte is wasteful), scans it as newline-delimited
// JSON objects, and installs them into engine.
func installFromFile(engine *fuzztype.Engine, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "opening record source")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, errors.Wrap(err, "stat'ing record source")
	}
	if info.Size() == 0 {
		engine.Install(nil)
		return 0, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return 0, errors.Wrap(err, "mmap'ing record source")
	}
	defer m.Unmap()

	var records []any
	scanner := bufio.NewScanner(bytes.NewReader(m))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return 0, errors.Wrap(err, "decoding record")
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return 0, errors.Wrap(err, "scanning record source")
	}

	engine.Install(records)
	return len(records), nil
}

func refreshSource(url, destPath string) error {
	client := retryablehttp.NewClient()
	client.Logger = nil
	resp, err := client.Get(url)
	if err != nil {
		return errors.Wrap(err, "fetching remote record source")
	}
	defer resp.Body.Close()

	f, err := os.Create(destPath)
	if err != nil {
		return errors.Wrap(err, "creating local record source")
	}
	defer f.Close()

	if _, err := f.ReadFrom(resp.Body); err != nil {
		return errors.Wrap(err, "writing local record source")
	}
	return nil
}

func watchSource(logger sglog.Logger, engine *fuzztype.Engine, path string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("failed to start source watcher", sglog.Error(err))
		return
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		logger.Error("failed to watch record source", sglog.Error(err))
		return
	}

	for event := range watcher.Events {
		if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			continue
		}
		count, err := installFromFile(engine, path)
		if err != nil {
			logger.Error("failed to reinstall record source", sglog.Error(err))
			continue
		}
		logger.Info("reinstalled records after source change", sglog.Int("count", count))
	}
}

// searchHandler serves GET /search?q=.... When accessLog is non-nil
// (-log-file was set) every request is additionally recorded there,
// rotated by lumberjack independently of the structured sglog sink.
func searchHandler(engine *fuzztype.Engine, accessLog *stdlog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		q := r.URL.Query().Get("q")
		results, err := engine.Search(r.Context(), q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(results)

		if accessLog != nil {
			accessLog.Printf("q=%q results=%d duration=%s", q, len(results), time.Since(start))
		}
	}
}
