// Package main is a demo harness for the drop-zone controller: it wires a
// controller to an in-memory element, binds drag events the way a host
// binding framework would, and replays a scripted drag sequence.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ayaan-qadri/wagtail/internal/config"
	"github.com/ayaan-qadri/wagtail/internal/dispatch"
	"github.com/ayaan-qadri/wagtail/internal/dom"
	"github.com/ayaan-qadri/wagtail/internal/state"
	"github.com/ayaan-qadri/wagtail/internal/zone"
)

var (
	configPath = flag.String("config", "", "Path to config file")
	logLevel   = flag.String("log-level", "", "Log level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Override log level from flag if provided
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// Demo defaults: without a config file, use a visible class and delay.
	if cfg.ActiveClass == "" {
		cfg.ActiveClass = "hovered active"
	}
	if cfg.Delay == 0 {
		cfg.Delay = 100 * time.Millisecond
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Setup logging
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var logHandler slog.Handler
	if cfg.LogFormat == "text" {
		logHandler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		logHandler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	logger.Info("zone demo starting",
		"active_class", cfg.ActiveClass,
		"delay", cfg.Delay,
		"switch_key", cfg.SwitchKey,
	)

	// Bind a controller to an in-memory element
	element := dom.NewElement("drop-target")
	controller := zone.NewController(cfg, element)
	defer controller.Detach()

	controller.OnModeChange(func(from, to state.Mode) {
		logger.Info("mode changed", "from", from, "to", to, "class", element.ClassName())
	})

	// Declarative wiring, made explicit: dragover activates, dragleave
	// deactivates, drop only suppresses the browser default.
	dispatcher := dispatch.NewDispatcher()
	defer dispatcher.Stop()

	dispatcher.Bind(dispatch.Binding{Event: "dragover", Handler: controller.Activate, PreventDefault: true})
	dispatcher.Bind(dispatch.Binding{Event: "dragleave", Handler: controller.Deactivate})
	dispatcher.Bind(dispatch.Binding{Event: "drop", Handler: controller.Noop, PreventDefault: true})
	dispatcher.Bind(dispatch.Binding{Event: "w-zone:switch", Handler: controller.Switch})

	// Scripted drag sequence
	logger.Info("dragover: hover begins")
	dispatcher.Dispatch(&zone.Event{Name: "dragover", Cancelable: true})
	time.Sleep(2 * cfg.Delay)
	logger.Info("hover settled", "mode", controller.Mode(), "class", element.ClassName())

	logger.Info("drop: default suppressed, no mode change")
	drop := &zone.Event{Name: "drop", Cancelable: true}
	dispatcher.Dispatch(drop)
	logger.Info("drop handled", "default_prevented", drop.DefaultPrevented(), "mode", controller.Mode())

	logger.Info("dragleave: leave is twice as slow as entry")
	dispatcher.Dispatch(&zone.Event{Name: "dragleave"})
	time.Sleep(3 * cfg.Delay)
	logger.Info("leave settled", "mode", controller.Mode(), "class", element.ClassName())

	logger.Info("switch: direct override from an application event")
	dispatcher.Dispatch(&zone.Event{
		Name:   "w-zone:switch",
		Detail: map[string]any{cfg.SwitchKey: true},
	})
	logger.Info("switch applied", "mode", controller.Mode(), "class", element.ClassName())

	logger.Info("zone demo finished")
}
